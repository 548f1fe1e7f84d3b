package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/bethropolis/tabula/internal/app"
	"github.com/bethropolis/tabula/internal/config"
	"github.com/bethropolis/tabula/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := config.NewFlags(config.AppName)
	positional, err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return 0
	}

	logger.SetDebugFilter(*flags.DebugLog)
	cfg, cfgErr := config.Load(*flags.ConfigFilePath, flags)

	closer, err := logger.InitWithConfig(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	if cfgErr != nil {
		logger.Warnf("Using default configuration: %v", cfgErr)
	}

	filePath := ""
	if len(positional) > 0 {
		filePath = positional[0]
	}
	logger.Infof("Starting %s %s (file: %q)", config.AppName, version, filePath)

	tabula, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := tabula.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		return 1
	}

	logger.Infof("%s finished.", config.AppName)
	return 0
}
