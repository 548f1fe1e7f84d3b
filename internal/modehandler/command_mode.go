package modehandler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bethropolis/tabula/internal/logger"
	"github.com/bethropolis/tabula/internal/plugin"
	"github.com/bethropolis/tabula/internal/utils"
)

// ExecuteCommand runs one `:` command line. A registered command wins; a
// bare cell reference such as "B10" jumps to that cell.
func (mh *ModeHandler) ExecuteCommand(cmdLine string) {
	parts := strings.Fields(cmdLine)
	if len(parts) == 0 {
		return
	}
	name, args := parts[0], parts[1:]

	if cmdFunc, exists := mh.commands[name]; exists {
		logger.DebugTagf("command", "ModeHandler: Executing command ':%s' with args %v", name, args)
		if err := cmdFunc(args); err != nil {
			mh.editor.Notify(err.Error())
		}
		return
	}

	if pos, ok := utils.ParseCellReference(name); ok && len(args) == 0 {
		mh.editor.JumpToCell(pos)
		return
	}

	mh.editor.Notify(fmt.Sprintf("Unknown command: %s", name))
}

// RegisterCommand adds a command to the registry.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.DebugTagf("command", "ModeHandler: Registered command ':%s'", name)
	return nil
}

// Commands returns the registered command names, sorted.
func (mh *ModeHandler) Commands() []string {
	names := make([]string, 0, len(mh.commands))
	for name := range mh.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
