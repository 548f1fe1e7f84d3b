package logger

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSetAllows(t *testing.T) {
	f := filterSet{}
	assert.True(t, f.allows("anything"))

	f = filterSet{enabled: sliceToSet([]string{"History"})}
	assert.True(t, f.allows("history"))
	assert.False(t, f.allows("config"))

	f = filterSet{enabled: sliceToSet([]string{"history"}), disabled: sliceToSet([]string{"history"})}
	assert.False(t, f.allows("history"), "disabled overrides enabled")
}

func TestSliceToSetIgnoresEmpty(t *testing.T) {
	assert.Nil(t, sliceToSet(nil))
	assert.Nil(t, sliceToSet([]string{"", ""}))
	assert.Len(t, sliceToSet([]string{"a", "A", ""}), 1)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("err"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestTagFiltering(t *testing.T) {
	defer install(NewConfig(), io.Discard)

	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.LogLevel = "debug"
	cfg.DisabledTags = []string{"noisy"}
	install(cfg, &buf)

	DebugTagf("noisy", "dropped message")
	DebugTagf("history", "kept message")
	Infof("untagged message")

	out := buf.String()
	assert.NotContains(t, out, "dropped message")
	assert.Contains(t, out, "kept message")
	assert.Contains(t, out, "tag=history")
	assert.Contains(t, out, "untagged message")
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	defer install(NewConfig(), io.Discard)

	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.LogLevel = "debug"
	cfg.EnabledTags = []string{"history"}
	install(cfg, &buf)

	Debugf("untagged")
	DebugTagf("history", "tagged")

	assert.NotContains(t, buf.String(), "untagged")
	assert.Contains(t, buf.String(), "tagged")
}

func TestPackageFiltering(t *testing.T) {
	defer install(NewConfig(), io.Discard)

	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.DisabledPackages = []string{"logger"}
	install(cfg, &buf)

	Infof("from the logger package itself")
	assert.Empty(t, buf.String())
}

func TestLevelThreshold(t *testing.T) {
	defer install(NewConfig(), io.Discard)

	var buf bytes.Buffer
	Init(slog.LevelWarn, &buf)

	Infof("too quiet")
	Warnf("loud enough")

	assert.NotContains(t, buf.String(), "too quiet")
	assert.Contains(t, buf.String(), "loud enough")
}
