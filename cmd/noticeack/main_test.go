package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mattmezza/noticeack/internal/state"
)

func writeTestConfig(t *testing.T) (configPath, statePath string) {
	t.Helper()
	t.Setenv("NOTICEACK_STATE_FILE", "")
	t.Setenv("NOTICEACK_LOG_LEVEL", "")

	tmpDir := t.TempDir()
	configPath = filepath.Join(tmpDir, "config.yaml")
	statePath = filepath.Join(tmpDir, "state", "notifications.json")

	configContent := "state_file: \"" + statePath + "\"\nlog_level: \"error\"\n"
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	return configPath, statePath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := execute(&app{}, &out, args)
	return out.String(), err
}

func TestShowFreshSession(t *testing.T) {
	configPath, statePath := writeTestConfig(t)

	out, err := run(t, "--config", configPath, "show")
	require.NoError(t, err)

	var got state.Notifications
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, state.Default(), got)

	_, statErr := os.Stat(statePath)
	assert.True(t, os.IsNotExist(statErr), "show must not write state")
}

func TestAckPersistsState(t *testing.T) {
	configPath, statePath := writeTestConfig(t)

	out, err := run(t, "--config", configPath, "should-show", "monaco-editor-available")
	require.NoError(t, err)
	assert.Equal(t, "true", strings.TrimSpace(out))

	out, err = run(t, "--config", configPath, "ack", "monaco_editor_available")
	require.NoError(t, err)
	assert.Contains(t, out, "monaco-editor-available acknowledged")

	saved, err := state.LoadFile(statePath, state.Notifications{})
	require.NoError(t, err)
	assert.True(t, saved.SeenMonacoEditorAvailable)
	assert.Equal(t, state.Default().LegacyFlags, saved.LegacyFlags)

	out, err = run(t, "--config", configPath, "should-show", "monaco-editor-available")
	require.NoError(t, err)
	assert.Equal(t, "false", strings.TrimSpace(out))

	// Acknowledging again is a no-op.
	out, err = run(t, "--config", configPath, "ack", "monaco-editor-available")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func observedApp() (*app, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := &app{newLogger: func(string) (*zap.Logger, error) {
		return zap.New(core), nil
	}}
	return a, logs
}

func TestAckUnknownNotificationLeavesStateAlone(t *testing.T) {
	configPath, statePath := writeTestConfig(t)
	a, logs := observedApp()

	var out bytes.Buffer
	err := execute(a, &out, []string{"--config", configPath, "ack", "rust-survey-2030"})
	require.NoError(t, err)
	assert.Empty(t, out.String())

	// Unknown ids go through the store, which treats them as a no-op.
	entries := logs.FilterMessage("ignoring unknown notification").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rust-survey-2030", entries[0].ContextMap()["notification"])

	_, statErr := os.Stat(statePath)
	assert.True(t, os.IsNotExist(statErr))
}

type syncCountingCore struct {
	zapcore.Core
	syncs int
}

func (c *syncCountingCore) Sync() error {
	c.syncs++
	return c.Core.Sync()
}

func TestLoggerSyncedWhenCommandFails(t *testing.T) {
	configPath, _ := writeTestConfig(t)
	inner, _ := observer.New(zapcore.DebugLevel)
	core := &syncCountingCore{Core: inner}
	a := &app{newLogger: func(string) (*zap.Logger, error) {
		return zap.New(core), nil
	}}

	err := execute(a, &bytes.Buffer{}, []string{"--config", configPath, "ack", " "})
	require.Error(t, err)
	assert.Equal(t, 1, core.syncs)
}

func TestCommandErrors(t *testing.T) {
	configPath, _ := writeTestConfig(t)

	testCases := []struct {
		name string
		args []string
	}{
		{name: "explicit_missing_config", args: []string{"--config", filepath.Join(t.TempDir(), "absent.yaml"), "show"}},
		{name: "ack_without_argument", args: []string{"--config", configPath, "ack"}},
		{name: "ack_empty_name", args: []string{"--config", configPath, "ack", " "}},
		{name: "show_with_argument", args: []string{"--config", configPath, "show", "extra"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestDefaultConfigFallback(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "notifications.json")
	t.Setenv("NOTICEACK_STATE_FILE", statePath)
	t.Setenv("NOTICEACK_LOG_LEVEL", "error")
	t.Chdir(t.TempDir()) // no config.yaml here

	_, err := run(t, "ack", "monaco-editor-available")
	require.NoError(t, err)

	saved, err := state.LoadFile(statePath, state.Notifications{})
	require.NoError(t, err)
	assert.True(t, saved.SeenMonacoEditorAvailable)
}
