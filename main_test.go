package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/termselect/internal/app"
	"github.com/atomicstack/termselect/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	require.Len(t, info.Probes, 3)
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		assert.Equal(t, name, info.Probes[i].Name)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Selection:    "arrowed",
			ShowHelp:     true,
			PollInterval: 20 * time.Millisecond,
			Width:        80,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"selection": "arrowed",
			"width":     "80",
			"keyHelp":   "true",
			"trace":     "true",
			"logFile":   "trace.log",
		},
		Args: []string{"--selection", "arrowed"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	require.True(t, ok, "expected flags map in payload")
	assert.Equal(t, "arrowed", flagsValue["selection"])
	assert.Equal(t, "80", flagsValue["width"])
	assert.Equal(t, "true", flagsValue["keyHelp"])
	assert.Equal(t, "true", flagsValue["trace"], "trace keeps the string form from config")
	assert.Equal(t, "trace.log", flagsValue["logFile"])

	_, ok = payload["tty"].(ttyDetails)
	assert.True(t, ok, "expected tty details in payload")
	cfgValue, ok := payload["config"].(config.Config)
	require.True(t, ok, "expected config in payload")
	assert.Equal(t, cfg.App, cfgValue.App)
	assert.Equal(t, cfg.Args, payload["argv"])
}

func TestRootCmdReportsConfigurationErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--width", "-3"},
		{"--selection", "sparkles"},
		{"--no-such-flag"},
		{"--width", "many"},
	} {
		cmd := newRootCmd(args, nil)
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))

		err := cmd.ExecuteContext(context.Background())

		require.Error(t, err, args)
		var cfgErr configError
		assert.True(t, errors.As(err, &cfgErr), "expected configuration error for %v, got %v", args, err)
	}
}

func TestRootCmdRejectsPositionalArguments(t *testing.T) {
	cmd := newRootCmd([]string{"extra"}, nil)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestStartupTracePayloadMirrorsConfigFlags(t *testing.T) {
	cfg, err := config.LoadArgs([]string{"--trace", "--log-file", "trace.log"}, nil)
	require.NoError(t, err)

	flagsValue, ok := startupTracePayload(cfg)["flags"].(map[string]interface{})
	require.True(t, ok)

	assert.Len(t, flagsValue, len(cfg.Flags))
	for k, v := range cfg.Flags {
		assert.Equal(t, v, flagsValue[k], k)
	}
	assert.Equal(t, "true", flagsValue["trace"])
}
