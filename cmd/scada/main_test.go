package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forlenza-industrial/scada"
)

var logOutput strings.Builder

func TestMain(m *testing.M) {
	mainLog = zerolog.New(&logOutput)
	os.Exit(m.Run())
}

func Test_initLogging_logFile(t *testing.T) {
	oldLog, oldLevel, oldCfg := mainLog, zerolog.GlobalLevel(), cfg
	t.Cleanup(func() {
		mainLog = oldLog
		cfg = oldCfg
		zerolog.SetGlobalLevel(oldLevel)
		scada.ProxyLogger.Store(&mainLog)
	})
	// The log file is never closed, Windows cannot remove it while the test runs.
	dir, err := os.MkdirTemp("", "scada-log")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	path := filepath.Join(dir, "scada.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0600))

	cfg = scada.Config{Service: scada.ServiceConfig{LogPath: path}}
	initConsoleLogging()
	initLogging()
	mainLog.Warn().Msg("log file check")

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(buf))
	assert.Contains(t, line, "log file check")
	assert.Equal(t, 1, strings.Count(line, `"time":`))

	backup, err := os.ReadFile(path + ".1")
	require.NoError(t, err)
	assert.Equal(t, "previous run\n", string(backup))
}

func Test_winresVersionInfo(t *testing.T) {
	buf, err := os.ReadFile(filepath.Join("winres", "winres.json"))
	require.NoError(t, err)
	var res struct {
		Version map[string]map[string]struct {
			Fixed struct {
				FileVersion string `json:"file_version"`
			} `json:"fixed"`
			Info map[string]map[string]string `json:"info"`
		} `json:"RT_VERSION"`
	}
	require.NoError(t, json.Unmarshal(buf, &res))

	vi := res.Version["#1"]["0000"]
	assert.Equal(t, version+".0", vi.Fixed.FileVersion)
	strs := vi.Info["0409"]
	assert.Equal(t, version+".0", strs["FileVersion"])
	assert.Equal(t, "SCADA Control System", strs["ProductName"])
	assert.Equal(t, "Forlenza Industrial", strs["CompanyName"])
}
