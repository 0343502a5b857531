package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forlenza-industrial/scada"
	"github.com/forlenza-industrial/scada/internal/ui"
)

func Test_prog(t *testing.T) {
	c := &scada.Config{UI: scada.UIConfig{IP: "127.0.0.1", Port: 0, OpenBrowser: false}}
	want := ui.Status{Product: "SCADA v2.1", OSVersion: "6.1", OSLabel: "Windows 7", Source: scada.SourceDefault}
	p := &prog{cfg: c, status: want}
	require.NoError(t, p.Start(nil))

	resp, err := http.Get(p.server.URL() + "api/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got ui.Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, want, got)

	assert.NoError(t, p.Stop(nil))
}

func Test_progStopBeforeStart(t *testing.T) {
	p := &prog{cfg: &scada.Config{}}
	assert.NoError(t, p.Stop(nil))
}

func Test_progServesInternalLogs(t *testing.T) {
	internalLogWriter = newLogWriter()
	t.Cleanup(func() { internalLogWriter = nil })
	internalLogWriter.Write([]byte("operator interface started\n"))

	p := &prog{cfg: &scada.Config{UI: scada.UIConfig{IP: "127.0.0.1"}}}
	require.NoError(t, p.Start(nil))
	defer p.Stop(nil)

	resp, err := http.Get(p.server.URL() + "api/logs")
	require.NoError(t, err)
	defer resp.Body.Close()
	var logs logViewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&logs))
	assert.Equal(t, "operator interface started\n", logs.Data)
}
