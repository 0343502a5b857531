package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
)

const (
	logWriterSize      = 1024 * 1024 // 1 MB
	logTruncatedMarker = "...\n"
)

type logViewResponse struct {
	Data string `json:"data"`
}

// logWriter keeps the most recent log output in memory when no log file is configured.
type logWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	size int
}

// newLogWriter creates an internal log writer with a fixed buffer size.
func newLogWriter() *logWriter {
	return &logWriter{size: logWriterSize}
}

func (lw *logWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	n := len(p)
	// Only the tail of p fits if it is bigger than the buffer.
	if limit := lw.size - len(logTruncatedMarker); len(p) > limit {
		p = p[len(p)-limit:]
	}
	// If writing p causes overflows, discard the oldest lines.
	if lw.buf.Len()+len(p) > lw.size {
		old := lw.buf.Bytes()
		overflow := len(old) + len(p) + len(logTruncatedMarker) - lw.size
		if overflow < len(old) {
			if idx := bytes.IndexByte(old[overflow-1:], '\n'); idx != -1 {
				old = old[overflow+idx:]
			} else {
				old = nil
			}
		} else {
			old = nil
		}
		kept := append([]byte(logTruncatedMarker), old...)
		lw.buf.Reset()
		lw.buf.Write(kept)
	}
	lw.buf.Write(p)
	return n, nil
}

func (lw *logWriter) content() []byte {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return bytes.Clone(lw.buf.Bytes())
}

// ServeHTTP reports the buffered logs as a logViewResponse.
func (lw *logWriter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := json.NewEncoder(w).Encode(logViewResponse{Data: string(lw.content())}); err != nil {
		mainLog.Error().Err(err).Msg("failed to encode runtime logs")
	}
}
