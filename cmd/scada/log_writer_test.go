package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

func Test_logWriter_Write(t *testing.T) {
	lw := &logWriter{size: 16}
	lw.Write([]byte("aaaa\nbbbb\n"))
	if got := lw.buf.String(); got != "aaaa\nbbbb\n" {
		t.Fatalf("unexpected buf content: %q", got)
	}

	lw.Write([]byte("cccc\n"))
	lw.Write([]byte("dd\n"))
	if got, want := lw.buf.String(), logTruncatedMarker+"cccc\ndd\n"; got != want {
		t.Fatalf("unexpected buf content, want: %q, got: %q", want, got)
	}

	bigData := strings.Repeat("B", 64)
	lw.Write([]byte(bigData))
	if got, want := lw.buf.String(), logTruncatedMarker+strings.Repeat("B", 12); got != want {
		t.Fatalf("unexpected big buf content, want: %q, got: %q", want, got)
	}
}

func Test_logWriter_ConcurrentWrite(t *testing.T) {
	size := 64 * 1024
	lw := &logWriter{size: size}
	n := 10
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			lw.Write([]byte(strings.Repeat("A", i*1024) + "\n"))
		}()
	}
	wg.Wait()
	if lw.buf.Len() > lw.size {
		t.Fatalf("unexpected buf size: %v", lw.buf.Len())
	}
}

func Test_logWriter_ServeHTTP(t *testing.T) {
	lw := newLogWriter()
	lw.Write([]byte("compatibility check\n"))
	rec := httptest.NewRecorder()
	lw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/logs", nil))

	var resp logViewResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data != "compatibility check\n" {
		t.Errorf("unexpected logs: %q", resp.Data)
	}
}
