// Command scada runs the Forlenza Industrial SCADA operator interface, after
// checking that the host runs Windows 7 or earlier.
//
// Build for Windows without a console window:
//
//	go generate ./cmd/scada
//	GOOS=windows go build -ldflags "-H=windowsgui" ./cmd/scada
//
// go generate writes the rsrc_windows_*.syso version resource from winres/winres.json.
// The resource carries no application manifest: a manifest declaring newer
// Windows versions would change what GetVersionExW reports.
package main

//go:generate go run github.com/tc-hib/go-winres@v0.3.3 make --in winres/winres.json --arch amd64,386

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/kardianos/service"
	"github.com/rs/zerolog"

	"github.com/forlenza-industrial/scada"
)

var (
	configPath   string
	logPath      string
	cfg          scada.Config
	verbose      int
	silent       bool
	devMode      bool
	noBrowser    bool
	osVersionArg string
	forceWrite   bool

	mainLog           = zerolog.New(io.Discard)
	consoleWriter     zerolog.ConsoleWriter
	internalLogWriter *logWriter
)

func main() {
	scada.InitConfig(v, "scada")
	rootCmd := initCLI()
	if err := rootCmd.Execute(); err != nil {
		mainLog.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func normalizeLogFilePath(logFilePath string) string {
	if logFilePath == "" || filepath.IsAbs(logFilePath) || service.Interactive() {
		return logFilePath
	}
	dir, _ := os.UserHomeDir()
	if dir == "" {
		return logFilePath
	}
	return filepath.Join(dir, logFilePath)
}

func initConsoleLogging() {
	consoleWriter = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.TimeFormat = time.StampMilli
	})
	multi := zerolog.MultiLevelWriter(consoleWriter)
	mainLog = mainLog.Output(multi).With().Timestamp().Logger()
	switch {
	case silent:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case verbose == 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case verbose > 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// initLogging initializes log setup base on current config.
// An old log file is kept with ".1" suffix.
func initLogging() {
	writers := []io.Writer{io.Discard}
	if logFilePath := normalizeLogFilePath(cfg.Service.LogPath); logFilePath != "" {
		// Create parent directory if necessary.
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
			mainLog.Error().Msgf("failed to create log path: %v", err)
			os.Exit(1)
		}

		// Default open log file in append mode.
		flags := os.O_CREATE | os.O_RDWR | os.O_APPEND
		// Backup old log file with .1 suffix.
		if err := os.Rename(logFilePath, logFilePath+".1"); err != nil && !os.IsNotExist(err) {
			mainLog.Error().Msgf("could not backup old log file: %v", err)
		} else {
			// Backup was created, set flags for truncating old log file.
			flags = os.O_CREATE | os.O_RDWR
		}
		logFile, err := os.OpenFile(logFilePath, flags, os.FileMode(0o600))
		if err != nil {
			mainLog.Error().Msgf("failed to create log file: %v", err)
			os.Exit(1)
		}
		writers = append(writers, logFile)
	} else {
		// No log file, keep recent logs for the operator interface.
		internalLogWriter = newLogWriter()
		writers = append(writers, internalLogWriter)
	}
	writers = append(writers, consoleWriter)
	multi := zerolog.MultiLevelWriter(writers...)
	// initConsoleLogging already added the timestamp.
	mainLog = mainLog.Output(multi)
	scada.ProxyLogger.Store(&mainLog)

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	logLevel := cfg.Service.LogLevel
	switch {
	case silent:
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return
	case verbose == 1:
		logLevel = "info"
	case verbose > 1:
		logLevel = "debug"
	}
	if logLevel == "" {
		return
	}
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		mainLog.Warn().Err(err).Msg("could not set log level")
		return
	}
	zerolog.SetGlobalLevel(level)
}
