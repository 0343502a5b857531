package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kardianos/service"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/forlenza-industrial/scada"
	"github.com/forlenza-industrial/scada/internal/dialog"
	"github.com/forlenza-industrial/scada/internal/ui"
)

const defaultConfigFile = "scada.toml"

// version is set at build time with -ldflags "-X main.version=...".
var version = "2.1.0"

var v = viper.NewWithOptions(viper.KeyDelimiter("::"))

var showDialog = dialog.Show

func initCLI() *cobra.Command {
	// Enable opening via explorer.exe on Windows.
	// See: https://github.com/spf13/cobra/issues/844.
	cobra.MousetrapHelpText = ""

	rootCmd := &cobra.Command{
		Use:     "scada",
		Short:   "Forlenza Industrial SCADA Control System",
		Version: version,
		// Launchers may pass extra arguments, only --dev matters.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		Run: func(cmd *cobra.Command, args []string) {
			readConfig()
			initLogging()

			d := scada.DetectOSVersion()
			logHost(d)
			decision := evaluate(d, devMode)
			if !decision.Allowed {
				reject(decision)
				os.Exit(1)
			}
			if noBrowser {
				cfg.UI.OpenBrowser = false
			}
			p := &prog{cfg: &cfg, status: uiStatus(d, devMode)}
			s, err := service.New(p, svcConfig)
			if err != nil {
				mainLog.Fatal().Err(err).Msg("failed create new service")
			}
			if err := s.Run(); err != nil {
				mainLog.Error().Err(err).Msg("failed to run operator interface")
				os.Exit(1)
			}
		},
	}
	rootCmd.PersistentFlags().CountVarP(
		&verbose,
		"verbose",
		"v",
		`verbose log output, "-v" means info level logging enabled, "-vv" means debug level logging enabled`,
	)
	rootCmd.PersistentFlags().BoolVarP(&silent, "silent", "s", false, "do not write any log output")
	rootCmd.PersistentFlags().BoolVarP(&devMode, "dev", "", false, "developer mode, run regardless of the OS version")
	addConfigFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().BoolVarP(&noBrowser, "no-browser", "", false, "do not open the operator interface in a browser")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Report the detected OS version and whether scada may run on it",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			readConfig()
			initLogging()
			d, err := detectionFor(osVersionArg)
			if err != nil {
				mainLog.Fatal().Err(err).Msg("invalid OS version")
			}
			decision := evaluate(d, devMode)
			printCheck(cmd.OutOrStdout(), d, decision)
			if !decision.Allowed {
				os.Exit(1)
			}
		},
	}
	checkCmd.Flags().StringVarP(&osVersionArg, "os-version", "", "", `evaluate this OS version instead of detecting it, e.g. "10.0"`)

	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			path := configPath
			if path == "" {
				path = defaultConfigFile
			}
			if err := writeConfigFile(path, forceWrite); err != nil {
				log.Fatalf("failed to write config file: %v", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", path)
		},
	}
	configInitCmd.Flags().BoolVarP(&forceWrite, "force", "f", false, "overwrite an existing config file")
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the scada configuration",
		Args:  cobra.OnlyValidArgs,
		ValidArgs: []string{
			configInitCmd.Use,
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	return rootCmd
}

// addConfigFlags declares the flags shared by every command reading the config.
func addConfigFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&configPath, "config", "c", "", "Path to config file")
	flags.StringVarP(&logPath, "log", "", "", "path to log file")
}

func readConfig() {
	initConsoleLogging()
	if configPath != "" {
		v.SetConfigFile(configPath)
	}
	readConfigFile()
	if logPath != "" {
		v.Set("service::log_path", logPath)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}
	if err := scada.ValidateConfig(validator.New(), &cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
}

func readConfigFile() {
	err := v.ReadInConfig()
	if err == nil {
		return
	}
	// No config file is fine, defaults apply.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return
	}
	log.Fatalf("failed to decode config file: %v", err)
}

func writeConfigFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	c := v.AllSettings()
	bs, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("unable to marshal config to toml: %w", err)
	}
	return os.WriteFile(path, bs, 0600)
}

func logHost(d scada.Detection) {
	mainLog.Info().
		Str("os", scada.OSDescription()).
		Stringer("product_type", d.ProductType).
		Bool("workstation", d.IsWorkstation()).
		Str("version", version).
		Msg("starting scada")
}

func uiStatus(d scada.Detection, dev bool) ui.Status {
	return ui.Status{
		Title:     cfg.UI.Title,
		Product:   cfg.App.ProductName + " " + cfg.App.Version,
		OSVersion: d.Version.String(),
		OSLabel:   d.Version.Label(),
		Source:    d.Source,
		DevMode:   dev,
	}
}

func reject(decision scada.Decision) {
	mainLog.Warn().Str("os", decision.DisplayLabel).Msg("operating system is not supported")
	msg := dialog.CompatibilityError(dialog.Product{
		Name:           cfg.App.ProductName,
		Version:        cfg.App.Version,
		SupportContact: cfg.App.SupportContact,
		ErrorCode:      cfg.App.ErrorCode,
	}, decision.DisplayLabel)
	if err := showDialog(msg); err != nil {
		mainLog.Error().Err(err).Msg("could not show compatibility dialog")
	}
}
