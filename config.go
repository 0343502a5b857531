package scada

import (
	"net"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	defaultProductName    = "Forlenza Industrial SCADA"
	defaultProductVersion = "v2.1"
	defaultSupportContact = "Please contact IT support for virtualization solutions."
	defaultErrorCode      = "LEGACY_OS_REQUIRED"
	defaultUITitle        = "Forlenza Industrial SCADA Control System v2.1"
)

// SetConfigName set the config name that scada will look for.
func SetConfigName(v *viper.Viper, name string) {
	v.SetConfigName(name)

	configPath := "$HOME"
	// viper has its own way to get user home directory:  https://github.com/spf13/viper/blob/v1.14.0/util.go#L134
	// To be consistent, we prefer os.UserHomeDir instead.
	if homeDir, err := os.UserHomeDir(); err == nil {
		configPath = homeDir
	}
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
}

// InitConfig initializes default config values for given *viper.Viper instance.
// The instance must use "::" as key delimiter.
func InitConfig(v *viper.Viper, name string) {
	SetConfigName(v, name)

	v.SetDefault("app::product_name", defaultProductName)
	v.SetDefault("app::version", defaultProductVersion)
	v.SetDefault("app::support_contact", defaultSupportContact)
	v.SetDefault("app::error_code", defaultErrorCode)

	v.SetDefault("ui::title", defaultUITitle)
	v.SetDefault("ui::ip", "127.0.0.1")
	v.SetDefault("ui::port", 0)
	v.SetDefault("ui::open_browser", true)
}

// Config represents scada supported configuration.
type Config struct {
	Service ServiceConfig `mapstructure:"service" toml:"service,omitempty"`
	App     AppConfig     `mapstructure:"app" toml:"app"`
	UI      UIConfig      `mapstructure:"ui" toml:"ui"`
}

// ServiceConfig specifies the logging setup.
type ServiceConfig struct {
	LogLevel string `mapstructure:"log_level" toml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error fatal panic"`
	LogPath  string `mapstructure:"log_path" toml:"log_path,omitempty"`
}

// AppConfig holds the product details shown to the user when the OS is rejected.
type AppConfig struct {
	ProductName    string `mapstructure:"product_name" toml:"product_name" validate:"required"`
	Version        string `mapstructure:"version" toml:"version" validate:"required"`
	SupportContact string `mapstructure:"support_contact" toml:"support_contact,omitempty"`
	ErrorCode      string `mapstructure:"error_code" toml:"error_code" validate:"required"`
}

// UIConfig specifies where the control interface is served.
type UIConfig struct {
	Title string `mapstructure:"title" toml:"title,omitempty"`
	IP    string `mapstructure:"ip" toml:"ip" validate:"ip"`
	// Port 0 picks a free port.
	Port        int  `mapstructure:"port" toml:"port" validate:"gte=0,lte=65535"`
	OpenBrowser bool `mapstructure:"open_browser" toml:"open_browser"`
}

// Addr returns the listen address of the UI server.
func (uc *UIConfig) Addr() string {
	return net.JoinHostPort(uc.IP, strconv.Itoa(uc.Port))
}

// ValidateConfig validates the given config.
func ValidateConfig(validate *validator.Validate, cfg *Config) error {
	return validate.Struct(cfg)
}
