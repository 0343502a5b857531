package testhelper

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/forlenza-industrial/scada"
)

func SampleConfig(t *testing.T) *scada.Config {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	scada.InitConfig(v, "test_load_config")
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(sampleConfigContent)))
	var cfg scada.Config
	require.NoError(t, v.Unmarshal(&cfg))
	return &cfg
}

var sampleConfigContent = `
[service]
log_level = "info"
log_path = "/path/to/log.log"

[app]
product_name = "Forlenza Industrial SCADA"
version = "v2.1"
support_contact = "Call plant IT on ext. 4410."

[ui]
ip = "127.0.0.1"
port = 8410
open_browser = false
`
