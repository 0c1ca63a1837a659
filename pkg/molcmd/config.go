package molcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is everything that can come from a config file, the
// environment (MOLFILE_WIDTH=600) or the command line. Flags win over
// the environment, which wins over the file.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Format   string `mapstructure:"format"`
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	Margin   int    `mapstructure:"margin"`
	HideH    bool   `mapstructure:"hide_h"`
	Readers  int    `mapstructure:"readers"`
}

const envPrefix = "MOLFILE"

// Output formats for dump.
const (
	fmtJSON = "json"
	fmtYAML = "yaml"
	fmtText = "text"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("format", fmtJSON)
	v.SetDefault("width", 400)
	v.SetDefault("height", 400)
	v.SetDefault("margin", 30)
	v.SetDefault("hide_h", false)
	v.SetDefault("readers", 3)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the config file, if there is one, and fills out cfg.
func loadConfig(v *viper.Viper, cfgFile string, cfg *Config) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	switch cfg.Format {
	case fmtJSON, fmtYAML, fmtText:
	default:
		return fmt.Errorf("unknown format %q, want json, yaml or text", cfg.Format)
	}
	return nil
}
