package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	prefix = "CRAFTING_TOOLS"

	LogLevel = "log_level"
	SeedFile = "seed"
	CacheTTL = "cache_ttl"

	defaultLogLevel = "info"
)

// Config is the resolved configuration of the command line tools.
type Config struct {
	LogLevel string
	SeedFile string
	// CacheTTL of zero disables the repository cache.
	CacheTTL time.Duration
}

// Load reads configFile (optional), the CRAFTING_TOOLS_* environment and the
// flags of cmd. Flags set on the command line win.
func Load(cmd *cobra.Command, configFile string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()
	v.SetDefault(LogLevel, defaultLogLevel)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", configFile, err)
		}
	}

	if err := bindFlags(cmd, v); err != nil {
		return Config{}, err
	}

	return Config{
		LogLevel: v.GetString(LogLevel),
		SeedFile: v.GetString(SeedFile),
		CacheTTL: v.GetDuration(CacheTTL),
	}, nil
}

// bindFlags maps flag "cache-ttl" to key "cache_ttl" and env CRAFTING_TOOLS_CACHE_TTL.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindEnv(key, prefix+"_"+strings.ToUpper(key)); err != nil && bindErr == nil {
			bindErr = err
		}

		if f.Changed {
			v.Set(key, f.Value.String())
		}
	})
	return bindErr
}
