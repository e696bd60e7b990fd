// Package config loads optional default overrides for gmsbench's thread
// count and trial count from a config file and the environment, via
// viper, so operators can pin defaults without repeating flags on every
// invocation.
package config

import (
	"github.com/spf13/viper"
)

// Defaults holds the subset of gmsbench's flags a config file or the
// environment may override the hard-coded zero-value defaults for.
// Explicit command-line flags always win over these.
type Defaults struct {
	Threads   int `mapstructure:"threads"`
	NumTrials int `mapstructure:"num_trials"`
}

// Load reads configPath (if non-empty) or the conventional
// "./gmsbench.yaml" / "/etc/gmsbench/config.yaml" locations, then layers
// GMSBENCH_-prefixed environment variables on top. Finding no file in
// the conventional locations is not an error: Load then returns the
// built-in defaults (threads 0, num_trials 1) with any environment
// overrides applied. An explicit configPath that cannot be read is
// returned as an error.
func Load(configPath string) (Defaults, error) {
	v := viper.New()
	v.SetDefault("threads", 0)
	v.SetDefault("num_trials", 1)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("gmsbench")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/gmsbench")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Defaults{}, err
		}
	}

	v.SetEnvPrefix("GMSBENCH")
	v.AutomaticEnv()

	var d Defaults
	if err := v.Unmarshal(&d); err != nil {
		return Defaults{}, err
	}
	return d, nil
}
