// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// RootSettingsFile is the default settings file, read from the working
// directory and overridden per-run with the --settings flag
const RootSettingsFile = "settings.yaml"

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command line
type Config struct {
	// K is the k-mer length used to build de Bruijn graphs
	K int `mapstructure:"k"`

	// Workers is the number of goroutines that accumulate partial
	// graphs before the merge; 1 keeps the build sequential
	Workers int `mapstructure:"workers"`

	// Method is the correlation statistic for co-occurrence networks:
	// pearson, spearman or both
	Method string `mapstructure:"method"`

	// Threshold is the minimum |correlation| for a network edge
	Threshold float64 `mapstructure:"threshold"`

	// NumNodes caps the node count of rendered co-occurrence networks;
	// 0 disables the cap
	NumNodes int `mapstructure:"num-nodes"`
}

// New returns a new Config struct populated by Viper settings (either
// from the local settings.yaml) and/or command line arguments
func New() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}

// Load merges the YAML settings file at path into Viper. A missing file
// is not an error: flag values and defaults still apply.
func Load(path string) {
	viper.SetConfigFile(path)

	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("failed to read settings file %s: %v", path, err)
		}
	}
}
