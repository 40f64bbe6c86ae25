// Package config holds the gnssdist command line configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vdobler/gnssdist"
)

// Config is the configuration of one plot run. Values come from flags,
// GNSSDIST_* environment variables and an optional YAML file, in that
// order of precedence.
type Config struct {
	// Table is the CSV or XLSX file holding the aggregated statistics.
	Table string `mapstructure:"table"`
	// Sheet of an XLSX table; the first one if empty.
	Sheet string `mapstructure:"sheet"`
	// Charset of a CSV table: utf-8, gbk or gb18030.
	Charset string `mapstructure:"charset"`

	Dir     string `mapstructure:"dir"`
	PosFile string `mapstructure:"pos_file"`
	Date    string `mapstructure:"date"`
	Obs     string `mapstructure:"obs"`

	Show     bool   `mapstructure:"show"`
	LogLevel string `mapstructure:"log_level"`

	Constellations []string `mapstructure:"constellations"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Charset:        "utf-8",
		Dir:            ".",
		Obs:            string(gnssdist.CN0),
		LogLevel:       "info",
		Constellations: append([]string(nil), gnssdist.DefaultConstellations...),
	}
}

// SetDefaults registers the defaults with viper.
func SetDefaults() {
	defaults := Default()
	viper.SetDefault("sheet", defaults.Sheet)
	viper.SetDefault("charset", defaults.Charset)
	viper.SetDefault("dir", defaults.Dir)
	viper.SetDefault("obs", defaults.Obs)
	viper.SetDefault("show", defaults.Show)
	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("constellations", defaults.Constellations)
}

// Load unmarshals the current viper state and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings needed for a plot run.
func (c *Config) Validate() error {
	if c.Table == "" {
		return fmt.Errorf("config: no table given")
	}
	if c.PosFile == "" {
		return fmt.Errorf("config: no pos_file given")
	}
	if _, err := gnssdist.ParseObsName(c.Obs); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ObsName is the validated observable.
func (c *Config) ObsName() gnssdist.ObsName {
	obs, err := gnssdist.ParseObsName(c.Obs)
	if err != nil {
		return gnssdist.ObsName(c.Obs)
	}
	return obs
}

// Level is the log level, info if unparsable.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Context returns the plot context of the run.
func (c *Config) Context() gnssdist.Context {
	return gnssdist.Context{Dir: c.Dir, PosFile: c.PosFile, Date: c.Date}
}

// ReadOptions returns the options to read the table with.
func (c *Config) ReadOptions() gnssdist.ReadOptions {
	return gnssdist.ReadOptions{Charset: c.Charset, Sheet: c.Sheet}
}

// ConstellationList returns the configured constellations with a single
// comma separated entry split up, as produced by environment variables.
func (c *Config) ConstellationList() []string {
	var list []string
	for _, s := range c.Constellations {
		for _, part := range strings.Split(s, ",") {
			list = append(list, strings.ToUpper(strings.TrimSpace(part)))
		}
	}
	return gnssdist.Unique(list)
}
