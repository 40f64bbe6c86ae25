package main

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vdobler/gnssdist/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "gnssdist",
	Short: "Elevation distribution plots of GNSS statistics",
	Long: `gnssdist reads a table of per elevation bin statistics (CSV or XLSX)
and draws one bar panel per bin column, one figure per constellation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := log.ParseLevel(viper.GetString("log_level"))
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "config file (default ./gnssdist.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("config", pf.Lookup("config"))
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("cannot load .env: %v", err)
	}

	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gnssdist")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/gnssdist")
	}

	viper.SetEnvPrefix("GNSSDIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using config file %s", viper.ConfigFileUsed())
	}
}
