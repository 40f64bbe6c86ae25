package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vdobler/gnssdist"
	"github.com/vdobler/gnssdist/display"
	"github.com/vdobler/gnssdist/internal/config"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the elevation distribution of CN0 or PRres",
	Example: `  gnssdist plot --table cn0.xlsx --dir out --pos-file site-0419.pos --date 2019-04-19 --obs CN0
  gnssdist plot --table prres.csv --charset gbk --pos-file site.pos --obs PRres --show`,
	Args: cobra.NoArgs,
	RunE: runPlot,
}

func init() {
	f := plotCmd.Flags()
	f.StringP("table", "t", "", "CSV or XLSX file with one row per elevation bin")
	f.String("sheet", "", "sheet of an XLSX table (default first sheet)")
	f.String("charset", "utf-8", "charset of a CSV table: utf-8, gbk, gb18030")
	f.StringP("dir", "d", ".", "output directory, figures go to DIR/png")
	f.String("pos-file", "", "name of the source position file")
	f.String("date", "", "survey date shown in the titles")
	f.StringP("obs", "o", "CN0", "observable: CN0 or PRres")
	f.Bool("show", false, "show the figures in a window after saving")
	f.StringSlice("constellations", gnssdist.DefaultConstellations, "constellation column prefixes in plotting order")

	for key, flag := range map[string]string{
		"table":          "table",
		"sheet":          "sheet",
		"charset":        "charset",
		"dir":            "dir",
		"pos_file":       "pos-file",
		"date":           "date",
		"obs":            "obs",
		"show":           "show",
		"constellations": "constellations",
	} {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}

	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	tbl, err := gnssdist.ReadTableFile(cfg.Table, cfg.ReadOptions())
	if err != nil {
		return err
	}
	log.Infof("read %s: %d elevation bins, %d columns", cfg.Table, tbl.N(), len(tbl.FieldNames()))

	pl := &gnssdist.Plotter{
		Constellations: cfg.ConstellationList(),
		Viewer:         display.Window{},
		Log:            log.StandardLogger(),
	}
	files, err := pl.Plot(cfg.Context(), tbl, cfg.ObsName(), cfg.Show)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Warnf("no column of %v found in %s", pl.Constellations, cfg.Table)
	}
	for _, name := range files {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
