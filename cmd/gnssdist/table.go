package main

import (
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vdobler/gnssdist"
)

var tableOpts gnssdist.ReadOptions

var tableCmd = &cobra.Command{
	Use:   "table FILE",
	Short: "Print a statistics table as read by plot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := gnssdist.ReadTableFile(args[0], tableOpts)
		if err != nil {
			return err
		}
		tbl.Print(cmd.OutOrStdout())
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export FILE [OUT]",
	Short: "Convert a CSV statistics table to XLSX",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := gnssdist.ReadTableFile(args[0], tableOpts)
		if err != nil {
			return err
		}
		out := strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".xlsx"
		if len(args) == 2 {
			out = args[1]
		}
		if out == args[0] {
			return fmt.Errorf("refusing to overwrite %s", out)
		}
		if err := gnssdist.WriteXLSX(tbl, out, tableOpts.Sheet); err != nil {
			return err
		}
		log.Infof("wrote %s", out)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{tableCmd, exportCmd} {
		c.Flags().StringVar(&tableOpts.Sheet, "sheet", "", "sheet to read or write")
		c.Flags().StringVar(&tableOpts.Charset, "charset", "utf-8", "charset of a CSV table")
		rootCmd.AddCommand(c)
	}
}
