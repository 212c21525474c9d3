package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"srcfeed/core/logger"
)

var logsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"log"},
	Short:   "Explore the recorded toolchain runs.",
}

// catCommand prints each recorded run as one line.
var catCommand = &cobra.Command{
	Use:   "cat",
	Short: "Print each recorded run as one line.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fd, err := cfg.ReadRunLog()
		if err != nil {
			return err
		}
		defer fd.Close()

		w := cmd.OutOrStdout()
		return logger.ReadJSONLinesLog(fd, func(entry *logger.RunEntry) {
			fmt.Fprintln(w, entry)
		})
	},
}

// reportCommand summarizes recorded runs.
var reportCommand = &cobra.Command{
	Use:   "report",
	Short: "Summarize recorded runs.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fd, err := cfg.ReadRunLog()
		if err != nil {
			return err
		}
		defer fd.Close()

		report := logger.NewReport()
		if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
			return err
		}
		report.WriteText(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(catCommand)
	logsCmd.AddCommand(reportCommand)
}
