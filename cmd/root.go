package cmd

import (
	"github.com/spf13/cobra"
	"srcfeed/core/config"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	return config.Load(cfgPath)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "srcfeed",
	Short: "Feed source payloads to a toolchain process.",
	Long: `A developer harness that pipes source snippets to a compiler build
(by default "node dist/main.js") over standard input.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
