package cmd

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"srcfeed/core/invoke"
	"srcfeed/core/logger"
)

var payloadFile string

// runCmd feeds one payload to the toolchain and waits for it to exit.
var runCmd = &cobra.Command{
	Use:   "run [PAYLOAD]",
	Short: "Feed one payload to the toolchain and wait for it to exit.",
	Long: `Spawns the configured toolchain command once, writes the payload to its
standard input and blocks until it exits. The payload is the positional
argument when given, otherwise the configured default.

Child stdout/stderr pass through untouched and failures propagate as the
exit status of srcfeed itself.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		payload := invoke.Payload(args, cfg.DefaultPayload)
		if payloadFile != "" {
			contents, err := os.ReadFile(payloadFile)
			if err != nil {
				return err
			}
			payload = string(contents)
		}

		inv, err := invoke.New(cfg.Command)
		if err != nil {
			return err
		}
		inv.Stdout = cmd.OutOrStdout()
		inv.Stderr = cmd.ErrOrStderr()

		logFd, err := cfg.OpenRunLog()
		if err != nil {
			return err
		}
		defer logFd.Close()
		recorder := logger.NewJsonLinesLogRecorder(logFd)

		return feedOnce(cmd.Context(), inv, recorder, payload)
	},
}

// feedOnce spawns one child for the payload and appends a run log entry.
// Recording problems are reported but never mask the run result.
func feedOnce(ctx context.Context, inv *invoke.Invoker, recorder *logger.Logger, payload string) error {
	start := time.Now()
	runErr := inv.Run(ctx, payload)

	entry := &logger.RunEntry{
		Argv:           inv.Argv,
		Payload:        payload,
		DurationMillis: time.Since(start).Milliseconds(),
		ExitCode:       invoke.ExitCode(runErr),
	}
	if runErr != nil {
		entry.Error = runErr.Error()
	}
	if err := recorder.LogRun(entry); err != nil {
		log.Printf("Error recording run: %v", err)
	}

	return runErr
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&payloadFile, "file", "f", "", "Read the payload from a file instead.")
}
