package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/juju/ratelimit"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"srcfeed/core/invoke"
	"srcfeed/core/logger"
)

var maxRate float64

var (
	colorOK   = color.New(color.FgGreen, color.Bold)
	colorFail = color.New(color.FgRed, color.Bold)
)

// replCmd feeds payloads to the toolchain in a loop, one per line.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Feed payloads to the toolchain in a loop, one per line.",
	Long: `Reads lines and feeds each one to a fresh toolchain process as its stdin
payload. The line terminator is stripped and nothing is appended, so each
line arrives at the child exactly as typed.

Stdin doesn't have to be a terminal; piping a file of snippets through the
loop works too.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
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

		isTerminal := term.IsTerminal(int(os.Stdin.Fd()))

		rlCfg := &readline.Config{
			Prompt: "feed> ",
			Stdin:  readline.NewCancelableStdin(os.Stdin),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
			FuncIsTerminal: func() bool {
				return isTerminal
			},
		}
		if err := rlCfg.Init(); err != nil {
			return err
		}
		rl, err := readline.NewEx(rlCfg)
		if err != nil {
			return err
		}
		defer rl.Close()

		// Pacing so piping a big snippet file doesn't fork-bomb the machine.
		var bucket *ratelimit.Bucket
		if maxRate > 0 {
			bucket = ratelimit.NewBucketWithRate(maxRate, 1)
		}

		for {
			line, err := rl.Readline()
			switch {
			case err == readline.ErrInterrupt:
				continue
			case err == io.EOF:
				return nil
			case err != nil:
				return err
			}
			if line == "" {
				continue
			}

			if bucket != nil {
				bucket.Wait(1)
			}

			runErr := feedOnce(cmd.Context(), inv, recorder, line)
			if runErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "[%s]\n", colorFail.Sprintf("fail: %v", runErr))
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "[%s]\n", colorOK.Sprint("ok"))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Float64Var(&maxRate, "max-rate", 0, "Maximum child spawns per second (0 = unpaced).")
}
