package logger

import (
	"fmt"
	"io"
	"sort"
)

func NewReport() *Report {
	return &Report{
		ExitCodes: make(map[int]int),
		Errors:    make(map[string]int),
	}
}

// Report aggregates run log entries into a per-session summary.
type Report struct {
	Runs     int
	Failures int

	// ExitCodes counts runs per child exit code.
	ExitCodes map[int]int
	// Errors counts runs per error message.
	Errors map[string]int
}

func (r *Report) Update(entry *RunEntry) {
	r.Runs++
	r.ExitCodes[entry.ExitCode]++

	if entry.Error != "" {
		r.Failures++
		r.Errors[entry.Error]++
	}
}

// WriteText renders the report in a stable, diff-friendly order.
func (r *Report) WriteText(w io.Writer) {
	fmt.Fprintf(w, "Runs: %d\n", r.Runs)
	fmt.Fprintf(w, "Failures: %d\n", r.Failures)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	codes := make([]int, 0, len(r.ExitCodes))
	for code := range r.ExitCodes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Fprintf(w, "  %d: %d\n", code, r.ExitCodes[code])
	}

	if len(r.Errors) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Errors:")
	messages := make([]string, 0, len(r.Errors))
	for message := range r.Errors {
		messages = append(messages, message)
	}
	sort.Strings(messages)
	for _, message := range messages {
		fmt.Fprintf(w, "  %d: %s\n", r.Errors[message], message)
	}
}
