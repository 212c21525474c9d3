package logger

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []*RunEntry {
	argv := []string{"node", "dist/main.js"}
	return []*RunEntry{
		{TimestampMicros: 1700000000000000, Argv: argv, Payload: "42", DurationMillis: 12, ExitCode: 0},
		{TimestampMicros: 1700000001000000, Argv: argv, Payload: "1+1", DurationMillis: 9, ExitCode: 0},
		{TimestampMicros: 1700000002000000, Argv: argv, Payload: "fn(", DurationMillis: 15, ExitCode: 1, Error: "exit status 1"},
		{TimestampMicros: 1700000003000000, Argv: argv, Payload: "42", ExitCode: -1, Error: `exec: "node": executable file not found in $PATH`},
	}
}

func TestJsonLinesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	recorder := NewJsonLinesLogRecorder(&buf)

	for _, entry := range sampleEntries() {
		require.NoError(t, recorder.LogRun(entry))
	}

	// One object per line.
	assert.Equal(t, 4, strings.Count(buf.String(), "\n"))

	var got []*RunEntry
	require.NoError(t, ReadJSONLinesLog(&buf, func(entry *RunEntry) {
		got = append(got, entry)
	}))

	if diff := cmp.Diff(sampleEntries(), got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLogRunStampsMissingTimestamp(t *testing.T) {
	var got *RunEntry
	l := &Logger{Record: func(entry *RunEntry) error {
		got = entry
		return nil
	}}

	require.NoError(t, l.LogRun(&RunEntry{Payload: "42"}))

	assert.NotZero(t, got.TimestampMicros)
}

func TestRunEntryString(t *testing.T) {
	entry := sampleEntries()[0]

	assert.Equal(t,
		`2023-11-14T22:13:20Z exit=0 12ms argv="node dist/main.js" payload="42"`,
		entry.String())
}

func TestReportUpdate(t *testing.T) {
	report := NewReport()
	for _, entry := range sampleEntries() {
		report.Update(entry)
	}

	want := &Report{
		Runs:      4,
		Failures:  2,
		ExitCodes: map[int]int{-1: 1, 0: 2, 1: 1},
		Errors: map[string]int{
			"exit status 1": 1,
			`exec: "node": executable file not found in $PATH`: 1,
		},
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestReportGolden(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	report := NewReport()
	for _, entry := range sampleEntries() {
		report.Update(entry)
	}

	var buf bytes.Buffer
	report.WriteText(&buf)

	g.Assert(t, "report", buf.Bytes())
}
