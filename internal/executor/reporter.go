package executor

import (
	"fmt"
	"io"
	"time"
)

// Reporter receives sequencing events for user-facing output. The subprocess
// output itself goes directly to the inherited stdout/stderr and never passes
// through the reporter.
type Reporter interface {
	ReportStart(totalCommands int)
	ReportCommandStart(result CommandResult, commandIndex int)
	ReportCommandSuccess(result CommandResult, commandIndex int)
	ReportCommandFailure(result CommandResult, commandIndex int)
	ReportRunComplete(status RunStatus)
}

// ConsoleReporter implements Reporter for console output
type ConsoleReporter struct {
	writer  io.Writer
	verbose bool
}

// NewConsoleReporter creates a new console reporter
func NewConsoleReporter(writer io.Writer, verbose bool) *ConsoleReporter {
	return &ConsoleReporter{
		writer:  writer,
		verbose: verbose,
	}
}

// ReportStart reports the beginning of a run
func (r *ConsoleReporter) ReportStart(totalCommands int) {
	fmt.Fprintf(r.writer, "Running %d report quer%s\n", totalCommands, pluralY(totalCommands))
	if r.verbose {
		fmt.Fprintf(r.writer, "Verbose mode enabled\n")
	}
	fmt.Fprintln(r.writer)
}

// ReportCommandStart echoes the command line about to run, for audit.
func (r *ConsoleReporter) ReportCommandStart(result CommandResult, commandIndex int) {
	fmt.Fprintf(r.writer, "[%d] %s\n", commandIndex+1, result.Command.CommandLine())
}

// ReportCommandSuccess reports successful command completion
func (r *ConsoleReporter) ReportCommandSuccess(result CommandResult, commandIndex int) {
	fmt.Fprintf(r.writer, "[%d] ✓ '%s' (%s)\n",
		commandIndex+1, result.Command.Name, formatDuration(result.Duration))
}

// ReportCommandFailure reports command failure
func (r *ConsoleReporter) ReportCommandFailure(result CommandResult, commandIndex int) {
	fmt.Fprintf(r.writer, "[%d] ✗ '%s' failed (%s)\n",
		commandIndex+1, result.Command.Name, formatDuration(result.Duration))

	if result.ExitCode != 0 {
		fmt.Fprintf(r.writer, "    Exit code: %d\n", result.ExitCode)
	}
	if result.Error != "" {
		fmt.Fprintf(r.writer, "    Error: %s\n", result.Error)
	}
	if r.verbose {
		fmt.Fprintf(r.writer, "    Command: %s\n", result.Command.CommandLine())
	}
}

// ReportRunComplete reports overall run completion. Emitted exactly once per
// run, after the final command.
func (r *ConsoleReporter) ReportRunComplete(status RunStatus) {
	fmt.Fprintln(r.writer)

	switch status.State {
	case StateSuccess:
		if status.FailedCount > 0 {
			fmt.Fprintf(r.writer, "All queries finished (%d/%d, %d failed)\n",
				status.CompletedCount, status.TotalCount, status.FailedCount)
		} else {
			fmt.Fprintf(r.writer, "All queries finished (%d/%d)\n",
				status.CompletedCount, status.TotalCount)
		}
	case StateFailed:
		fmt.Fprintf(r.writer, "Run stopped at query %d of %d\n",
			status.CompletedCount, status.TotalCount)
		if status.LastError != "" && r.verbose {
			fmt.Fprintf(r.writer, "Error details: %s\n", status.LastError)
		}
	case StateAborted:
		fmt.Fprintf(r.writer, "Run aborted (%d/%d completed)\n",
			status.CompletedCount, status.TotalCount)
	default:
		fmt.Fprintf(r.writer, "Run stopped (%d/%d completed)\n",
			status.CompletedCount, status.TotalCount)
	}
}

// formatDuration formats a duration for human-readable output
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.2fμs", float64(d.Nanoseconds())/1000.0)
	} else if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d.Nanoseconds())/1000000.0)
	} else if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fm", d.Minutes())
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
