package executor

import (
	"time"

	"github.com/tqr-cli/tqr/internal/plan"
)

type RunState int

const (
	StateReady RunState = iota
	StateRunning
	StateSuccess
	StateFailed
	StateAborted
)

func (s RunState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// CommandResult records one subprocess invocation. Output is not captured:
// the report tool writes straight to the inherited stdout/stderr.
type CommandResult struct {
	Command   plan.Command  `json:"command"`
	Success   bool          `json:"success"`
	ExitCode  int           `json:"exitCode"`
	Error     string        `json:"error,omitempty"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
}

type RunStatus struct {
	State          RunState        `json:"state"`
	CurrentCommand *plan.Command   `json:"currentCommand,omitempty"`
	CompletedCount int             `json:"completedCount"`
	FailedCount    int             `json:"failedCount"`
	TotalCount     int             `json:"totalCount"`
	Results        []CommandResult `json:"results"`
	LastError      string          `json:"lastError,omitempty"`
}
