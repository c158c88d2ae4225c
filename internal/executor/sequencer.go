// Package executor runs the report query plan one command at a time, pausing
// at the confirmation gate before each invocation.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tqr-cli/tqr/internal/gate"
	"github.com/tqr-cli/tqr/internal/plan"
)

// SequencerOptions configures a Sequencer. Zero values fall back to an auto
// gate, a console reporter on stdout, and the process's own stdio for the
// spawned report tool.
type SequencerOptions struct {
	Gate          gate.Gate
	Reporter      Reporter
	Logger        *logrus.Logger
	StopOnFailure bool
	Stdout        io.Writer
	Stderr        io.Writer
}

type Sequencer struct {
	mu            sync.RWMutex
	status        RunStatus
	gate          gate.Gate
	reporter      Reporter
	logger        *logrus.Logger
	stopOnFailure bool
	stdout        io.Writer
	stderr        io.Writer
}

func NewSequencer(opts SequencerOptions) *Sequencer {
	if opts.Gate == nil {
		opts.Gate = gate.NewAutoGate()
	}
	if opts.Reporter == nil {
		opts.Reporter = NewConsoleReporter(os.Stdout, false)
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
		opts.Logger.SetLevel(logrus.WarnLevel)
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	return &Sequencer{
		gate:          opts.Gate,
		reporter:      opts.Reporter,
		logger:        opts.Logger,
		stopOnFailure: opts.StopOnFailure,
		stdout:        opts.Stdout,
		stderr:        opts.Stderr,
		status: RunStatus{
			State:   StateReady,
			Results: make([]CommandResult, 0),
		},
	}
}

// Run executes the commands strictly in order. Before each command the gate
// is consulted exactly once; an abort decision ends the run cleanly. A
// failing command is reported and, unless stop-on-failure is set, the run
// continues with the next query. The completion message is emitted exactly
// once, whatever path the run takes.
func (s *Sequencer) Run(ctx context.Context, commands []plan.Command) error {
	if len(commands) == 0 {
		return fmt.Errorf("no queries to run")
	}

	s.mu.Lock()
	s.status = RunStatus{
		State:      StateReady,
		TotalCount: len(commands),
		Results:    make([]CommandResult, 0, len(commands)),
	}
	s.mu.Unlock()

	s.reporter.ReportStart(len(commands))

	for i, cmd := range commands {
		select {
		case <-ctx.Done():
			return s.finish(StateAborted, nil)
		default:
		}

		prompt := fmt.Sprintf("Press any key to run the '%s' query (q to quit)... ", cmd.Name)
		decision, err := s.gate.Confirm(ctx, prompt)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return s.finish(StateAborted, nil)
			}
			return s.finish(StateAborted, fmt.Errorf("confirmation failed: %w", err))
		}
		if decision == gate.DecisionAbort {
			s.logger.WithField("query", cmd.Name).Info("run aborted at confirmation gate")
			return s.finish(StateAborted, nil)
		}

		s.updateCurrentCommand(&cmd)

		result := CommandResult{Command: cmd, StartTime: time.Now()}
		s.reporter.ReportCommandStart(result, i)

		result = s.runCommand(ctx, cmd, result)
		s.addResult(result)

		if result.Success {
			s.reporter.ReportCommandSuccess(result, i)
			continue
		}

		s.reporter.ReportCommandFailure(result, i)

		if s.stopOnFailure {
			cmdErr := &CommandError{
				CommandName:   cmd.Name,
				CommandLine:   cmd.CommandLine(),
				ExitCode:      result.ExitCode,
				OriginalError: errors.New(result.Error),
			}
			s.setLastError(cmdErr.Error())
			return s.finish(StateFailed, cmdErr)
		}

		s.logger.WithFields(logrus.Fields{
			"query":    cmd.Name,
			"exitCode": result.ExitCode,
		}).Warn("query failed, continuing with next query")
	}

	return s.finish(StateSuccess, nil)
}

func (s *Sequencer) runCommand(ctx context.Context, cmd plan.Command, result CommandResult) CommandResult {
	s.logger.WithFields(logrus.Fields{
		"query":   cmd.Name,
		"program": cmd.Program,
	}).Debug("starting report tool")

	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	// The report tool owns the screen while it runs; stdin stays with the
	// gate so the tool cannot swallow the next confirmation keypress.
	execCmd.Stdout = s.stdout
	execCmd.Stderr = s.stderr

	err := execCmd.Run()

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	if err != nil {
		result.Success = false
		result.Error = err.Error()
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		return result
	}

	result.Success = true
	result.ExitCode = 0
	return result
}

// finish records the terminal state and emits the single completion message.
func (s *Sequencer) finish(state RunState, err error) error {
	s.mu.Lock()
	s.status.State = state
	s.status.CurrentCommand = nil
	s.mu.Unlock()

	s.reporter.ReportRunComplete(s.GetStatus())
	return err
}

func (s *Sequencer) GetStatus() RunStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := s.status
	status.Results = make([]CommandResult, len(s.status.Results))
	copy(status.Results, s.status.Results)
	return status
}

func (s *Sequencer) updateCurrentCommand(cmd *plan.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.State = StateRunning
	s.status.CurrentCommand = cmd
}

func (s *Sequencer) addResult(result CommandResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Results = append(s.status.Results, result)
	s.status.CompletedCount++
	if !result.Success {
		s.status.FailedCount++
	}
}

func (s *Sequencer) setLastError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.LastError = msg
}
