// Package plan turns a validated configuration into the ordered list of
// report tool invocations the sequencer will run.
package plan

import (
	"strconv"
	"strings"

	"github.com/tqr-cli/tqr/internal/config"
)

// Command is one invocation of the external report tool: a program plus an
// ordered argument vector. Arguments are passed to the process as-is, never
// through a shell.
type Command struct {
	Name    string
	Program string
	Args    []string
}

// CommandLine renders the command for display. It is for audit output only;
// execution always uses Program and Args directly.
func (c Command) CommandLine() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}

// Build produces one command per configured query, in configuration order.
// Each command shares the base arguments (script, term boundaries, report
// file) and appends the query selector plus, when set, the head limit.
func Build(cfg *config.Config) []Command {
	commands := make([]Command, 0, len(cfg.Queries))

	for _, q := range cfg.Queries {
		args := baseArgs(cfg)
		args = append(args, "-q", q.Name)
		if q.Head > 0 {
			args = append(args, "--head", strconv.Itoa(q.Head))
		}

		commands = append(commands, Command{
			Name:    q.Name,
			Program: cfg.Tool.Program,
			Args:    args,
		})
	}

	return commands
}

func baseArgs(cfg *config.Config) []string {
	var args []string
	if cfg.Tool.Script != "" {
		args = append(args, cfg.Tool.Script)
	}
	return append(args,
		"-t", cfg.Term.Start,
		"-e", cfg.Term.End,
		"-l", cfg.Report,
	)
}
