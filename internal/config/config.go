package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// DateFormat is the term boundary date layout accepted by the report tool.
const DateFormat = "01/02/2006"

// KnownQueries lists the query identifiers the report tool understands.
var KnownQueries = []string{"perweek", "perroom", "perbuilding", "perrequestor", "perdiagnosis"}

// Term bounds the academic period the report queries aggregate over.
// Dates are MM/DD/YYYY strings, passed through to the report tool verbatim.
type Term struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

// Tool identifies the external report CLI. Program is the interpreter or
// binary; Script, when set, is prepended to the argument list.
type Tool struct {
	Program string `mapstructure:"program"`
	Script  string `mapstructure:"script"`
}

// Query names a report computation and an optional head limit capping the
// number of result rows. Head of zero means no limit flag is passed.
type Query struct {
	Name string `mapstructure:"name"`
	Head int    `mapstructure:"head"`
}

// Runner controls sequencing behavior.
type Runner struct {
	StopOnFailure bool `mapstructure:"stop_on_failure"`
	AutoConfirm   bool `mapstructure:"auto_confirm"`
	Verbose       bool `mapstructure:"verbose"`
}

type Config struct {
	Term    Term    `mapstructure:"term"`
	Report  string  `mapstructure:"report"`
	Tool    Tool    `mapstructure:"tool"`
	Runner  Runner  `mapstructure:"runner"`
	Queries []Query `mapstructure:"queries"`
}

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

// Validate checks every field the sequencer depends on. All problems are
// collected before returning so a bad config surfaces in one pass.
func (c *Config) Validate() error {
	if c == nil {
		return ValidationError{Message: "configuration cannot be nil"}
	}

	var errors ValidationErrors

	if err := validateDate(c.Term.Start); err != nil {
		errors = append(errors, ValidationError{Field: "term.start", Value: c.Term.Start, Message: err.Error()})
	}
	if err := validateDate(c.Term.End); err != nil {
		errors = append(errors, ValidationError{Field: "term.end", Value: c.Term.End, Message: err.Error()})
	}

	if err := validateReport(c.Report); err != nil {
		errors = append(errors, ValidationError{Field: "report", Value: c.Report, Message: err.Error()})
	}

	if c.Tool.Program == "" {
		errors = append(errors, ValidationError{Field: "tool.program", Message: "tool program is required"})
	}

	if len(c.Queries) == 0 {
		errors = append(errors, ValidationError{Field: "queries", Message: "at least one query is required"})
	}
	for i, q := range c.Queries {
		if err := q.Validate(); err != nil {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("queries[%d]", i),
				Value:   q.Name,
				Message: err.Error(),
			})
		}
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (q Query) Validate() error {
	if q.Name == "" {
		return fmt.Errorf("query name is required")
	}
	if !slices.Contains(KnownQueries, q.Name) {
		return fmt.Errorf("unknown query '%s', must be one of: %s", q.Name, strings.Join(KnownQueries, ", "))
	}
	if q.Head < 0 {
		return fmt.Errorf("head limit must be positive, got %d", q.Head)
	}
	return nil
}

func validateDate(date string) error {
	if date == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse(DateFormat, date); err != nil {
		return fmt.Errorf("date '%s' is not in MM/DD/YYYY format", date)
	}
	return nil
}

func validateReport(report string) error {
	if report == "" {
		return fmt.Errorf("report file name is required")
	}
	if strings.ToLower(filepath.Ext(report)) != ".csv" {
		return fmt.Errorf("report file '%s' is not a CSV", report)
	}
	return nil
}
