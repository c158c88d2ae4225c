package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Term:   Term{Start: "09/27/2024", End: "11/01/2024"},
		Report: "tstat-report-11.csv",
		Tool:   Tool{Program: "python3", Script: "cli.py"},
		Queries: []Query{
			{Name: "perweek"},
			{Name: "perroom", Head: 30},
		},
	}
}

func TestConfig_Validate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad start date",
			mutate:  func(c *Config) { c.Term.Start = "2024-09-27" },
			wantErr: "term.start",
		},
		{
			name:    "missing end date",
			mutate:  func(c *Config) { c.Term.End = "" },
			wantErr: "term.end",
		},
		{
			name:    "impossible date",
			mutate:  func(c *Config) { c.Term.Start = "13/45/2024" },
			wantErr: "MM/DD/YYYY",
		},
		{
			name:    "missing report",
			mutate:  func(c *Config) { c.Report = "" },
			wantErr: "report",
		},
		{
			name:    "non-csv report",
			mutate:  func(c *Config) { c.Report = "tickets.xlsx" },
			wantErr: "not a CSV",
		},
		{
			name:    "missing tool program",
			mutate:  func(c *Config) { c.Tool.Program = "" },
			wantErr: "tool.program",
		},
		{
			name:    "no queries",
			mutate:  func(c *Config) { c.Queries = nil },
			wantErr: "at least one query",
		},
		{
			name:    "unknown query",
			mutate:  func(c *Config) { c.Queries = []Query{{Name: "perplanet"}} },
			wantErr: "unknown query 'perplanet'",
		},
		{
			name:    "negative head",
			mutate:  func(c *Config) { c.Queries = []Query{{Name: "perweek", Head: -1}} },
			wantErr: "head limit must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Term.Start = "bad"
	cfg.Report = "notes.txt"
	cfg.Queries = []Query{{Name: "nope"}}

	err := cfg.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
	assert.Contains(t, err.Error(), "multiple validation errors")
}

func TestConfig_Validate_Nil(t *testing.T) {
	var cfg *Config
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be nil")
}

func TestConfig_Validate_UppercaseExtensionAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Report = "TSTAT-REPORT.CSV"
	assert.NoError(t, cfg.Validate())
}
