package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// TemplateGenerator handles creation of an example configuration file
type TemplateGenerator struct {
	OutputDir string
}

// NewTemplateGenerator creates a new template generator
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{
		OutputDir: ".",
	}
}

// Generate writes an example tqr.yaml into the output directory. An existing
// file is left untouched so a real config cannot be clobbered.
func (tg *TemplateGenerator) Generate() error {
	path := filepath.Join(tg.OutputDir, DefaultConfigFile)

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("'%s' already exists, refusing to overwrite", path)
	}

	if err := os.WriteFile(path, []byte(exampleTemplate), 0644); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	fmt.Printf("Created %s\n", path)
	fmt.Printf("Edit the term dates and report file name, then run: tqr run\n")
	return nil
}

const exampleTemplate = `# tqr configuration
#
# Term boundaries, MM/DD/YYYY.
term:
  start: "09/27/2024"
  end: "11/01/2024"

# UTF-8 CSV report exported from the ticketing system, present in the
# working directory before the run.
report: "tstat-report.csv"

# External report CLI. The script path is resolved relative to the
# working directory.
tool:
  program: "python3"
  script: "cli.py"

runner:
  # Keep going when a query exits non-zero.
  stop_on_failure: false
  # Skip the keypress pause between queries.
  auto_confirm: false
  verbose: false

# Queries run in the order listed. head caps the number of result rows;
# omit it to show everything.
queries:
  - name: perweek
  - name: perroom
    head: 30
  - name: perbuilding
    head: 30
  - name: perrequestor
    head: 30
  - name: perdiagnosis
`
