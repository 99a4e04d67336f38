package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/taxaudit/assessment-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(assessment *domain.Assessment) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.Assessment) ([]byte, error)
}

func (ff FormatterFunc) Format(a *domain.Assessment) ([]byte, error) { return ff.F(a) }
func (ff FormatterFunc) Name() string                                { return ff.ID }

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, assessment *domain.Assessment, dir, ext string) (string, error) {
	data, err := f.Format(assessment)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("assessment_%s_%s.%s", assessment.TaxYear, time.Now().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// Extension returns the file extension used for a formatter's output.
func Extension(name string) string {
	switch name {
	case "json", "csv":
		return name
	default:
		return "txt"
	}
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVSummarizer{},
}

// Get returns the formatter with the given name, or false when unknown.
func Get(name string) (Formatter, bool) {
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// Names lists the registered formatter names.
func Names() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	return names
}
