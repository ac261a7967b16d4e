package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// validIdentifierRe matches the table and column names the planner and the
// seeder quote without escaping.
var validIdentifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// isValidIdentifier checks if the string is a valid SQL identifier.
func isValidIdentifier(s string) bool {
	return s != "" && len(s) <= 64 && validIdentifierRe.MatchString(s)
}

// ValidationError represents a problem with an inferred table.
type ValidationError struct {
	Table   string
	Column  string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s.%s: %s", e.Table, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Table, e.Message)
}

// ValidationResult holds the results of table validation.
type ValidationResult struct {
	Errors   []*ValidationError
	Warnings []*ValidationError
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Err returns the errors joined into one, or nil.
func (r *ValidationResult) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return fmt.Errorf("schema: invalid tables:\n%s", r)
}

// String returns a human-readable summary of the validation result.
func (r *ValidationResult) String() string {
	var sb strings.Builder
	if len(r.Errors) > 0 {
		sb.WriteString("Errors:\n")
		for _, e := range r.Errors {
			sb.WriteString("  - ")
			sb.WriteString(e.Error())
			sb.WriteString("\n")
		}
	}
	if len(r.Warnings) > 0 {
		sb.WriteString("Warnings:\n")
		for _, w := range r.Warnings {
			sb.WriteString("  - ")
			sb.WriteString(w.Error())
			sb.WriteString("\n")
		}
	}
	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}
	return sb.String()
}

// ValidateTable validates a single table.
func ValidateTable(t *Table) *ValidationResult {
	result := &ValidationResult{}
	if !isValidIdentifier(t.Name) {
		result.Errors = append(result.Errors, &ValidationError{
			Table:   t.Name,
			Message: "invalid table name",
		})
	}
	if len(t.Columns) == 0 {
		result.Warnings = append(result.Warnings, &ValidationError{
			Table:   t.Name,
			Message: "table has no columns and is skipped",
		})
	}
	if len(t.Rows) == 0 {
		result.Warnings = append(result.Warnings, &ValidationError{
			Table:   t.Name,
			Message: "table has no rows",
		})
	}

	colNames := make(map[string]bool)
	for _, c := range t.Columns {
		if !isValidIdentifier(c.Name) {
			result.Errors = append(result.Errors, &ValidationError{
				Table:   t.Name,
				Column:  c.Name,
				Message: "invalid column name",
			})
		}
		if colNames[c.Name] {
			result.Errors = append(result.Errors, &ValidationError{
				Table:   t.Name,
				Column:  c.Name,
				Message: "duplicate column name",
			})
		}
		colNames[c.Name] = true
		switch {
		case c.Type == TypeNull:
			result.Warnings = append(result.Warnings, &ValidationError{
				Table:   t.Name,
				Column:  c.Name,
				Message: "column only holds null and is stored as text",
			})
		case c.Mixed:
			result.Warnings = append(result.Warnings, &ValidationError{
				Table:   t.Name,
				Column:  c.Name,
				Message: "column holds values of mixed types and is stored as text",
			})
		}
	}
	return result
}

// ValidateTables validates all tables of a document.
func ValidateTables(tables []*Table) *ValidationResult {
	result := &ValidationResult{}
	tableNames := make(map[string]bool)
	for _, t := range tables {
		if tableNames[t.Name] {
			result.Errors = append(result.Errors, &ValidationError{
				Table:   t.Name,
				Message: "duplicate table name",
			})
		}
		tableNames[t.Name] = true

		tableResult := ValidateTable(t)
		result.Errors = append(result.Errors, tableResult.Errors...)
		result.Warnings = append(result.Warnings, tableResult.Warnings...)
	}
	return result
}
