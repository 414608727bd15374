package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ichabodcole/project-docs-scaffold-template/internal/reporting"
)

// ValidationFailedError indicates that the run completed and the report was
// written, but at least one skill has violations.
type ValidationFailedError struct {
	Violations int
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s)", e.Violations)
}

func main() {
	if err := execute(); err != nil {
		// The report already carries the details of a failed validation.
		var failed *ValidationFailedError
		if !errors.As(err, &failed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(reporting.ExitFailure)
	}
}
