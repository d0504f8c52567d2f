package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnsafeCode is returned when a pictograph code cannot be used as a file
// name stem without escaping the output directory.
var ErrUnsafeCode = errors.New("unsafe pictograph code")

const reservedChars = `/\<>:"|?*`

// ValidateCode rejects codes that would produce a file outside the output
// directory or a name most file systems refuse. An empty code is accepted;
// emptiness is the caller's decision.
func ValidateCode(code string) error {
	if code == "." || code == ".." || strings.Contains(code, "..") {
		return fmt.Errorf("%w %q: must not contain '..'", ErrUnsafeCode, code)
	}

	for _, r := range code {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w %q: contains control character %U", ErrUnsafeCode, code, r)
		}
		if strings.ContainsRune(reservedChars, r) {
			return fmt.Errorf("%w %q: contains reserved character %q", ErrUnsafeCode, code, r)
		}
	}

	return nil
}

// Validator exposes the package checks as methods for dependency injection.
type Validator struct{}

func (Validator) ValidateOutputDir(dir string) error { return ValidateOutputDir(dir) }

func (Validator) ValidateCode(code string) error { return ValidateCode(code) }
