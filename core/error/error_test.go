// File: error_test.go
// Title: Core Error Unit Tests
// Description: Tests for the structured Error type including creation,
//              wrapping, code and detail propagation, and the registry
//              error predicates.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial test suite

package error

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Expected message 'something failed', got %q", err.Error())
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Expected default code UNKNOWN, got %s", err.Code())
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Expected default severity medium, got %s", err.Severity())
	}
}

func TestNewf(t *testing.T) {
	err := Newf("alias %q already taken by %q", "co", "checkout")

	expected := `alias "co" already taken by "checkout"`
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestWithCode(t *testing.T) {
	tests := []struct {
		name             string
		code             Code
		expectedSeverity Severity
	}{
		{"Conflict code raises severity", CodeAliasConflict, SeverityHigh},
		{"Self alias code raises severity", CodeSelfAlias, SeverityHigh},
		{"Not found code lowers severity", CodeAliasNotFound, SeverityLow},
		{"Invalid config code lowers severity", CodeInvalidConfig, SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New("test").WithCode(tt.code)

			if err.Code() != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, err.Code())
			}

			if err.Severity() != tt.expectedSeverity {
				t.Errorf("Expected severity %s, got %s", tt.expectedSeverity, err.Severity())
			}
		})
	}
}

func TestWithCodeKeepsExplicitSeverity(t *testing.T) {
	err := New("test").WithSeverity(SeverityCritical).WithCode(CodeAliasNotFound)

	if err.Severity() != SeverityCritical {
		t.Errorf("Explicit severity should survive WithCode, got %s", err.Severity())
	}
}

func TestWrap(t *testing.T) {
	t.Run("Wrap nil returns nil", func(t *testing.T) {
		if Wrap(nil, "context") != nil {
			t.Error("Expected nil when wrapping nil error")
		}
	})

	t.Run("Wrap standard error", func(t *testing.T) {
		base := errors.New("io failure")
		wrapped := Wrap(base, "loading alias file")

		if wrapped.Error() != "loading alias file: io failure" {
			t.Errorf("Unexpected message: %q", wrapped.Error())
		}

		if !errors.Is(wrapped, base) {
			t.Error("errors.Is should find the wrapped cause")
		}
	})

	t.Run("Wrap preserves code and details", func(t *testing.T) {
		inner := New("alias conflict").
			WithCode(CodeAliasConflict).
			WithDetail("alias", "co")
		wrapped := Wrap(inner, "registering command")

		if wrapped.Code() != CodeAliasConflict {
			t.Errorf("Expected preserved code ALIAS_CONFLICT, got %s", wrapped.Code())
		}

		if wrapped.Detail("alias") != "co" {
			t.Errorf("Expected preserved detail, got %v", wrapped.Detail("alias"))
		}
	})
}

func TestDetailsCopy(t *testing.T) {
	err := New("test").WithDetail("alias", "co")

	details := err.Details()
	details["alias"] = "mutated"

	if err.Detail("alias") != "co" {
		t.Error("Mutating the returned details map must not affect the error")
	}
}

func TestHasCode(t *testing.T) {
	inner := New("conflict").WithCode(CodeAliasConflict)
	outer := Wrap(inner, "outer")

	if !HasCode(outer, CodeAliasConflict) {
		t.Error("HasCode should find code in the chain")
	}

	if HasCode(outer, CodeMissingConfig) {
		t.Error("HasCode should not report a code that is absent")
	}

	if HasCode(nil, CodeAliasConflict) {
		t.Error("HasCode on nil must be false")
	}

	if HasCode(fmt.Errorf("plain"), CodeAliasConflict) {
		t.Error("HasCode on a plain error must be false")
	}
}

func TestPredicates(t *testing.T) {
	conflict := New("taken").WithCode(CodeAliasConflict)
	selfAlias := New("self").WithCode(CodeSelfAlias)
	notFound := New("missing").WithCode(CodeAliasNotFound)

	if !IsConflict(conflict) || !IsConflict(selfAlias) {
		t.Error("IsConflict should match both conflict and self-alias codes")
	}

	if IsConflict(notFound) {
		t.Error("IsConflict should not match not-found errors")
	}

	if !IsNotFound(notFound) {
		t.Error("IsNotFound should match the not-found code")
	}

	if IsNotFound(conflict) {
		t.Error("IsNotFound should not match conflict errors")
	}
}

func TestString(t *testing.T) {
	err := New("alias taken").
		WithCode(CodeAliasConflict).
		WithOperation("AddAlias").
		WithDetail("alias", "co")

	s := err.String()
	for _, want := range []string{"alias taken", "ALIAS_CONFLICT", "AddAlias", "alias=co"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}
