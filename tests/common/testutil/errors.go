//go:build unit || e2e

package testutil

import (
	"testing"

	"office-hours/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// AssertIs checks err against a sentinel, following Mark as well as wrapping.
func AssertIs(t *testing.T, err, target error, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Error(t, err, msgAndArgs...) {
		return false
	}
	return assert.Truef(t, errs.Is(err, target), "expected %q to match %q", err, target)
}

// AssertKind checks the caller-facing kind of err.
func AssertKind(t *testing.T, err error, kind errs.Kind, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Error(t, err, msgAndArgs...) {
		return false
	}
	return assert.Equal(t, kind, errs.KindOf(err), msgAndArgs...)
}
