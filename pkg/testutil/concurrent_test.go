package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"ainadeul/pkg/platform/sentinel"
)

func TestRunConcurrent(t *testing.T) {
	boom := errors.New("boom")
	result := RunConcurrent(8, func(idx int) error {
		switch idx % 4 {
		case 0:
			return nil
		case 1:
			return fmt.Errorf("email taken: %w", sentinel.ErrConflict)
		case 2:
			return fmt.Errorf("place: %w", sentinel.ErrNotFound)
		default:
			return boom
		}
	})

	assert.Equal(t, int32(8), result.Total())
	assert.Equal(t, int32(2), result.Successes)
	assert.Equal(t, int32(2), result.Conflicts)
	assert.Equal(t, int32(2), result.NotFounds)
	assert.Equal(t, int32(2), result.Errors)
	assert.Equal(t, []error{boom, boom}, result.Failures)
}

func TestRunConcurrentZero(t *testing.T) {
	assert.Zero(t, RunConcurrent(0, func(int) error { return nil }).Total())
}
