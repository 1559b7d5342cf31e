// Package lifecycle implements the two-write transition protocol shared by
// the training, generation and reporting state machines: the intent state
// (training, running) is persisted before the work that determines the
// outcome state, so pollers can observe work in progress.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/mindbridge/assessment-backend/internal/pkg/apperrors"
)

// ClaimFunc atomically moves a record into its intent state. It must be a
// compare-and-set on the status column: it returns false, without mutating
// anything, when the record is already in the busy state. The write must be
// durably visible once ClaimFunc returns.
type ClaimFunc func(ctx context.Context) (bool, error)

// WorkFunc computes the outcome and persists the outcome state. If the
// process dies before WorkFunc finishes, the record stays visibly stuck in
// the intent state; recovery is re-triggering, which every machine permits
// from any state except the busy one.
type WorkFunc func(ctx context.Context) error

// Run executes one transition. A failed claim maps to ErrInvalidState so the
// caller surfaces it without a retry: two concurrent triggers can never both
// pass the state check.
func Run(ctx context.Context, claim ClaimFunc, work WorkFunc) error {
	claimed, err := claim(ctx)
	if err != nil {
		return fmt.Errorf("claim intent state: %w", err)
	}
	if !claimed {
		return apperrors.ErrInvalidState
	}
	return work(ctx)
}
