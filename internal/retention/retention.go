// Package retention decides which documents a bulk delete may touch. Orders
// newer than the safety boundary (now − 7 days) are never deletable; products
// carry no such protection.
package retention

import (
	"context"
	"fmt"
	"time"

	"jennamart/internal/reports"
	"jennamart/internal/storage"
)

// Plan is a prepared deletion: count with CountFilter first, then delete with
// DeleteFilter, and compare the two counts.
type Plan struct {
	Collection   string
	CountFilter  storage.Filter
	DeleteFilter storage.Filter
}

// Result reports one executed collection. A count mismatch is surfaced as
// Success=false, never retried or rolled back.
type Result struct {
	PreviousCount int64  `json:"previousCount"`
	DeletedCount  int64  `json:"deletedCount"`
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
}

// SafetyViolationError rejects a window that reaches into the protected
// period. The whole deletion fails; nothing is truncated.
type SafetyViolationError struct {
	Bound      time.Time
	SafetyDate time.Time
}

func (e SafetyViolationError) Error() string {
	return fmt.Sprintf(
		"cannot delete orders at %s: orders from the last 7 days (since %s) cannot be deleted for safety reasons",
		e.Bound.Format("2006-01-02"),
		e.SafetyDate.Format("2006-01-02"),
	)
}

// PlanDeletion builds the filters for one collection.
//
// Products ignore date windows entirely and always match everything. Orders
// without a window match only documents older than the safety boundary; a
// supplied window must lie strictly before the boundary or the plan is
// rejected before any deletion is attempted, and a window with no upper
// bound is capped at the boundary.
func PlanDeletion(collection string, window reports.Window, safety time.Time) (Plan, error) {
	plan := Plan{Collection: collection}

	switch collection {
	case "products":
		plan.CountFilter = storage.Always()
		plan.DeleteFilter = storage.Always()
		return plan, nil
	case "orders":
	default:
		return Plan{}, fmt.Errorf("unknown collection: %s", collection)
	}

	if window.Empty() {
		filter := storage.Before("createdAt", safety)
		plan.CountFilter = filter
		plan.DeleteFilter = filter
		return plan, nil
	}

	if window.From != nil && !window.From.Before(safety) {
		return Plan{}, SafetyViolationError{Bound: *window.From, SafetyDate: safety}
	}
	if window.To != nil && !window.To.Before(safety) {
		return Plan{}, SafetyViolationError{Bound: *window.To, SafetyDate: safety}
	}

	var gte, lte interface{}
	if window.From != nil {
		gte = *window.From
	}
	if window.To != nil {
		lte = *window.To
	}
	filter := storage.Between("createdAt", gte, lte)
	if window.To == nil {
		// An open upper bound must still stop at the boundary.
		filter = storage.And(filter, storage.Before("createdAt", safety))
	}
	plan.CountFilter = filter
	plan.DeleteFilter = filter
	return plan, nil
}

// Collection is the slice of the repository a plan executes against.
type Collection interface {
	Count(ctx context.Context, filter storage.Filter) (int64, error)
	DeleteMany(ctx context.Context, filter storage.Filter) (int64, error)
}

// Execute runs the count-then-delete contract. Zero matching documents is a
// success with nothing deleted; the delete is skipped entirely.
func Execute(ctx context.Context, col Collection, plan Plan) (Result, error) {
	previous, err := col.Count(ctx, plan.CountFilter)
	if err != nil {
		return Result{}, err
	}

	if previous == 0 {
		return Result{PreviousCount: 0, DeletedCount: 0, Success: true}, nil
	}

	deleted, err := col.DeleteMany(ctx, plan.DeleteFilter)
	if err != nil {
		return Result{}, err
	}

	return Result{
		PreviousCount: previous,
		DeletedCount:  deleted,
		Success:       deleted == previous,
	}, nil
}
