// Package reports is the dues reconciliation and reporting engine. It turns
// snapshots of players, payments, expenses and match days into period-scoped
// financial reports: expected-vs-paid balances, cross-period carryover and
// payment-health classification. All computations are pure and read-only;
// a report either completes in full or fails with an error.
package reports

import "time"

// Engine assembles reports from a Store. Independent reads of one report are
// issued concurrently and joined before computation begins; there is no
// shared mutable state and no retry.
type Engine struct {
	store Store
	now   func() time.Time
}

// New returns an Engine reading from store.
func New(store Store) *Engine {
	return &Engine{store: store, now: time.Now}
}
