// Package document holds the drawing state the geometric core operates
// on: an ordered, immutable snapshot of shapes plus the bookkeeping
// around it (batch update application, connected-run search, reactive
// recomputation scheduling).
//
// # Architecture
//
// A Snapshot is a value: operations return new snapshots and never
// mutate the one they were called on, so callers can hand the same
// snapshot to several passes. Updates are applied atomically as one
// batch so intermediate states are never observed.
//
// The Scheduler coalesces change notifications and invokes one
// idempotent recompute callback per quiet period. A newer change set
// simply supersedes an older one; there is no cancellation inside a
// running pass.
//
// # Usage
//
//	snap, err := document.NewSnapshot(shapes)
//	if err != nil {
//		return err
//	}
//	next, err := snap.ApplyUpdates(batch)
//	if err != nil {
//		return err
//	}
//	followups := document.Reconcile(next, changedIDs, 0)
package document
