package document

import (
	"context"
	"time"

	"github.com/draftwise/draftcore/pkg/modify"
	"github.com/draftwise/draftcore/pkg/observability"
	"github.com/draftwise/draftcore/pkg/shape"
	"github.com/draftwise/draftcore/pkg/spaces"
)

// Reconcile runs the reactive passes after a committed geometry change
// and returns the follow-up updates the caller should apply as its next
// batch:
//
//   - miter joins around each changed structural member are re-resolved
//     against their still-joined partners (miterTol, default
//     modify.DefaultMiterTolerance);
//   - every space is recontoured at its label position, so room
//     boundaries and areas track the walls that moved.
//
// The pass is idempotent: reconciling an already-consistent snapshot
// yields updates that reproduce the current geometry.
func Reconcile(snap *Snapshot, changed []shape.ID, miterTol float64) []shape.Update {
	ctx := context.Background()
	observability.Pass().OnReconcileStart(ctx, len(changed))
	start := time.Now()

	all := snap.Shapes()

	var batch []shape.Update
	for _, id := range changed {
		sh, ok := snap.Get(id)
		if !ok {
			continue
		}
		if _, ok := sh.(shape.Structural); !ok {
			continue
		}
		batch = append(batch, modify.RecalculateMiterJoins(id, all, miterTol)...)
	}

	for _, sh := range all {
		sp, ok := sh.(*shape.Space)
		if !ok {
			continue
		}
		if u, ok := spaces.Recontour(sp, all); ok {
			batch = append(batch, u)
		}
	}

	out := shape.MergeBatch(batch)
	observability.Pass().OnReconcileComplete(ctx, len(out), time.Since(start))
	return out
}
