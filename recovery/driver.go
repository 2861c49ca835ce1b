// SPDX-License-Identifier: MIT
// Package recovery implements the outer iteration that updates
// confidences, refines or replaces anchors, and stops when a
// no-change fixpoint is reached or a step budget is exhausted
// (spec §4.7).
package recovery

import (
	"fmt"

	"github.com/katalvlaran/meshrecover/anchor"
	"github.com/katalvlaran/meshrecover/meshmodel"
)

// AdjustAnchorsIterative runs the outer recovery loop for at most
// maxIter iterations, mutating sys, verts, and conf in place, and
// returns the total number of adjustments applied across all
// iterations. Ordering is strictly sequential: anchor i's
// refinement/replacement within an iteration observes the updates
// already applied to anchors 0..i-1 in that same iteration (spec
// §4.7, §5).
//
// A zero-progress iteration is the success terminator (fixpoint);
// exhausting the budget without reaching one is a successful return,
// not an error.
func AdjustAnchorsIterative(sys *meshmodel.AnchorSystem, verts []meshmodel.Vec3, conf []float64, mask []bool, maxIter int, opts Options) (int, error) {
	if sys == nil || verts == nil || conf == nil || mask == nil {
		return 0, fmt.Errorf("AdjustAnchorsIterative: %w", ErrNilInput)
	}
	if len(verts) != len(conf) || len(verts) != len(mask) {
		return 0, fmt.Errorf("AdjustAnchorsIterative: %w", ErrDimensionMismatch)
	}
	if maxIter <= 0 {
		return 0, fmt.Errorf("AdjustAnchorsIterative(%d): %w", maxIter, ErrInvalidBudget)
	}

	total := 0
	for iter := 0; iter < maxIter; iter++ {
		if err := anchor.UpdateGlobalConfidence(sys, opts.AnchorOptions); err != nil {
			return total, fmt.Errorf("AdjustAnchorsIterative: iteration %d: %w", iter, err)
		}

		adjusted := 0
		for i := range sys.Anchors {
			var ok bool
			var err error
			if sys.Anchors[i].IsCorrupted {
				ok, err = anchor.ReplaceCorrupted(sys, i, verts, conf, mask, opts.AnchorOptions)
			} else {
				ok, err = anchor.RefinePosition(sys, i, verts, conf, opts.AnchorOptions)
			}
			if err != nil {
				return total, fmt.Errorf("AdjustAnchorsIterative: iteration %d, anchor %d: %w", iter, i, err)
			}
			if ok {
				adjusted++
			}
		}

		total += adjusted
		opts.Logger.Debug().
			Int("iteration", iter).
			Int("adjusted", adjusted).
			Float64("global_confidence", sys.GlobalConfidence).
			Msg("recovery iteration complete")

		if adjusted == 0 {
			break
		}
	}

	return total, nil
}
