// SPDX-License-Identifier: MIT
package recovery

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/meshrecover/anchor"
)

// Options bundles the anchor-manager policy constants with a logger
// for per-iteration diagnostics. The anchor sub-options are exposed at
// construction time per spec §4.4's "must expose them at construction
// time to permit rebinding for tests".
type Options struct {
	AnchorOptions anchor.Options
	Logger        zerolog.Logger
}

// DefaultOptions returns default anchor-manager constants and a no-op
// logger (mirroring lvlath's *Options + Default*Options() convention,
// e.g. flow.DefaultOptions()).
func DefaultOptions() Options {
	return Options{
		AnchorOptions: anchor.DefaultOptions(),
		Logger:        zerolog.Nop(),
	}
}
