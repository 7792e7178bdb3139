// Package board provides the peripheral singletons and free functions that
// firmware calls. Each one forwards to the instance the core context holds
// for its category, so tests configure behaviour on the doubles and the
// firmware never notices the difference.
package board

import "periphfake/core"

func init() {
	core.RegisterIdentity(core.Serial, func(*core.Context) any { return Serial })
	core.RegisterIdentity(core.SPI, func(*core.Context) any { return SPI })
	core.RegisterIdentity(core.Wire, func(*core.Context) any { return Wire })
}
