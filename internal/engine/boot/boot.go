// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping jl.
package boot

import _ "embed" // Blank import required by embed.

// Name is the name the boot script is read under.
const Name = "boot.jl"

//go:embed boot.jl
var script string //nolint:gochecknoglobals

// Script returns the boot script for jl.
func Script() string {
	return script
}
