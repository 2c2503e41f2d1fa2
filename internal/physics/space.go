// Package physics advances ship kinematics under thrust, drag and damping.
package physics

import "image/color"

// Space is a physics regime: drag coefficients plus a backdrop colour.
type Space struct {
	Name   string
	Color  color.RGBA
	LinMu1 float64 // linear drag proportional to sqrt(area)
	LinMu2 float64 // linear drag proportional to area*speed
	RotMu1 float64 // angular drag proportional to area^1.5
	RotMu2 float64 // angular drag proportional to area^2.5*angular speed
}

var (
	// Truespace is normal space inside solar and planetary systems.
	Truespace = &Space{Name: "truespace", Color: color.RGBA{0, 0, 0, 255}, LinMu1: 0, LinMu2: 0.1, RotMu1: 0, RotMu2: 0.04}
	// Hyperspace is the high-drag regime between star systems.
	Hyperspace = &Space{Name: "hyperspace", Color: color.RGBA{63, 15, 15, 255}, LinMu1: 40, LinMu2: 0.5, RotMu1: 1200, RotMu2: 0.2}
	// Quasispace has no map of its own yet; it is kept for ship sprites
	// and background palettes keyed by space.
	Quasispace = &Space{Name: "quasispace", Color: color.RGBA{0, 208, 0, 255}, LinMu1: 80, LinMu2: 0.01, RotMu1: 2400, RotMu2: 0.1}
)
