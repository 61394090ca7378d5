package interact

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultConeHalfAngle is the facing tolerance, in degrees, either side of
// the player's forward vector.
const DefaultConeHalfAngle = 60.0

// Resolver selects the gaze target among candidates. The zero value uses
// the default facing cone.
type Resolver struct {
	// ConeHalfAngle in degrees. Values >= 180 disable the facing check.
	ConeHalfAngle float64
}

var defaultResolver = Resolver{ConeHalfAngle: DefaultConeHalfAngle}

// ResolveGaze picks a target with the default facing cone.
func ResolveGaze[C Interactable](position, forward rl.Vector3, candidates []C) (C, bool) {
	return Resolve(defaultResolver, position, forward, candidates)
}

// Resolve returns the nearest candidate strictly inside its radius and
// inside the facing cone. Equal distances go to the lowest Order. A zero
// forward vector skips the facing check. Candidates are only read.
func Resolve[C Interactable](r Resolver, position, forward rl.Vector3, candidates []C) (C, bool) {
	var best C
	found := false
	var bestDist float32

	half := r.ConeHalfAngle
	if half == 0 {
		half = DefaultConeHalfAngle
	}
	checkFacing := half < 180 && rl.Vector3LengthSqr(forward) > 0
	var fwd rl.Vector3
	var coneCos float32
	if checkFacing {
		fwd = rl.Vector3Normalize(forward)
		coneCos = float32(math.Cos(half * math.Pi / 180))
	}

	for _, c := range candidates {
		toTarget := rl.Vector3Subtract(c.WorldPosition(), position)
		dist2 := rl.Vector3LengthSqr(toTarget)
		radius := c.Radius()
		if !(dist2 < radius*radius) {
			continue
		}

		if checkFacing && dist2 > 0 {
			dist := float32(math.Sqrt(float64(dist2)))
			if rl.Vector3DotProduct(fwd, toTarget) < coneCos*dist {
				continue
			}
		}

		if !found || dist2 < bestDist || (dist2 == bestDist && c.Order() < best.Order()) {
			best = c
			bestDist = dist2
			found = true
		}
	}
	return best, found
}
