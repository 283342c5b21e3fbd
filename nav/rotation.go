package nav

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/aeronav/wpnav/navmath"
)

const halfPi = float32(math.Pi / 2)

func radians(degrees float32) float32 {
	return degrees * float32(math.Pi) / 180
}

func secondsToDuration(s float32) time.Duration {
	return time.Duration(s * float32(time.Second))
}

// rotatePlanar rotates v within the local x/y plane by angle radians
// (positive angle turning +X toward +Y, the same atan2(y, x) convention
// navmath.Bearing uses), via a gonum rotation about the plane's normal
// rather than hand-rolled sin/cos composition.
func rotatePlanar(v navmath.Vec2, angle float32) navmath.Vec2 {
	rot := r3.NewRotation(float64(angle), r3.Vec{X: 0, Y: 0, Z: 1})
	out := rot.Rotate(r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: 0})
	return navmath.Vec2{X: float32(out.X), Y: float32(out.Y)}
}
