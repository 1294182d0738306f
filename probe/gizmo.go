package probe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Segment is one debug line to draw.
type Segment struct {
	A, B mgl64.Vec3
}

// ShellGizmo returns wireframe geometry visualizing a sampling band around
// center: three orthogonal great circles for each of the inner and outer
// radii, plus a small cube at the center. steps is the number of line
// segments per circle. Purely a rendering aid; sampling never reads it.
func ShellGizmo(center mgl64.Vec3, minDist, maxDist, cubeSize float64, steps int) []Segment {
	segs := make([]Segment, 0, 6*steps+12)
	segs = append(segs, wireSphere(center, minDist, steps)...)
	segs = append(segs, wireSphere(center, maxDist, steps)...)
	segs = append(segs, wireCube(center, cubeSize)...)
	return segs
}

func wireSphere(center mgl64.Vec3, radius float64, steps int) []Segment {
	segs := make([]Segment, 0, 3*steps)

	// One circle per principal plane: XY, XZ, YZ.
	planes := [3]func(c, s float64) mgl64.Vec3{
		func(c, s float64) mgl64.Vec3 { return mgl64.Vec3{c, s, 0} },
		func(c, s float64) mgl64.Vec3 { return mgl64.Vec3{c, 0, s} },
		func(c, s float64) mgl64.Vec3 { return mgl64.Vec3{0, c, s} },
	}

	for _, plane := range planes {
		for i := 0; i < steps; i++ {
			a0 := 2 * math.Pi * float64(i) / float64(steps)
			a1 := 2 * math.Pi * float64(i+1) / float64(steps)
			p0 := center.Add(plane(math.Cos(a0), math.Sin(a0)).Mul(radius))
			p1 := center.Add(plane(math.Cos(a1), math.Sin(a1)).Mul(radius))
			segs = append(segs, Segment{A: p0, B: p1})
		}
	}

	return segs
}

func wireCube(center mgl64.Vec3, size float64) []Segment {
	h := size / 2
	corner := func(x, y, z float64) mgl64.Vec3 {
		return center.Add(mgl64.Vec3{x * h, y * h, z * h})
	}

	bottom := [4]mgl64.Vec3{
		corner(-1, -1, -1), corner(1, -1, -1), corner(1, -1, 1), corner(-1, -1, 1),
	}
	top := [4]mgl64.Vec3{
		corner(-1, 1, -1), corner(1, 1, -1), corner(1, 1, 1), corner(-1, 1, 1),
	}

	segs := make([]Segment, 0, 12)
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		segs = append(segs,
			Segment{A: bottom[i], B: bottom[j]},
			Segment{A: top[i], B: top[j]},
			Segment{A: bottom[i], B: top[i]},
		)
	}
	return segs
}
