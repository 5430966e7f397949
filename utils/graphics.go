package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/notargets/avs/chart2d"
	avsUtils "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/spatial/r3"
)

// View is the axis pair a 3D segment is projected onto, the remaining axis is depth
type View uint8

const (
	ViewXY View = iota // From +z
	ViewXZ             // From -y, poles up
	ViewYZ             // From +x
)

func NewView(label string) (v View, err error) {
	switch label {
	case "xy":
		v = ViewXY
	case "xz":
		v = ViewXZ
	case "yz":
		v = ViewYZ
	default:
		err = fmt.Errorf("unknown view %q, use xy, xz or yz", label)
	}
	return
}

func (v View) String() string {
	return [...]string{"xy", "xz", "yz"}[v]
}

func (v View) project(p r3.Vec) (x, y, depth float64) {
	switch v {
	case ViewXZ:
		return p.X, p.Z, -p.Y
	case ViewYZ:
		return p.Y, p.Z, p.X
	default:
		return p.X, p.Y, p.Z
	}
}

/*
ProjectSegments flattens 3D line segments onto the view plane as the
x1,y1,x2,y2 runs chart2d draws. Segments whose midpoint faces the viewer go in
front, the rest in back.
*/
func ProjectSegments(segments [][2]r3.Vec, v View) (front, back []float32) {
	for _, s := range segments {
		x1, y1, d1 := v.project(s[0])
		x2, y2, d2 := v.project(s[1])
		line := []float32{float32(x1), float32(y1), float32(x2), float32(y2)}
		if d1+d2 >= 0 {
			front = append(front, line...)
		} else {
			back = append(back, line...)
		}
	}
	return
}

// GetSquareBoundingBox pads the extent of the XY runs to a square with a 10% margin
func GetSquareBoundingBox(XY ...[]float32) (xMin, xMax, yMin, yMax float32) {
	xMin, yMin = math.MaxFloat32, math.MaxFloat32
	xMax, yMax = -math.MaxFloat32, -math.MaxFloat32
	for _, xy := range XY {
		for i := 0; i+1 < len(xy); i += 2 {
			xMin, xMax = min(xMin, xy[i]), max(xMax, xy[i])
			yMin, yMax = min(yMin, xy[i+1]), max(yMax, xy[i+1])
		}
	}
	if xMin > xMax {
		return -1, 1, -1, 1
	}
	var (
		xc, yc = (xMin + xMax) / 2, (yMin + yMax) / 2
		half   = 0.55 * max(xMax-xMin, yMax-yMin)
	)
	if half == 0 {
		half = 1
	}
	return xc - half, xc + half, yc - half, yc + half
}

// PlotSegments draws the projected mesh lines, back lines dimmed, and holds the window for delay
func PlotSegments(segments [][2]r3.Vec, v View, delay time.Duration) {
	front, back := ProjectSegments(segments, v)
	xMin, xMax, yMin, yMax := GetSquareBoundingBox(front, back)
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax, 1024, 1024,
		avsUtils.WHITE, avsUtils.BLACK, 0.9)
	if len(back) > 0 {
		ch.AddLine(back, avsUtils.BLUE)
	}
	if len(front) > 0 {
		ch.AddLine(front, avsUtils.WHITE)
	}
	time.Sleep(delay)
}
