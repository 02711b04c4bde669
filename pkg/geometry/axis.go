package geometry

import "fmt"

// Axis identifies one of the three coordinate axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Axes lists the coordinate axes in order
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// Valid reports whether a is one of AxisX, AxisY or AxisZ
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}
