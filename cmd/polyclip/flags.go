package main

import (
	"github.com/spf13/pflag"
)

// planeFlags are shared by clip and split
type planeFlags struct {
	plane  []float64
	rotate []float64
}

func (f *planeFlags) register(fs *pflag.FlagSet) {
	fs.Float64SliceVarP(&f.plane, "plane", "p", nil, "Kept half-space a,b,c,d of a*x+b*y+c*z+d >= 0")
	fs.Float64SliceVarP(&f.rotate, "rotate", "r", nil, "Rotate the plane by rx,ry,rz degrees")
}
