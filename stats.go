package cube

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Min returns the smallest value of the field, or 0 for an empty field.
func (G *Grid) Min() float64 {
	if len(G.data) == 0 {
		return 0
	}
	return floats.Min(G.data)
}

//Max returns the largest value of the field, or 0 for an empty field.
func (G *Grid) Max() float64 {
	if len(G.data) == 0 {
		return 0
	}
	return floats.Max(G.data)
}

//Sum returns the plain sum of all values of the field.
func (G *Grid) Sum() float64 {
	return floats.Sum(G.data)
}

//Mean returns the mean value of the field.
func (G *Grid) Mean() float64 {
	return stat.Mean(G.data, nil)
}

//StdDev returns the standard deviation of the field values.
func (G *Grid) StdDev() float64 {
	return stat.StdDev(G.data, nil)
}

//RMS returns the root mean square of the field values, or 0 for an
//empty field.
func (G *Grid) RMS() float64 {
	if len(G.data) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(G.data, G.data) / float64(len(G.data)))
}

//VoxelVolume returns the volume of one voxel, the scalar triple product of
//the 3 voxel vectors, in the cube units of the file (bohr^3, usually).
func (G *Grid) VoxelVolume() float64 {
	a, b, c := G.axes[0], G.axes[1], G.axes[2]
	v := a[0]*(b[1]*c[2]-b[2]*c[1]) -
		a[1]*(b[0]*c[2]-b[2]*c[0]) +
		a[2]*(b[0]*c[1]-b[1]*c[0])
	return math.Abs(v)
}

//Integral returns the volume integral of the field over the grid, the sum
//of all values times the voxel volume. For a density difference this is the
//net transferred charge (which should be close to zero), and for the
//positive or negative part alone, the amount of charge displaced.
func (G *Grid) Integral() float64 {
	return G.Sum() * G.VoxelVolume()
}
