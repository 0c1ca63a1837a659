// 6 Oct 2026
// Turning the text coordinates into numbers, but only when asked.

package mol

import (
	"fmt"
	"math"
	"strconv"

	"github.com/andrew-torda/matrix"
)

// Xyz is a coordinate as numbers.
type Xyz struct{ X, Y, Z float32 }

// Xyz converts a position to numbers. Any field that is empty or not
// a number gives an error matching ErrInvalidNumericField.
func (p Position) Xyz() (Xyz, error) {
	var xyz Xyz
	for _, c := range []struct {
		name string
		s    string
		dst  *float32
	}{{"x", p.X, &xyz.X}, {"y", p.Y, &xyz.Y}, {"z", p.Z, &xyz.Z}} {
		f, err := strconv.ParseFloat(c.s, 32)
		if err != nil {
			return Xyz{}, fmt.Errorf("%w: %s coordinate %q", ErrInvalidNumericField, c.name, c.s)
		}
		*c.dst = float32(f)
	}
	return xyz, nil
}

// xyzs converts all the atoms, naming the atom that breaks.
func (d *Document) xyzs() ([]Xyz, error) {
	ret := make([]Xyz, len(d.Atoms))
	for i, a := range d.Atoms {
		var err error
		if ret[i], err = a.Position.Xyz(); err != nil {
			return nil, fmt.Errorf("atom %d: %w", i+1, err)
		}
	}
	return ret, nil
}

// Coords returns an n_atom x 3 matrix of coordinates. Row i is atom i+1.
func (d *Document) Coords() (*matrix.FMatrix2d, error) {
	xyz, err := d.xyzs()
	if err != nil {
		return nil, err
	}
	m := matrix.NewFMatrix2d(len(xyz), 3)
	for i, r := range xyz {
		m.Mat[i][0], m.Mat[i][1], m.Mat[i][2] = r.X, r.Y, r.Z
	}
	return m, nil
}

// Adjacency returns an n_atom x n_atom matrix with the bond type code
// wherever two atoms are bonded and zero elsewhere. It is symmetric and
// indices start from zero, so bond 1-2 lands in [0][1] and [1][0].
// Bonds must point at atoms that exist, as they do after Parse.
func (d *Document) Adjacency() *matrix.FMatrix2d {
	n := len(d.Atoms)
	m := matrix.NewFMatrix2d(n, n)
	for _, b := range d.Bonds {
		i, j := b.Atom1()-1, b.Atom2()-1
		m.Mat[i][j] = float32(b.Type())
		m.Mat[j][i] = float32(b.Type())
	}
	return m
}

// XyzDist is the distance between two points.
func XyzDist(x1, x2 Xyz) float32 {
	dx, dy, dz := x1.X-x2.X, x1.Y-x2.Y, x1.Z-x2.Z
	return float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}

// BondLengths returns the length of each bond, in the order of Bonds.
func (d *Document) BondLengths() ([]float32, error) {
	xyz, err := d.xyzs()
	if err != nil {
		return nil, err
	}
	ret := make([]float32, len(d.Bonds))
	for i, b := range d.Bonds {
		ret[i] = XyzDist(xyz[b.Atom1()-1], xyz[b.Atom2()-1])
	}
	return ret, nil
}
