// Package noise implements the seeded 2D gradient-noise field that drives
// the geometry perturbation engine. A Field is derived deterministically
// from a numeric seed: the same seed always produces bit-identical tables
// and therefore identical noise at every coordinate, with no global or
// time-based entropy anywhere.
package noise

import "math"

// Skew factors for 2D simplex noise: F2 = (sqrt(3)-1)/2, G2 = (3-sqrt(3))/6.
const (
	f2 = 0.3660254037844386
	g2 = 0.21132486540518713
)

// Field is an immutable noise state: a seeded permutation table and the
// matching gradient table, both mirrored to 512 entries so that lookups at
// index+1 never need a modulo. A Field is safe for concurrent use.
type Field struct {
	perm [512]int
	grad [512][3]float64
}

// New builds a Field from a seed. Seeds in (0,1) are rescaled by 65536 and
// floored; integer seeds with magnitude below 256 have their low byte folded
// into the high byte so that small seeds still touch both derivation bytes.
// The permutation is the base table XORed with the seed's low byte at even
// indices and its high byte at odd indices.
func New(seed float64) *Field {
	s := seed
	if s > 0 && s < 1 {
		s *= 65536
	}
	n := int(math.Floor(s))
	if n > -256 && n < 256 {
		n |= n << 8
	}

	f := &Field{}
	for i := 0; i < 256; i++ {
		var v int
		if i&1 == 0 {
			v = basePerm[i] ^ (n & 0xff)
		} else {
			v = basePerm[i] ^ ((n >> 8) & 0xff)
		}
		f.perm[i] = v
		f.perm[i+256] = v
		f.grad[i] = grad3[v%12]
		f.grad[i+256] = f.grad[i]
	}
	return f
}

// fade is the quintic interpolant 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func dot2(g [3]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}

// Perlin2 evaluates classic 2D gradient noise at (x, y). The result lies in
// [-1, 1] and is zero at integer lattice points.
func (f *Field) Perlin2(x, y float64) float64 {
	cx := int(math.Floor(x))
	cy := int(math.Floor(y))
	rx := x - float64(cx)
	ry := y - float64(cy)
	cx &= 255
	cy &= 255

	n00 := dot2(f.grad[cx+f.perm[cy]], rx, ry)
	n01 := dot2(f.grad[cx+f.perm[cy+1]], rx, ry-1)
	n10 := dot2(f.grad[cx+1+f.perm[cy]], rx-1, ry)
	n11 := dot2(f.grad[cx+1+f.perm[cy+1]], rx-1, ry-1)

	u := fade(rx)
	return lerp(lerp(n00, n10, u), lerp(n01, n11, u), fade(ry))
}

// Simplex2 evaluates 2D simplex noise at (x, y). The result lies in [-1, 1].
func (f *Field) Simplex2(x, y float64) float64 {
	s := (x + y) * f2
	i := int(math.Floor(x + s))
	j := int(math.Floor(y + s))
	t := float64(i+j) * g2
	x0 := x - float64(i) + t
	y0 := y - float64(j) + t

	// Offsets of the middle corner: lower triangle walks +x first, upper +y.
	var i1, j1 int
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	i &= 255
	j &= 255
	gi0 := f.grad[i+f.perm[j]]
	gi1 := f.grad[i+i1+f.perm[j+j1]]
	gi2 := f.grad[i+1+f.perm[j+1]]

	var n0, n1, n2 float64
	t0 := 0.5 - x0*x0 - y0*y0
	if t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * dot2(gi0, x0, y0)
	}
	t1 := 0.5 - x1*x1 - y1*y1
	if t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * dot2(gi1, x1, y1)
	}
	t2 := 0.5 - x2*x2 - y2*y2
	if t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * dot2(gi2, x2, y2)
	}

	return 70 * (n0 + n1 + n2)
}

// Fractal2 sums octaves of Perlin2 with the frequency multiplied by
// lacunarity and the amplitude multiplied by persistence each layer. The sum
// is divided by the total amplitude used, so the dynamic range stays the
// same no matter how many octaves are requested.
func (f *Field) Fractal2(x, y float64, octaves int, persistence, lacunarity float64) float64 {
	sum := 0.0
	norm := 0.0
	amp := 1.0
	freq := 1.0
	for o := 0; o < octaves; o++ {
		sum += f.Perlin2(x*freq, y*freq) * amp
		norm += amp
		freq *= lacunarity
		amp *= persistence
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
