package engine

import "math"

// Options holds the search features that can be switched individually.
// With every flag disabled the search degrades to plain alpha-beta with
// quiescence.
type Options struct {
	NullMovePruning   bool
	ReverseFutility   bool
	Futility          bool
	Lmp               bool
	SeePruning        bool
	CheckExtension    bool
	AspirationWindows bool
	LateMoveReduction bool

	reductions [64][64]int
}

func NewOptions() Options {
	var result = Options{
		NullMovePruning:   true,
		ReverseFutility:   true,
		Futility:          true,
		Lmp:               true,
		SeePruning:        true,
		CheckExtension:    true,
		AspirationWindows: true,
		LateMoveReduction: true,
	}
	result.InitLmr(LmrMult)
	return result
}

func (o *Options) Lmr(d, m int) int {
	return o.reductions[min(d, 63)][min(m, 63)]
}

func (o *Options) InitLmr(f func(d, m float64) float64) {
	for d := 1; d < 64; d++ {
		for m := 1; m < 64; m++ {
			o.reductions[d][m] = int(f(float64(d), float64(m)))
		}
	}
}

func LmrMult(d, m float64) float64 {
	return lirp(math.Log(d)*math.Log(m), math.Log(5)*math.Log(22), math.Log(63)*math.Log(63), 3, 8)
}

func lirp(x, x1, x2, y1, y2 float64) float64 {
	return y1 + (y2-y1)*(x-x1)/(x2-x1)
}
