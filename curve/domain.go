package curve

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

// Domain is the fixed evaluation domain shared by every transcript in a
// DKG instance: a multiplicative subgroup of Fr of order Size, a power
// of two at least as large as the number of validators. Points()[i] is
// the canonical domain point ω^i assigned to share index i.
type Domain struct {
	Size      int
	Generator Scalar
	points    []Scalar
}

// NewDomain builds the smallest power-of-two domain that can hold n
// validators. It only consumes gnark-crypto's fft.Domain for the
// primitive root of unity of the right order; the Cooley-Tukey evaluator
// built on top of that root (fftRadix2, below) is this package's own, so
// that it can run over G1 and G2 points as well as over Fr itself — an
// FFT over an additive group is identical to one over a field as long
// as addition and scalar multiplication by roots of unity are available.
func NewDomain(n int) (*Domain, error) {
	if n <= 0 {
		return nil, fmt.Errorf("curve: domain size must be positive, got %d", n)
	}
	size := nextPowerOfTwo(n)
	gnarkDomain := fft.NewDomain(uint64(size))
	d := &Domain{
		Size:      int(gnarkDomain.Cardinality),
		Generator: gnarkDomain.Generator,
	}
	d.points = make([]Scalar, d.Size)
	d.points[0].SetOne()
	for i := 1; i < d.Size; i++ {
		d.points[i].Mul(&d.points[i-1], &d.Generator)
	}
	return d, nil
}

func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// Points returns the domain's canonical evaluation points ω^0, …, ω^{Size-1}.
func (d *Domain) Points() []Scalar {
	return d.points
}

// Point returns the i-th canonical domain point.
func (d *Domain) Point(i int) Scalar {
	return d.points[i]
}

// EvaluateScalars evaluates the polynomial with the given coefficients
// (ascending degree, zero-padded as needed) at every domain point, via a
// radix-2 FFT over Fr.
func (d *Domain) EvaluateScalars(coeffs []Scalar) ([]Scalar, error) {
	padded, err := padTo(coeffs, d.Size, Scalar{})
	if err != nil {
		return nil, err
	}
	return fftRadix2(padded, d.Generator,
		func(a, b Scalar) Scalar { var r Scalar; r.Add(&a, &b); return r },
		func(a, b Scalar) Scalar { var r Scalar; r.Sub(&a, &b); return r },
		func(a Scalar, s Scalar) Scalar { var r Scalar; r.Mul(&a, &s); return r },
	), nil
}

// EvaluateG1 evaluates a "polynomial in the exponent" represented by G1
// coefficients (coeffs[k] = g^{a_k}) at every domain point, producing
// A_i = g^{φ(ω_i)}. This is the step pvss.VerifyFull uses to materialize
// per-validator commitments from a Feldman commitment vector.
func (d *Domain) EvaluateG1(coeffs []G1) ([]G1, error) {
	var zero G1
	padded, err := padTo(coeffs, d.Size, zero)
	if err != nil {
		return nil, err
	}
	return fftRadix2(padded, d.Generator,
		func(a, b G1) G1 { return AddG1(a, b) },
		func(a, b G1) G1 { var bn G1; bn.Neg(&b); return AddG1(a, bn) },
		func(a G1, s Scalar) G1 { return ScalarMulG1(a, s) },
	), nil
}

// padTo right-pads coeffs with zero up to size, or reports an error if
// coeffs already has more entries than the domain can evaluate.
func padTo[T any](coeffs []T, size int, zero T) ([]T, error) {
	if len(coeffs) > size {
		return nil, fmt.Errorf("curve: %d coefficients exceed domain size %d", len(coeffs), size)
	}
	if len(coeffs) == size {
		return coeffs, nil
	}
	padded := make([]T, size)
	copy(padded, coeffs)
	for i := len(coeffs); i < size; i++ {
		padded[i] = zero
	}
	return padded, nil
}

// fftRadix2 is a textbook recursive Cooley-Tukey DIT FFT, generalized over
// any additive group T given an addition, subtraction and a
// scalar-by-root-of-unity multiplication. Coefficients must be in natural
// order and len(values) must be a power of two; omega must be a primitive
// len(values)-th root of unity. Output is the evaluation of the
// polynomial with coefficients `values` at omega^0, …, omega^{n-1}, in
// natural order.
func fftRadix2[T any](values []T, omega Scalar, add, sub func(a, b T) T, scale func(a T, s Scalar) T) []T {
	n := len(values)
	if n == 1 {
		return []T{values[0]}
	}

	half := n / 2
	even := make([]T, half)
	odd := make([]T, half)
	for i := 0; i < half; i++ {
		even[i] = values[2*i]
		odd[i] = values[2*i+1]
	}

	var omegaSq Scalar
	omegaSq.Mul(&omega, &omega)
	evenEval := fftRadix2(even, omegaSq, add, sub, scale)
	oddEval := fftRadix2(odd, omegaSq, add, sub, scale)

	result := make([]T, n)
	var omegaPow Scalar
	omegaPow.SetOne()
	for i := 0; i < half; i++ {
		term := scale(oddEval[i], omegaPow)
		result[i] = add(evenEval[i], term)
		result[i+half] = sub(evenEval[i], term)
		omegaPow.Mul(&omegaPow, &omega)
	}
	return result
}
