package curve

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Scalar is an element of the scalar field Fr.
type Scalar = fr.Element

// RandomScalar draws a uniformly random element of Fr using r as the sole
// source of entropy. The library never reaches for crypto/rand itself:
// every caller of this package supplies its own reader.
func RandomScalar(r io.Reader) (Scalar, error) {
	var buf [fr.Bytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Scalar{}, err
	}
	var s Scalar
	s.SetBytes(buf[:])
	return s, nil
}

// ScalarFromUint64 builds a small scalar, used for participant/share
// indices and powers-of-x accumulators.
func ScalarFromUint64(v uint64) Scalar {
	var s Scalar
	s.SetUint64(v)
	return s
}

// WipeScalar overwrites a scalar's backing limbs with zero. fr.Element is a
// plain [4]uint64 array, so this is a direct, allocation-free memset.
func WipeScalar(s *Scalar) {
	for i := range s {
		s[i] = 0
	}
}

// SecretPoly is a polynomial over Fr whose coefficients must be wiped once
// the caller is done with it — the constant term is, for the lifetime of
// the struct, either the shared DKG secret or an update-vector root zero,
// both sensitive. Go has no destructor to zeroize on scope exit, so
// callers must `defer p.Zeroize()` immediately after construction.
type SecretPoly struct {
	Coeffs []Scalar
}

// NewSecretPoly samples a random polynomial of the given degree and then
// overwrites its constant term with constantTerm.
func NewSecretPoly(r io.Reader, degree int, constantTerm Scalar) (*SecretPoly, error) {
	coeffs := make([]Scalar, degree+1)
	for i := range coeffs {
		c, err := RandomScalar(r)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	coeffs[0] = constantTerm
	return &SecretPoly{Coeffs: coeffs}, nil
}

// Zeroize overwrites every coefficient with zero bytes.
func (p *SecretPoly) Zeroize() {
	for i := range p.Coeffs {
		WipeScalar(&p.Coeffs[i])
	}
}

// EvaluateAt evaluates the polynomial at x using Horner's method.
func (p *SecretPoly) EvaluateAt(x Scalar) Scalar {
	return EvaluatePolynomial(p.Coeffs, x)
}

// EvaluatePolynomial evaluates coeffs (ascending degree order) at x via
// Horner's method.
func EvaluatePolynomial(coeffs []Scalar, x Scalar) Scalar {
	result := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		result.Mul(&result, &x)
		result.Add(&result, &coeffs[i])
	}
	return result
}

// RandomPolynomialWithRoot samples a degree-`degree` polynomial whose
// constant term is set so that the polynomial evaluates to zero at root.
// Shared by share refresh (root = 0) and share recovery (root = x_r).
func RandomPolynomialWithRoot(r io.Reader, degree int, root Scalar) (*SecretPoly, error) {
	coeffs := make([]Scalar, degree+1)
	var zero Scalar
	coeffs[0] = zero
	for i := 1; i < len(coeffs); i++ {
		c, err := RandomScalar(r)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	evalAtRoot := EvaluatePolynomial(coeffs, root)
	var newConstant Scalar
	newConstant.Neg(&evalAtRoot)
	coeffs[0] = newConstant
	return &SecretPoly{Coeffs: coeffs}, nil
}
