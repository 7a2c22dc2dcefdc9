package curve

import "math/big"

// ScalarMulG1 returns s*p in G1. gnark-crypto's ScalarMultiplication takes
// a big.Int, so the scalar is round-tripped through fr.Element's own
// canonical big.Int conversion rather than via byte encoding.
func ScalarMulG1(p G1, s Scalar) G1 {
	var bi big.Int
	s.BigInt(&bi)
	var r G1
	r.ScalarMultiplication(&p, &bi)
	return r
}

// ScalarMulG2 returns s*p in G2.
func ScalarMulG2(p G2, s Scalar) G2 {
	var bi big.Int
	s.BigInt(&bi)
	var r G2
	r.ScalarMultiplication(&p, &bi)
	return r
}

// FixedBaseMultiExpG1 returns, for each scalar, scalars[i]*base against
// the same fixed base point. gnark-crypto has no dedicated fixed-base
// MSM primitive, and the validator-set sizes this module targets (tens
// to low hundreds) don't justify a windowed Pippenger implementation —
// a plain per-scalar loop is what CommitPolynomial needs.
func FixedBaseMultiExpG1(base G1, scalars []Scalar) []G1 {
	results := make([]G1, len(scalars))
	for i, s := range scalars {
		results[i] = ScalarMulG1(base, s)
	}
	return results
}

// CommitPolynomial returns the Feldman commitment vector g^{a_0}, …,
// g^{a_d} for a polynomial's coefficients, the public half of a PVSS
// transcript.
func CommitPolynomial(base G1, coeffs []Scalar) []G1 {
	return FixedBaseMultiExpG1(base, coeffs)
}

// EvaluateCommitmentAt evaluates a Feldman commitment vector (G1 points
// standing in for a polynomial's coefficients in the exponent) at x via
// Horner's method, the same idiom EvaluatePolynomial uses over Fr. Used
// to cross-check the FFT-derived per-validator commitment independently
// of the FFT path — an exponent-consistency check a Feldman commitment
// otherwise leaves unverified.
func EvaluateCommitmentAt(coeffs []G1, x Scalar) G1 {
	acc := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = ScalarMulG1(acc, x)
		acc = AddG1(acc, coeffs[i])
	}
	return acc
}
