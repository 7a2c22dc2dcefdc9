package curve

import "math/big"

// MulGT returns a*b in GT, the multiplicative combination used to
// interpolate decryption shares "in the exponent".
func MulGT(a, b GT) GT {
	var r GT
	r.Mul(&a, &b)
	return r
}

// ExpGT returns a^s in GT for a scalar s ∈ Fr.
func ExpGT(a GT, s Scalar) GT {
	var bi big.Int
	s.BigInt(&bi)
	var r GT
	r.Exp(a, &bi)
	return r
}

// OneGT returns the multiplicative identity of GT.
func OneGT() GT {
	var r GT
	r.SetOne()
	return r
}
