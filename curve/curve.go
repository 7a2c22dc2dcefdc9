package curve

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1, G2 and GT name the pairing group elements this module passes around.
// They are gnark-crypto's own affine types; no wrapping is introduced
// because the scheme is bilinear and needs G1, G2 and GT simultaneously,
// which a single-group abstraction cannot express.
type (
	G1 = bls12381.G1Affine
	G2 = bls12381.G2Affine
	GT = bls12381.GT
)

// Generator1 returns the canonical base point g of G1.
func Generator1() G1 {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

// Generator2 returns the canonical base point h of G2.
func Generator2() G2 {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

// NegatedGenerator1 returns -g in G1, used by the ciphertext integrity
// check and decryption-share verification as the second leg of a
// multi-pairing equation.
func NegatedGenerator1() G1 {
	g := Generator1()
	var neg G1
	neg.Neg(&g)
	return neg
}

// Pairing computes e(p, q) in GT.
func Pairing(p G1, q G2) (GT, error) {
	return bls12381.Pair([]G1{p}, []G2{q})
}

// PairingCheck reports whether the product of e(p[i], q[i]) over all i
// equals 1 in GT. It is the multi-pairing primitive every integrity check
// in this module (ciphertext validity, decryption-share correctness) is
// built from, since it lets the two pairings in an equation like
// e(U, T) == e(g, W) be folded into a single check against the identity:
// e(U, T) * e(-g, W) == 1.
func PairingCheck(p []G1, q []G2) (bool, error) {
	return bls12381.PairingCheck(p, q)
}

// AddG1 returns a+b in G1.
func AddG1(a, b G1) G1 {
	var r G1
	r.Add(&a, &b)
	return r
}

// AddG2 returns a+b in G2.
func AddG2(a, b G2) G2 {
	var r G2
	r.Add(&a, &b)
	return r
}

// IsIdentityG1 reports whether p is the G1 point at infinity.
func IsIdentityG1(p G1) bool {
	return p.IsInfinity()
}

// IsIdentityG2 reports whether p is the G2 point at infinity.
func IsIdentityG2(p G2) bool {
	return p.IsInfinity()
}
