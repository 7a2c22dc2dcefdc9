package dshare

import (
	"io"

	"github.com/hashicorp/go-multierror"

	tpke "github.com/dkgcore/tpke"
	"github.com/dkgcore/tpke/curve"
	tpkeciphertext "github.com/dkgcore/tpke/tpke"
)

// SimpleShare is a validator's plain decryption share: D_i = e(U, Z_i),
// alongside a checksum that lets a combiner verify it without learning
// Z_i.
type SimpleShare struct {
	DecrypterIndex int
	Share          curve.GT
	Checksum       curve.G1
}

// PrecomputedShare folds a Lagrange coefficient into the share itself
// (D_i = e(λ_i·U, Z_i)) so that combining t shares is a plain GT
// product rather than a scalar-weighted one.
type PrecomputedShare struct {
	DecrypterIndex int
	Share          curve.GT
	Checksum       curve.G1
}

// CreateSimple builds decrypterIndex's simple decryption share,
// verifying the ciphertext's integrity first.
func CreateSimple(c *tpkeciphertext.Ciphertext, aad []byte, decrypterIndex int, privateShare curve.G2, dk curve.Scalar) (*SimpleShare, error) {
	if err := tpkeciphertext.CheckValidity(c, aad); err != nil {
		return nil, err
	}
	return CreateSimpleUnchecked(c, decrypterIndex, privateShare, dk), nil
}

// CreateSimpleUnchecked builds a simple decryption share without first
// checking ciphertext validity, for callers that have already verified
// it (or verify in bulk via BatchVerify).
func CreateSimpleUnchecked(c *tpkeciphertext.Ciphertext, decrypterIndex int, privateShare curve.G2, dk curve.Scalar) *SimpleShare {
	d, _ := curve.Pairing(c.U, privateShare)
	var dkInv curve.Scalar
	dkInv.Inverse(&dk)
	checksum := curve.ScalarMulG1(c.U, dkInv)
	return &SimpleShare{DecrypterIndex: decrypterIndex, Share: d, Checksum: checksum}
}

// CreatePrecomputed builds decrypterIndex's Lagrange-folded share
// D_i = e(λ_i·U, Z_i), where lambda is the Lagrange basis at 0 for the
// set of decrypters' domain points.
func CreatePrecomputed(c *tpkeciphertext.Ciphertext, aad []byte, decrypterIndex int, privateShare curve.G2, dk curve.Scalar, lambda curve.Scalar) (*PrecomputedShare, error) {
	if err := tpkeciphertext.CheckValidity(c, aad); err != nil {
		return nil, err
	}
	scaledU := curve.ScalarMulG1(c.U, lambda)
	d, err := curve.Pairing(scaledU, privateShare)
	if err != nil {
		return nil, err
	}
	var dkInv curve.Scalar
	dkInv.Inverse(&dk)
	checksum := curve.ScalarMulG1(c.U, dkInv)
	return &PrecomputedShare{DecrypterIndex: decrypterIndex, Share: d, Checksum: checksum}, nil
}

// Verify checks a simple share against the aggregated transcript's
// published share entry transcriptShare (Y_i), the decrypter's
// long-term public key pk, and the fixed G2 generator h: (a)
// D_i == e(C_i, Y_i), binding the share to Z_i via U = g^r,
// Z_i = Y_i·dk_i^{-1}; (b) e(C_i, pk_i) == e(U, h), binding C_i to a
// true inverse-scalar multiple of U.
func Verify(share *SimpleShare, c *tpkeciphertext.Ciphertext, transcriptShare curve.G2, pk curve.G2) bool {
	lhs, err := curve.Pairing(share.Checksum, transcriptShare)
	if err != nil || !lhs.Equal(&share.Share) {
		return false
	}

	ok, err := curve.PairingCheck(
		[]curve.G1{share.Checksum, curve.NegatedGenerator1()},
		[]curve.G2{pk, curve.Generator2()},
	)
	return err == nil && ok
}

// CombineSimple interpolates t verified simple shares into the shared
// pairing target s = e(g,h)^{φ(0)}: ∏_j D_j^{λ_j(0)}, where λ_j(0) is
// the Lagrange coefficient at 0 for decrypter j's domain point.
func CombineSimple(shares []*SimpleShare, domainPoints []curve.Scalar) curve.GT {
	coeffs := curve.LagrangeCoefficientsAtZero(domainPoints)
	result := curve.OneGT()
	for i, s := range shares {
		result = curve.MulGT(result, curve.ExpGT(s.Share, coeffs[i]))
	}
	return result
}

// CombinePrecomputed interpolates t precomputed shares by straight GT
// product, since the Lagrange weight is already folded into each
// share at creation time.
func CombinePrecomputed(shares []*PrecomputedShare) curve.GT {
	result := curve.OneGT()
	for _, s := range shares {
		result = curve.MulGT(result, s.Share)
	}
	return result
}

// BatchVerify folds verification of many (ciphertext, share) pairs into
// two randomized checks: a product of n pairings compared against a
// weighted product of the shares, and a single multi-pairing for the
// checksums, amortizing cost across a stream of independent
// decryptions. Each pair is weighted by an independent fresh random
// scalar drawn from r; soundness rests on those scalars being
// unpredictable to whoever produced the shares. On failure it falls
// back to checking each pair individually so the caller still learns
// which decrypter was at fault.
func BatchVerify(ciphertexts []*tpkeciphertext.Ciphertext, shares []*SimpleShare, transcriptShares []curve.G2, pks []curve.G2, r io.Reader) error {
	n := len(shares)
	weights := make([]curve.Scalar, n)
	for i := range weights {
		w, err := curve.RandomScalar(r)
		if err != nil {
			return err
		}
		weights[i] = w
	}

	// Check (a), batched: Π e(w_i·C_i, Y_i) == Π D_i^{w_i}.
	lhsPoints := make([]curve.G1, 0, n+1)
	lhsTargets := make([]curve.G2, 0, n+1)
	rhs := curve.OneGT()
	for i := 0; i < n; i++ {
		lhsPoints = append(lhsPoints, curve.ScalarMulG1(shares[i].Checksum, weights[i]))
		lhsTargets = append(lhsTargets, transcriptShares[i])
		rhs = curve.MulGT(rhs, curve.ExpGT(shares[i].Share, weights[i]))
	}
	aPairing, err := curve.Pairing(lhsPoints[0], lhsTargets[0])
	if err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		next, err := curve.Pairing(lhsPoints[i], lhsTargets[i])
		if err != nil {
			return err
		}
		aPairing = curve.MulGT(aPairing, next)
	}
	aOK := aPairing.Equal(&rhs)

	// Check (b), batched: Π e(w_i·C_i, pk_i) · e(-Σ(w_i·U_i), h) == 1.
	// e(U_i, h)^{w_i} = e(w_i·U_i, h), and pairing is additive in its
	// first argument, so Σ_i w_i·U_i collapses the per-decrypter
	// ciphertexts into a single combined G1 point.
	var combinedU curve.G1
	combinedU.X.SetZero()
	combinedU.Y.SetZero()
	bPoints := make([]curve.G1, 0, n+1)
	bTargets := make([]curve.G2, 0, n+1)
	for i := 0; i < n; i++ {
		bPoints = append(bPoints, curve.ScalarMulG1(shares[i].Checksum, weights[i]))
		bTargets = append(bTargets, pks[i])
		combinedU = curve.AddG1(combinedU, curve.ScalarMulG1(ciphertexts[i].U, weights[i]))
	}
	var negCombinedU curve.G1
	negCombinedU.Neg(&combinedU)
	bPoints = append(bPoints, negCombinedU)
	bTargets = append(bTargets, curve.Generator2())
	bOK, err := curve.PairingCheck(bPoints, bTargets)
	if err != nil {
		return err
	}

	if aOK && bOK {
		return nil
	}

	var errs *multierror.Error
	for i := range ciphertexts {
		if !Verify(shares[i], ciphertexts[i], transcriptShares[i], pks[i]) {
			errs = multierror.Append(errs, &tpke.DecryptionShareVerificationFailedError{DecrypterIndex: shares[i].DecrypterIndex})
		}
	}
	return errs.ErrorOrNil()
}
