package pvss

import (
	"io"

	"github.com/hashicorp/go-multierror"

	tpke "github.com/dkgcore/tpke"
	"github.com/dkgcore/tpke/curve"
)

// Tag discriminates an unaggregated transcript (one dealer's
// contribution) from an aggregated one (the pointwise sum of a
// qualifying set). Both have the same shape and only Tag differs — a
// plain discriminant rather than a distinct Go type. No function in this
// package checks Tag: Aggregate and DecryptPrivateKeyShare accept a
// transcript of either kind.
type Tag int

const (
	Unaggregated Tag = iota
	Aggregated
)

// Transcript is a dealer's published PVSS contribution: a Feldman
// commitment to a fresh polynomial, one encrypted share-evaluation per
// validator, and a proof of knowledge of the polynomial's constant
// term.
type Transcript struct {
	Coeffs []curve.G1
	Shares []curve.G2
	Sigma  curve.G2
	Tag    Tag
}

// New deals a fresh transcript sharing the secret s. The random
// polynomial's non-constant coefficients are drawn from r;
// its backing memory is wiped before New returns, on every exit path.
func New(s curve.Scalar, ctx *Context, r io.Reader) (*Transcript, error) {
	poly, err := curve.NewSecretPoly(r, ctx.Threshold-1, s)
	if err != nil {
		return nil, err
	}
	defer poly.Zeroize()

	coeffs := curve.CommitPolynomial(ctx.G, poly.Coeffs)

	evals, err := ctx.Domain.EvaluateScalars(poly.Coeffs)
	if err != nil {
		return nil, err
	}

	n := ctx.N()
	shares := make([]curve.G2, n)
	assigned := 0
	for _, v := range ctx.Validators {
		shares[v.ShareIndex] = curve.ScalarMulG2(v.EncryptionKey, evals[v.ShareIndex])
		assigned++
	}
	if assigned != n {
		return nil, &tpke.InsufficientValidatorsError{Actual: assigned, Expected: n}
	}

	sigma := curve.ScalarMulG2(ctx.H, s)

	return &Transcript{Coeffs: coeffs, Shares: shares, Sigma: sigma, Tag: Unaggregated}, nil
}

// VerifyOptimistic checks only the proof of knowledge of the free
// coefficient: e(F_0, h) == e(g, sigma). It runs in O(1) pairings and
// does not detect share tampering — it is a cheap filter before
// aggregation, never a final verifier.
func (t *Transcript) VerifyOptimistic(ctx *Context) bool {
	ok, err := curve.PairingCheck(
		[]curve.G1{t.Coeffs[0], curve.NegatedGenerator1()},
		[]curve.G2{ctx.H, t.Sigma},
	)
	return err == nil && ok
}

// VerifyFull checks every per-validator encrypted share against the
// Feldman commitment, catching any tampered share entry. It
// additionally cross-checks each validator's domain-point commitment
// via direct exponent evaluation against the FFT-derived one, closing
// the exponent-consistency gap a Feldman commitment alone leaves open.
func (t *Transcript) VerifyFull(ctx *Context) bool {
	n := ctx.N()
	if len(t.Shares) != n {
		return false
	}
	seen := make(map[int]bool, n)
	for _, v := range ctx.Validators {
		if seen[v.ShareIndex] {
			return false
		}
		seen[v.ShareIndex] = true
	}

	commitmentsByFFT, err := ctx.Domain.EvaluateG1(t.Coeffs)
	if err != nil {
		return false
	}

	for _, v := range ctx.Validators {
		point := ctx.Domain.Point(v.ShareIndex)
		direct := curve.EvaluateCommitmentAt(t.Coeffs, point)
		if !direct.Equal(&commitmentsByFFT[v.ShareIndex]) {
			return false
		}

		var negCommitment curve.G1
		negCommitment.Neg(&commitmentsByFFT[v.ShareIndex])
		ok, err := curve.PairingCheck(
			[]curve.G1{ctx.G, negCommitment},
			[]curve.G2{t.Shares[v.ShareIndex], v.EncryptionKey},
		)
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// Aggregate pointwise-sums a non-empty set of fully-valid unaggregated
// transcripts into a single aggregated transcript whose constant term
// is the sum of the constituents'.
func Aggregate(transcripts []*Transcript) (*Transcript, error) {
	if len(transcripts) == 0 {
		return nil, &tpke.NoTranscriptsToAggregateError{}
	}

	first := transcripts[0]
	coeffs := make([]curve.G1, len(first.Coeffs))
	copy(coeffs, first.Coeffs)
	shares := make([]curve.G2, len(first.Shares))
	copy(shares, first.Shares)
	sigma := first.Sigma

	for _, tr := range transcripts[1:] {
		for i := range coeffs {
			coeffs[i] = curve.AddG1(coeffs[i], tr.Coeffs[i])
		}
		for i := range shares {
			shares[i] = curve.AddG2(shares[i], tr.Shares[i])
		}
		sigma = curve.AddG2(sigma, tr.Sigma)
	}

	return &Transcript{Coeffs: coeffs, Shares: shares, Sigma: sigma, Tag: Aggregated}, nil
}

// VerifyAggregation accepts an aggregated transcript iff full
// verification passes and its constant term equals the sum of the
// constituent transcripts' constant terms — the second check that
// binds the aggregate to the claimed input set. When a constituent
// fails full verification on its own, the returned error names it; a
// sum mismatch with every constituent individually valid cannot be
// attributed to one transcript and is reported without an offending
// index.
func VerifyAggregation(agg *Transcript, constituents []*Transcript, ctx *Context) error {
	if !agg.VerifyFull(ctx) {
		return &tpke.InvalidTranscriptAggregateError{OffendingIndex: -1}
	}

	var errs *multierror.Error
	for i, tr := range constituents {
		if !tr.VerifyFull(ctx) {
			errs = multierror.Append(errs, &tpke.InvalidTranscriptAggregateError{OffendingIndex: i})
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}

	var sum curve.G1
	sum = constituents[0].Coeffs[0]
	for _, tr := range constituents[1:] {
		sum = curve.AddG1(sum, tr.Coeffs[0])
	}
	if !sum.Equal(&agg.Coeffs[0]) {
		return &tpke.InvalidTranscriptAggregateError{OffendingIndex: -1}
	}
	return nil
}

// DecryptPrivateKeyShare derives validator shareIndex's private key
// share Z_i = Y_i · dk^{-1} from an aggregated transcript. dk == 0 is
// impossible in well-formed key material; the inverse is computed
// unconditionally.
func DecryptPrivateKeyShare(agg *Transcript, dk curve.Scalar, shareIndex int) (curve.G2, error) {
	if shareIndex < 0 || shareIndex >= len(agg.Shares) {
		return curve.G2{}, &tpke.InvalidShareIndexError{Index: shareIndex}
	}
	var dkInv curve.Scalar
	dkInv.Inverse(&dk)
	return curve.ScalarMulG2(agg.Shares[shareIndex], dkInv), nil
}
