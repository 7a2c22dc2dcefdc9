package refresh

import (
	"io"

	"github.com/dkgcore/tpke/curve"
)

// PrepareUpdates samples a degree-(threshold-1) polynomial d with
// d(root) = 0 and returns the update vector {h^{d(ω_i)}}_{i=1..n}, one
// entry per domain point. Refresh callers pass root = 0; recovery
// callers pass root = x_r, the target evaluation point.
func PrepareUpdates(domain *curve.Domain, h curve.G2, root curve.Scalar, threshold int, r io.Reader) ([]curve.G2, error) {
	poly, err := curve.RandomPolynomialWithRoot(r, threshold-1, root)
	if err != nil {
		return nil, err
	}
	defer poly.Zeroize()

	evals, err := domain.EvaluateScalars(poly.Coeffs)
	if err != nil {
		return nil, err
	}

	updates := make([]curve.G2, len(evals))
	for i, e := range evals {
		updates[i] = curve.ScalarMulG2(h, e)
	}
	return updates, nil
}

// PrepareUpdatesForRefresh is PrepareUpdates with root = 0: the update
// polynomial vanishes at the constant term, so summing every
// participant's update preserves the shared secret at 0.
func PrepareUpdatesForRefresh(domain *curve.Domain, h curve.G2, threshold int, r io.Reader) ([]curve.G2, error) {
	var zero curve.Scalar
	zero.SetZero()
	return PrepareUpdates(domain, h, zero, threshold, r)
}

// PrepareUpdatesForRecovery is PrepareUpdates with root = xr: the
// update polynomial vanishes at the recovering participant's
// evaluation point, so the sum of updates at xr is zero and the
// updated shares interpolate to the original share value at xr. Their
// value at 0 is shifted by the sum of the update polynomials' constant
// terms, so they do not interpolate the original secret at 0.
func PrepareUpdatesForRecovery(domain *curve.Domain, h curve.G2, xr curve.Scalar, threshold int, r io.Reader) ([]curve.G2, error) {
	return PrepareUpdates(domain, h, xr, threshold, r)
}

// ApplyUpdates adds a set of update-vector contributions to a private
// key share: Z_i' = Z_i + Σ_j Δ_{j,i}. Update vectors are one-shot —
// callers must zero deltas after this call.
func ApplyUpdates(share curve.G2, deltas []curve.G2) curve.G2 {
	result := share
	for _, d := range deltas {
		result = curve.AddG2(result, d)
	}
	return result
}

// RecoverShare interpolates t updated private key shares at target,
// via Lagrange combination over their domain points. Passing target =
// 0 reconstructs the master secret (used to validate a refresh round);
// any other target reconstructs the share a validator at that domain
// point would hold. A single entry point serves both uses.
func RecoverShare(target curve.Scalar, domainPoints []curve.Scalar, shares []curve.G2) curve.G2 {
	return curve.InterpolateG2At(domainPoints, shares, target)
}
