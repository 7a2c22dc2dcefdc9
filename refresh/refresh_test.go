package refresh

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkgcore/tpke/curve"
)

// dealSharesAndSecret builds n toy private key shares Z_i = h^{phi(omega_i)}
// for a random degree-(t-1) polynomial phi, standing in for the shares a
// full PVSS-DKG round would have produced.
func dealSharesAndSecret(t *testing.T, n, threshold int) (*curve.Domain, []curve.G2, curve.Scalar) {
	t.Helper()
	domain, err := curve.NewDomain(n)
	require.NoError(t, err)

	secret, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	poly, err := curve.NewSecretPoly(rand.Reader, threshold-1, secret)
	require.NoError(t, err)
	defer poly.Zeroize()

	shares := make([]curve.G2, n)
	for i := 0; i < n; i++ {
		e := poly.EvaluateAt(domain.Point(i))
		shares[i] = curve.ScalarMulG2(curve.Generator2(), e)
	}
	return domain, shares, secret
}

func TestRefreshRoundPreservesMasterSecret(t *testing.T) {
	n, threshold := 7, 4
	domain, shares, secret := dealSharesAndSecret(t, n, threshold)

	// Every participant prepares an update vector rooted at 0 and sends
	// updates[i] to participant i; each participant sums what it receives.
	updateVectors := make([][]curve.G2, n)
	for j := 0; j < n; j++ {
		updates, err := PrepareUpdatesForRefresh(domain, curve.Generator2(), threshold, rand.Reader)
		require.NoError(t, err)
		updateVectors[j] = updates
	}

	refreshed := make([]curve.G2, n)
	for i := 0; i < n; i++ {
		var deltas []curve.G2
		for j := 0; j < n; j++ {
			deltas = append(deltas, updateVectors[j][i])
		}
		refreshed[i] = ApplyUpdates(shares[i], deltas)
	}

	var zero curve.Scalar
	zero.SetZero()

	points := []curve.Scalar{domain.Point(0), domain.Point(1), domain.Point(2), domain.Point(3)}
	subset := []curve.G2{refreshed[0], refreshed[1], refreshed[2], refreshed[3]}
	recovered := RecoverShare(zero, points, subset)

	want := curve.ScalarMulG2(curve.Generator2(), secret)
	require.True(t, recovered.Equal(&want))

	points2 := []curve.Scalar{domain.Point(3), domain.Point(4), domain.Point(5), domain.Point(6)}
	subset2 := []curve.G2{refreshed[3], refreshed[4], refreshed[5], refreshed[6]}
	recovered2 := RecoverShare(zero, points2, subset2)
	require.True(t, recovered2.Equal(&want))
}

func TestRefreshRoundWithFewerThanThresholdSharesDoesNotRecoverSecret(t *testing.T) {
	n, threshold := 7, 4
	domain, shares, secret := dealSharesAndSecret(t, n, threshold)

	var zero curve.Scalar
	zero.SetZero()
	points := []curve.Scalar{domain.Point(0), domain.Point(1), domain.Point(2)}
	subset := []curve.G2{shares[0], shares[1], shares[2]}
	recovered := RecoverShare(zero, points, subset)

	want := curve.ScalarMulG2(curve.Generator2(), secret)
	require.False(t, recovered.Equal(&want))
}

func TestRecoveryAtOriginalDomainPointReproducesOriginalShare(t *testing.T) {
	n, threshold := 11, 7
	domain, shares, _ := dealSharesAndSecret(t, n, threshold)

	removed := n - 1
	remaining := shares[:removed]
	remainingPoints := make([]curve.Scalar, removed)
	for i := 0; i < removed; i++ {
		remainingPoints[i] = domain.Point(i)
	}

	target := domain.Point(removed)

	updateVectors := make([][]curve.G2, removed)
	for j := 0; j < removed; j++ {
		updates, err := PrepareUpdatesForRecovery(domain, curve.Generator2(), target, threshold, rand.Reader)
		require.NoError(t, err)
		updateVectors[j] = updates
	}

	updatedShares := make([]curve.G2, removed)
	for i := 0; i < removed; i++ {
		var deltas []curve.G2
		for j := 0; j < removed; j++ {
			deltas = append(deltas, updateVectors[j][i])
		}
		updatedShares[i] = ApplyUpdates(remaining[i], deltas)
	}

	recoveredShare := RecoverShare(target, remainingPoints[:threshold], updatedShares[:threshold])
	require.True(t, recoveredShare.Equal(&shares[removed]))
}

func TestRecoveryAtFreshPointExtendsSharingToMasterSecret(t *testing.T) {
	n, threshold := 11, 7
	domain, shares, secret := dealSharesAndSecret(t, n, threshold)

	removed := n - 1
	remaining := shares[:removed]
	remainingPoints := make([]curve.Scalar, removed)
	for i := 0; i < removed; i++ {
		remainingPoints[i] = domain.Point(i)
	}

	xr, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)

	updateVectors := make([][]curve.G2, removed)
	for j := 0; j < removed; j++ {
		updates, err := PrepareUpdatesForRecovery(domain, curve.Generator2(), xr, threshold, rand.Reader)
		require.NoError(t, err)
		updateVectors[j] = updates
	}

	updatedShares := make([]curve.G2, removed)
	for i := 0; i < removed; i++ {
		var deltas []curve.G2
		for j := 0; j < removed; j++ {
			deltas = append(deltas, updateVectors[j][i])
		}
		updatedShares[i] = ApplyUpdates(remaining[i], deltas)
	}

	newShare := RecoverShare(xr, remainingPoints[:threshold], updatedShares[:threshold])

	points := append([]curve.Scalar{}, remainingPoints[:threshold-1]...)
	points = append(points, xr)
	values := append([]curve.G2{}, remaining[:threshold-1]...)
	values = append(values, newShare)

	var zero curve.Scalar
	zero.SetZero()
	recoveredSecret := RecoverShare(zero, points, values)

	want := curve.ScalarMulG2(curve.Generator2(), secret)
	require.True(t, recoveredSecret.Equal(&want))
}
