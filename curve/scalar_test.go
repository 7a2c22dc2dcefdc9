package curve

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomScalarDeterministicFromReader(t *testing.T) {
	seed := bytes.Repeat([]byte{0x11}, 64)
	s1, err := RandomScalar(bytes.NewReader(seed))
	require.NoError(t, err)
	s2, err := RandomScalar(bytes.NewReader(seed))
	require.NoError(t, err)
	require.True(t, s1.Equal(&s2))
}

func TestRandomScalarVariesWithReader(t *testing.T) {
	s1, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	s2, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	require.False(t, s1.Equal(&s2))
}

func TestWipeScalarZeroesLimbs(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	var zero Scalar
	require.False(t, s.Equal(&zero))
	WipeScalar(&s)
	require.True(t, s.Equal(&zero))
}

func TestEvaluatePolynomialMatchesDirectEvaluation(t *testing.T) {
	// p(x) = 3 + 2x + x^2
	coeffs := []Scalar{ScalarFromUint64(3), ScalarFromUint64(2), ScalarFromUint64(1)}
	x := ScalarFromUint64(5)
	got := EvaluatePolynomial(coeffs, x)

	want := ScalarFromUint64(3 + 2*5 + 5*5)
	require.True(t, got.Equal(&want))
}

func TestSecretPolyZeroizeClearsConstantTerm(t *testing.T) {
	constant, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	p, err := NewSecretPoly(rand.Reader, 3, constant)
	require.NoError(t, err)
	require.True(t, p.Coeffs[0].Equal(&constant))

	p.Zeroize()
	var zero Scalar
	for _, c := range p.Coeffs {
		require.True(t, c.Equal(&zero))
	}
}

func TestRandomPolynomialWithRootEvaluatesToZeroAtRoot(t *testing.T) {
	root, err := RandomScalar(rand.Reader)
	require.NoError(t, err)
	p, err := RandomPolynomialWithRoot(rand.Reader, 4, root)
	require.NoError(t, err)
	defer p.Zeroize()

	got := p.EvaluateAt(root)
	var zero Scalar
	require.True(t, got.Equal(&zero))
}
