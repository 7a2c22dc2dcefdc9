package curve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairingBilinearity(t *testing.T) {
	a := ScalarFromUint64(7)
	b := ScalarFromUint64(11)

	p := ScalarMulG1(Generator1(), a)
	q := ScalarMulG2(Generator2(), b)

	lhs, err := Pairing(p, q)
	require.NoError(t, err)

	var ab Scalar
	ab.Mul(&a, &b)
	rhs, err := Pairing(Generator1(), ScalarMulG2(Generator2(), ab))
	require.NoError(t, err)

	require.True(t, lhs.Equal(&rhs))
}

func TestPairingCheckDetectsMismatch(t *testing.T) {
	g := Generator1()
	h := Generator2()

	ok, err := PairingCheck([]G1{g, NegatedGenerator1()}, []G2{h, h})
	require.NoError(t, err)
	require.True(t, ok, "e(g,h)*e(-g,h) must equal 1")

	bad, err := PairingCheck([]G1{g, g}, []G2{h, h})
	require.NoError(t, err)
	require.False(t, bad)
}

func TestEncodeDecodeG1RoundTrips(t *testing.T) {
	p := ScalarMulG1(Generator1(), ScalarFromUint64(99))
	data := EncodeG1(p)
	got, err := DecodeG1(data)
	require.NoError(t, err)
	require.True(t, got.Equal(&p))
}

func TestEncodeDecodeScalarRoundTrips(t *testing.T) {
	s := ScalarFromUint64(123456789)
	data := EncodeScalar(s)
	got, err := DecodeScalar(data)
	require.NoError(t, err)
	require.True(t, got.Equal(&s))
}

func TestHashToTagG2IsDeterministic(t *testing.T) {
	msg := []byte("commitment-bytes||aad-bytes")
	p1, err := HashToTagG2(msg)
	require.NoError(t, err)
	p2, err := HashToTagG2(msg)
	require.NoError(t, err)
	require.True(t, p1.Equal(&p2))
}
