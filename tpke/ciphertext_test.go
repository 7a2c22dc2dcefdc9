package tpke

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkgcore/tpke/curve"
)

func TestEncryptDecryptSymmetricRoundTrips(t *testing.T) {
	secret, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	pubkey := curve.ScalarMulG1(curve.Generator1(), secret)
	privateKey := curve.ScalarMulG2(curve.Generator2(), secret)

	msg := []byte("abc")
	aad := []byte("my-aad")

	c, err := Encrypt(msg, aad, pubkey, rand.Reader)
	require.NoError(t, err)
	require.NoError(t, CheckValidity(c, aad))

	got, err := DecryptSymmetric(c, aad, privateKey)
	require.NoError(t, err)
	require.Equal(t, msg, got)
}

func TestCheckValidityRejectsBitFlipInCiphertext(t *testing.T) {
	secret, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	pubkey := curve.ScalarMulG1(curve.Generator1(), secret)
	aad := []byte("my-aad")

	c, err := Encrypt([]byte("abc"), aad, pubkey, rand.Reader)
	require.NoError(t, err)

	c.V[0] ^= 0x01
	require.Error(t, CheckValidity(c, aad))
}

func TestCheckValidityRejectsAADMismatch(t *testing.T) {
	secret, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	pubkey := curve.ScalarMulG1(curve.Generator1(), secret)

	c, err := Encrypt([]byte("abc"), []byte("my-aad"), pubkey, rand.Reader)
	require.NoError(t, err)

	require.Error(t, CheckValidity(c, []byte("other-aad")))
}

func TestDecryptWithSharedSecretRecoversPlaintext(t *testing.T) {
	secret, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	pubkey := curve.ScalarMulG1(curve.Generator1(), secret)
	aad := []byte("my-aad")

	c, err := Encrypt([]byte("abc"), aad, pubkey, rand.Reader)
	require.NoError(t, err)

	s, err := curve.Pairing(c.U, curve.ScalarMulG2(curve.Generator2(), secret))
	require.NoError(t, err)

	got, err := DecryptWithSharedSecret(c, aad, s)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), got)
}
