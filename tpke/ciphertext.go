package tpke

import (
	"crypto/cipher"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	tpke "github.com/dkgcore/tpke"
	"github.com/dkgcore/tpke/curve"
)

// Ciphertext is the hybrid threshold ciphertext: U binds the encryption
// randomness r, V is the ChaCha20-Poly1305 output keyed off a pairing
// target, and W = r·H_G2(U‖V‖aad) lets anyone holding the public key
// check integrity without decrypting.
type Ciphertext struct {
	U curve.G1
	W curve.G2
	V []byte
}

// Encrypt builds a ciphertext for msg against the DKG public key
// pubkey = g^secret ∈ G1, binding aad into the integrity tag W.
func Encrypt(msg, aad []byte, pubkey curve.G1, r io.Reader) (*Ciphertext, error) {
	rho, err := curve.RandomScalar(r)
	if err != nil {
		return nil, err
	}

	sharedPoint := curve.ScalarMulG1(pubkey, rho)
	s, err := curve.Pairing(sharedPoint, curve.Generator2())
	if err != nil {
		return nil, err
	}

	u := curve.ScalarMulG1(curve.Generator1(), rho)

	aead, err := newAEAD(s)
	if err != nil {
		return nil, err
	}
	nonce := nonceFromCommitment(u)

	v := aead.Seal(nil, nonce, msg, nil)

	tag, err := tagHash(u, v, aad)
	if err != nil {
		return nil, err
	}
	w := curve.ScalarMulG2(tag, rho)

	return &Ciphertext{U: u, W: w, V: v}, nil
}

// CheckValidity accepts c iff e(U, H_G2(U‖V‖aad)) · e(-g, W) == 1.
// This does not require any secret material and can be run by any
// relay before forwarding a ciphertext.
func CheckValidity(c *Ciphertext, aad []byte) error {
	tag, err := tagHash(c.U, c.V, aad)
	if err != nil {
		return err
	}
	ok, err := curve.PairingCheck(
		[]curve.G1{c.U, curve.NegatedGenerator1()},
		[]curve.G2{tag, c.W},
	)
	if err != nil {
		return err
	}
	if !ok {
		return &tpke.CiphertextVerificationFailedError{}
	}
	return nil
}

// DecryptSymmetric verifies c's integrity and decrypts it using a
// known private key point privateKey = h^secret ∈ G2.
func DecryptSymmetric(c *Ciphertext, aad []byte, privateKey curve.G2) ([]byte, error) {
	if err := CheckValidity(c, aad); err != nil {
		return nil, err
	}
	s, err := curve.Pairing(c.U, privateKey)
	if err != nil {
		return nil, err
	}
	return decryptWithTarget(c, s)
}

// DecryptWithSharedSecret verifies c's integrity and decrypts it using
// an already-recovered pairing target s (the output of dshare combine).
func DecryptWithSharedSecret(c *Ciphertext, aad []byte, s curve.GT) ([]byte, error) {
	if err := CheckValidity(c, aad); err != nil {
		return nil, err
	}
	return decryptWithTarget(c, s)
}

func decryptWithTarget(c *Ciphertext, s curve.GT) ([]byte, error) {
	aead, err := newAEAD(s)
	if err != nil {
		return nil, err
	}
	nonce := nonceFromCommitment(c.U)
	return aead.Open(nil, nonce, c.V, nil)
}

func newAEAD(s curve.GT) (cipher.AEAD, error) {
	digest := sha256.Sum256(curve.EncodeGT(s))
	return chacha20poly1305.New(digest[:])
}

func nonceFromCommitment(u curve.G1) []byte {
	digest := sha256.Sum256(curve.EncodeG1(u))
	return digest[:chacha20poly1305.NonceSize]
}

func tagHash(u curve.G1, v, aad []byte) (curve.G2, error) {
	uBytes := curve.EncodeG1(u)
	msg := make([]byte, 0, len(uBytes)+len(v)+len(aad))
	msg = append(msg, uBytes...)
	msg = append(msg, v...)
	msg = append(msg, aad...)
	return curve.HashToTagG2(msg)
}
