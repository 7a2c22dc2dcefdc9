package curve

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// tagHashDST is the domain-separation tag for the hash-to-G2 used by the
// ciphertext integrity tag, kept distinct from any other hash-to-curve
// use so the same (U, aad) pair can never collide across components.
var tagHashDST = []byte("DKGCORE-TPKE-TAG-V1_XMD:SHA-256_SSWU_RO_")

// HashToTagG2 hashes msg into G2 under this module's fixed ciphertext-tag
// domain-separation tag.
func HashToTagG2(msg []byte) (G2, error) {
	return bls12381.HashToG2(msg, tagHashDST)
}
