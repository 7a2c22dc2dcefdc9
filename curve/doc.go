// Package curve adapts github.com/consensys/gnark-crypto's BLS12-381
// implementation into the small set of primitives the rest of this module
// needs: an evaluation domain shared by every transcript in a DKG instance,
// reader-seeded scalar sampling with explicit wiping, fixed-base
// multi-scalar multiplication, Lagrange coefficients, and the domain-
// separated hash into G2 used by the threshold ciphertext's integrity tag.
//
// This package does not reimplement pairing or field arithmetic — that is
// gnark-crypto's job. It exists because gnark-crypto, like most pairing
// libraries, gives you the group but not the DKG-shaped conveniences built
// on top of it.
package curve
