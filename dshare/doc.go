// Package dshare implements the Decryption Share Engine: each
// validator produces a decryption share (simple or Lagrange-folded
// precomputed) plus a checksum proving it was derived honestly from
// its private key share, without revealing that share. A combiner
// verifies shares and interpolates them into the ciphertext's pairing
// target.
package dshare
