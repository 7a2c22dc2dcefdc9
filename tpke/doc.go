// Package tpke implements the hybrid threshold ciphertext: a symmetric
// key derived from a pairing target, encrypted with ChaCha20-Poly1305,
// and a chosen-ciphertext integrity tag bound through a hash-to-G2.
// Decryption either uses a single recipient's private key or a
// recovered shared secret combined from t decryption shares.
package tpke
