// Package pvss implements publicly verifiable secret sharing with
// non-interactive aggregation over BLS12-381. Each validator deals a
// transcript that commits to a fresh random polynomial via a Feldman
// commitment in G1 and encrypts per-validator share-evaluations into
// G2 against each validator's encryption key. Anyone holding the
// public validator set can verify a transcript without interaction;
// transcripts from a qualifying subset sum into a single aggregated
// transcript whose constant term is the joint threshold secret.
package pvss
