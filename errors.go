// Package dkgcore is the cryptographic core of a publicly verifiable
// distributed key generation (PVSS-DKG) and threshold public-key
// encryption (TPKE) library over BLS12-381. This file collects the
// error kinds shared across the pvss, tpke and dshare
// subpackages; each is a concrete struct rather than a sentinel, so
// callers can recover the offending index or count without string
// matching.
package dkgcore

import "fmt"

// InsufficientValidatorsError reports that a transcript produced fewer
// encrypted shares than the validator set it was built against.
type InsufficientValidatorsError struct {
	Actual, Expected int
}

func (e *InsufficientValidatorsError) Error() string {
	return fmt.Sprintf("tpke: insufficient validators: got %d shares, expected %d", e.Actual, e.Expected)
}

// DuplicatedShareIndexError reports that two validators in a DKG
// context were assigned the same share index.
type DuplicatedShareIndexError struct {
	Index int
}

func (e *DuplicatedShareIndexError) Error() string {
	return fmt.Sprintf("tpke: duplicated share index %d", e.Index)
}

// InvalidShareIndexError reports a share index outside [0, n).
type InvalidShareIndexError struct {
	Index int
}

func (e *InvalidShareIndexError) Error() string {
	return fmt.Sprintf("tpke: invalid share index %d", e.Index)
}

// NoTranscriptsToAggregateError reports that Aggregate was called with
// an empty transcript list.
type NoTranscriptsToAggregateError struct{}

func (e *NoTranscriptsToAggregateError) Error() string {
	return "tpke: no transcripts to aggregate"
}

// InvalidTranscriptAggregateError reports that an aggregated
// transcript failed to verify, optionally naming a constituent
// transcript that failed full verification on its own.
type InvalidTranscriptAggregateError struct {
	// OffendingIndex is the position within the aggregated set of a
	// constituent that failed full verification, or -1 if unknown.
	OffendingIndex int
}

func (e *InvalidTranscriptAggregateError) Error() string {
	if e.OffendingIndex < 0 {
		return "tpke: invalid transcript aggregate"
	}
	return fmt.Sprintf("tpke: invalid transcript aggregate: transcript %d failed full verification", e.OffendingIndex)
}

// CiphertextVerificationFailedError reports that a ciphertext's
// integrity check failed.
type CiphertextVerificationFailedError struct{}

func (e *CiphertextVerificationFailedError) Error() string {
	return "tpke: ciphertext verification failed"
}

// DecryptionShareVerificationFailedError reports that a decryption
// share failed its holder-side verification.
type DecryptionShareVerificationFailedError struct {
	DecrypterIndex int
}

func (e *DecryptionShareVerificationFailedError) Error() string {
	return fmt.Sprintf("tpke: decryption share verification failed for decrypter %d", e.DecrypterIndex)
}

// InvalidThresholdError reports a threshold outside [1, n].
type InvalidThresholdError struct {
	Threshold, ValidatorCount int
}

func (e *InvalidThresholdError) Error() string {
	return fmt.Sprintf("tpke: invalid threshold %d for %d validators", e.Threshold, e.ValidatorCount)
}
