package pvss

import (
	tpke "github.com/dkgcore/tpke"
	"github.com/dkgcore/tpke/curve"
)

// Validator is a DKG participant's public descriptor: its canonical
// position in the evaluation domain, the G2 key transcripts encrypt
// shares to, and (once published) its long-term signing/verification
// key. Duplicated or out-of-range share indices are rejected at
// Context construction, not deferred to verification time.
type Validator struct {
	ShareIndex    int
	EncryptionKey curve.G2
	PublicKey     curve.G2
}

// Context is the minimal DKG-context surface this package needs:
// threshold, shared evaluation domain, and validator set. It holds no
// transport or validator-set-protocol state — assigning share indices
// and keys to validators is the caller's responsibility.
type Context struct {
	Threshold  int
	Domain     *curve.Domain
	Validators []Validator

	// G and H are the fixed group generators g ∈ G1, h ∈ G2. NewContext
	// defaults them to the curve's canonical generators; they're
	// exported so a test harness can substitute a different basis
	// without touching protocol logic.
	G curve.G1
	H curve.G2
}

// NewContext validates and builds a Context. It enforces the core
// well-formedness invariants at construction time: threshold in
// [1, n], unique share indices in [0, n).
func NewContext(threshold int, domain *curve.Domain, validators []Validator) (*Context, error) {
	n := len(validators)
	if threshold < 1 || threshold > n {
		return nil, &tpke.InvalidThresholdError{Threshold: threshold, ValidatorCount: n}
	}
	seen := make(map[int]bool, n)
	for _, v := range validators {
		if v.ShareIndex < 0 || v.ShareIndex >= n {
			return nil, &tpke.InvalidShareIndexError{Index: v.ShareIndex}
		}
		if seen[v.ShareIndex] {
			return nil, &tpke.DuplicatedShareIndexError{Index: v.ShareIndex}
		}
		seen[v.ShareIndex] = true
	}
	return &Context{
		Threshold:  threshold,
		Domain:     domain,
		Validators: validators,
		G:          curve.Generator1(),
		H:          curve.Generator2(),
	}, nil
}

// N returns the number of validators in the DKG instance.
func (c *Context) N() int {
	return len(c.Validators)
}
