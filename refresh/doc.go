// Package refresh implements the Share Update Engine: root-anchored
// update polynomials that let a validator cohort rotate private key
// shares (refresh, root = 0) or reconstruct a lost or new share at an
// arbitrary evaluation point (recovery, root = x_r) without
// reconstructing the master secret.
package refresh
