package curve

// LagrangeCoefficientsAt returns, for each index i, the Lagrange basis
// polynomial L_i evaluated at z: L_i(z) = Π_{j≠i} (z - x_j) / (x_i - x_j).
// Generalized from "at 0" to an arbitrary evaluation point so the same
// routine serves both share combination (z = 0) and share recovery
// (z = x_r).
func LagrangeCoefficientsAt(points []Scalar, z Scalar) []Scalar {
	coeffs := make([]Scalar, len(points))
	for i, xi := range points {
		var num, den Scalar
		num.SetOne()
		den.SetOne()
		for j, xj := range points {
			if i == j {
				continue
			}
			var zMinusXj Scalar
			zMinusXj.Sub(&z, &xj)
			num.Mul(&num, &zMinusXj)

			var xiMinusXj Scalar
			xiMinusXj.Sub(&xi, &xj)
			den.Mul(&den, &xiMinusXj)
		}
		var denInv Scalar
		denInv.Inverse(&den)
		coeffs[i].Mul(&num, &denInv)
	}
	return coeffs
}

// LagrangeCoefficientsAtZero is the common case of LagrangeCoefficientsAt
// used to reconstruct a polynomial's constant term from n ≥ threshold
// evaluations — the share-combination step in both TPKE decryption and
// master-secret recovery.
func LagrangeCoefficientsAtZero(points []Scalar) []Scalar {
	var zero Scalar
	zero.SetZero()
	return LagrangeCoefficientsAt(points, zero)
}

// InterpolateScalarsAt combines values at their corresponding points into
// the value of the unique degree-(len-1) polynomial through them,
// evaluated at z.
func InterpolateScalarsAt(points, values []Scalar, z Scalar) Scalar {
	coeffs := LagrangeCoefficientsAt(points, z)
	var result Scalar
	result.SetZero()
	for i, v := range values {
		var term Scalar
		term.Mul(&v, &coeffs[i])
		result.Add(&result, &term)
	}
	return result
}

// InterpolateG1At combines G1 values the same way InterpolateScalarsAt
// does for scalars, via a fixed-base-free multiexp against the Lagrange
// coefficients.
func InterpolateG1At(points []Scalar, values []G1, z Scalar) G1 {
	coeffs := LagrangeCoefficientsAt(points, z)
	var acc G1
	acc.X.SetZero()
	acc.Y.SetZero()
	for i, v := range values {
		acc = AddG1(acc, ScalarMulG1(v, coeffs[i]))
	}
	return acc
}

// InterpolateG2At is InterpolateG1At's G2 counterpart, used to combine
// private key shares, which live in G2.
func InterpolateG2At(points []Scalar, values []G2, z Scalar) G2 {
	coeffs := LagrangeCoefficientsAt(points, z)
	var acc G2
	acc.X.SetZero()
	acc.Y.SetZero()
	for i, v := range values {
		acc = AddG2(acc, ScalarMulG2(v, coeffs[i]))
	}
	return acc
}
