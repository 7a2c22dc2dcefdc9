package curve

import "fmt"

// EncodeG1 returns the canonical uncompressed encoding of p.
func EncodeG1(p G1) []byte {
	b := p.RawBytes()
	return b[:]
}

// DecodeG1 parses bytes produced by EncodeG1.
func DecodeG1(data []byte) (G1, error) {
	var p G1
	if len(data) != len(p.RawBytes()) {
		return G1{}, fmt.Errorf("curve: invalid G1 encoding length %d", len(data))
	}
	var buf [96]byte
	copy(buf[:], data)
	if _, err := p.SetBytes(buf[:]); err != nil {
		return G1{}, fmt.Errorf("curve: decode G1: %w", err)
	}
	return p, nil
}

// EncodeG2 returns the canonical uncompressed encoding of p.
func EncodeG2(p G2) []byte {
	b := p.RawBytes()
	return b[:]
}

// DecodeG2 parses bytes produced by EncodeG2.
func DecodeG2(data []byte) (G2, error) {
	var p G2
	if len(data) != len(p.RawBytes()) {
		return G2{}, fmt.Errorf("curve: invalid G2 encoding length %d", len(data))
	}
	var buf [192]byte
	copy(buf[:], data)
	if _, err := p.SetBytes(buf[:]); err != nil {
		return G2{}, fmt.Errorf("curve: decode G2: %w", err)
	}
	return p, nil
}

// EncodeGT returns the canonical byte encoding of a GT element, used to
// derive the TPKE symmetric key from a pairing target.
func EncodeGT(s GT) []byte {
	b := s.Bytes()
	return b[:]
}

// EncodeScalar returns the canonical big-endian encoding of s.
func EncodeScalar(s Scalar) []byte {
	b := s.Bytes()
	return b[:]
}

// DecodeScalar parses bytes produced by EncodeScalar. Unlike RandomScalar,
// this does not reduce modulo r — out-of-range input is rejected.
func DecodeScalar(data []byte) (Scalar, error) {
	if len(data) != 32 {
		return Scalar{}, fmt.Errorf("curve: invalid scalar encoding length %d", len(data))
	}
	var s Scalar
	var buf [32]byte
	copy(buf[:], data)
	if err := s.SetBytesCanonical(buf[:]); err != nil {
		return Scalar{}, fmt.Errorf("curve: decode scalar: %w", err)
	}
	return s, nil
}
