package aes

import "math/bits"

// AES works over GF(2⁸) with the reduction polynomial
// x⁸ + x⁴ + x³ + x + 1. Adding polynomials is xor; reducing mod poly
// is xor with poly whenever a 0x100 bit appears.
const poly = 1<<8 | 1<<4 | 1<<3 | 1<<1 | 1<<0

// mul multiplies b and c as GF(2) polynomials modulo poly.
func mul(b, c uint32) uint32 {
	i := b
	j := c
	s := uint32(0)
	for k := uint32(1); k < 0x100 && j != 0; k <<= 1 {
		if j&k != 0 {
			s ^= i
			j ^= k
		}
		i <<= 1
		if i&0x100 != 0 {
			i ^= poly
		}
	}
	return s
}

// rcon is the key-schedule round-constant sequence: 0x01 doubled in
// GF(2⁸) for each subsequent entry. AES-128 consumes all ten, AES-192
// the first eight, AES-256 the first seven.
var rcon = [10]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// sbox0 is the forward S-box, generated per FIPS-197 Figure 7: the
// multiplicative inverse in GF(2⁸) followed by the affine transform.
var sbox0 = func() (sbox [256]byte) {
	var p, q uint8 = 1, 1
	for {
		// p walks the multiplicative group via *3, q via /3, so q is
		// always the inverse of p.
		if p&0x80 != 0 {
			p ^= (p << 1) ^ 0x1b
		} else {
			p ^= p << 1
		}

		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		xformed := q ^ bits.RotateLeft8(q, 1) ^ bits.RotateLeft8(q, 2) ^
			bits.RotateLeft8(q, 3) ^ bits.RotateLeft8(q, 4)
		sbox[p] = xformed ^ 0x63

		if p == 1 {
			break
		}
	}

	// 0 has no inverse and is mapped by the affine constant alone.
	sbox[0] = 0x63
	return sbox
}()

// sbox1 is the inverse S-box.
var sbox1 = func() (inv [256]byte) {
	for i, v := range sbox0 {
		inv[v] = byte(i)
	}
	return inv
}()

// Encryption T-tables. te0[b] is the MixColumns contribution of S-box
// output sbox0[b] in column position 0; te1..te3 are byte rotations of
// te0 for the remaining positions.
var te0, te1, te2, te3 = func() (te0, te1, te2, te3 [256]uint32) {
	for i := 0; i < 256; i++ {
		s := uint32(sbox0[i])
		w := mul(s, 2)<<24 | s<<16 | s<<8 | mul(s, 3)
		te0[i] = w
		w = w>>8 | w<<24
		te1[i] = w
		w = w>>8 | w<<24
		te2[i] = w
		w = w>>8 | w<<24
		te3[i] = w
	}
	return
}()

// Decryption T-tables, folding InvSubBytes and InvMixColumns: the
// InvMixColumns matrix column is (0e, 09, 0d, 0b) applied to the
// inverse S-box output.
var td0, td1, td2, td3 = func() (td0, td1, td2, td3 [256]uint32) {
	for i := 0; i < 256; i++ {
		s := uint32(sbox1[i])
		w := mul(s, 0xe)<<24 | mul(s, 0x9)<<16 | mul(s, 0xd)<<8 | mul(s, 0xb)
		td0[i] = w
		w = w>>8 | w<<24
		td1[i] = w
		w = w>>8 | w<<24
		td2[i] = w
		w = w>>8 | w<<24
		td3[i] = w
	}
	return
}()
