package aes

import "encoding/binary"

// The portable backend. Schedules are produced in the same byte layout
// as the AES-NI backend, so a schedule expanded on one path can be
// consumed by the other and the two can be diffed directly in tests.
//
// T-table lookups here are indexed by secret-dependent bytes and are
// not cache-timing resistant; see the package comment.

// subw applies the forward S-box to each byte of w.
func subw(w uint32) uint32 {
	return uint32(sbox0[w>>24])<<24 |
		uint32(sbox0[w>>16&0xff])<<16 |
		uint32(sbox0[w>>8&0xff])<<8 |
		uint32(sbox0[w&0xff])
}

// rotw rotates w left by one byte.
func rotw(w uint32) uint32 { return w<<8 | w>>24 }

// invMixWord applies InvMixColumns to one round-key word. Feeding the
// forward S-box output through the td tables cancels the InvSubBytes
// folded into them, leaving the pure linear transform.
func invMixWord(w uint32) uint32 {
	return td0[sbox0[w>>24]] ^
		td1[sbox0[w>>16&0xff]] ^
		td2[sbox0[w>>8&0xff]] ^
		td3[sbox0[w&0xff]]
}

// expandScheduleGeneric fills s.sched from key using the FIPS-197
// Figure 11 recurrence, then appends the inverse-mixed decryption
// round keys when a full schedule was requested.
func expandScheduleGeneric(s *Schedule, key []byte) {
	nk := len(key) / 4
	n := 4 * (s.rounds + 1)

	var w [60]uint32
	for i := 0; i < nk; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	for i := nk; i < n; i++ {
		t := w[i-1]
		if i%nk == 0 {
			t = subw(rotw(t)) ^ uint32(rcon[i/nk-1])<<24
		} else if nk == 8 && i%nk == 4 {
			t = subw(t)
		}
		w[i] = w[i-nk] ^ t
	}
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(s.sched[4*i:], w[i])
	}

	if !s.full {
		return
	}
	// Decryption entries: InvMixColumns of encryption round keys Nr-1
	// down to 1, in that order. Round keys 0 and Nr are shared with
	// encryption and stay where they are.
	o := (s.rounds + 1) * BlockSize
	for r := s.rounds - 1; r >= 1; r-- {
		for j := 0; j < 4; j++ {
			binary.BigEndian.PutUint32(s.sched[o:], invMixWord(w[4*r+j]))
			o += 4
		}
	}
}

// encryptBlockGeneric encrypts one block from src into dst. Reads of
// src complete before any write to dst, so src and dst may alias
// exactly.
func encryptBlockGeneric(s *Schedule, dst, src []byte) {
	xk := s.sched[:]

	s0 := binary.BigEndian.Uint32(src[0:4]) ^ binary.BigEndian.Uint32(xk[0:4])
	s1 := binary.BigEndian.Uint32(src[4:8]) ^ binary.BigEndian.Uint32(xk[4:8])
	s2 := binary.BigEndian.Uint32(src[8:12]) ^ binary.BigEndian.Uint32(xk[8:12])
	s3 := binary.BigEndian.Uint32(src[12:16]) ^ binary.BigEndian.Uint32(xk[12:16])

	var t0, t1, t2, t3 uint32
	k := BlockSize
	for r := 1; r < s.rounds; r++ {
		t0 = binary.BigEndian.Uint32(xk[k:]) ^ te0[uint8(s0>>24)] ^ te1[uint8(s1>>16)] ^ te2[uint8(s2>>8)] ^ te3[uint8(s3)]
		t1 = binary.BigEndian.Uint32(xk[k+4:]) ^ te0[uint8(s1>>24)] ^ te1[uint8(s2>>16)] ^ te2[uint8(s3>>8)] ^ te3[uint8(s0)]
		t2 = binary.BigEndian.Uint32(xk[k+8:]) ^ te0[uint8(s2>>24)] ^ te1[uint8(s3>>16)] ^ te2[uint8(s0>>8)] ^ te3[uint8(s1)]
		t3 = binary.BigEndian.Uint32(xk[k+12:]) ^ te0[uint8(s3>>24)] ^ te1[uint8(s0>>16)] ^ te2[uint8(s1>>8)] ^ te3[uint8(s2)]
		k += BlockSize
		s0, s1, s2, s3 = t0, t1, t2, t3
	}

	// Final round: SubBytes and ShiftRows only, no MixColumns.
	s0 = uint32(sbox0[t0>>24])<<24 | uint32(sbox0[t1>>16&0xff])<<16 | uint32(sbox0[t2>>8&0xff])<<8 | uint32(sbox0[t3&0xff])
	s1 = uint32(sbox0[t1>>24])<<24 | uint32(sbox0[t2>>16&0xff])<<16 | uint32(sbox0[t3>>8&0xff])<<8 | uint32(sbox0[t0&0xff])
	s2 = uint32(sbox0[t2>>24])<<24 | uint32(sbox0[t3>>16&0xff])<<16 | uint32(sbox0[t0>>8&0xff])<<8 | uint32(sbox0[t1&0xff])
	s3 = uint32(sbox0[t3>>24])<<24 | uint32(sbox0[t0>>16&0xff])<<16 | uint32(sbox0[t1>>8&0xff])<<8 | uint32(sbox0[t2&0xff])

	s0 ^= binary.BigEndian.Uint32(xk[k:])
	s1 ^= binary.BigEndian.Uint32(xk[k+4:])
	s2 ^= binary.BigEndian.Uint32(xk[k+8:])
	s3 ^= binary.BigEndian.Uint32(xk[k+12:])

	binary.BigEndian.PutUint32(dst[0:4], s0)
	binary.BigEndian.PutUint32(dst[4:8], s1)
	binary.BigEndian.PutUint32(dst[8:12], s2)
	binary.BigEndian.PutUint32(dst[12:16], s3)
}

// decryptBlockGeneric decrypts one block from src into dst using the
// equivalent inverse cipher: the first round-key xor uses encryption
// round key Nr, the interior rounds walk the inverse-mixed entries at
// schedule indices Nr+1..2Nr-1 in increasing order, and the final
// round uses encryption round key 0 unchanged.
func decryptBlockGeneric(s *Schedule, dst, src []byte) {
	xk := s.sched[:]

	k := s.rounds * BlockSize
	s0 := binary.BigEndian.Uint32(src[0:4]) ^ binary.BigEndian.Uint32(xk[k:])
	s1 := binary.BigEndian.Uint32(src[4:8]) ^ binary.BigEndian.Uint32(xk[k+4:])
	s2 := binary.BigEndian.Uint32(src[8:12]) ^ binary.BigEndian.Uint32(xk[k+8:])
	s3 := binary.BigEndian.Uint32(src[12:16]) ^ binary.BigEndian.Uint32(xk[k+12:])

	var t0, t1, t2, t3 uint32
	k = (s.rounds + 1) * BlockSize
	for r := 1; r < s.rounds; r++ {
		t0 = binary.BigEndian.Uint32(xk[k:]) ^ td0[uint8(s0>>24)] ^ td1[uint8(s3>>16)] ^ td2[uint8(s2>>8)] ^ td3[uint8(s1)]
		t1 = binary.BigEndian.Uint32(xk[k+4:]) ^ td0[uint8(s1>>24)] ^ td1[uint8(s0>>16)] ^ td2[uint8(s3>>8)] ^ td3[uint8(s2)]
		t2 = binary.BigEndian.Uint32(xk[k+8:]) ^ td0[uint8(s2>>24)] ^ td1[uint8(s1>>16)] ^ td2[uint8(s0>>8)] ^ td3[uint8(s3)]
		t3 = binary.BigEndian.Uint32(xk[k+12:]) ^ td0[uint8(s3>>24)] ^ td1[uint8(s2>>16)] ^ td2[uint8(s1>>8)] ^ td3[uint8(s0)]
		k += BlockSize
		s0, s1, s2, s3 = t0, t1, t2, t3
	}

	// Final round: InvSubBytes and InvShiftRows only.
	s0 = uint32(sbox1[t0>>24])<<24 | uint32(sbox1[t3>>16&0xff])<<16 | uint32(sbox1[t2>>8&0xff])<<8 | uint32(sbox1[t1&0xff])
	s1 = uint32(sbox1[t1>>24])<<24 | uint32(sbox1[t0>>16&0xff])<<16 | uint32(sbox1[t3>>8&0xff])<<8 | uint32(sbox1[t2&0xff])
	s2 = uint32(sbox1[t2>>24])<<24 | uint32(sbox1[t1>>16&0xff])<<16 | uint32(sbox1[t0>>8&0xff])<<8 | uint32(sbox1[t3&0xff])
	s3 = uint32(sbox1[t3>>24])<<24 | uint32(sbox1[t2>>16&0xff])<<16 | uint32(sbox1[t1>>8&0xff])<<8 | uint32(sbox1[t0&0xff])

	s0 ^= binary.BigEndian.Uint32(xk[0:4])
	s1 ^= binary.BigEndian.Uint32(xk[4:8])
	s2 ^= binary.BigEndian.Uint32(xk[8:12])
	s3 ^= binary.BigEndian.Uint32(xk[12:16])

	binary.BigEndian.PutUint32(dst[0:4], s0)
	binary.BigEndian.PutUint32(dst[4:8], s1)
	binary.BigEndian.PutUint32(dst[8:12], s2)
	binary.BigEndian.PutUint32(dst[12:16], s3)
}

func encryptBlocksGeneric(s *Schedule, dst, src []byte) {
	for len(src) >= BlockSize {
		encryptBlockGeneric(s, dst[:BlockSize], src[:BlockSize])
		src = src[BlockSize:]
		dst = dst[BlockSize:]
	}
}

func decryptBlocksGeneric(s *Schedule, dst, src []byte) {
	for len(src) >= BlockSize {
		decryptBlockGeneric(s, dst[:BlockSize], src[:BlockSize])
		src = src[BlockSize:]
		dst = dst[BlockSize:]
	}
}
