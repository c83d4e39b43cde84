// Package aes implements the AES (Rijndael) block cipher for 128-,
// 192- and 256-bit keys.
//
// The package is a raw block-cipher primitive: it expands keys into
// round-key schedules and transforms single 16-byte blocks or
// contiguous batches of blocks. Modes of operation (CBC, CTR, GCM,
// ...) are out of scope and belong to the caller.
//
// On amd64 processors with the AES-NI and SSE2 extensions the cipher
// runs on dedicated instructions. Everywhere else it falls back to a
// portable table-driven implementation. Both paths produce identical
// schedules and identical ciphertext for every input.
//
// The portable fallback uses in-memory lookup tables and is NOT
// constant-time: it may be vulnerable to cache-timing attacks. Callers
// that need timing resistance must ensure the hardware path is in use
// (see HardwareAccelerated) or choose a different implementation.
//
//	https://csrc.nist.gov/publications/fips/fips197/fips-197.pdf
package aes

import (
	"bytes"
	"strconv"

	"github.com/ericlagergren/subtle"
)

const (
	// BlockSize is the AES block size in bytes. Round keys are one
	// block each.
	BlockSize = 16

	// KeySize128 is the size in bytes of an AES-128 key.
	KeySize128 = 16
	// KeySize192 is the size in bytes of an AES-192 key.
	KeySize192 = 24
	// KeySize256 is the size in bytes of an AES-256 key.
	KeySize256 = 32

	// ScheduleSize128 is the size in bytes of an encryption-only
	// AES-128 schedule: 11 round keys.
	ScheduleSize128 = 176
	// ScheduleSize192 is the size in bytes of an encryption-only
	// AES-192 schedule: 13 round keys.
	ScheduleSize192 = 208
	// ScheduleSize256 is the size in bytes of an encryption-only
	// AES-256 schedule: 15 round keys.
	ScheduleSize256 = 240

	// FullScheduleSize128 is the size in bytes of a full AES-128
	// schedule: 20 round keys.
	FullScheduleSize128 = 320
	// FullScheduleSize192 is the size in bytes of a full AES-192
	// schedule: 24 round keys.
	FullScheduleSize192 = 384
	// FullScheduleSize256 is the size in bytes of a full AES-256
	// schedule: 28 round keys.
	FullScheduleSize256 = 448
)

// KeySizeError is returned when a key is not exactly 16, 24, or 32
// bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes: invalid key size " + strconv.Itoa(int(k))
}

// Schedule holds the round keys expanded from one key.
//
// A Schedule is immutable once expanded and may be read concurrently
// by any number of goroutines; the cost of expansion amortizes over
// every block transformed with it.
//
// Round keys are stored contiguously in FIPS-197 byte order. An
// encryption-only schedule holds round keys 0..Nr. A full schedule
// additionally holds, at indices Nr+1..2Nr-1, the InvMixColumns
// transform of encryption round keys Nr-1 down to 1, which is what the
// equivalent inverse cipher consumes during decryption. Round keys 0
// and Nr are shared verbatim by both directions and are not
// duplicated.
type Schedule struct {
	sched  [FullScheduleSize256]byte
	rounds int
	full   bool
	hw     bool
}

// ExpandKey expands key into an encryption-only schedule. The key must
// be 16, 24, or 32 bytes, selecting AES-128, AES-192, or AES-256.
//
// A schedule produced by ExpandKey cannot decrypt; use ExpandKeyFull
// if both directions are needed.
func ExpandKey(key []byte) (*Schedule, error) {
	return newSchedule(key, false)
}

// ExpandKeyFull expands key into a full schedule holding both the
// encryption round keys and the inverse-mixed decryption round keys.
// The key must be 16, 24, or 32 bytes, selecting AES-128, AES-192, or
// AES-256.
func ExpandKeyFull(key []byte) (*Schedule, error) {
	return newSchedule(key, true)
}

func newSchedule(key []byte, full bool) (*Schedule, error) {
	switch len(key) {
	case KeySize128, KeySize192, KeySize256:
	default:
		return nil, KeySizeError(len(key))
	}
	s := &Schedule{
		rounds: len(key)/4 + 6,
		full:   full,
		hw:     haveAES,
	}
	expandSchedule(s, key)
	return s, nil
}

// Rounds returns the round count Nr: 10, 12, or 14.
func (s *Schedule) Rounds() int {
	return s.rounds
}

// Full reports whether s holds decryption round keys.
func (s *Schedule) Full() bool {
	return s.full
}

// Size returns the schedule length in bytes: 176, 208, or 240 for an
// encryption-only schedule, 320, 384, or 448 for a full one.
func (s *Schedule) Size() int {
	if s.full {
		return 2 * s.rounds * BlockSize
	}
	return (s.rounds + 1) * BlockSize
}

// Bytes returns a copy of the raw round-key bytes.
func (s *Schedule) Bytes() []byte {
	b := make([]byte, s.Size())
	copy(b, s.sched[:])
	return b
}

// EncryptBlock encrypts the first BlockSize bytes of src into dst.
// dst and src may point at the same storage; any other overlap panics.
func (s *Schedule) EncryptBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	if subtle.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("aes: invalid buffer overlap")
	}
	encryptBlocks(s, dst[:BlockSize], src[:BlockSize])
}

// DecryptBlock decrypts the first BlockSize bytes of src into dst.
// The schedule must have been produced by ExpandKeyFull. dst and src
// may point at the same storage; any other overlap panics.
func (s *Schedule) DecryptBlock(dst, src []byte) {
	if !s.full {
		panic("aes: decryption requires a full schedule")
	}
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	if subtle.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("aes: invalid buffer overlap")
	}
	decryptBlocks(s, dst[:BlockSize], src[:BlockSize])
}

// EncryptBlocks encrypts src, a contiguous run of whole blocks, into
// dst. len(dst) must equal len(src) and len(src) must be a multiple of
// BlockSize; zero length is a no-op. Blocks are independent: the
// result is identical to calling EncryptBlock on each block in turn.
// dst and src may point at the same storage; any other overlap panics.
func (s *Schedule) EncryptBlocks(dst, src []byte) {
	if len(src)%BlockSize != 0 {
		panic("aes: input not a whole number of blocks")
	}
	if len(dst) != len(src) {
		panic("aes: output length does not match input")
	}
	if subtle.InexactOverlap(dst, src) {
		panic("aes: invalid buffer overlap")
	}
	if len(src) == 0 {
		return
	}
	encryptBlocks(s, dst, src)
}

// DecryptBlocks decrypts src, a contiguous run of whole blocks, into
// dst. The schedule must have been produced by ExpandKeyFull. len(dst)
// must equal len(src) and len(src) must be a multiple of BlockSize;
// zero length is a no-op. dst and src may point at the same storage;
// any other overlap panics.
func (s *Schedule) DecryptBlocks(dst, src []byte) {
	if !s.full {
		panic("aes: decryption requires a full schedule")
	}
	if len(src)%BlockSize != 0 {
		panic("aes: input not a whole number of blocks")
	}
	if len(dst) != len(src) {
		panic("aes: output length does not match input")
	}
	if subtle.InexactOverlap(dst, src) {
		panic("aes: invalid buffer overlap")
	}
	if len(src) == 0 {
		return
	}
	decryptBlocks(s, dst, src)
}

// HardwareAccelerated reports whether the processor's AES instructions
// are in use. The answer is fixed for the lifetime of the process.
func HardwareAccelerated() bool {
	return haveAES
}

// SelfTestResult reports which legs of SelfTest failed. It is a
// bitmask: SelfTestEncryptFailed and SelfTestDecryptFailed may be set
// independently.
type SelfTestResult int

const (
	SelfTestOK            SelfTestResult = 0
	SelfTestEncryptFailed SelfTestResult = 1
	SelfTestDecryptFailed SelfTestResult = 2
	SelfTestBothFailed                   = SelfTestEncryptFailed | SelfTestDecryptFailed
)

func (r SelfTestResult) String() string {
	switch r {
	case SelfTestOK:
		return "ok"
	case SelfTestEncryptFailed:
		return "encrypt mismatch"
	case SelfTestDecryptFailed:
		return "decrypt mismatch"
	case SelfTestBothFailed:
		return "encrypt and decrypt mismatch"
	}
	return "unknown(" + strconv.Itoa(int(r)) + ")"
}

// SelfTest runs the FIPS-197 section B AES-128 known-answer vector
// through key expansion, encryption, and decryption, and reports which
// directions, if any, disagreed with the published values.
func SelfTest() SelfTestResult {
	key := []byte{
		0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6,
		0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c,
	}
	plaintext := []byte{
		0x32, 0x43, 0xf6, 0xa8, 0x88, 0x5a, 0x30, 0x8d,
		0x31, 0x31, 0x98, 0xa2, 0xe0, 0x37, 0x07, 0x34,
	}
	ciphertext := []byte{
		0x39, 0x25, 0x84, 0x1d, 0x02, 0xdc, 0x09, 0xfb,
		0xdc, 0x11, 0x85, 0x97, 0x19, 0x6a, 0x0b, 0x32,
	}

	s, err := ExpandKeyFull(key)
	if err != nil {
		return SelfTestBothFailed
	}

	var gotCt, gotPt [BlockSize]byte
	s.EncryptBlock(gotCt[:], plaintext)
	s.DecryptBlock(gotPt[:], ciphertext)

	r := SelfTestOK
	if !bytes.Equal(gotCt[:], ciphertext) {
		r |= SelfTestEncryptFailed
	}
	if !bytes.Equal(gotPt[:], plaintext) {
		r |= SelfTestDecryptFailed
	}
	return r
}
