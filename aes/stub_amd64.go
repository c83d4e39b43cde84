//go:build gc && !purego

package aes

// expandKeyAsm expands key into enc using AESKEYGENASSIST. nr selects
// the variant (10, 12, or 14 rounds). If dec is non-nil it must point
// at the slot following encryption round key nr; the inverse-mixed
// copies of round keys nr-1..1 are written there via AESIMC.
//
//go:noescape
func expandKeyAsm(nr int, key *byte, enc *byte, dec *byte)

// encryptBlocksAsm encrypts n contiguous blocks from src into dst with
// the round keys at xk held in XMM registers across the whole batch.
//
//go:noescape
func encryptBlocksAsm(nr int, xk *byte, dst, src *byte, n int)

// decryptBlocksAsm decrypts n contiguous blocks from src into dst. xk
// must be a full schedule.
//
//go:noescape
func decryptBlocksAsm(nr int, xk *byte, dst, src *byte, n int)
