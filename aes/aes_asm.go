//go:build amd64 && gc && !purego

package aes

import "golang.org/x/sys/cpu"

// haveAES reports whether the AES-NI extension and the SSE2 baseline
// it builds on are both present (cpuid leaf 1: ECX bit 25, EDX bit
// 26). Evaluated once at process start; read-only afterwards.
var haveAES = cpu.X86.HasAES && cpu.X86.HasSSE2

func expandSchedule(s *Schedule, key []byte) {
	if s.hw {
		var dec *byte
		if s.full {
			dec = &s.sched[(s.rounds+1)*BlockSize]
		}
		expandKeyAsm(s.rounds, &key[0], &s.sched[0], dec)
	} else {
		expandScheduleGeneric(s, key)
	}
}

func encryptBlocks(s *Schedule, dst, src []byte) {
	if s.hw {
		encryptBlocksAsm(s.rounds, &s.sched[0], &dst[0], &src[0], len(src)/BlockSize)
	} else {
		encryptBlocksGeneric(s, dst, src)
	}
}

func decryptBlocks(s *Schedule, dst, src []byte) {
	if s.hw {
		decryptBlocksAsm(s.rounds, &s.sched[0], &dst[0], &src[0], len(src)/BlockSize)
	} else {
		decryptBlocksGeneric(s, dst, src)
	}
}
