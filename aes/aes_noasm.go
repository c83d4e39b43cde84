//go:build !(amd64 && gc) || purego

package aes

var haveAES = false

func expandSchedule(s *Schedule, key []byte) {
	expandScheduleGeneric(s, key)
}

func encryptBlocks(s *Schedule, dst, src []byte) {
	encryptBlocksGeneric(s, dst, src)
}

func decryptBlocks(s *Schedule, dst, src []byte) {
	decryptBlocksGeneric(s, dst, src)
}
