package blzio

import (
	lzf "github.com/zhuyie/golzf"
)

// VerifyAgainstLZF runs an independent LZF compression pass over the
// same payload bat-lz just parsed and logs a size comparison. It never
// fails the run: LZF and BAT-LZ are different cost models (byte-count
// vs. chain-depth bound), so the comparison is informational, the same
// spirit as the teacher's own use of golzf as a library dependency
// rather than a correctness oracle.
func VerifyAgainstLZF(progress *Progress, payload []byte, phraseCount int) {
	out := make([]byte, len(payload)+len(payload)/2+16)
	n, err := lzf.Compress(payload, out)
	if err != nil {
		progress.log.Printf("lzf cross-check skipped: %v", err)
		return
	}
	progress.log.Printf("lzf cross-check: %d bytes -> %d bytes (%d batlz phrases)",
		len(payload), n, phraseCount)
}
