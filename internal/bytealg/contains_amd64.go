//go:build !noasm && amd64

package bytealg

import (
	"bytes"

	"github.com/segmentio/asm/mem"
	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

// short haystacks are not worth the vector setup
const minVectorLen = 32

func containsByte(s []byte, c byte) bool {
	if hasAVX2 && len(s) >= minVectorLen {
		return mem.ContainsByte(s, c)
	}
	return bytes.IndexByte(s, c) >= 0
}
