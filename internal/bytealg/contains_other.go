//go:build noasm || !amd64

package bytealg

import "bytes"

func containsByte(s []byte, c byte) bool {
	return bytes.IndexByte(s, c) >= 0
}
