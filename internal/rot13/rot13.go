// Package rot13 implements the ROT13 substitution cipher.
//
// ASCII letters are shifted 13 places within their own case; every other
// character is left untouched. Applying the cipher twice yields the input.
package rot13

import "golang.org/x/text/transform"

const (
	shift        = 13
	alphabetSize = 26
)

// Rune maps a single character.
func Rune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+shift)%alphabetSize
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+shift)%alphabetSize
	default:
		return r
	}
}

// String returns s with every ASCII letter rotated.
//
// Bytes outside valid UTF-8 sequences are preserved as-is.
func String(s string) string {
	// Transformer never fails, so the error is always nil.
	out, _, _ := transform.String(Transformer{}, s)
	return out
}

// Transformer applies ROT13 to a byte stream.
//
// Every ASCII letter is a single byte and no byte of a multi-byte UTF-8
// sequence falls in the ASCII range, so the mapping is done byte by byte.
type Transformer struct{ transform.NopResetter }

var _ transform.SpanningTransformer = Transformer{}

func (Transformer) Transform(dst, src []byte, _ bool) (nDst, nSrc int, err error) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
		err = transform.ErrShortDst
	}
	for i := 0; i < n; i++ {
		dst[i] = rotateByte(src[i])
	}
	return n, n, err
}

// Span reports the prefix of src that is left unchanged by the cipher.
func (Transformer) Span(src []byte, _ bool) (n int, err error) {
	for n < len(src) {
		if rotateByte(src[n]) != src[n] {
			return n, transform.ErrEndOfSpan
		}
		n++
	}
	return n, nil
}

func rotateByte(b byte) byte {
	if b >= 0x80 {
		return b
	}
	return byte(Rune(rune(b)))
}
