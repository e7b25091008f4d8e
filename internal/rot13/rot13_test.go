package rot13

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

func TestString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"hello", "uryyb"},
		{"HELLO", "URYYB"},
		{"Hello World", "Uryyb Jbeyq"},
		{"Hello, World!", "Uryyb, Jbeyq!"},
		{"Hello, 2023!", "Uryyb, 2023!"},
		{"123!@#", "123!@#"},
		{"@#$%^&*", "@#$%^&*"},
		{"aBcDeF", "nOpQrS"},
		{"abcdefghijklmnopqrstuvwxyz", "nopqrstuvwxyzabcdefghijklm"},
		{"ABCDEFGHIJKLMNOPQRSTUVWXYZ", "NOPQRSTUVWXYZABCDEFGHIJKLM"},
		{"héllo wörld", "uéyyb jöeyq"},
		{"日本語 abc", "日本語 nop"},
		{"tab\tnew\nline", "gno\tarj\nyvar"},
	}
	for _, c := range cases {
		if got := String(c.in); got != c.want {
			t.Errorf("String(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRune_InvolutionOnLetters(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		if got := Rune(Rune(r)); got != r {
			t.Errorf("Rune(Rune(%q)) = %q", r, got)
		}
		if Rune(r) == r {
			t.Errorf("Rune(%q) should not be a fixed point", r)
		}
	}
	for r := 'A'; r <= 'Z'; r++ {
		if got := Rune(Rune(r)); got != r {
			t.Errorf("Rune(Rune(%q)) = %q", r, got)
		}
	}
}

func TestRune_FixedPointsOnNonLetters(t *testing.T) {
	for r := rune(0); r < 0x250; r++ {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if got := Rune(r); got != r {
			t.Errorf("Rune(%U) = %U, want unchanged", r, got)
		}
	}
	for _, r := range []rune{'é', 'ß', 'Ω', '世', '🙂', utf8.RuneError} {
		if got := Rune(r); got != r {
			t.Errorf("Rune(%q) = %q, want unchanged", r, got)
		}
	}
}

func TestString_PreservesLengthAndInvolution(t *testing.T) {
	inputs := []string{
		"The quick brown fox",
		"The Quick Brown Fox Jumps Over The Lazy Dog.",
		"mixed 日本語 and ASCII, with émojis 🙂!",
		"\x00\x7f\xff invalid utf8 \xc3",
	}
	for _, in := range inputs {
		out := String(in)
		if len(out) != len(in) {
			t.Errorf("String(%q) changed byte length: %d -> %d", in, len(in), len(out))
		}
		if utf8.RuneCountInString(out) != utf8.RuneCountInString(in) {
			t.Errorf("String(%q) changed rune count", in)
		}
		if back := String(out); back != in {
			t.Errorf("String(String(%q)) = %q", in, back)
		}
	}
}

func TestTransformer_ChunkedMatchesString(t *testing.T) {
	in := "Hello, 世界! The quick brown fox jumps over the lazy dog."
	want := String(in)

	for size := 1; size <= 8; size++ {
		var out bytes.Buffer
		w := transform.NewWriter(&out, Transformer{})
		for i := 0; i < len(in); i += size {
			end := i + size
			if end > len(in) {
				end = len(in)
			}
			if _, err := w.Write([]byte(in[i:end])); err != nil {
				t.Fatalf("write chunk: %v", err)
			}
		}
		if err := w.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
		if out.String() != want {
			t.Fatalf("chunk size %d: got %q, want %q", size, out.String(), want)
		}
	}
}

func TestTransformer_ShortDst(t *testing.T) {
	dst := make([]byte, 3)
	nDst, nSrc, err := Transformer{}.Transform(dst, []byte("hello"), true)
	if err != transform.ErrShortDst {
		t.Fatalf("expected ErrShortDst, got %v", err)
	}
	if nDst != 3 || nSrc != 3 {
		t.Fatalf("expected 3/3, got %d/%d", nDst, nSrc)
	}
	if string(dst) != "ury" {
		t.Fatalf("expected ury, got %q", dst)
	}
}

func TestTransformer_Span(t *testing.T) {
	n, err := Transformer{}.Span([]byte("123, 世界"), true)
	if err != nil || n != len("123, 世界") {
		t.Fatalf("expected full span, got n=%d err=%v", n, err)
	}

	n, err = Transformer{}.Span([]byte("12a"), true)
	if err != transform.ErrEndOfSpan || n != 2 {
		t.Fatalf("expected span 2 with ErrEndOfSpan, got n=%d err=%v", n, err)
	}
}

func TestTransformer_ReaderRoundTrip(t *testing.T) {
	src := "Lbh penpxrq gur pbqr!"

	b, err := io.ReadAll(transform.NewReader(strings.NewReader(src), Transformer{}))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "You cracked the code!" {
		t.Fatalf("unexpected decode: %q", b)
	}

	b, err = io.ReadAll(transform.NewReader(transform.NewReader(strings.NewReader(src), Transformer{}), Transformer{}))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != src {
		t.Fatalf("double rot13 should round-trip, got %q", b)
	}
}
