package charset

import (
	"strings"
)

// Unicode code points for the five explicit formatting characters CapRTL's
// "_x" tokens stand in for, since none of them has an ASCII-typeable glyph.
const (
	lre = '‪'
	rle = '‫'
	pdf = '‬'
	lro = '‭'
	rlo = '‮'
)

var capRTLTokens = map[string]rune{
	"_>": lre,
	"_<": rle,
	"_+": lro,
	"_-": rlo,
	"_o": pdf,
}

var capRTLTokensReverse = map[rune]string{
	lre: "_>",
	rle: "_<",
	lro: "_+",
	rlo: "_-",
	pdf: "_o",
}

// capRTLCharset implements FriBidi's CapRTL debug convention: lowercase
// ASCII letters are Latin (strong L), uppercase ASCII letters decode into
// the Hebrew block (strong R) so the ordinary Unicode classifier needs no
// special-casing, digits and ASCII punctuation pass through to their
// natural EN/WS/ON/CS/ES classes, and the five two-character "_x" tokens
// stand for the explicit formatting codes.
type capRTLCharset struct{}

func (capRTLCharset) Name() string { return "caprtl" }

func (capRTLCharset) Decode(s string) ([]rune, error) {
	out := make([]rune, 0, len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '_' && i+1 < len(runes) {
			if r, ok := capRTLTokens[string(runes[i:i+2])]; ok {
				out = append(out, r)
				i++
				continue
			}
		}
		if runes[i] >= 'A' && runes[i] <= 'Z' {
			out = append(out, 'א'+(runes[i]-'A'))
			continue
		}
		out = append(out, runes[i])
	}
	return out, nil
}

func (capRTLCharset) Encode(rs []rune) (string, error) {
	var b strings.Builder
	for _, r := range rs {
		if tok, ok := capRTLTokensReverse[r]; ok {
			b.WriteString(tok)
			continue
		}
		if r >= 'א' && r <= 'א'+25 {
			b.WriteRune('A' + (r - 'א'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

func init() {
	register(capRTLCharset{})
}
