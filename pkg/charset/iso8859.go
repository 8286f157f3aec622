package charset

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// charmapCharset wraps one of golang.org/x/text/encoding/charmap's fixed
// 8-bit encodings, the same pairing FriBidi's own fribidi_char_sets.c uses
// for ISO-8859-6 (Arabic) and ISO-8859-8 (Hebrew).
type charmapCharset struct {
	name string
	enc  *encoding.Encoder
	dec  *encoding.Decoder
}

func newCharmapCharset(name string, cm *charmap.Charmap) charmapCharset {
	return charmapCharset{name: name, enc: cm.NewEncoder(), dec: cm.NewDecoder()}
}

func (c charmapCharset) Name() string { return c.name }

func (c charmapCharset) Decode(s string) ([]rune, error) {
	out, err := c.dec.String(s)
	if err != nil {
		return nil, err
	}
	return []rune(out), nil
}

func (c charmapCharset) Encode(rs []rune) (string, error) {
	return c.enc.String(string(rs))
}

func init() {
	register(newCharmapCharset("iso-8859-6", charmap.ISO8859_6))
	register(newCharmapCharset("iso-8859-8", charmap.ISO8859_8))
}
