// Package charset implements the text transcoders the CLI and test suite
// use to get bytes in and out of the bidi pipeline's native []rune form.
package charset

import "fmt"

// Charset decodes between a wire encoding and Unicode code points, and back.
type Charset interface {
	Name() string
	Decode(s string) ([]rune, error)
	Encode(rs []rune) (string, error)
}

var registry = map[string]Charset{}

func register(c Charset) {
	registry[c.Name()] = c
}

// Lookup returns the registered Charset with the given name, or an error
// naming the unknown charset.
func Lookup(name string) (Charset, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("charset: unknown charset %q", name)
	}
	return c, nil
}

// Names returns every registered charset name, for CLI help text.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
