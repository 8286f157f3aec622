package charset

type utf8Charset struct{}

func (utf8Charset) Name() string { return "utf8" }

func (utf8Charset) Decode(s string) ([]rune, error) {
	return []rune(s), nil
}

func (utf8Charset) Encode(rs []rune) (string, error) {
	return string(rs), nil
}

func init() {
	register(utf8Charset{})
}
