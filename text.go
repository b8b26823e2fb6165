package sqltypes

// Text is string that can be NULL. The zero value is NullText.
type Text struct {
	s     string
	valid bool
}

// NullText is Text that has no value.
var NullText = Text{}

// NewText returns non-null Text of s.
func NewText(s string) Text {
	return Text{s: s, valid: true}
}

// IsNull reports whether t has no value.
func (t Text) IsNull() bool { return !t.valid }

// Value returns string of t, or ErrNull if t is NullText.
func (t Text) Value() (string, error) {
	if !t.valid {
		return "", ErrNull
	}
	return t.s, nil
}

// String returns empty string for NullText.
func (t Text) String() string { return t.s }
