package tcl

import (
	"errors"
	"strings"
)

type Kind int

var (
	ErrNestingTooDeep = errors.New("list nesting too deep")
)

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindBool
	KindList
)

// Value is one encodable value: a tagged union discriminated by Kind.
// Exactly one payload field is meaningful for a given Kind.
type Value struct {
	Kind
	Text  string
	Int   int64
	Float float64
	Flag  bool
	List  []*Value
}

// String renders the value as a single list element, quoted as needed.
// A KindList value renders as one braced element, not as a bare list.
func (v *Value) String() string {
	var sb strings.Builder

	err := LimitedEncoder.appendElement(&sb, v, 0)
	if err != nil {
		return "!!(" + err.Error() + ")!!"
	}

	return sb.String()
}
