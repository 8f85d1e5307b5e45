package tcl

import (
	"strconv"
	"strings"
)

// DefaultMaxDepth bounds list recursion for LimitedEncoder. The reference
// behavior is unbounded; the limit exists so that pathologically deep input
// fails with ErrNestingTooDeep instead of exhausting the stack.
const DefaultMaxDepth = 1000

type Encoder interface {
	EncodeList(values ...*Value) (s string, err error)
}

type encoder struct {
	maxDepth int
}

var LimitedEncoder = encoder{maxDepth: DefaultMaxDepth}
var UnboundedEncoder = encoder{maxDepth: 0}

var _ Encoder = UnboundedEncoder

// EncodeList encodes values as one space-joined list using LimitedEncoder.
// The result, scanned back by a conforming list splitter, yields exactly one
// element string per value.
func EncodeList(values ...*Value) (s string, err error) {
	return LimitedEncoder.EncodeList(values...)
}

func MustEncodeList(values ...*Value) (s string) {
	var err error
	s, err = LimitedEncoder.EncodeList(values...)
	if err != nil {
		panic(err)
	}
	return s
}

func (e encoder) EncodeList(values ...*Value) (s string, err error) {
	var sb strings.Builder

	err = e.appendList(&sb, values, 0)
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (e encoder) appendList(sb *strings.Builder, values []*Value, depth int) (err error) {
	if e.maxDepth > 0 && depth >= e.maxDepth {
		return ErrNestingTooDeep
	}

	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		err = e.appendElement(sb, v, depth)
		if err != nil {
			return
		}
	}

	return
}

func (e encoder) appendElement(sb *strings.Builder, v *Value, depth int) (err error) {
	if v == nil {
		// a nil value still occupies a field
		sb.WriteString("{}")
		return
	}

	switch v.Kind {
	case KindText:
		sb.WriteString(QuoteElement(v.Text))
		return
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.Int, 10))
		return
	case KindFloat:
		// Go's default shortest form; NaN and infinities stringify as
		// "NaN", "+Inf", "-Inf" and do not round-trip across hosts
		sb.WriteString(strconv.FormatFloat(v.Float, 'g', -1, 64))
		return
	case KindBool:
		if v.Flag {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		return
	case KindList:
		var inner strings.Builder
		err = e.appendList(&inner, v.List, depth+1)
		if err != nil {
			return
		}
		sb.WriteString(quoteListElement(inner.String()))
		return
	}

	return
}
