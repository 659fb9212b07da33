package jsontree

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrCircularValue is returned by JSON when the value graph reaches itself.
// Trees produced by the source parsers or the encode constructors can never
// be cyclic; only hand-assembled Object graphs can.
var ErrCircularValue = errors.New("jsontree: value contains a circular structure")

// JSON renders the value as JSON text. indent 0 produces a compact
// single-line form; indent > 0 pretty-prints with that many spaces per
// nesting level.
func (v Value) JSON(indent int) (string, error) {
	p := printer{indent: indent}
	if err := p.value(v, 0); err != nil {
		return "", err
	}
	return p.sb.String(), nil
}

// String renders the value compactly, for debugging. A cyclic graph prints
// a placeholder instead of failing.
func (v Value) String() string {
	s, err := v.JSON(0)
	if err != nil {
		return "<circular value>"
	}
	return s
}

type printer struct {
	sb      strings.Builder
	indent  int
	objSeen map[*Object]bool
	arrSeen map[*Value]bool
}

func (p *printer) value(v Value, depth int) error {
	switch v.kind {
	case KindNull:
		p.sb.WriteString("null")
	case KindBool:
		if v.b {
			p.sb.WriteString("true")
		} else {
			p.sb.WriteString("false")
		}
	case KindNumber:
		p.number(v.n)
	case KindString:
		p.str(v.s)
	case KindArray:
		return p.array(v.arr, depth)
	case KindObject:
		return p.object(v.obj, depth)
	}
	return nil
}

func (p *printer) array(elems []Value, depth int) error {
	if len(elems) == 0 {
		p.sb.WriteString("[]")
		return nil
	}
	id := &elems[0]
	if p.arrSeen[id] {
		return ErrCircularValue
	}
	if p.arrSeen == nil {
		p.arrSeen = map[*Value]bool{}
	}
	p.arrSeen[id] = true
	defer delete(p.arrSeen, id)

	p.sb.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			p.sb.WriteByte(',')
		}
		p.newlineIndent(depth + 1)
		if err := p.value(e, depth+1); err != nil {
			return err
		}
	}
	p.newlineIndent(depth)
	p.sb.WriteByte(']')
	return nil
}

func (p *printer) object(o *Object, depth int) error {
	if o.Len() == 0 {
		p.sb.WriteString("{}")
		return nil
	}
	if p.objSeen[o] {
		return ErrCircularValue
	}
	if p.objSeen == nil {
		p.objSeen = map[*Object]bool{}
	}
	p.objSeen[o] = true
	defer delete(p.objSeen, o)

	p.sb.WriteByte('{')
	for i := 0; i < o.Len(); i++ {
		if i > 0 {
			p.sb.WriteByte(',')
		}
		p.newlineIndent(depth + 1)
		k, v := o.At(i)
		p.str(k)
		p.sb.WriteByte(':')
		if p.indent > 0 {
			p.sb.WriteByte(' ')
		}
		if err := p.value(v, depth+1); err != nil {
			return err
		}
	}
	p.newlineIndent(depth)
	p.sb.WriteByte('}')
	return nil
}

func (p *printer) newlineIndent(depth int) {
	if p.indent == 0 {
		return
	}
	p.sb.WriteByte('\n')
	for i := 0; i < depth*p.indent; i++ {
		p.sb.WriteByte(' ')
	}
}

// number writes a float in its shortest form. JSON cannot represent NaN or
// infinities; those become null.
func (p *printer) number(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		p.sb.WriteString("null")
		return
	}
	p.sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
}

const hexDigits = "0123456789abcdef"

func (p *printer) str(s string) {
	p.sb.WriteByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		p.sb.WriteString(s[start:i])
		switch c {
		case '"':
			p.sb.WriteString(`\"`)
		case '\\':
			p.sb.WriteString(`\\`)
		case '\n':
			p.sb.WriteString(`\n`)
		case '\r':
			p.sb.WriteString(`\r`)
		case '\t':
			p.sb.WriteString(`\t`)
		case '\b':
			p.sb.WriteString(`\b`)
		case '\f':
			p.sb.WriteString(`\f`)
		default:
			p.sb.WriteString(`\u00`)
			p.sb.WriteByte(hexDigits[c>>4])
			p.sb.WriteByte(hexDigits[c&0xf])
		}
		start = i + 1
	}
	p.sb.WriteString(s[start:])
	p.sb.WriteByte('"')
}
