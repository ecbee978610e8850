// Package ply packs a textual point-cloud description into a binary PLY file.
//
// The description names a record layout with a compact format string: a byte
// order ('<' little, '>' big) followed by field codes, each optionally
// preceded by a repeat count, e.g. "<3f3B" or "<fffBBB".
package ply

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

type Kind uint8

const (
	KindPad Kind = iota
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
)

var kindCodes = map[byte]Kind{
	'x': KindPad,
	'b': KindInt8,
	'B': KindUint8,
	'?': KindBool,
	'h': KindInt16,
	'H': KindUint16,
	'i': KindInt32,
	'I': KindUint32,
	'l': KindInt32,
	'L': KindUint32,
	'q': KindInt64,
	'Q': KindUint64,
	'f': KindFloat32,
	'd': KindFloat64,
}

// Size returns the encoded width of a field in bytes.
func (k Kind) Size() int {
	switch k {
	case KindPad, KindInt8, KindUint8, KindBool:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	default:
		return 8
	}
}

// ByteOrder encodes fixed-width integers in a chosen endianness.
type ByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Format is a parsed record layout. Pad fields consume no values.
type Format struct {
	Order  ByteOrder
	Fields []Kind
}

// ParseFormat parses a format string such as "<3f3B".
func ParseFormat(s string) (*Format, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty format", ErrByteOrder)
	}
	f := &Format{}
	switch s[0] {
	case '<':
		f.Order = binary.LittleEndian
	case '>':
		f.Order = binary.BigEndian
	default:
		return nil, fmt.Errorf("%w: %q", ErrByteOrder, s[0])
	}

	for i := 1; i < len(s); {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' {
			i++
			continue
		}
		count := 1
		if c >= '0' && c <= '9' {
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(s[i:j])
			if err != nil || j == len(s) {
				return nil, fmt.Errorf("%w: dangling count at %d", ErrFormatCode, i)
			}
			count = n
			i = j
			c = s[i]
		}
		kind, ok := kindCodes[c]
		if !ok {
			return nil, fmt.Errorf("%w: %q at %d", ErrFormatCode, c, i)
		}
		for range count {
			f.Fields = append(f.Fields, kind)
		}
		i++
	}
	return f, nil
}

// Values returns the number of values one pass over the format consumes.
func (f *Format) Values() int {
	n := 0
	for _, k := range f.Fields {
		if k != KindPad {
			n++
		}
	}
	return n
}

// Size returns the packed size in bytes.
func (f *Format) Size() int {
	n := 0
	for _, k := range f.Fields {
		n += k.Size()
	}
	return n
}

// BigEndian reports the byte order for the PLY format line.
func (f *Format) BigEndian() bool {
	return f.Order == ByteOrder(binary.BigEndian)
}
