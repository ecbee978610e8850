package ply

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/big"
	"os"
	"strings"
)

// Encode writes src as a binary PLY file: the magic line, the format line
// matching the source byte order, the trimmed header, end_header and the
// values packed according to the format.
func Encode(w io.Writer, src *Source) error {
	f, err := ParseFormat(src.Type)
	if err != nil {
		return err
	}
	body, err := Pack(f, src.Input)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("ply\n")
	if f.BigEndian() {
		buf.WriteString("format binary_big_endian 1.0\n")
	} else {
		buf.WriteString("format binary_little_endian 1.0\n")
	}
	buf.WriteString(strings.TrimSpace(src.Header))
	buf.WriteString("\nend_header\n")
	buf.Write(body)

	_, err = w.Write(buf.Bytes())
	return err
}

// Pack encodes values with the format. Every non-pad field consumes exactly
// one value. Values may be int, int64, uint64, float64 or bool; integer
// fields are range-checked on the exact value.
func Pack(f *Format, values []any) ([]byte, error) {
	if want := f.Values(); len(values) != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrValueCount, len(values), want)
	}

	out := make([]byte, 0, f.Size())
	vi := 0
	for _, k := range f.Fields {
		if k == KindPad {
			out = append(out, 0)
			continue
		}
		var err error
		out, err = appendValue(out, f.Order, k, values[vi])
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", vi, err)
		}
		vi++
	}
	return out, nil
}

func appendValue(dst []byte, order ByteOrder, k Kind, v any) ([]byte, error) {
	switch k {
	case KindFloat32:
		x, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		return order.AppendUint32(dst, math.Float32bits(float32(x))), nil
	case KindFloat64:
		x, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		return order.AppendUint64(dst, math.Float64bits(x)), nil
	case KindBool:
		x, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		if x != 0 {
			return append(dst, 1), nil
		}
		return append(dst, 0), nil
	}

	n, err := toInt(v)
	if err != nil {
		return nil, err
	}
	r := intRanges[k]
	if n.Cmp(r.lo) < 0 || n.Cmp(r.hi) > 0 {
		return nil, fmt.Errorf("%w: %s outside [%s, %s]", ErrValueRange, n, r.lo, r.hi)
	}
	switch k {
	case KindInt8:
		return append(dst, byte(int8(n.Int64()))), nil
	case KindUint8:
		return append(dst, byte(n.Uint64())), nil
	case KindInt16:
		return order.AppendUint16(dst, uint16(int16(n.Int64()))), nil
	case KindUint16:
		return order.AppendUint16(dst, uint16(n.Uint64())), nil
	case KindInt32:
		return order.AppendUint32(dst, uint32(int32(n.Int64()))), nil
	case KindUint32:
		return order.AppendUint32(dst, uint32(n.Uint64())), nil
	case KindInt64:
		return order.AppendUint64(dst, uint64(n.Int64())), nil
	default:
		return order.AppendUint64(dst, n.Uint64()), nil
	}
}

// toInt returns the exact integer behind a decoded scalar.
func toInt(v any) (*big.Int, error) {
	switch x := v.(type) {
	case int:
		return big.NewInt(int64(x)), nil
	case int64:
		return big.NewInt(x), nil
	case uint64:
		return new(big.Int).SetUint64(x), nil
	case bool:
		if x {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) || x != math.Trunc(x) {
			return nil, fmt.Errorf("%w: %v is not an integer", ErrValueRange, x)
		}
		n, _ := big.NewFloat(x).Int(nil)
		return n, nil
	}
	return nil, fmt.Errorf("%w: %v (%T) is not a number", ErrValueRange, v, v)
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float64:
		return x, nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %v (%T) is not a number", ErrValueRange, v, v)
}

type intRange struct{ lo, hi *big.Int }

func signedRange(bits uint) intRange {
	hi := new(big.Int).Lsh(big.NewInt(1), bits-1)
	lo := new(big.Int).Neg(hi)
	return intRange{lo: lo, hi: hi.Sub(hi, big.NewInt(1))}
}

func unsignedRange(bits uint) intRange {
	hi := new(big.Int).Lsh(big.NewInt(1), bits)
	return intRange{lo: big.NewInt(0), hi: hi.Sub(hi, big.NewInt(1))}
}

var intRanges = map[Kind]intRange{
	KindInt8:   signedRange(8),
	KindUint8:  unsignedRange(8),
	KindInt16:  signedRange(16),
	KindUint16: unsignedRange(16),
	KindInt32:  signedRange(32),
	KindUint32: unsignedRange(32),
	KindInt64:  signedRange(64),
	KindUint64: unsignedRange(64),
}

// Convert reads the description at in and writes the PLY file to out.
func Convert(in, out string) error {
	src, err := LoadSource(in)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, src); err != nil {
		return err
	}
	return os.WriteFile(out, buf.Bytes(), 0o644)
}
