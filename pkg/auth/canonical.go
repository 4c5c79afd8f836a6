package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"unicode/utf8"
)

// DefaultMaxDepth is the nesting limit applied by [EncodePayload].
const DefaultMaxDepth = 32

// Encoder produces the canonical byte representation of payloads.
// The zero value is ready to use and applies [DefaultMaxDepth].
type Encoder struct {
	// MaxDepth overrides DefaultMaxDepth when positive. A payload whose
	// objects and arrays nest deeper than this fails with [ErrEncoding].
	MaxDepth int
}

// EncodePayload encodes p with a zero-value [Encoder].
func EncodePayload(p Payload) ([]byte, error) {
	return Encoder{}.Encode(p)
}

// Encode returns the canonical form of p. Two payloads that hold equal
// keys and values produce identical bytes, regardless of insertion
// order or of how their numbers were spelled on input. A nil payload
// encodes as an empty object.
func (e Encoder) Encode(p Payload) ([]byte, error) {
	maxDepth := e.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return appendObject(make([]byte, 0, 128), p, "$", 1, maxDepth)
}

func appendValue(b []byte, v any, path string, depth, maxDepth int) ([]byte, error) {
	switch t := v.(type) {
	case nil:
		return append(b, "null"...), nil
	case bool:
		if t {
			return append(b, "true"...), nil
		}
		return append(b, "false"...), nil
	case string:
		return appendString(b, t, path)
	case int:
		return strconv.AppendInt(b, int64(t), 10), nil
	case int8:
		return strconv.AppendInt(b, int64(t), 10), nil
	case int16:
		return strconv.AppendInt(b, int64(t), 10), nil
	case int32:
		return strconv.AppendInt(b, int64(t), 10), nil
	case int64:
		return strconv.AppendInt(b, t, 10), nil
	case uint:
		return strconv.AppendUint(b, uint64(t), 10), nil
	case uint8:
		return strconv.AppendUint(b, uint64(t), 10), nil
	case uint16:
		return strconv.AppendUint(b, uint64(t), 10), nil
	case uint32:
		return strconv.AppendUint(b, uint64(t), 10), nil
	case uint64:
		return strconv.AppendUint(b, t, 10), nil
	case float32:
		return appendFloat(b, float64(t), path)
	case float64:
		return appendFloat(b, t, path)
	case json.Number:
		return appendNumber(b, t, path)
	case Payload:
		return appendObject(b, t, path, depth+1, maxDepth)
	case map[string]any:
		return appendObject(b, t, path, depth+1, maxDepth)
	case []any:
		return appendArray(b, t, path, depth+1, maxDepth)
	default:
		return nil, fmt.Errorf("%w: unsupported value of type %T at %s", ErrEncoding, v, path)
	}
}

func appendObject(b []byte, m map[string]any, path string, depth, maxDepth int) ([]byte, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d levels at %s", ErrEncoding, maxDepth, path)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Go string comparison is byte-wise lexicographic, which is the
	// ordering the canonical form requires.
	sort.Strings(keys)

	b = append(b, '{')
	for i, k := range keys {
		if i > 0 {
			b = append(b, ',')
		}
		var err error
		b, err = appendString(b, k, path)
		if err != nil {
			return nil, err
		}
		b = append(b, ':')
		b, err = appendValue(b, m[k], path+"."+k, depth, maxDepth)
		if err != nil {
			return nil, err
		}
	}
	return append(b, '}'), nil
}

func appendArray(b []byte, a []any, path string, depth, maxDepth int) ([]byte, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d levels at %s", ErrEncoding, maxDepth, path)
	}
	b = append(b, '[')
	for i, v := range a {
		if i > 0 {
			b = append(b, ',')
		}
		var err error
		b, err = appendValue(b, v, path+"["+strconv.Itoa(i)+"]", depth, maxDepth)
		if err != nil {
			return nil, err
		}
	}
	return append(b, ']'), nil
}

const hexDigits = "0123456789abcdef"

// appendString writes s as a canonical JSON string: only the quote,
// backslash and control characters are escaped, everything else is
// copied as raw UTF-8.
func appendString(b []byte, s string, path string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: string at %s is not valid UTF-8", ErrEncoding, path)
	}
	b = append(b, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			b = append(b, '\\', '"')
		case c == '\\':
			b = append(b, '\\', '\\')
		case c >= 0x20:
			b = append(b, c)
		case c == '\b':
			b = append(b, '\\', 'b')
		case c == '\t':
			b = append(b, '\\', 't')
		case c == '\n':
			b = append(b, '\\', 'n')
		case c == '\f':
			b = append(b, '\\', 'f')
		case c == '\r':
			b = append(b, '\\', 'r')
		default:
			b = append(b, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
	}
	return append(b, '"'), nil
}

func appendFloat(b []byte, f float64, path string) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: non-finite number at %s", ErrEncoding, path)
	}
	if f == 0 {
		// Negative zero folds into plain zero.
		return append(b, '0'), nil
	}
	if f < 0 {
		b = append(b, '-')
		f = -f
	}
	return appendNumberLayout(b, strconv.AppendFloat(nil, f, 'e', -1, 64)), nil
}

// appendNumberLayout rewrites the shortest round-trip mantissa/exponent
// form ("d.ddde±xx") into the ECMAScript Number-to-string layout, so
// every implementation of the canonical form agrees byte-for-byte on
// how a given float is spelled.
func appendNumberLayout(b, mant []byte) []byte {
	e := bytes.IndexByte(mant, 'e')
	digits := mant[:e]
	exp, _ := strconv.Atoi(string(mant[e+1:]))
	if len(digits) > 1 && digits[1] == '.' {
		digits = append(digits[:1], digits[2:]...)
	}

	// n is the position of the decimal point relative to the digit
	// string: the value equals 0.digits * 10^n.
	n := exp + 1
	k := len(digits)
	switch {
	case k <= n && n <= 21:
		b = append(b, digits...)
		for i := k; i < n; i++ {
			b = append(b, '0')
		}
	case 0 < n && n <= 21:
		b = append(b, digits[:n]...)
		b = append(b, '.')
		b = append(b, digits[n:]...)
	case -6 < n && n <= 0:
		b = append(b, '0', '.')
		for i := n; i < 0; i++ {
			b = append(b, '0')
		}
		b = append(b, digits...)
	default:
		b = append(b, digits[0])
		if k > 1 {
			b = append(b, '.')
			b = append(b, digits[1:]...)
		}
		b = append(b, 'e')
		if exp >= 0 {
			b = append(b, '+')
		}
		b = strconv.AppendInt(b, int64(exp), 10)
	}
	return b
}

// appendNumber canonicalizes a [json.Number]: values that fit an
// integer keep their exact decimal digits, everything else goes
// through the float path, so "1.0" and "1e0" both come out as "1".
func appendNumber(b []byte, n json.Number, path string) ([]byte, error) {
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return strconv.AppendInt(b, i, 10), nil
	}
	if u, err := strconv.ParseUint(string(n), 10, 64); err == nil {
		return strconv.AppendUint(b, u, 10), nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed number %q at %s", ErrEncoding, string(n), path)
	}
	return appendFloat(b, f, path)
}
