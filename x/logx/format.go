package logx

import "math"

// Minimal formatter used on MCU builds (and always compiled so host
// tests cover it). Supported verbs: %s %q %d %u %x %t %v %f and %%,
// with an optional precision for %f and %s (e.g. %.1f, %.8s).
// Anything fancier belongs on the host side.

func miniSprintf(format string, args ...any) string {
	var b []byte
	ai := 0
	for i := 0; i < len(format); {
		c := format[i]
		if c != '%' {
			b = append(b, c)
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			b = append(b, '%')
			i += 2
			continue
		}
		i++
		prec, hasPrec := 0, false
		if i < len(format) && format[i] == '.' {
			i++
			hasPrec = true
			for i < len(format) && '0' <= format[i] && format[i] <= '9' {
				prec = prec*10 + int(format[i]-'0')
				i++
			}
		}
		if i >= len(format) || ai >= len(args) {
			break
		}
		verb := format[i]
		arg := args[ai]
		ai++
		i++

		switch verb {
		case 's', 'q':
			s := toString(arg)
			if hasPrec && prec < len(s) {
				s = s[:prec]
			}
			if verb == 'q' {
				b = append(b, '"')
				b = append(b, s...)
				b = append(b, '"')
			} else {
				b = append(b, s...)
			}
		case 'd':
			b = appendInt(b, toI64(arg))
		case 'u', 'x':
			u := toU64(arg)
			if verb == 'x' {
				b = appendHex(b, u)
			} else {
				b = appendUint(b, u)
			}
		case 't':
			if v, ok := arg.(bool); ok && v {
				b = append(b, "true"...)
			} else {
				b = append(b, "false"...)
			}
		case 'f':
			if !hasPrec {
				prec = 2
			}
			b = append(b, FormatFixed(toF64(arg), prec)...)
		case 'v':
			b = appendAny(b, arg)
		default:
			b = append(b, '%', verb)
		}
	}
	return string(b)
}

// FormatFixed renders f with exactly prec fractional digits, rounding
// half away from zero. NaN and infinities render as "NaN". Used for
// both MCU log lines and the CSV report fields, so it must behave
// identically on every build.
func FormatFixed(f float64, prec int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "NaN"
	}
	if prec < 0 {
		prec = 0
	}
	neg := math.Signbit(f)
	if neg {
		f = -f
	}
	div := uint64(1)
	for i := 0; i < prec; i++ {
		div *= 10
	}
	n := uint64(f*float64(div) + 0.5)
	whole, frac := n/div, n%div

	var b []byte
	if neg && n > 0 {
		b = append(b, '-')
	}
	b = appendUint(b, whole)
	if prec > 0 {
		b = append(b, '.')
		for p := div / 10; p > 0; p /= 10 {
			b = append(b, byte('0'+(frac/p)%10))
		}
	}
	return string(b)
}

func appendAny(b []byte, v any) []byte {
	switch x := v.(type) {
	case string:
		return append(b, x...)
	case []byte:
		return append(b, x...)
	case bool:
		if x {
			return append(b, "true"...)
		}
		return append(b, "false"...)
	case float32:
		return append(b, FormatFixed(float64(x), 3)...)
	case float64:
		return append(b, FormatFixed(x, 3)...)
	case error:
		return append(b, x.Error()...)
	case int, int8, int16, int32, int64:
		return appendInt(b, toI64(x))
	case uint, uint8, uint16, uint32, uint64:
		return appendUint(b, toU64(x))
	case interface{ String() string }:
		return append(b, x.String()...)
	default:
		return append(b, "<unk>"...)
	}
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case error:
		return x.Error()
	case interface{ String() string }:
		return x.String()
	default:
		return "<unk>"
	}
}

func toF64(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	default:
		return math.NaN()
	}
}

func toI64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint, uint8, uint16, uint32, uint64:
		return int64(toU64(x))
	default:
		return 0
	}
}

func toU64(v any) uint64 {
	switch x := v.(type) {
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case int:
		if x >= 0 {
			return uint64(x)
		}
	case int64:
		if x >= 0 {
			return uint64(x)
		}
	}
	return 0
}

func appendInt(b []byte, i int64) []byte {
	if i < 0 {
		b = append(b, '-')
		return appendUint(b, uint64(-i))
	}
	return appendUint(b, uint64(i))
}

func appendUint(b []byte, u uint64) []byte {
	if u == 0 {
		return append(b, '0')
	}
	var buf [20]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	return append(b, buf[i:]...)
}

func appendHex(b []byte, u uint64) []byte {
	const digits = "0123456789abcdef"
	if u == 0 {
		return append(b, '0')
	}
	var buf [16]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = digits[u&0xF]
		u >>= 4
	}
	return append(b, buf[i:]...)
}
