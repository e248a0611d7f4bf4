package output

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2/js"
	"golang.org/x/text/unicode/rangetable"
)

var (
	idStart    = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start)
	idContinue = rangetable.Merge(idStart, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
)

// IsIdentifier reports whether name can be printed without quotes. When
// unicodeOK is false only ASCII letters, digits, '$' and '_' are accepted.
func IsIdentifier(name string, unicodeOK bool) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '$' || r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		case r < utf8.RuneSelf || !unicodeOK:
			return false
		case r == utf8.RuneError:
			return false
		case i == 0:
			if !unicode.Is(idStart, r) {
				return false
			}
		case r == '\u200c' || r == '\u200d':
		default:
			if !unicode.Is(idContinue, r) {
				return false
			}
		}
	}
	return true
}

// IsReserved reports whether name is a keyword of the language.
func IsReserved(name string) bool {
	_, ok := js.Keywords[name]
	return ok
}

// IsCanonicalNumber reports whether key is the shortest decimal spelling of a
// non-negative number, so that printing it unquoted names the same property.
func IsCanonicalNumber(key string) bool {
	if !js.AsDecimalLiteral([]byte(key)) {
		return false
	}
	f, err := strconv.ParseFloat(key, 64)
	if err != nil || f < 0 {
		return false
	}
	return FormatNumber(f) == key
}

// FormatNumber renders f the way the language's Number-to-String conversion
// does.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + exp
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (s *Stream) PrintNumber(f float64) {
	s.Print(FormatNumber(f))
}

// PrintName prints an identifier, escaping non-ASCII runes in ASCIIOnly mode.
func (s *Stream) PrintName(name string) {
	if s.opts.ASCIIOnly {
		name = escapeNonASCII(name, false)
	}
	s.Print(name)
}

// PrintString prints str as a quoted literal. quote is the quote byte the
// source used, or 0 when unknown.
func (s *Stream) PrintString(str string, quote byte) {
	s.Print(s.Quote(str, quote))
}

// PrintPropertyName prints a non-computed property key and reports whether it
// came out as a bare identifier.
func (s *Stream) PrintPropertyName(key string, quote byte) bool {
	if s.opts.QuoteKeys {
		s.PrintString(key, quote)
		return false
	}
	if IsCanonicalNumber(key) {
		s.Print(key)
		return false
	}
	if !IsIdentifier(key, s.opts.Ecma >= 2015) || quote != 0 && s.opts.KeepQuotedProps {
		s.PrintString(key, quote)
		return false
	}
	s.PrintName(key)
	return true
}

// Quote encodes str as a string literal according to the stream's quote
// style.
func (s *Stream) Quote(str string, orig byte) string {
	var dq, sq int
	for _, r := range str {
		switch r {
		case '"':
			dq++
		case '\'':
			sq++
		}
	}
	q := byte('"')
	switch s.opts.QuoteStyle {
	case QuoteSingle:
		q = '\''
	case QuoteDouble:
	case QuoteOriginal:
		if orig == '\'' || orig == '"' {
			q = orig
		} else if dq > sq {
			q = '\''
		}
	default:
		if dq > sq {
			q = '\''
		}
	}

	var b strings.Builder
	b.WriteByte(q)
	for i, r := range str {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\v':
			b.WriteString(`\v`)
		case 0:
			if i+1 < len(str) && '0' <= str[i+1] && str[i+1] <= '9' {
				b.WriteString(`\x00`)
			} else {
				b.WriteString(`\0`)
			}
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		case '\ufeff':
			b.WriteString(`\ufeff`)
		case rune(q):
			b.WriteByte('\\')
			b.WriteByte(q)
		default:
			switch {
			case r < 0x20 || r == 0x7f:
				b.WriteString(`\x`)
				b.WriteString(hex2(int(r)))
			case r >= utf8.RuneSelf && s.opts.ASCIIOnly:
				b.WriteString(escapeNonASCII(string(r), true))
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte(q)
	return b.String()
}

func escapeNonASCII(str string, inString bool) string {
	var b strings.Builder
	for _, r := range str {
		switch {
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case r <= 0xff && inString:
			b.WriteString(`\x`)
			b.WriteString(hex2(int(r)))
		case r > 0xffff:
			r1, r2 := utf16.EncodeRune(r)
			b.WriteString(`\u` + hex4(int(r1)) + `\u` + hex4(int(r2)))
		default:
			b.WriteString(`\u` + hex4(int(r)))
		}
	}
	return b.String()
}

func hex2(n int) string {
	h := strconv.FormatInt(int64(n), 16)
	return strings.Repeat("0", 2-len(h)) + h
}

func hex4(n int) string {
	h := strconv.FormatInt(int64(n), 16)
	return strings.Repeat("0", 4-len(h)) + h
}
