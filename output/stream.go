// Package output implements the text stream nodes print themselves into.
// It owns token spacing, lazy semicolons, quoting and source mappings; the
// nodes decide only which tokens to emit.
package output

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// QuoteStyle selects how string quotes are chosen.
type QuoteStyle int

const (
	QuoteAuto     QuoteStyle = iota // fewest escapes, double quotes on a tie
	QuoteSingle                     // always '
	QuoteDouble                     // always "
	QuoteOriginal                   // the quote recorded by the parser, auto otherwise
)

type Options struct {
	// Beautify emits newlines, indentation and optional spaces.
	Beautify    bool
	IndentLevel int

	QuoteKeys       bool
	QuoteStyle      QuoteStyle
	KeepQuotedProps bool
	ASCIIOnly       bool

	// Ecma is the target language level; names outside plain ASCII are only
	// printed bare from 2015 on.
	Ecma int
	// Shorthand prints {a:a} as {a}.
	Shorthand bool

	// Source is the original text. When set, mappings carry line/column
	// positions in it instead of bare offsets.
	Source []byte
}

// DefaultOptions returns minified output for ES2015.
func DefaultOptions() Options {
	return Options{
		IndentLevel: 4,
		Ecma:        2015,
		Shorthand:   true,
	}
}

// Mapping ties a generated position to an original one. Lines are 1-based,
// columns 0-based.
type Mapping struct {
	GenLine, GenCol int
	SrcLine, SrcCol int
	Offset          int
	Name            string
}

type pendingMapping struct {
	offset int
	name   string
}

type Stream struct {
	opts Options

	out  strings.Builder
	last string
	line int
	col  int

	indentation        int
	mightNeedSpace     bool
	mightNeedSemicolon bool

	pending    *pendingMapping
	mappings   []Mapping
	lineStarts []int
}

func New(opts Options) *Stream {
	if opts.IndentLevel == 0 {
		opts.IndentLevel = 4
	}
	return &Stream{opts: opts, line: 1}
}

func (s *Stream) Options() Options { return s.opts }

// String returns everything printed so far.
func (s *Stream) String() string { return s.out.String() }

// Mappings returns the recorded source mappings in output order.
func (s *Stream) Mappings() []Mapping { return s.mappings }

// Line and Col report the current output position.
func (s *Stream) Line() int { return s.line }
func (s *Stream) Col() int  { return s.col }

// Print writes str, inserting the separator or semicolon that a previous
// Space or Semicolon call left pending.
func (s *Stream) Print(str string) {
	if str == "" {
		return
	}
	first, _ := utf8.DecodeRuneInString(str)
	if s.mightNeedSemicolon {
		s.mightNeedSemicolon = false
		if first != ';' && first != '}' && !strings.HasSuffix(s.last, ";") {
			s.write(";")
		}
	}
	if s.mightNeedSpace {
		s.mightNeedSpace = false
		prev, _ := utf8.DecodeLastRuneInString(s.last)
		if (isIdentRune(prev) && (isIdentRune(first) || first == '\\')) ||
			(first == '/' && prev == '/') ||
			((first == '+' || first == '-') && first == prev) {
			s.write(" ")
		}
	}
	s.flushMapping()
	s.write(str)
}

func (s *Stream) write(str string) {
	s.out.WriteString(str)
	s.last = str
	if n := strings.Count(str, "\n"); n > 0 {
		s.line += n
		s.col = len(str) - strings.LastIndexByte(str, '\n') - 1
	} else {
		s.col += len(str)
	}
}

// Space requests optional whitespace. Minified output only emits it when the
// neighbouring tokens would otherwise merge.
func (s *Stream) Space() {
	if s.opts.Beautify {
		s.Print(" ")
		return
	}
	s.mightNeedSpace = true
}

// Semicolon ends a statement. Minified output defers it so that a following
// "}" can absorb it.
func (s *Stream) Semicolon() {
	if s.opts.Beautify {
		s.Print(";")
		return
	}
	s.mightNeedSemicolon = true
}

// ForceSemicolon writes a semicolon unconditionally.
func (s *Stream) ForceSemicolon() {
	s.mightNeedSemicolon = false
	s.Print(";")
}

// Finish flushes a pending semicolon at the end of output.
func (s *Stream) Finish() {
	if s.mightNeedSemicolon {
		s.ForceSemicolon()
	}
}

func (s *Stream) Comma() {
	s.Print(",")
	s.Space()
}

func (s *Stream) Colon() {
	s.Print(":")
	s.Space()
}

func (s *Stream) Newline() {
	if s.opts.Beautify {
		s.Print("\n")
	}
}

func (s *Stream) Indent() {
	if s.opts.Beautify && s.indentation > 0 {
		s.Print(strings.Repeat(" ", s.indentation))
	}
}

func (s *Stream) WithIndent(fn func()) {
	s.indentation += s.opts.IndentLevel
	fn()
	s.indentation -= s.opts.IndentLevel
}

// WithBlock prints fn's output between braces on its own indented lines.
func (s *Stream) WithBlock(fn func()) {
	s.Print("{")
	s.Newline()
	s.WithIndent(fn)
	s.Indent()
	s.Print("}")
}

func (s *Stream) WithParens(fn func()) {
	s.Print("(")
	fn()
	s.Print(")")
}

func (s *Stream) WithSquare(fn func()) {
	s.Print("[")
	fn()
	s.Print("]")
}

// AddMapping attaches the original offset and name to the next printed token.
func (s *Stream) AddMapping(offset int, name string) {
	s.pending = &pendingMapping{offset: offset, name: name}
}

func (s *Stream) flushMapping() {
	if s.pending == nil {
		return
	}
	m := Mapping{
		GenLine: s.line,
		GenCol:  s.col,
		Offset:  s.pending.offset,
		Name:    s.pending.name,
	}
	m.SrcLine, m.SrcCol = s.sourcePosition(s.pending.offset)
	s.mappings = append(s.mappings, m)
	s.pending = nil
}

// sourcePosition converts a byte offset in Options.Source into a 1-based line
// and 0-based column. Without a source everything is on line 1.
func (s *Stream) sourcePosition(offset int) (int, int) {
	if s.opts.Source == nil {
		return 1, offset
	}
	if s.lineStarts == nil {
		s.lineStarts = []int{0}
		for i, c := range s.opts.Source {
			if c == '\n' {
				s.lineStarts = append(s.lineStarts, i+1)
			}
		}
	}
	i := sort.Search(len(s.lineStarts), func(i int) bool { return s.lineStarts[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, offset - s.lineStarts[i]
}

func isIdentRune(r rune) bool {
	return r == '$' || r == '_' || r >= 0x80 ||
		'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9'
}
