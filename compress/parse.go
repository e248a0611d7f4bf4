package compress

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var optionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Regexp", Pattern: `/(\\.|[^/\\])+/[a-z]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[=,]`},
	{Name: "whitespace", Pattern: `\s+`},
})

type optionList struct {
	Entries []*optionEntry `parser:"(@@ (\",\" @@)*)?"`
}

type optionEntry struct {
	Name  string       `parser:"@Ident"`
	Value *optionValue `parser:"(\"=\" @@)?"`
}

type optionValue struct {
	Regexp *string `parser:"  @Regexp"`
	Int    *int    `parser:"| @Int"`
	Bool   *string `parser:"| @(\"true\" | \"false\")"`
}

var optionParser = participle.MustBuild[optionList](
	participle.Lexer(optionLexer),
)

// ParseOptions reads a comma separated option string such as
// "arrows=false,passes=2,unsafe_methods=/^on/" on top of the defaults. A
// name without a value switches the option on.
func ParseOptions(s string) (Options, error) {
	list, err := optionParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("parse compress options: %w", err)
	}
	opts := DefaultOptions()
	for _, e := range list.Entries {
		value, err := e.Value.value()
		if err != nil {
			return nil, fmt.Errorf("option %s: %w", e.Name, err)
		}
		if err := opts.Set(e.Name, value); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

func (v *optionValue) value() (any, error) {
	switch {
	case v == nil:
		return true, nil
	case v.Int != nil:
		return *v.Int, nil
	case v.Bool != nil:
		return *v.Bool == "true", nil
	}
	return compileRegexp(*v.Regexp)
}

// compileRegexp turns /source/flags into a regexp. Only the i, m and s
// flags have a counterpart.
func compileRegexp(lit string) (*regexp.Regexp, error) {
	end := strings.LastIndexByte(lit, '/')
	src, flags := lit[1:end], lit[end+1:]
	var prefix string
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			prefix += string(f)
		case 'g', 'u', 'y':
		default:
			return nil, fmt.Errorf("%w: regexp flag %q", ErrOptionValue, f)
		}
	}
	if prefix != "" {
		src = "(?" + prefix + ")" + src
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionValue, err)
	}
	return re, nil
}
