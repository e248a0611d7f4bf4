package compress

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	ErrUnknownOption = errors.New("unknown compress option")
	ErrOptionValue   = errors.New("invalid compress option value")
)

// Options maps option names to values: bools for switches, ints for ecma
// and passes, and a bool or *regexp.Regexp for unsafe_methods.
type Options map[string]any

var defaults = Options{
	"arrows":         true,
	"computed_props": true,
	"side_effects":   true,
	"unused":         true,
	"toplevel":       false,
	"reduce_vars":    true,
	"unsafe_methods": false,
	"pure_getters":   false,
	"ecma":           5,
	"passes":         1,
}

// DefaultOptions returns a fresh copy of the defaults.
func DefaultOptions() Options {
	return maps.Clone(defaults)
}

// OptionNames lists every known option, sorted.
func OptionNames() []string {
	names := maps.Keys(defaults)
	slices.Sort(names)
	return names
}

// Set assigns one option, checking the name and the type of value.
func (o Options) Set(name string, value any) error {
	def, ok := defaults[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
	switch def.(type) {
	case bool:
		if name == "unsafe_methods" {
			if _, ok := value.(*regexp.Regexp); ok {
				break
			}
		}
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%w: %s wants a boolean, got %v", ErrOptionValue, name, value)
		}
	case int:
		i, ok := value.(int)
		if !ok || i < 0 {
			return fmt.Errorf("%w: %s wants a non-negative integer, got %v", ErrOptionValue, name, value)
		}
	}
	o[name] = value
	return nil
}

func (o Options) flag(name string) bool {
	b, _ := o[name].(bool)
	return b
}

func (o Options) number(name string) int {
	i, _ := o[name].(int)
	return i
}
