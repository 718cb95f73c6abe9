package util

import (
	"fmt"
	"log/slog"
	"sort"
)

// Bidirectional mapping between a closed set of wire strings and Go enum values, with one declared fallback value for strings which are not recognized.
//
// Enums are constructed once at package init and read-only afterwards.
type Enum[E comparable] struct {
	name     string
	fallback E
	toWire   map[E]string
	fromWire map[string]E
}

// Builds an enum codec. Every value (including fallback) must have a wire string, and wire strings must be unique; violations panic.
func NewEnum[E comparable](name string, fallback E, values map[E]string) *Enum[E] {
	e := &Enum[E]{
		name:     name,
		fallback: fallback,
		toWire:   make(map[E]string, len(values)),
		fromWire: make(map[string]E, len(values)),
	}
	for val, wire := range values {
		if wire == "" {
			panic(fmt.Sprintf("lexicon enum %s: empty wire string for %v", name, val))
		}
		if prev, ok := e.fromWire[wire]; ok {
			panic(fmt.Sprintf("lexicon enum %s: duplicate wire string %q (%v and %v)", name, wire, prev, val))
		}
		e.toWire[val] = wire
		e.fromWire[wire] = val
	}
	if _, ok := e.toWire[fallback]; !ok {
		panic(fmt.Sprintf("lexicon enum %s: fallback value %v has no wire string", name, fallback))
	}
	return e
}

func (e *Enum[E]) Name() string {
	return e.name
}

func (e *Enum[E]) Fallback() E {
	return e.fallback
}

// Looks up a wire string, without falling back.
func (e *Enum[E]) Lookup(raw string) (E, bool) {
	val, ok := e.fromWire[raw]
	return val, ok
}

// Decodes a wire string. Never fails: unrecognized strings decode to the fallback value.
func (e *Enum[E]) Decode(raw string) E {
	if val, ok := e.fromWire[raw]; ok {
		return val
	}
	enumFallbacks.WithLabelValues(e.name).Inc()
	slog.Debug("unrecognized lexicon enum value", "enum", e.name, "value", raw)
	return e.fallback
}

// Encodes a value to its wire string. Values which were not declared are an error.
func (e *Enum[E]) Encode(val E) (string, error) {
	wire, ok := e.toWire[val]
	if !ok {
		return "", fmt.Errorf("lexicon enum %s: undeclared value: %v", e.name, val)
	}
	return wire, nil
}

// Known wire strings, sorted.
func (e *Enum[E]) Values() []string {
	out := make([]string, 0, len(e.fromWire))
	for wire := range e.fromWire {
		out = append(out, wire)
	}
	sort.Strings(out)
	return out
}
