package data

import (
	"fmt"
)

// Describes how generic data breaks the atproto data model, and where.
type ModelError struct {
	// Location of the offending value, eg "embed.images[0].image". Empty for the top-level object.
	Path string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid atproto data: %s", e.Err)
	}
	return fmt.Sprintf("invalid atproto data at %s: %s", e.Path, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

func violation(format string, args ...any) error {
	return &ModelError{Err: fmt.Errorf(format, args...)}
}

// prefixes the location of a ModelError with an object key, or an index like "[2]"
func within(err error, seg string) error {
	me, ok := err.(*ModelError)
	if !ok {
		return err
	}
	switch {
	case me.Path == "":
		me.Path = seg
	case me.Path[0] == '[':
		me.Path = seg + me.Path
	default:
		me.Path = seg + "." + me.Path
	}
	return me
}
