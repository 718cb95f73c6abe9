// Package syntax provides types for identifiers and other string formats.
//
// These are primarily simple string alias types for parsing or verifying protocol-level syntax of identifiers, not routines for things like resolution or verification against application policies.
//
// Parsing is exact: a value returned by a ParseX function formats back to precisely the input string. Normalization (lower-casing handles, NSID authorities) is only ever applied through explicit Normalize methods. Parse failures are always a [*SyntaxError].
package syntax
