package spacefile

import "errors"

// ErrInvalidFile indicates malformed YAML, unknown fields, or values outside
// the file schema (no dimensions, both pool and poolSize, bad scanLimit).
var ErrInvalidFile = errors.New("spacefile: invalid file")

// ErrUnknownKind indicates a dimension kind or band the schema does not know.
var ErrUnknownKind = errors.New("spacefile: unknown kind")
