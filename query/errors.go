package query

import "errors"

// Sentinel errors returned (wrapped) by Build. Test with errors.Is.
var (
	// ErrArgumentCountMismatch is returned when a token has no argument left to consume.
	ErrArgumentCountMismatch = errors.New("argument count does not match the number of specifiers")

	// ErrUnknownSpecifier is returned for a marker followed by an unrecognized symbol,
	// and for a block whose text does not match the single-line brace pattern.
	ErrUnknownSpecifier = errors.New("unknown specifier")

	// ErrMalformedBlock accompanies ErrUnknownSpecifier for blocks spanning lines.
	ErrMalformedBlock = errors.New("malformed conditional block")

	// ErrEmptyConditionalBlock is returned for a block with nothing between its braces.
	ErrEmptyConditionalBlock = errors.New("empty conditional block")

	// ErrInvalidArgumentType is returned when a value cannot be rendered as a scalar.
	ErrInvalidArgumentType = errors.New("invalid argument type")

	// ErrUnsupportedConversion is returned when no rule converts the value for the specifier.
	ErrUnsupportedConversion = errors.New("unsupported conversion")
)
