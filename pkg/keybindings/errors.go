package keybindings

import (
	"keybindings/internal/errors"
)

// Error types returned by the store. Use errors.As to inspect them.
type (
	// FileError is an IO failure on the backing file.
	FileError = errors.FileError
	// CodecError is a serialization or deserialization failure.
	CodecError = errors.CodecError
	// ConfigError reports an invalid option or argument.
	ConfigError = errors.ConfigError
	// ErrorKind narrows down what failed.
	ErrorKind = errors.ErrorKind
)

// IsIOFailure reports whether err is a failure to open, read, write, lock or
// unlock the backing file.
func IsIOFailure(err error) bool {
	return errors.IsIOFailure(err)
}

// IsSerializationFailure reports whether the bindings could not be encoded.
func IsSerializationFailure(err error) bool {
	return errors.IsSerializationFailure(err)
}

// IsDeserializationFailure reports whether the file did not decode as a flat
// string mapping.
func IsDeserializationFailure(err error) bool {
	return errors.IsDeserializationFailure(err)
}

// IsInvalidConfig reports whether an option or argument was rejected.
func IsInvalidConfig(err error) bool {
	return errors.IsInvalidConfig(err)
}

// KindOf returns the ErrorKind carried by err.
func KindOf(err error) ErrorKind {
	return errors.KindOf(err)
}
