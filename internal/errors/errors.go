// Package errors provides the error taxonomy of the keybindings store.
// Every failure is returned as a value: file problems as *FileError,
// encoding problems as *CodecError and bad options as *ConfigError.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileReadFailed
	FileWriteFailed
	FileCreateFailed
	FileLockFailed
	FileUnlockFailed
	// Codec error kinds
	SerializationFailed
	DeserializationFailed
	// Config error kinds
	InvalidConfig
)

var kindNames = map[ErrorKind]string{
	Unknown:               "unknown",
	FileNotFound:          "file_not_found",
	FileReadFailed:        "file_read_failed",
	FileWriteFailed:       "file_write_failed",
	FileCreateFailed:      "file_create_failed",
	FileLockFailed:        "file_lock_failed",
	FileUnlockFailed:      "file_unlock_failed",
	SerializationFailed:   "serialization_failed",
	DeserializationFailed: "deserialization_failed",
	InvalidConfig:         "invalid_config",
}

// String returns the snake_case name of the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ApplicationError is the base error type for all store errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError is an IO failure on the backing file: open, read, write, lock or unlock.
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// CodecError is a failure to encode bindings to, or decode them from, a
// structured text format.
type CodecError struct {
	ApplicationError
	format string
}

// NewCodecError creates a new codec error
func NewCodecError(msg string, format string, kind ErrorKind, err error) *CodecError {
	return &CodecError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		format: format,
	}
}

// Error returns the codec error message
func (e *CodecError) Error() string {
	if e.format != "" {
		if e.err != nil {
			return fmt.Sprintf("%s (%s): %v", e.msg, e.format, e.err)
		}
		return fmt.Sprintf("%s (%s)", e.msg, e.format)
	}
	return e.ApplicationError.Error()
}

// Format returns the name of the format involved
func (e *CodecError) Format() string {
	return e.format
}

// ConfigError represents errors related to store options
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the first typed error in err's chain, or Unknown.
func KindOf(err error) ErrorKind {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind()
	}
	var codecErr *CodecError
	if errors.As(err, &codecErr) {
		return codecErr.Kind()
	}
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind()
	}
	return Unknown
}

// IsIOFailure checks if the error is any failure on the backing file
func IsIOFailure(err error) bool {
	var fileErr *FileError
	return errors.As(err, &fileErr)
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == FileNotFound
	}
	return false
}

// IsSerializationFailure checks if the error is an encoding failure
func IsSerializationFailure(err error) bool {
	var codecErr *CodecError
	if errors.As(err, &codecErr) {
		return codecErr.Kind() == SerializationFailed
	}
	return false
}

// IsDeserializationFailure checks if the error is a decoding failure
func IsDeserializationFailure(err error) bool {
	var codecErr *CodecError
	if errors.As(err, &codecErr) {
		return codecErr.Kind() == DeserializationFailed
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
