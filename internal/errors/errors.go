// Package errors provides standardized error handling for ksc.
// It defines the error kinds raised by the parser, the configuration layer and
// file conversion, plus helpers for wrapping errors and attaching user hints.
package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Error inspection and wrapping, backed by cockroachdb/errors so wrapped
// errors keep stack traces and hints.
var (
	Is          = crdb.Is
	As          = crdb.As
	Unwrap      = crdb.Unwrap
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	GetAllHints = crdb.GetAllHints
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Shortcut error kinds
	InvalidShortcut
	// Config error kinds
	InvalidConfig
	// File error kinds
	FileNotFound
	FileAccessDenied
	FileOperationFailed
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidShortcut:
		return "invalid shortcut"
	case InvalidConfig:
		return "invalid config"
	case FileNotFound:
		return "file not found"
	case FileAccessDenied:
		return "file access denied"
	case FileOperationFailed:
		return "file operation failed"
	default:
		return "unknown"
	}
}

// ApplicationError is the base error type for all application errors
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

// ParseError is returned when text cannot be resolved to a shortcut. It keeps
// the input exactly as the caller supplied it.
type ParseError struct {
	ApplicationError
	text string
}

// NewParseError creates a parse error for the given original input.
func NewParseError(text string) *ParseError {
	return &ParseError{
		ApplicationError: ApplicationError{
			msg:  fmt.Sprintf("error parsing '%s'", text),
			kind: InvalidShortcut,
		},
		text: text,
	}
}

// Text returns the unmodified input that failed to parse.
func (e *ParseError) Text() string {
	return e.text
}

// ConfigError represents errors related to configuration
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

// FileError represents errors related to file operations
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

// New creates a new error with a message
func New(msg string) error {
	return crdb.New(msg)
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return crdb.Newf(format, args...)
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return crdb.Wrap(err, msg)
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return crdb.Wrapf(err, format, args...)
}

// IsParseError checks if the error is, or wraps, a shortcut parse error
func IsParseError(err error) bool {
	var parseErr *ParseError
	return As(err, &parseErr)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	var fileErr *FileError
	if As(err, &fileErr) {
		return fileErr.Kind() == FileNotFound
	}
	return false
}
