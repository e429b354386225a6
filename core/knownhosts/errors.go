// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.
package knownhosts

import (
	"errors"
	"io/fs"
)

// Kind classifies an Error.
type Kind int

const (
	// KindIO covers filesystem and stream failures not classified below,
	// including lock contention.
	KindIO Kind = iota
	// KindInvalidArgument is an empty path or a nil reader or writer.
	KindInvalidArgument
	// KindNotFound is a missing file or parent directory.
	KindNotFound
	// KindAccessDenied is a permission failure.
	KindAccessDenied
	// KindDecode is a malformed document.
	KindDecode
	// KindEncode is a value XML cannot carry.
	KindEncode
)

// Sentinels matched by errors.Is against any *Error of the same Kind.
var (
	ErrIO              = errors.New("i/o failure")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrAccessDenied    = errors.New("access denied")
	ErrDecode          = errors.New("malformed known hosts document")
	ErrEncode          = errors.New("cannot encode known hosts document")
)

// ErrLocked is wrapped by the I/O error returned when another writer holds
// the write lock of the destination.
var ErrLocked = errors.New("file is locked by another writer")

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindNotFound:
		return ErrNotFound
	case KindAccessDenied:
		return ErrAccessDenied
	case KindDecode:
		return ErrDecode
	case KindEncode:
		return ErrEncode
	default:
		return ErrIO
	}
}

func (k Kind) String() string {
	return k.sentinel().Error()
}

// Error is returned by every operation of this package.
type Error struct {
	Op   string // operation, e.g. "read", "write", "decode"
	Path string // file involved, empty for stream operations
	Kind Kind
	Err  error // underlying cause, may be nil
}

func (e *Error) Error() string {
	s := e.Op
	if e.Path != "" {
		s += " " + e.Path
	}
	s += ": " + e.Kind.String()
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrNotFound) and friends work on *Error values.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// fsError classifies a filesystem error.
func fsError(op, path string, err error) error {
	kind := KindIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindAccessDenied
	}
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}

func invalidArgument(op, msg string) error {
	return &Error{Op: op, Kind: KindInvalidArgument, Err: errors.New(msg)}
}
