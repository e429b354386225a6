// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.
package knownhosts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	clog "github.com/charmbracelet/log"
	"github.com/gofrs/flock"
	"github.com/toeirei/knownhostsxml/core/model"
	"github.com/toeirei/knownhostsxml/internal/logging"
)

const (
	// DefaultDirName is the directory below the home directory.
	DefaultDirName = ".ssh"
	// DefaultFileName is the file name inside the ssh directory.
	DefaultFileName = "known_hosts.xml"

	dirMode  os.FileMode = 0o700
	fileMode os.FileMode = 0o600
	lockExt              = ".lock"
)

// Options configures a File. The zero value resolves
// $HOME/.ssh/known_hosts.xml.
type Options struct {
	// Home replaces os.UserHomeDir when set.
	Home string
	// Directory replaces <home>/.ssh when set; Home is then ignored.
	Directory string
	// FileName replaces DefaultFileName when set.
	FileName string
	// Logger receives debug records; nil means the package logger.
	Logger *clog.Logger
	// NoLock disables the cooperative write lock. With locking on, Write
	// leaves a <path>.lock file next to the target and needs permission to
	// create files in its directory.
	NoLock bool
}

// File reads and writes known hosts documents. The default directory and
// path are resolved on first use and then kept for the life of the File.
// A File holds no record state and is safe for concurrent use; concurrent
// writes to the same path are rejected with ErrLocked rather than queued.
type File struct {
	opts Options
	log  *clog.Logger

	dirOnce sync.Once
	dir     string
	dirErr  error

	pathOnce sync.Once
	path     string
	pathErr  error
}

// New returns a File for opts.
func New(opts Options) *File {
	return &File{opts: opts, log: logging.Or(opts.Logger)}
}

var (
	defaultOnce sync.Once
	defaultFile *File
)

// Default returns the process-wide File built from zero Options.
func Default() *File {
	defaultOnce.Do(func() { defaultFile = New(Options{}) })
	return defaultFile
}

// Dir returns the ssh directory. It does not create it.
func (f *File) Dir() (string, error) {
	f.dirOnce.Do(func() {
		if f.opts.Directory != "" {
			f.dir = filepath.Clean(f.opts.Directory)
			return
		}
		home := f.opts.Home
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				f.dirErr = &Error{Op: "resolve", Kind: KindIO, Err: fmt.Errorf("could not get user home directory: %w", err)}
				return
			}
		}
		f.dir = filepath.Join(home, DefaultDirName)
	})
	return f.dir, f.dirErr
}

// Path returns the default known hosts file. It does not touch the filesystem.
func (f *File) Path() (string, error) {
	f.pathOnce.Do(func() {
		dir, err := f.Dir()
		if err != nil {
			f.pathErr = err
			return
		}
		name := f.opts.FileName
		if name == "" {
			name = DefaultFileName
		}
		f.path = filepath.Join(dir, name)
	})
	return f.path, f.pathErr
}

// ReadDefault reads the records stored at Path.
func (f *File) ReadDefault() ([]model.KnownHost, error) {
	path, err := f.Path()
	if err != nil {
		return nil, err
	}
	return f.Read(path)
}

// Read reads all records stored at path. The file is opened read-only and
// without a lock, so a read racing a write may fail to decode.
func (f *File) Read(path string) ([]model.KnownHost, error) {
	if path == "" {
		return nil, invalidArgument("read", "empty path")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fsError("read", path, err)
	}
	defer file.Close()

	hosts, err := decode(file)
	if err != nil {
		var perr *os.PathError
		if errors.As(err, &perr) {
			return nil, fsError("read", path, err)
		}
		return nil, &Error{Op: "read", Path: path, Kind: KindDecode, Err: err}
	}
	f.log.Debug("read known hosts", "path", path, "count", len(hosts))
	return hosts, nil
}

// WriteDefault creates the ssh directory if needed, including missing
// parents, and replaces the content of Path with hosts.
func (f *File) WriteDefault(hosts []model.KnownHost, indent bool) error {
	dir, err := f.Dir()
	if err != nil {
		return err
	}
	path, err := f.Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fsError("mkdir", dir, err)
	}
	return f.Write(path, hosts, indent)
}

// Write replaces the content of path with hosts. Missing directories are not
// created. A nil slice writes an empty collection.
//
// Unless Options.NoLock is set, Write holds a lock on the sibling file
// <path>.lock, which is created on demand and kept on disk afterwards, so
// the directory must allow creating files even when path already exists.
func (f *File) Write(path string, hosts []model.KnownHost, indent bool) (err error) {
	if path == "" {
		return invalidArgument("write", "empty path")
	}
	// Encode first so a bad record never truncates the destination.
	data, err := Marshal(hosts, indent)
	if err != nil {
		return err
	}

	if !f.opts.NoLock {
		lock := flock.New(path + lockExt)
		locked, lerr := lock.TryLock()
		if lerr != nil {
			return fsError("lock", path, lerr)
		}
		if !locked {
			f.log.Warn("known hosts file busy", "path", path)
			return &Error{Op: "write", Path: path, Kind: KindIO, Err: ErrLocked}
		}
		defer func() {
			if uerr := lock.Unlock(); uerr != nil && err == nil {
				err = fsError("unlock", path, uerr)
			}
		}()
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return fsError("write", path, err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return fsError("write", path, err)
	}
	if err := file.Close(); err != nil {
		return fsError("write", path, err)
	}
	f.log.Debug("wrote known hosts", "path", path, "count", len(hosts), "indent", indent)
	return nil
}

// WriteTo encodes hosts onto w. Opening, locking and closing w is left to
// the caller.
func (f *File) WriteTo(w io.Writer, hosts []model.KnownHost, indent bool) error {
	if err := Encode(w, hosts, indent); err != nil {
		return err
	}
	f.log.Debug("encoded known hosts", "count", len(hosts), "indent", indent)
	return nil
}
