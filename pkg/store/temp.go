package store

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/arthur-debert/durafs/pkg/errors"
)

// TempFile creates an empty file with the given extension inside the
// process-private temp root and returns its path. The random leaf name
// cannot collide with concurrent processes or prior runs. The caller
// owns the file's lifecycle; nothing here deletes it.
func (s *Store) TempFile(extension string) (string, error) {
	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	if err := s.fs.MkdirAll(s.tempRoot, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create temp root %s", s.tempRoot)
	}

	path := filepath.Join(s.tempRoot, uuid.NewString()+extension)
	f, err := s.fs.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot create temp file %s", path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot create temp file %s", path)
	}

	s.logger.Debug().Str("path", path).Msg("Temporary file created")
	return path, nil
}

// TempDir creates a uniquely-named directory inside the process-private
// temp root and returns its path. The caller owns its lifecycle.
func (s *Store) TempDir() (string, error) {
	path := filepath.Join(s.tempRoot, uuid.NewString())
	if err := s.fs.MkdirAll(path, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create temp directory %s", path)
	}

	s.logger.Debug().Str("path", path).Msg("Temporary directory created")
	return path, nil
}
