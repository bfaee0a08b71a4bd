package store

import (
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/arthur-debert/durafs/pkg/paths"
)

// FileExists reports whether path exists and is a regular file.
func (s *Store) FileExists(path string) bool {
	p, err := paths.Normalize(path)
	if err != nil {
		return false
	}
	info, err := s.fs.Stat(p)
	return err == nil && !info.IsDir()
}

// DirExists reports whether path exists and is a directory.
func (s *Store) DirExists(path string) bool {
	p, err := paths.Normalize(path)
	if err != nil {
		return false
	}
	info, err := s.fs.Stat(p)
	return err == nil && info.IsDir()
}

// DirIsEmpty reports whether the directory at path has no entries.
// Enumeration errors are logged and reported as false rather than
// propagated.
func (s *Store) DirIsEmpty(path string) bool {
	p, err := paths.Normalize(path)
	if err != nil {
		return false
	}
	f, err := s.fs.Open(p)
	if err != nil {
		s.logger.Debug().Err(err).Str("path", p).Msg("Cannot open directory for emptiness check")
		return false
	}
	defer func() {
		_ = f.Close()
	}()

	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return true
	}
	if err != nil {
		s.logger.Debug().Err(err).Str("path", p).Msg("Cannot enumerate directory")
	}
	return false
}

// matchesAny reports whether name matches at least one of the glob
// patterns. No patterns means everything matches.
func matchesAny(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// Files lists the files directly inside dir whose base name matches any
// of the glob patterns. No patterns matches every file.
func (s *Store) Files(dir string, patterns ...string) ([]string, error) {
	p, err := paths.Normalize(dir)
	if err != nil {
		return nil, err
	}
	entries, err := afero.ReadDir(s.fs, p)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matchesAny(entry.Name(), patterns) {
			out = append(out, filepath.Join(p, entry.Name()))
		}
	}
	return out, nil
}

// FilesRecursive lists every file under dir, at any depth, whose base
// name matches any of the glob patterns.
func (s *Store) FilesRecursive(dir string, patterns ...string) ([]string, error) {
	p, err := paths.Normalize(dir)
	if err != nil {
		return nil, err
	}

	var out []string
	err = afero.Walk(s.fs, p, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if matchesAny(info.Name(), patterns) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Dirs lists the directories directly inside dir. A missing parent
// yields an empty list, never an error.
func (s *Store) Dirs(dir string) []string {
	p, err := paths.Normalize(dir)
	if err != nil {
		return nil
	}
	entries, err := afero.ReadDir(s.fs, p)
	if err != nil {
		return nil
	}

	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			out = append(out, filepath.Join(p, entry.Name()))
		}
	}
	return out
}

// DirsRecursive lists every directory under dir, at any depth,
// excluding dir itself. A missing parent yields an empty list, never
// an error.
func (s *Store) DirsRecursive(dir string) []string {
	p, err := paths.Normalize(dir)
	if err != nil {
		return nil
	}

	var out []string
	walkErr := afero.Walk(s.fs, p, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip unreadable subtrees; missing parents fall out here too.
			return filepath.SkipDir
		}
		if info.IsDir() && path != p {
			out = append(out, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil
	}
	return out
}
