package store

import (
	"bytes"
	"crypto/sha256"
	"io"
)

// digestReader streams r through SHA-256. Neither side of a content
// comparison is ever buffered whole in memory.
func digestReader(r io.Reader) ([]byte, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, r); err != nil {
		return nil, err
	}
	return hash.Sum(nil), nil
}

// digestFile computes the SHA-256 of the file at path.
func (s *Store) digestFile(path string) ([]byte, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return digestReader(f)
}

func digestsEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}
