package kv

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type fileStore struct {
	dir string
}

var _ Store = (*fileStore)(nil)

// OpenFileStore opens (creating if needed) a directory-backed store where
// each key lives in its own file. Writes go through a temp file and a rename
// so a crash mid-write never leaves a truncated value behind.
func OpenFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating store dir %s", dir)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *fileStore) Get(key string) ([]byte, error) {
	raw, err := ioutil.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, errors.Wrapf(err, "reading key %s", key)
	}
	return raw, nil
}

func (s *fileStore) Set(key string, val []byte) error {
	tmp, err := ioutil.TempFile(s.dir, key+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "writing key %s", key)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(val); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "writing key %s", key)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "writing key %s", key)
	}
	if err = os.Rename(tmp.Name(), s.path(key)); err != nil {
		return errors.Wrapf(err, "writing key %s", key)
	}
	return nil
}

func (s *fileStore) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "deleting key %s", key)
	}
	return nil
}
