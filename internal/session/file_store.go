package session

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/tradedeck/tradedeck/pkg/file"
)

const (
	userSessionFile  = "session"
	adminSessionFile = "admin-session"
)

// FileStore persists sessions as JSON files under a single directory,
// one file per scope.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// NewHomeFileStore returns a FileStore rooted at ~/.tradedeck.
func NewHomeFileStore() (*FileStore, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return nil, errors.Wrap(err, "error locating user's home directory")
	}
	return NewFileStore(path.Join(homeDir, ".tradedeck")), nil
}

func (f *FileStore) sessionFile(scope Scope) string {
	if scope == ScopeAdmin {
		return path.Join(f.dir, adminSessionFile)
	}
	return path.Join(f.dir, userSessionFile)
}

func (f *FileStore) Get(scope Scope) (Session, error) {
	session := Session{}
	sessionFile := f.sessionFile(scope)
	if !file.Exists(sessionFile) {
		return session, nil
	}
	sessionBytes, err := ioutil.ReadFile(sessionFile)
	if err != nil {
		return session, errors.Wrapf(
			err,
			"error reading %s session file at %s",
			scope,
			sessionFile,
		)
	}
	if err := json.Unmarshal(sessionBytes, &session); err != nil {
		return session, errors.Wrapf(
			err,
			"error parsing %s session file at %s",
			scope,
			sessionFile,
		)
	}
	return session, nil
}

func (f *FileStore) Set(scope Scope, session Session) error {
	if _, err := os.Stat(f.dir); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of %s",
				f.dir,
			)
		}
		if err := os.MkdirAll(f.dir, 0755); err != nil {
			return errors.Wrapf(err, "error creating %s", f.dir)
		}
	}
	sessionBytes, err := json.Marshal(session)
	if err != nil {
		return errors.Wrapf(err, "error marshaling %s session", scope)
	}
	sessionFile := f.sessionFile(scope)
	if err := ioutil.WriteFile(sessionFile, sessionBytes, 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", sessionFile)
	}
	return nil
}

func (f *FileStore) Clear(scope Scope) error {
	sessionFile := f.sessionFile(scope)
	if err := os.Remove(sessionFile); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "error deleting %s", sessionFile)
	}
	return nil
}
