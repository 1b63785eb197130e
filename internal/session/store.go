package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"linkedopt/internal/errors"
)

// Store persists sessions as one JSON file per session under a
// directory. It exists for the CLI flow, where a user runs extract,
// score and optimize as separate invocations against the same session.
type Store struct {
	dir    string
	logger *errors.Logger
}

// NewStore returns a store rooted at dir. The directory is created
// lazily on first save.
func NewStore(dir string, logger *errors.Logger) *Store {
	if logger == nil {
		logger = errors.NewLogger(slog.LevelInfo)
	}
	return &Store{dir: dir, logger: logger}
}

func (st *Store) path(id string) string {
	return filepath.Join(st.dir, id+".json")
}

// Save writes the session to <dir>/<id>.json and returns the path.
// The write goes through a temp file so a crash never leaves a
// half-written session behind.
func (st *Store) Save(sess *Session) (string, error) {
	if err := os.MkdirAll(st.dir, 0o755); err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("could not create session directory %s", st.dir), err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return "", errors.NewInternalError(errors.ErrCodeInvalidFormat,
			"could not encode session", err)
	}

	path := st.path(sess.ID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("could not write session file %s", tmp), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("could not write session file %s", path), err)
	}

	st.logger.Debug("session saved", "id", sess.ID, "path", path)
	return path, nil
}

// Load reads a previously saved session by ID.
func (st *Store) Load(id string) (*Session, error) {
	data, err := os.ReadFile(st.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewIOError(errors.ErrCodeFileNotFound,
				fmt.Sprintf("session %s not found", id), err)
		}
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("could not read session %s", id), err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("session file for %s is not valid JSON", id), err)
	}
	return &sess, nil
}

// List returns the IDs of all saved sessions, in directory order. A
// missing directory lists as empty.
func (st *Store) List() ([]string, error) {
	entries, err := os.ReadDir(st.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("could not list session directory %s", st.dir), err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// Delete removes a saved session. Deleting a session that does not
// exist is not an error.
func (st *Store) Delete(id string) error {
	if err := os.Remove(st.path(id)); err != nil && !os.IsNotExist(err) {
		return errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("could not delete session %s", id), err)
	}
	return nil
}
