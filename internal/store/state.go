package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// DataDir returns the path to the darktheme data directory.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/darktheme.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "darktheme"), nil
}

// StateFilePath returns the default path to the state file.
func StateFilePath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "state.json"), nil
}

// Transition records a single change of a stored entry.
type Transition struct {
	ID        string `json:"id"`
	Key       string `json:"key"`
	From      string `json:"from,omitempty"` // Empty when the key was previously absent
	To        string `json:"to"`
	Source    string `json:"source,omitempty"` // e.g. "cli", "tui"
	Timestamp int64  `json:"timestamp"`
}

// NewTransition creates a transition stamped with the current time.
func NewTransition(key, from, to, source string) Transition {
	now := time.Now()
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		id = ulid.Make()
	}
	return Transition{
		ID:        id.String(),
		Key:       key,
		From:      from,
		To:        to,
		Source:    source,
		Timestamp: now.Unix(),
	}
}

// state is the on-disk layout of the state file.
type state struct {
	Entries        map[string]string `json:"entries"`
	LastTransition *Transition       `json:"last_transition,omitempty"`
	SchemaVersion  int               `json:"schema_version"`
}

const (
	// CurrentSchemaVersion is the current version of the state schema.
	CurrentSchemaVersion = 1
)

func defaultState() *state {
	return &state{
		Entries:       make(map[string]string),
		SchemaVersion: CurrentSchemaVersion,
	}
}

// FileStore is a KeyValueStore persisted to a JSON file.
// Every read loads the file and every write rewrites it atomically, so
// separate invocations always see the latest saved value.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	source string
}

// NewFileStore creates a store backed by the file at path.
// The file is created lazily on the first write.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		var err error
		path, err = StateFilePath()
		if err != nil {
			return nil, err
		}
	}
	return &FileStore{path: path, source: "cli"}, nil
}

// Path returns the state file path.
func (s *FileStore) Path() string {
	return s.path
}

// SetSource sets the source recorded on transitions written by SetItem.
func (s *FileStore) SetSource(source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = source
}

// GetItem returns the value stored for key.
func (s *FileStore) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := st.Entries[key]
	return v, ok, nil
}

// SetItem stores value under key and records the transition.
func (s *FileStore) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}

	t := NewTransition(key, st.Entries[key], value, s.source)
	st.Entries[key] = value
	st.LastTransition = &t
	return s.save(st)
}

// RemoveItem deletes key from the state file.
func (s *FileStore) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := st.Entries[key]; !ok {
		return nil
	}
	delete(st.Entries, key)
	return s.save(st)
}

// LastTransition returns the most recent recorded change, or nil.
func (s *FileStore) LastTransition() (*Transition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, err := s.load()
	if err != nil {
		return nil, err
	}
	return st.LastTransition, nil
}

// load reads the state file. A missing or corrupted file yields empty state.
func (s *FileStore) load() (*state, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultState(), nil
		}
		return nil, err
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return defaultState(), nil
	}
	if st.Entries == nil {
		st.Entries = make(map[string]string)
	}
	if st.SchemaVersion == 0 {
		st.SchemaVersion = CurrentSchemaVersion
	}
	return &st, nil
}

// save writes the state atomically via a temp file.
func (s *FileStore) save(st *state) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path)
}
