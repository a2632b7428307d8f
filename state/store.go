package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"sync"
	"time"

	"github.com/verdantlab/treewatch-backend/garden"
)

// Manual holds the operator override fields of the state blob.
type Manual struct {
	PumpState   bool  `json:"pumpState"`
	LastCommand int64 `json:"lastCommand"`
}

// Store is the persisted system-state blob: the operating mode label
// plus mode-keyed sub-records the controller firmware reads back. Every
// mutation is a full read-modify-rewrite of the file, serialized by the
// mutex so concurrent writers cannot lose each other's fields.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// EnsureFile writes an initial blob when none exists yet.
func (s *Store) EnsureFile(defaultMode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %v", garden.ErrStorage, err)
	}

	doc := map[string]json.RawMessage{}
	doc["state"], _ = json.Marshal(defaultMode)
	doc["MANUAL"], _ = json.Marshal(Manual{})

	return s.write(doc)
}

// State returns the current operating mode plus the server's hour of
// day, which the devices use to pick schedule windows.
func (s *Store) State() (string, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return "", 0, err
	}

	var mode string
	if raw, ok := doc["state"]; ok {
		json.Unmarshal(raw, &mode)
	}

	return mode, time.Now().Hour(), nil
}

// ModeData returns the sub-record stored under the given mode label.
func (s *Store) ModeData(label string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, false, err
	}

	raw, ok := doc[label]
	return raw, ok, nil
}

// SetManualPump coerces the requested state to a boolean, records it
// together with a fresh command timestamp and rewrites the blob.
func (s *Store) SetManualPump(requested interface{}) error {
	on := requested == true || requested == "true"

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	var manual Manual
	if raw, ok := doc["MANUAL"]; ok {
		json.Unmarshal(raw, &manual)
	}

	manual.PumpState = on
	manual.LastCommand = time.Now().UnixMilli()

	raw, err := json.Marshal(manual)
	if err != nil {
		return fmt.Errorf("%w: %v", garden.ErrStorage, err)
	}
	doc["MANUAL"] = raw

	return s.write(doc)
}

// SetMode overwrites the top-level operating mode label.
func (s *Store) SetMode(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(label)
	if err != nil {
		return fmt.Errorf("%w: %v", garden.ErrStorage, err)
	}
	doc["state"] = raw

	return s.write(doc)
}

func (s *Store) read() (map[string]json.RawMessage, error) {
	data, err := ioutil.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", garden.ErrStorage, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", garden.ErrStorage, err)
	}
	if doc == nil {
		doc = map[string]json.RawMessage{}
	}

	return doc, nil
}

func (s *Store) write(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %v", garden.ErrStorage, err)
	}

	if err := ioutil.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", garden.ErrStorage, err)
	}

	return nil
}
