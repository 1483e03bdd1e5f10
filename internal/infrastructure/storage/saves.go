package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SlotCount is the number of save slots offered by the menus
const SlotCount = 3

// ErrNoSaveData is returned for empty or unreadable slots
var ErrNoSaveData = errors.New("no save data")

// saveFile is the on-disk layout of one slot
type saveFile struct {
	Description string          `json:"description"`
	State       json.RawMessage `json:"state"`
}

// SaveStore keeps match snapshots in numbered slots inside a directory
type SaveStore struct {
	dir string
}

// NewSaveStore creates a store rooted at dir. The directory is created on
// the first save.
func NewSaveStore(dir string) *SaveStore {
	return &SaveStore{dir: dir}
}

func (s *SaveStore) path(slot int) string {
	return filepath.Join(s.dir, fmt.Sprintf("save_%d.json", slot))
}

func checkSlot(slot int) error {
	if slot < 1 || slot > SlotCount {
		return fmt.Errorf("save slot %d out of range 1-%d", slot, SlotCount)
	}
	return nil
}

// Save writes state with its one-line description into slot
func (s *SaveStore) Save(slot int, description string, state any) error {
	if err := checkSlot(slot); err != nil {
		return err
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode save state: %w", err)
	}
	data, err := json.MarshalIndent(saveFile{Description: description, State: raw}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode save file: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create save dir: %w", err)
	}
	// Slots are replaced atomically
	tmp := s.path(slot) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := os.Rename(tmp, s.path(slot)); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}

func (s *SaveStore) read(slot int) (*saveFile, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(slot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSaveData
		}
		return nil, fmt.Errorf("%w: %v", ErrNoSaveData, err)
	}

	var f saveFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSaveData, err)
	}
	if len(f.State) == 0 {
		return nil, ErrNoSaveData
	}
	return &f, nil
}

// Describe returns the description stored in slot
func (s *SaveStore) Describe(slot int) (string, error) {
	f, err := s.read(slot)
	if err != nil {
		return "", err
	}
	return f.Description, nil
}

// Load decodes the state stored in slot into out
func (s *SaveStore) Load(slot int, out any) error {
	f, err := s.read(slot)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(f.State, out); err != nil {
		return fmt.Errorf("%w: %v", ErrNoSaveData, err)
	}
	return nil
}

// Labels returns one menu label per slot, "Empty" for unused slots
func (s *SaveStore) Labels() []string {
	labels := make([]string, SlotCount)
	for i := range labels {
		desc, err := s.Describe(i + 1)
		if err != nil {
			desc = "Empty"
		}
		labels[i] = fmt.Sprintf("Slot %d: %s", i+1, desc)
	}
	return labels
}
