package progress

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/storage"
)

const updatesFileName = "progress_updates.json"

// Repository is the append-only progress-update log. Entries are never
// mutated or deleted; insertion order is recording order.
type Repository interface {
	Record(update ProgressUpdate)
	GetUpdatesForOutcome(outcomeID string) []ProgressUpdate
	GetAllUpdates() []ProgressUpdate
	SaveAll() error
	// Discard drops any unsaved appends, restoring the in-memory log to the
	// last persisted state.
	Discard()
}

type updatesFile struct {
	Metadata        map[string]any   `json:"metadata"`
	ProgressUpdates []ProgressUpdate `json:"progress_updates"`
}

type jsonRepository struct {
	path string
	now  func() time.Time

	mu      sync.Mutex
	meta    map[string]any
	cur     []ProgressUpdate
	pending []ProgressUpdate
	dirty   bool
}

func NewJSONRepository(dir string) (Repository, error) {
	path := filepath.Join(dir, updatesFileName)

	var f updatesFile
	if err := storage.ReadJSON(path, &f); err != nil {
		return nil, err
	}

	return &jsonRepository{
		path: path,
		now:  time.Now,
		meta: f.Metadata,
		cur:  f.ProgressUpdates,
	}, nil
}

func (r *jsonRepository) Record(update ProgressUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.dirty {
		r.pending = append([]ProgressUpdate(nil), r.cur...)
		r.dirty = true
	}
	r.pending = append(r.pending, update)
}

func (r *jsonRepository) GetUpdatesForOutcome(outcomeID string) []ProgressUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []ProgressUpdate
	for _, u := range r.reading() {
		if u.OutcomeID == outcomeID {
			matched = append(matched, u)
		}
	}
	return matched
}

func (r *jsonRepository) GetAllUpdates() []ProgressUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ProgressUpdate(nil), r.reading()...)
}

func (r *jsonRepository) reading() []ProgressUpdate {
	if r.dirty {
		return r.pending
	}
	return r.cur
}

// SaveAll persists the full sequence with an atomic rename. The pending
// appends become canonical only on success; a failed write discards them so
// memory stays consistent with the file.
func (r *jsonRepository) SaveAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	meta := make(map[string]any, len(r.meta)+1)
	for k, v := range r.meta {
		meta[k] = v
	}
	meta["last_updated"] = r.now().Format(time.RFC3339)

	data, err := storage.MarshalIndent(updatesFile{
		Metadata:        meta,
		ProgressUpdates: r.reading(),
	})
	if err != nil {
		return fmt.Errorf("encode progress updates: %w", err)
	}

	if err := storage.WriteFileAtomic(r.path, data); err != nil {
		r.pending = nil
		r.dirty = false
		return fmt.Errorf("save progress updates: %w", err)
	}

	if r.dirty {
		r.cur = r.pending
		r.pending = nil
		r.dirty = false
	}
	r.meta = meta
	return nil
}

func (r *jsonRepository) Discard() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = nil
	r.dirty = false
}
