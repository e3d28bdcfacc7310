package figurines

import (
	"sync"

	"github.com/agentstation/figurines/pkg/collection"
)

// Hook function types for record events. Hooks receive copies; changing them
// does not affect the collection.
type (
	// RecordAddedHook is called after a new record has been saved
	RecordAddedHook func(record *collection.Record)

	// RecordUpdatedHook is called after an edited record has been saved
	RecordUpdatedHook func(old, new *collection.Record)

	// RecordRemovedHook is called after a record's removal has been saved
	RecordRemovedHook func(record *collection.Record)

	// CleanupWarningHook is called when an edit or delete succeeded but some
	// old image files could not be removed. err is a *errors.FileCleanupWarning.
	CleanupWarningHook func(record *collection.Record, err error)
)

// Hooks provides event callback registration.
type Hooks interface {
	// OnRecordAdded registers a callback for when records are added
	OnRecordAdded(RecordAddedHook)

	// OnRecordUpdated registers a callback for when records are updated
	OnRecordUpdated(RecordUpdatedHook)

	// OnRecordRemoved registers a callback for when records are removed
	OnRecordRemoved(RecordRemovedHook)

	// OnCleanupWarning registers a callback for image files left behind
	OnCleanupWarning(CleanupWarningHook)
}

// hooks manages event callbacks for collection changes
type hooks struct {
	mu              sync.RWMutex
	onRecordAdded   []RecordAddedHook
	onRecordUpdated []RecordUpdatedHook
	onRecordRemoved []RecordRemovedHook
	onCleanup       []CleanupWarningHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnRecordAdded registers a callback for when records are added
func (h *hooks) OnRecordAdded(fn RecordAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRecordAdded = append(h.onRecordAdded, fn)
}

// OnRecordUpdated registers a callback for when records are updated
func (h *hooks) OnRecordUpdated(fn RecordUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRecordUpdated = append(h.onRecordUpdated, fn)
}

// OnRecordRemoved registers a callback for when records are removed
func (h *hooks) OnRecordRemoved(fn RecordRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRecordRemoved = append(h.onRecordRemoved, fn)
}

// OnCleanupWarning registers a callback for image files left behind
func (h *hooks) OnCleanupWarning(fn CleanupWarningHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onCleanup = append(h.onCleanup, fn)
}

func (h *hooks) triggerAdded(r *collection.Record) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onRecordAdded {
		hook(r.Clone())
	}
}

func (h *hooks) triggerUpdated(old, new *collection.Record) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onRecordUpdated {
		hook(old.Clone(), new.Clone())
	}
}

func (h *hooks) triggerRemoved(r *collection.Record) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onRecordRemoved {
		hook(r.Clone())
	}
}

func (h *hooks) triggerCleanupWarning(r *collection.Record, err error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onCleanup {
		hook(r.Clone(), err)
	}
}
