package store

import (
	"encoding/json"
	"errors"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/logger"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/metrics"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/storage"
)

// snapshot is the persisted shape of a session. Derived values (totals, the
// authenticated flag) are recomputed on load, never stored.
type snapshot struct {
	User      *models.User      `json:"user"`
	CartItems []models.CartLine `json:"cart_items"`
}

// persist writes the whole-state snapshot to the slot. Must be called with
// s.mu held. A failed write is logged and counted but does not fail the
// mutation; the in-memory state stays authoritative.
func (s *Store) persist() {
	data, err := json.Marshal(snapshot{User: s.user, CartItems: s.lines})
	if err != nil {
		metrics.SnapshotWrites.WithLabelValues("marshal_error").Inc()
		logger.Error("store: marshal snapshot", "slot", s.slot, "error", err)
		return
	}

	if err := s.blobs.Put(s.slot, data); err != nil {
		metrics.SnapshotWrites.WithLabelValues("write_error").Inc()
		logger.Error("store: write snapshot", "slot", s.slot, "error", err)
		return
	}
	metrics.SnapshotWrites.WithLabelValues("ok").Inc()
}

// rehydrate loads the snapshot from the slot. Missing and corrupt snapshots
// both degrade to an empty session. Called from New, before the store is
// shared, so no locking is needed.
func (s *Store) rehydrate() {
	data, err := s.blobs.Get(s.slot)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("store: read snapshot", "slot", s.slot, "error", err)
		}
		return
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Warn("store: corrupt snapshot, starting empty", "slot", s.slot, "error", err)
		return
	}

	s.user = snap.User
	s.authenticated = snap.User != nil
	s.lines = snap.CartItems

	// Line ids must stay unique across restarts.
	for _, l := range s.lines {
		if l.ID >= s.nextLineID {
			s.nextLineID = l.ID + 1
		}
	}
}
