package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"doctor-booking-api/internal/kv"
	"doctor-booking-api/internal/model"
)

// Appointments holds booked appointments. Each user gets their own storage
// partition; a default partition backs the anonymous state. Operations are
// keyed by user id so that a request always reads and writes its own
// partition, regardless of which identity the session tracker points at.
type Appointments struct {
	kv kv.Store

	mu  sync.Mutex
	key string
}

func NewAppointments(s kv.Store) *Appointments {
	return &Appointments{kv: s, key: KeyAppointmentsDefault}
}

// PartitionKey derives the storage key for a user id. An empty id maps to
// the default partition.
func PartitionKey(userID string) string {
	if userID == "" {
		return KeyAppointmentsDefault
	}
	return KeyAppointmentsDefault + "_" + userID
}

func (a *Appointments) CurrentPartitionKey() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.key
}

// ReloadForUser re-keys the store to the new identity's partition. Called
// whenever the session identity changes; partition contents are read fresh
// on every operation, never cached across requests.
func (a *Appointments) ReloadForUser(ctx context.Context, userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.key = PartitionKey(userID)
	// warm read so malformed data is reported at transition time
	a.loadLocked(ctx, a.key)
}

func (a *Appointments) loadLocked(ctx context.Context, key string) []model.Appointment {
	raw, err := a.kv.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("appointments %s: %v", key, err)
		return nil
	}
	var items []model.Appointment
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("appointments %s: malformed stored data, starting empty: %v", key, err)
		return nil
	}
	return items
}

func (a *Appointments) List(ctx context.Context, userID string) []model.Appointment {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loadLocked(ctx, PartitionKey(userID))
}

// Add appends and rewrites the whole partition. The lock spans the
// read-modify-write so a concurrent identity switch cannot redirect the
// booking into another user's partition. Slot conflicts and duplicate
// bookings are not checked, matching the demo's permissive behavior.
func (a *Appointments) Add(ctx context.Context, userID string, appt model.Appointment) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	key := PartitionKey(userID)
	items := append(a.loadLocked(ctx, key), appt)
	return a.persistLocked(ctx, key, items)
}

// Remove filters out the matching id. Removing an unknown id is a no-op.
func (a *Appointments) Remove(ctx context.Context, userID, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	key := PartitionKey(userID)
	items := a.loadLocked(ctx, key)
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	return a.persistLocked(ctx, key, kept)
}

func (a *Appointments) persistLocked(ctx context.Context, key string, items []model.Appointment) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return a.kv.Set(ctx, key, string(b))
}
