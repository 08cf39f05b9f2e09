package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctor-booking-api/internal/kv"
	"doctor-booking-api/internal/model"
	"doctor-booking-api/internal/store"
)

func appt(id, doctor string) model.Appointment {
	return model.Appointment{
		ID:              id,
		DoctorID:        "1",
		DoctorName:      doctor,
		DoctorSpecialty: "Cardiology",
		DateTime:        "Monday 9:00 AM",
		Location:        "Medical Center, Building A, Room 302",
	}
}

func TestPartitionKey(t *testing.T) {
	assert.Equal(t, "appointments", store.PartitionKey(""))
	assert.Equal(t, "appointments_u1", store.PartitionKey("u1"))
}

func TestAddListRemove(t *testing.T) {
	ctx := context.Background()
	a := store.NewAppointments(kv.NewMemory())

	require.NoError(t, a.Add(ctx, "u1", appt("a1", "Dr. Sarah Johnson")))
	items := a.List(ctx, "u1")
	require.Len(t, items, 1)
	assert.Equal(t, "a1", items[0].ID)

	require.NoError(t, a.Remove(ctx, "u1", "a1"))
	assert.Empty(t, a.List(ctx, "u1"))
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	a := store.NewAppointments(kv.NewMemory())

	require.NoError(t, a.Add(ctx, "u1", appt("a1", "Dr. Sarah Johnson")))
	require.NoError(t, a.Remove(ctx, "u1", "nope"))
	assert.Len(t, a.List(ctx, "u1"), 1)
}

func TestDoubleBookingIsAllowed(t *testing.T) {
	ctx := context.Background()
	a := store.NewAppointments(kv.NewMemory())

	// same doctor, same slot; the demo never prevented this
	require.NoError(t, a.Add(ctx, "u1", appt("a1", "Dr. Sarah Johnson")))
	require.NoError(t, a.Add(ctx, "u1", appt("a2", "Dr. Sarah Johnson")))
	assert.Len(t, a.List(ctx, "u1"), 2)
}

func TestPartitionIsolation(t *testing.T) {
	ctx := context.Background()
	a := store.NewAppointments(kv.NewMemory())

	require.NoError(t, a.Add(ctx, "u1", appt("a1", "Dr. Sarah Johnson")))
	assert.Empty(t, a.List(ctx, "u2"))

	require.NoError(t, a.Add(ctx, "u2", appt("b1", "Dr. Michael Chen")))
	items := a.List(ctx, "u1")
	require.Len(t, items, 1)
	assert.Equal(t, "a1", items[0].ID)

	// anonymous partition is its own bucket
	assert.Empty(t, a.List(ctx, ""))
}

func TestAddUnaffectedByIdentitySwitch(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	a := store.NewAppointments(mem)

	// another user's login re-keys the session partition between this
	// user's request being authenticated and its booking being written
	a.ReloadForUser(ctx, "u1")
	a.ReloadForUser(ctx, "u2")
	require.NoError(t, a.Add(ctx, "u1", appt("a1", "Dr. Sarah Johnson")))

	items := a.List(ctx, "u1")
	require.Len(t, items, 1)
	assert.Equal(t, "a1", items[0].ID)
	assert.Empty(t, a.List(ctx, "u2"))

	// the booking landed in u1's partition on disk; u2's was never written
	_, err := mem.Get(ctx, store.PartitionKey("u2"))
	assert.ErrorIs(t, err, kv.ErrNotFound)
	raw, err := mem.Get(ctx, store.PartitionKey("u1"))
	require.NoError(t, err)
	assert.Contains(t, raw, `"a1"`)
}

func TestReloadTracksCurrentPartitionKey(t *testing.T) {
	ctx := context.Background()
	a := store.NewAppointments(kv.NewMemory())

	assert.Equal(t, store.KeyAppointmentsDefault, a.CurrentPartitionKey())
	a.ReloadForUser(ctx, "u1")
	assert.Equal(t, "appointments_u1", a.CurrentPartitionKey())
	a.ReloadForUser(ctx, "")
	assert.Equal(t, store.KeyAppointmentsDefault, a.CurrentPartitionKey())
}

func TestCorruptPartitionResolvesEmpty(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(ctx, "appointments_u1", "[[[broken"))

	a := store.NewAppointments(mem)
	assert.Empty(t, a.List(ctx, "u1"))

	// and the partition is writable again
	require.NoError(t, a.Add(ctx, "u1", appt("a1", "Dr. Sarah Johnson")))
	assert.Len(t, a.List(ctx, "u1"), 1)
}
