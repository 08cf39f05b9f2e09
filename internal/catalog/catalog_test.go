package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctor-booking-api/internal/catalog"
)

func TestQueryPagination(t *testing.T) {
	svc := catalog.New()
	ctx := context.Background()

	res, err := svc.Query(ctx, 1, 6, "")
	require.NoError(t, err)
	assert.Len(t, res.Doctors, 6)
	assert.Equal(t, 8, res.TotalCount)
	assert.Equal(t, 2, res.TotalPages)

	res, err = svc.Query(ctx, 2, 6, "")
	require.NoError(t, err)
	assert.Len(t, res.Doctors, 2)
	assert.Equal(t, 8, res.TotalCount)
	assert.Equal(t, 2, res.TotalPages)
}

func TestQuerySpecialtyFilter(t *testing.T) {
	svc := catalog.New()

	res, err := svc.Query(context.Background(), 1, 6, "Cardiology")
	require.NoError(t, err)
	require.Len(t, res.Doctors, 1)
	assert.Equal(t, "Dr. Sarah Johnson", res.Doctors[0].Name)
	assert.Equal(t, 1, res.TotalCount)
	assert.Equal(t, 1, res.TotalPages)

	// the match is case-sensitive
	res, err = svc.Query(context.Background(), 1, 6, "cardiology")
	require.NoError(t, err)
	assert.Empty(t, res.Doctors)
	assert.Equal(t, 0, res.TotalCount)
}

func TestQueryPagePastEnd(t *testing.T) {
	svc := catalog.New()

	res, err := svc.Query(context.Background(), 5, 6, "")
	require.NoError(t, err)
	assert.Empty(t, res.Doctors)
	assert.Equal(t, 8, res.TotalCount)
	assert.Equal(t, 2, res.TotalPages)
}

func TestQueryInvalidParams(t *testing.T) {
	svc := catalog.New()

	_, err := svc.Query(context.Background(), 0, 6, "")
	assert.ErrorIs(t, err, catalog.ErrQueryFailed)

	_, err = svc.Query(context.Background(), 1, 0, "")
	assert.ErrorIs(t, err, catalog.ErrQueryFailed)
}

func TestQueryCancelledDuringDelay(t *testing.T) {
	svc := catalog.New(catalog.WithDelay(5 * time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := svc.Query(ctx, 1, 6, "")
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("query did not abort on cancellation")
	}
}

func TestQueryFailureInjection(t *testing.T) {
	svc := catalog.New(catalog.WithFailure(func() error {
		return errors.New("simulated outage")
	}))

	_, err := svc.Query(context.Background(), 1, 6, "")
	assert.ErrorIs(t, err, catalog.ErrQueryFailed)
}

func TestDoctorByID(t *testing.T) {
	svc := catalog.New()

	d, ok := svc.DoctorByID("5")
	require.True(t, ok)
	assert.Equal(t, "Pediatrics", d.Specialty)

	_, ok = svc.DoctorByID("99")
	assert.False(t, ok)
}
