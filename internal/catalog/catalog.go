package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctor-booking-api/internal/model"
)

var ErrQueryFailed = errors.New("query failed")

type Result struct {
	Doctors    []model.Doctor `json:"doctors"`
	TotalCount int            `json:"totalCount"`
	TotalPages int            `json:"totalPages"`
}

// Service filters and paginates the static doctor catalog. Results are never
// cached: every call re-executes, so parameter changes always go through a
// fresh fetch cycle.
type Service struct {
	doctors []model.Doctor
	delay   time.Duration
	fail    func() error
}

type Option func(*Service)

// WithDelay sets the artificial latency applied before resolving, simulating
// the demo's fake network round trip.
func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

// WithDoctors replaces the built-in fixture.
func WithDoctors(doctors []model.Doctor) Option {
	return func(s *Service) { s.doctors = doctors }
}

// WithFailure injects an error source for exercising the UI's error path.
// The hook runs after the delay; a nil return proceeds normally.
func WithFailure(fn func() error) Option {
	return func(s *Service) { s.fail = fn }
}

func New(opts ...Option) *Service {
	s := &Service{doctors: Doctors}
	for _, o := range opts {
		o(s)
	}
	return s
}

// DoctorByID resolves a catalog entry, used when turning a booking into an
// appointment record.
func (s *Service) DoctorByID(id string) (*model.Doctor, bool) {
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			d := s.doctors[i]
			return &d, true
		}
	}
	return nil, false
}

// Query filters by exact specialty match and slices out the requested page.
// A page past the end yields an empty list, not an error. The simulated
// delay aborts cleanly when ctx is cancelled.
func (s *Service) Query(ctx context.Context, page, pageSize int, specialty string) (*Result, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf("%w: page and pageSize must be positive", ErrQueryFailed)
	}

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	if s.fail != nil {
		if err := s.fail(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
	}

	filtered := s.doctors
	if specialty != "" {
		filtered = nil
		for _, d := range s.doctors {
			if d.Specialty == specialty {
				filtered = append(filtered, d)
			}
		}
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	items := make([]model.Doctor, end-start)
	copy(items, filtered[start:end])

	return &Result{Doctors: items, TotalCount: total, TotalPages: totalPages}, nil
}
