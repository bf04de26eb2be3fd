package view

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"gitlab.com/begraf/tourenblick/chart"
	"gitlab.com/begraf/tourenblick/geotrack"
	"gitlab.com/begraf/tourenblick/tour"
)

// ErrSuperseded marks a load attempt whose response arrived after a
// newer load had already begun. The response is discarded instead of
// overwriting the newer view.
var ErrSuperseded = errors.New("load superseded by a newer one")

// Session owns the state of one displayed tour: the parsed tracks, the
// derived stats, the current projection and the single map highlight
// marker. A new tour gets a new session; nothing is updated in place.
//
// Chart requests for the same tour arrive concurrently, so the mutable
// projection and marker are guarded by a mutex and only reachable
// through methods.
type Session struct {
	Token uuid.UUID
	Tour  *tour.Tour
	Stats geotrack.Stats

	mu      sync.Mutex
	current *chart.Chart
	marker  *MapMarker
}

// MapMarker mirrors the single marker shown on the geographic map while
// a chart point is highlighted.
type MapMarker struct {
	Lat, Lon float64
	Color    string
}

// NewSession derives stats from the tour's flattened tracks and projects
// the chart for the given viewport.
func NewSession(t *tour.Tour, width, height int) *Session {
	stats := geotrack.ComputeStats(geotrack.Flatten(t.Tracks))

	return &Session{
		Token:   uuid.New(),
		Tour:    t,
		Stats:   stats,
		current: chart.Project(t.Tracks, stats, width, height),
	}
}

// Chart returns the current projection.
func (s *Session) Chart() *chart.Chart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// Resize reprojects the chart from the owned tracks. Stats are left
// untouched; the track set did not change. Any projected pixel data from
// before the resize is replaced wholesale.
func (s *Session) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = chart.Project(s.Tour.Tracks, s.Stats, width, height)
}

// EnsureViewport reprojects only when the viewport changed and returns
// the projection matching it.
func (s *Session) EnsureViewport(width, height int) *chart.Chart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.Width != width || s.current.Height != height {
		s.current = chart.Project(s.Tour.Tracks, s.Stats, width, height)
	}

	return s.current
}

// Highlight resolves a pointer x position. On a match the map marker is
// replaced so that exactly one marker exists; outside the plotting area
// the highlight and the marker are cleared.
func (s *Session) Highlight(x float64) *chart.Highlight {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.current.HighlightAt(x)
	if h == nil {
		s.marker = nil
		return nil
	}

	s.marker = &MapMarker{
		Lat:   h.Point.Source.Lat,
		Lon:   h.Point.Source.Lon,
		Color: h.Color,
	}

	return h
}

// ClearHighlight removes the chart highlight and the map marker, e.g.
// when the pointer leaves the chart.
func (s *Session) ClearHighlight() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.marker = nil
}

// Marker returns the currently displayed map marker, or nil.
func (s *Session) Marker() *MapMarker {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.marker
}

// Manager hands out load tokens and keeps at most one active session.
// Beginning a new load invalidates the previous token, so a response
// that raced with a newer load can never be installed.
type Manager struct {
	mu     sync.Mutex
	token  uuid.UUID
	active *Session
}

// Begin tears down the active session and returns the token the
// upcoming load must present when installing its result.
func (m *Manager) Begin() uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = uuid.New()
	m.active = nil

	return m.token
}

// Install makes the session active if the token is still current.
func (m *Manager) Install(token uuid.UUID, s *Session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token != m.token {
		return false
	}

	s.Token = token
	m.active = s

	return true
}

// Active returns the installed session, or nil while a load is pending.
func (m *Manager) Active() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.active
}

// LoadTour runs one full load attempt: fetch, parse, stats, projection.
// Fetch and parse failures are terminal for the attempt. A result whose
// token has been superseded is discarded with ErrSuperseded.
func (m *Manager) LoadTour(ctx context.Context, loader Loader, id string, width, height int) (*Session, error) {
	token := m.Begin()

	data, err := loader.FetchGPX(ctx, id)
	if err != nil {
		return nil, err
	}

	tourData, err := geotrack.ParseGPX(data, tour.GPXFileName(id))
	if err != nil {
		return nil, err
	}

	s := NewSession(tour.New(tourData, tour.GPXFileName(id), "tours/"+id), width, height)

	if !m.Install(token, s) {
		return nil, ErrSuperseded
	}

	return s, nil
}
