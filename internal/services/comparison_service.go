// internal/services/comparison_service.go
package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/epoint/product-comparator/pkg/comparator"
)

var (
	ErrSessionNotFound = errors.New("comparison session not found")
	// ErrSlotNotOpen means the requested slot is not the next one in line.
	// Slots are revealed strictly in order and stay contiguous from slot 1.
	ErrSlotNotOpen = errors.New("comparison slot not open for picking")
)

// ComparisonView is the rendered state of one session.
type ComparisonView struct {
	ID             string            `json:"id"`
	Slots          int               `json:"slots"`
	Active         bool              `json:"active"`
	FirstEmptySlot int               `json:"first_empty_slot,omitempty"` // 0 when all slots are filled
	Table          *comparator.Table `json:"table,omitempty"`
}

type comparisonSession struct {
	// mu serializes slot mutations so a pick and a removal on the same
	// session cannot interleave
	mu       sync.Mutex
	state    *comparator.SelectionState
	lastSeen time.Time
}

// ComparisonService keeps short-lived comparison sessions in memory.
// Comparisons deliberately do not survive the process or a TTL expiry;
// they are scoped to one visit, like the widget state they mirror.
type ComparisonService struct {
	client comparator.Client
	cfg    comparator.Config
	ttl    time.Duration

	mtx      sync.Mutex
	sessions map[uuid.UUID]*comparisonSession
}

func NewComparisonService(client comparator.Client, cfg comparator.Config, ttl time.Duration) *ComparisonService {
	s := &ComparisonService{
		client:   client,
		cfg:      cfg,
		ttl:      ttl,
		sessions: make(map[uuid.UUID]*comparisonSession),
	}

	// Evict idle sessions every minute
	go s.cleanupSessions()

	return s
}

func (s *ComparisonService) cleanupSessions() {
	for {
		time.Sleep(time.Minute)
		s.mtx.Lock()
		for id, session := range s.sessions {
			if time.Since(session.lastSeen) > s.ttl {
				delete(s.sessions, id)
			}
		}
		s.mtx.Unlock()
	}
}

// CreateSession opens a fresh, empty comparison.
func (s *ComparisonService) CreateSession() *ComparisonView {
	id := uuid.New()
	session := &comparisonSession{
		state:    comparator.NewSelectionState(s.cfg),
		lastSeen: time.Now(),
	}

	s.mtx.Lock()
	s.sessions[id] = session
	s.mtx.Unlock()

	logrus.WithField("session_id", id).Debug("comparison session created")
	return s.view(id, session)
}

// GetSession returns the session's rendered comparison.
func (s *ComparisonService) GetSession(id uuid.UUID) (*ComparisonView, error) {
	session, err := s.touch(id)
	if err != nil {
		return nil, err
	}
	return s.view(id, session), nil
}

// SelectSlot resolves the product and places it in the slot. Only the
// first empty slot accepts a pick, which keeps the selection contiguous.
func (s *ComparisonService) SelectSlot(ctx context.Context, id uuid.UUID, slot int, productID string) (*ComparisonView, error) {
	session, err := s.touch(id)
	if err != nil {
		return nil, err
	}

	if slot < 1 || slot > s.cfg.SlotCount() {
		return nil, comparator.ErrInvalidSlot
	}
	if next, ok := session.state.FirstEmptySlot(); !ok || next != slot {
		return nil, ErrSlotNotOpen
	}

	product, err := s.client.GetProductDetail(ctx, productID)
	if err != nil {
		return nil, err
	}

	// The detail lookup is network-bound; a removal during it may have
	// reopened an earlier slot. The pick only lands while the slot is
	// still the next one in line, which keeps the selection contiguous.
	session.mu.Lock()
	defer session.mu.Unlock()
	if next, ok := session.state.FirstEmptySlot(); !ok || next != slot {
		return nil, ErrSlotNotOpen
	}
	if err := session.state.Select(slot, product); err != nil {
		return nil, err
	}

	return s.view(id, session), nil
}

// RemoveSlot clears the slot and everything above it.
func (s *ComparisonService) RemoveSlot(id uuid.UUID, slot int) (*ComparisonView, error) {
	session, err := s.touch(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if err := session.state.Remove(slot); err != nil {
		return nil, err
	}

	return s.view(id, session), nil
}

// DeleteSession drops the session entirely.
func (s *ComparisonService) DeleteSession(id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, exists := s.sessions[id]; !exists {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *ComparisonService) touch(id uuid.UUID) (*comparisonSession, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	session, exists := s.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	session.lastSeen = time.Now()
	return session, nil
}

func (s *ComparisonService) view(id uuid.UUID, session *comparisonSession) *ComparisonView {
	snap := session.state.Current()
	view := &ComparisonView{
		ID:     id.String(),
		Slots:  s.cfg.SlotCount(),
		Active: snap.Product(1) != nil,
		Table:  comparator.Render(snap),
	}
	if slot, ok := session.state.FirstEmptySlot(); ok {
		view.FirstEmptySlot = slot
	}
	return view
}
