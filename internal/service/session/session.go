package session

import (
	"sync"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
)

// Session holds one guest's working state: the reservation copy currently
// being viewed and the price-preview baseline. All methods are safe for
// concurrent use; the working copy is replaced wholesale, never mutated.
type Session struct {
	id string

	mu          sync.Mutex
	reservation *domain.Reservation
	basePrice   *domain.PriceDetail
	preview     *domain.PriceDetail
	previewGen  uint64
	lastSeen    time.Time
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Reservation returns the current working copy, or ErrNoReservation when none
// was loaded yet.
func (s *Session) Reservation() (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reservation == nil {
		return nil, ErrNoReservation
	}
	return s.reservation, nil
}

// SetReservation replaces the working copy wholesale with what the backend
// returned. The reservation's price detail becomes the new base price and any
// in-flight preview is invalidated.
func (s *Session) SetReservation(r *domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservation = r
	s.basePrice = r.PriceDetail
	s.preview = nil
	s.previewGen++
}

// ClearReservation drops the working copy and its price state.
func (s *Session) ClearReservation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservation = nil
	s.basePrice = nil
	s.preview = nil
	s.previewGen++
}

// BasePrice returns the confirmed price baseline, nil when none exists.
func (s *Session) BasePrice() *domain.PriceDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.basePrice
}

// EffectivePrice returns the detail currently on display: the latest settled
// preview when one exists, otherwise the base price.
func (s *Session) EffectivePrice() *domain.PriceDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.preview != nil {
		return s.preview
	}
	return s.basePrice
}

// BeginPreview registers a new in-flight price preview and returns its
// generation. A later BeginPreview supersedes it: only the most recently
// issued generation may settle.
func (s *Session) BeginPreview() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previewGen++
	return s.previewGen
}

// CompletePreview settles a preview with the backend's detail. Returns false
// when gen is no longer current; a stale result must be discarded without
// touching the display state.
func (s *Session) CompletePreview(gen uint64, detail *domain.PriceDetail) (domain.PriceReconciliation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.previewGen {
		return domain.PriceReconciliation{}, false
	}
	rec := domain.ReconcilePrice(s.basePrice, detail)
	s.preview = rec.Effective
	return rec, true
}

// FailPreview settles a failed preview: the display reverts to the base
// price. Returns false when gen is no longer current.
func (s *Session) FailPreview(gen uint64) (domain.PriceReconciliation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.previewGen {
		return domain.PriceReconciliation{}, false
	}
	rec := domain.ReconcilePrice(s.basePrice, nil)
	s.preview = nil
	return rec, true
}

// PromoteBase makes detail the confirmed baseline, clearing any preview.
// Called when the backend commits a change (payment, modification).
func (s *Session) PromoteBase(detail *domain.PriceDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.basePrice = detail
	s.preview = nil
	s.previewGen++
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}
