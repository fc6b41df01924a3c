package domain

import "time"

// ReservationStatus represents the lifecycle state of a reservation. All
// transitions happen in the backend; the gateway only reads the status.
type ReservationStatus string

const (
	StatusPendientePago ReservationStatus = "pendiente_pago"
	StatusConfirmada    ReservationStatus = "confirmada"
	StatusOcupada       ReservationStatus = "ocupada"
	StatusCancelada     ReservationStatus = "cancelada"
	StatusCompletada    ReservationStatus = "completada"
)

// TerminalStatuses are states with no outbound transitions.
var TerminalStatuses = []ReservationStatus{
	StatusCancelada,
	StatusCompletada,
}

// Reservation is the gateway's read-only working copy of a backend-owned
// reservation. It is replaced wholesale whenever the backend returns an
// updated one; the gateway never mutates it field by field.
type Reservation struct {
	ConfirmationCode string            `json:"confirmation_code"`
	Hotel            string            `json:"hotel"`
	RoomType         string            `json:"room_type"`
	RoomName         string            `json:"room_name,omitempty"`
	ContactEmail     string            `json:"contact_email"`
	Checkin          string            `json:"checkin"`  // DD/MM/YYYY
	Checkout         string            `json:"checkout"` // DD/MM/YYYY
	Guests           []Guest           `json:"guests"`
	Status           ReservationStatus `json:"status"`
	PriceDetail      *PriceDetail      `json:"price_detail,omitempty"`
	Counts           OccupancyCount    `json:"counts"`
	Nights           int               `json:"nights"`
	Total            float64           `json:"total"`
	Offer            *string           `json:"offer,omitempty"`

	// Explicit false removes the action regardless of status; nil or true
	// defers to the state table.
	AllowModify *bool `json:"allow_modify,omitempty"`
	AllowCancel *bool `json:"allow_cancel,omitempty"`
}

// CheckinDate parses the reservation's check-in date.
func (r *Reservation) CheckinDate() (Date, error) {
	return ParseDate(r.Checkin)
}

// IsTerminal reports whether the reservation admits no further transitions.
func (r *Reservation) IsTerminal() bool {
	for _, s := range TerminalStatuses {
		if r.Status == s {
			return true
		}
	}
	return false
}

// CanBePaid reports whether paying the reservation is a legal action.
func (r *Reservation) CanBePaid() bool {
	return hasAction(ActionsFor(r.Status), ActionPay)
}

// CanBeCancelled reports whether cancelling is a legal action, honouring the
// explicit allow flag.
func (r *Reservation) CanBeCancelled() bool {
	if r.AllowCancel != nil && !*r.AllowCancel {
		return false
	}
	return hasAction(ActionsFor(r.Status), ActionCancel)
}

// CanBeModified reports whether modifying is a legal action as of now,
// honouring the explicit allow flag and the modify window.
func (r *Reservation) CanBeModified(now time.Time) bool {
	if r.AllowModify != nil && !*r.AllowModify {
		return false
	}
	if !hasAction(ActionsFor(r.Status), ActionModify) {
		return false
	}
	return r.ModifyWindowOpen(now)
}

// ModifyWindowOpen reports whether check-in is at least ModifyNotice away.
// An unparsable check-in date closes the window; the backend remains the
// authority either way and revalidates on commit.
func (r *Reservation) ModifyWindowOpen(now time.Time) bool {
	checkin, err := r.CheckinDate()
	if err != nil {
		return false
	}
	return checkin.Time(now.Location()).Sub(now) >= ModifyNotice
}
