package entities

import (
	"fmt"
	"time"
)

// BookingStatus is the lifecycle state of a reservation.
//
// The graph is monotonic: pending -> confirmed|cancelled,
// confirmed -> cancelled|completed. Cancelled and completed are terminal.

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// CanTransitionTo reports whether the edge s -> target is in the state graph.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return target == BookingStatusConfirmed || target == BookingStatusCancelled
	case BookingStatusConfirmed:
		return target == BookingStatusCancelled || target == BookingStatusCompleted
	}
	return false
}

// BookingDateLayout is the wire format for booking dates.
const BookingDateLayout = "2006-01-02"

// TimeSlots is the fixed enumeration of bookable times per day.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
	"05:00 PM", "06:00 PM",
}

// IsBookableSlot reports membership in the TimeSlots enumeration.
func IsBookableSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// MinBookingDate returns the earliest acceptable booking date relative to now:
// the next calendar day, at midnight UTC for lexical comparison.
func MinBookingDate(now time.Time) time.Time {
	y, m, d := now.AddDate(0, 0, 1).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Booking is a reservation linking a user, a provider and a service at a
// date/time slot.
//
// Append-mostly record: created once by a customer action, then mutated only
// via status transitions and never physically deleted (cancellation is a
// status, not removal). ProviderName, ServiceName and TotalPrice are
// denormalized snapshots that freeze the historical record even if the
// provider's catalog later changes.

type Booking struct {
	ID           string        `json:"id"`
	ProviderID   string        `json:"provider_id"`
	ProviderName string        `json:"provider_name"`
	ServiceID    string        `json:"service_id"`
	ServiceName  string        `json:"service_name"`
	UserID       string        `json:"user_id"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Status       BookingStatus `json:"status"`
	TotalPrice   float64       `json:"total_price"`
	CreatedAt    time.Time     `json:"created_at"`
}

// ValidationError names the first booking-draft field that failed policy.

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// BookingDraft carries the raw inputs of a booking request before an ID or
// status is assigned.

type BookingDraft struct {
	User     *User
	Provider Provider
	Service  Service
	Date     string
	Time     string
}

// Validate applies the static creation rules: the actor must be a signed-in
// customer, the service must belong to the provider's catalog, the date must
// be no earlier than the next calendar day and the slot must come from the
// fixed enumeration. Pure; now is passed in so callers control the clock.
func (d BookingDraft) Validate(now time.Time) *ValidationError {
	if d.User == nil {
		return &ValidationError{Field: "user", Reason: "sign in required"}
	}
	if d.User.Role != UserRoleCustomer {
		return &ValidationError{Field: "user", Reason: "only customers can book"}
	}
	if _, ok := d.Provider.ServiceByID(d.Service.ID); !ok {
		return &ValidationError{Field: "service", Reason: "not offered by this provider"}
	}
	date, err := time.Parse(BookingDateLayout, d.Date)
	if err != nil {
		return &ValidationError{Field: "date", Reason: "must be formatted as YYYY-MM-DD"}
	}
	if date.Before(MinBookingDate(now)) {
		return &ValidationError{Field: "date", Reason: "must be tomorrow or later"}
	}
	if !IsBookableSlot(d.Time) {
		return &ValidationError{Field: "time", Reason: "not a bookable time slot"}
	}
	return nil
}
