package entity

import "time"

// SubscriptionStatus is the closed set of states a subscription can be in.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// IsValid reports whether s belongs to the closed status set.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusExpired, SubscriptionStatusCancelled:
		return true
	default:
		return false
	}
}

// Subscription binds one user to one tarif for a validity window.
type Subscription struct {
	ID        int64
	UserID    int64
	TarifID   int64
	StartDate time.Time
	EndDate   *time.Time // nil means open-ended; otherwise never before StartDate.
	Status    SubscriptionStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveStatus reports expired for an active subscription whose window has closed.
func (s *Subscription) EffectiveStatus(now time.Time) SubscriptionStatus {
	if s.Status == SubscriptionStatusActive && s.EndDate != nil && s.EndDate.Before(now) {
		return SubscriptionStatusExpired
	}

	return s.Status
}

// Cancel moves the subscription to cancelled. The window is closed at now
// unless it already ended earlier. Cancelling twice changes nothing.
func (s *Subscription) Cancel(now time.Time) {
	if s.Status == SubscriptionStatusCancelled {
		return
	}
	s.Status = SubscriptionStatusCancelled
	if s.EndDate == nil || s.EndDate.After(now) {
		if now.Before(s.StartDate) {
			now = s.StartDate
		}
		end := now
		s.EndDate = &end
	}
}

// EndDateForTerms maps a tarif's billing terms to the end of a subscription
// window starting at start. Unknown terms produce an open-ended window.
//
//	daily      +1 day
//	weekly     +7 days
//	monthly    +1 calendar month
//	quarterly  +3 calendar months
//	yearly     +1 calendar year (also "annual", "annually")
func EndDateForTerms(terms string, start time.Time) *time.Time {
	var end time.Time
	switch terms {
	case "daily":
		end = start.AddDate(0, 0, 1)
	case "weekly":
		end = start.AddDate(0, 0, 7)
	case "monthly":
		end = start.AddDate(0, 1, 0)
	case "quarterly":
		end = start.AddDate(0, 3, 0)
	case "yearly", "annual", "annually":
		end = start.AddDate(1, 0, 0)
	default:
		return nil
	}

	return &end
}
