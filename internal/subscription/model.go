package subscription

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
)

// ExpiringWindowDays is the number of days before the end date during
// which a subscription is shown as "expiring". Display-only; access
// gating keeps working until the end date itself.
const ExpiringWindowDays = 7

type Subscription struct {
	ID        uuid.UUID `db:"id" json:"id"`
	MemberID  uuid.UUID `db:"member_id" json:"member_id"`
	PlanName  string    `db:"plan_name" json:"plan_name"`
	Price     float64   `db:"price" json:"price"`
	StartDate time.Time `db:"start_date" json:"start_date"`
	EndDate   time.Time `db:"end_date" json:"end_date"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type SubscriptionWithMember struct {
	Subscription
	MemberName    string  `db:"member_name" json:"member_name"`
	MemberImage   *string `db:"member_image" json:"member_image,omitempty"`
	MemberEmail   *string `db:"member_email" json:"member_email,omitempty"`
	RemainingDays int     `db:"-" json:"remaining_days"`
	Status        Status  `db:"-" json:"status"`
}

type RenewRequest struct {
	PlanName       string  `json:"plan_name" binding:"required"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	DurationMonths int     `json:"duration_months" binding:"required,min=1"`
	StartDate      string  `json:"start_date" binding:"required"`
	PaymentMethod  string  `json:"payment_method" binding:"required,oneof=cash upi card other"`
	AdminNote      string  `json:"admin_note"`
}

// RenewParams is what the repository persists in a single transaction:
// the new subscription row, its payment row, and the member status flip.
type RenewParams struct {
	MemberID      uuid.UUID
	PlanName      string
	Price         float64
	StartDate     time.Time
	EndDate       time.Time
	PaymentAmount float64
	PaymentMethod string
	PaymentDate   time.Time
	AdminNote     string
}
