package member

import (
	"time"

	"gymdesk/internal/attendance"
	"gymdesk/internal/payment"
	"gymdesk/internal/subscription"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusExpired  Status = "expired"
)

type Member struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	FullName    string     `db:"full_name" json:"full_name"`
	Phone       string     `db:"phone" json:"phone"`
	Email       *string    `db:"email" json:"email,omitempty"`
	Gender      *string    `db:"gender" json:"gender,omitempty"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Address     *string    `db:"address" json:"address,omitempty"`
	Info        *string    `db:"info" json:"info,omitempty"`
	Status      Status     `db:"status" json:"status"`
	JoinDate    time.Time  `db:"join_date" json:"join_date"`
	ImageURL    *string    `db:"image_url" json:"image_url,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

type ProfileInput struct {
	FullName    string  `json:"full_name" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"date_of_birth"`
	Address     *string `json:"address"`
	Info        *string `json:"info"`
}

type PlanInput struct {
	PlanName       string  `json:"plan_name" binding:"required"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	DurationMonths int     `json:"duration_months" binding:"required,min=1"`
	StartDate      string  `json:"start_date" binding:"required"`
}

type PaymentInput struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Method    string  `json:"method" binding:"required,oneof=cash upi card other"`
	AdminNote *string `json:"admin_note"`
}

// CreateMemberRequest is the onboarding unit: one member, their first
// subscription and the payment for it.
type CreateMemberRequest struct {
	Profile ProfileInput `json:"profile" binding:"required"`
	Plan    PlanInput    `json:"plan" binding:"required"`
	Payment PaymentInput `json:"payment" binding:"required"`
}

type UpdateMemberRequest struct {
	FullName    *string `json:"full_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"date_of_birth"`
	Address     *string `json:"address"`
	Info        *string `json:"info"`
	Status      *string `json:"status"`
	ImageURL    *string `json:"image_url"`
}

// UpdateParams carries the parsed partial update down to the repository.
// Nil fields are left untouched.
type UpdateParams struct {
	FullName    *string
	Phone       *string
	Email       *string
	Gender      *string
	DateOfBirth *time.Time
	Address     *string
	Info        *string
	Status      *string
	ImageURL    *string
}

// OnboardingParams is persisted in a single transaction.
type OnboardingParams struct {
	FullName    string
	Phone       string
	Email       *string
	Gender      *string
	DateOfBirth *time.Time
	Address     *string
	Info        *string
	JoinDate    time.Time

	PlanName  string
	Price     float64
	StartDate time.Time
	EndDate   time.Time

	PaymentAmount float64
	PaymentMethod string
	PaymentDate   time.Time
	AdminNote     *string
}

type History struct {
	Subscriptions []subscription.Subscription `json:"subscriptions"`
	Payments      []payment.Payment           `json:"payments"`
	Attendance    []attendance.Record         `json:"attendance"`
}
