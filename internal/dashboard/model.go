package dashboard

import (
	"time"

	"github.com/google/uuid"
)

type Stats struct {
	ActiveMembers  int     `json:"active_members"`
	ExpiringSoon   int     `json:"expiring_soon"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
}

// RevenuePoint is one day's bucket in the trailing seven-day series.
type RevenuePoint struct {
	Name    string  `json:"name" example:"Mon"`
	Date    string  `json:"date" example:"2026-08-31"`
	Revenue float64 `json:"revenue"`
}

type PaymentDay struct {
	Date   time.Time `db:"date"`
	Amount float64   `db:"amount"`
}

type Activity struct {
	ID          uuid.UUID `db:"id" json:"id"`
	MemberName  string    `db:"member_name" json:"member_name"`
	MemberImage *string   `db:"member_image" json:"member_image,omitempty"`
	Date        time.Time `db:"date" json:"date"`
	CheckInTime string    `db:"check_in_time" json:"check_in_time"`
}
