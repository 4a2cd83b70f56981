package payment

import (
	"time"

	"github.com/google/uuid"
)

type Method string

const (
	MethodCash  Method = "cash"
	MethodUPI   Method = "upi"
	MethodCard  Method = "card"
	MethodOther Method = "other"
)

// Payment is an immutable ledger entry. Rows are only ever inserted, as
// part of onboarding or renewal, never updated or deleted.
type Payment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	MemberID  uuid.UUID `db:"member_id" json:"member_id"`
	Amount    float64   `db:"amount" json:"amount"`
	Date      time.Time `db:"date" json:"date"`
	Method    Method    `db:"method" json:"method"`
	AdminNote *string   `db:"admin_note" json:"admin_note,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type PaymentWithMember struct {
	Payment
	MemberName  string  `db:"member_name" json:"member_name"`
	MemberImage *string `db:"member_image" json:"member_image,omitempty"`
}
