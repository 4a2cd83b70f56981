package attendance

import (
	"time"

	"github.com/google/uuid"
)

type Method string

const (
	MethodManual      Method = "manual"
	MethodFingerprint Method = "fingerprint"
	MethodQR          Method = "qr"
)

type Record struct {
	ID           uuid.UUID `db:"id" json:"id"`
	MemberID     uuid.UUID `db:"member_id" json:"member_id"`
	Date         time.Time `db:"date" json:"date"`
	CheckInTime  string    `db:"check_in_time" json:"check_in_time"`
	CheckOutTime *string   `db:"check_out_time" json:"check_out_time,omitempty"`
	Method       Method    `db:"method" json:"method"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type RecordWithMember struct {
	Record
	MemberName   string  `db:"member_name" json:"member_name"`
	MemberImage  *string `db:"member_image" json:"member_image,omitempty"`
	MemberStatus string  `db:"member_status" json:"member_status"`
}

// MemberRef is the slice of a member the gatekeeper needs: enough to
// gate access and to address the person in confirmation messages.
type MemberRef struct {
	ID       uuid.UUID `db:"id"`
	FullName string    `db:"full_name"`
}

type CheckInRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Method     Method `json:"method" binding:"omitempty,oneof=manual fingerprint qr"`
}

type CheckInResult struct {
	MemberID    uuid.UUID `json:"member_id"`
	MemberName  string    `json:"member_name"`
	CheckInTime string    `json:"check_in_time"`
}
