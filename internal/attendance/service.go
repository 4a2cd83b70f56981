package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gymdesk/internal/subscription"

	"github.com/google/uuid"
)

var (
	ErrMemberNotFound       = errors.New("member not found")
	ErrNoActiveSubscription = errors.New("no active subscription")
	ErrAlreadyCheckedIn     = errors.New("already checked in today")
)

// Identifiers matching the canonical UUID shape are treated as member
// ids; anything else is looked up as a phone number.
var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

type Service interface {
	CheckIn(ctx context.Context, identifier string, method Method) (*CheckInResult, error)
	TodaysAttendance(ctx context.Context) ([]RecordWithMember, error)
}

type service struct {
	repo Repository
	subs subscription.Repository
	now  func() time.Time
}

func NewService(repo Repository, subs subscription.Repository) Service {
	return &service{
		repo: repo,
		subs: subs,
		now:  time.Now,
	}
}

// CheckIn runs the gate in strict order: resolve the identifier, verify
// current access, insert the day's attendance row. Any failure is
// terminal for the call and leaves no row behind.
func (s *service) CheckIn(ctx context.Context, identifier string, method Method) (*CheckInResult, error) {
	identifier = strings.TrimSpace(identifier)
	if method == "" {
		method = MethodManual
	}

	ref, err := s.resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := subscription.DateOnly(now)

	ok, err := s.subs.HasCurrentAccess(ctx, ref.ID, today)
	if err != nil {
		return nil, fmt.Errorf("check subscription: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s has no active subscription", ErrNoActiveSubscription, ref.FullName)
	}

	checkInTime := now.Format("15:04:05")
	if _, err := s.repo.Create(ctx, ref.ID, today, checkInTime, method); err != nil {
		if errors.Is(err, ErrAlreadyCheckedIn) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyCheckedIn, ref.FullName)
		}
		return nil, fmt.Errorf("record check-in: %w", err)
	}

	return &CheckInResult{
		MemberID:    ref.ID,
		MemberName:  ref.FullName,
		CheckInTime: checkInTime,
	}, nil
}

func (s *service) TodaysAttendance(ctx context.Context) ([]RecordWithMember, error) {
	return s.repo.ListForDate(ctx, subscription.DateOnly(s.now()))
}

func (s *service) resolve(ctx context.Context, identifier string) (*MemberRef, error) {
	var (
		ref *MemberRef
		err error
	)

	if uuidPattern.MatchString(identifier) {
		var id uuid.UUID
		id, err = uuid.Parse(identifier)
		if err != nil {
			return nil, ErrMemberNotFound
		}
		ref, err = s.repo.FindMemberByID(ctx, id)
	} else {
		ref, err = s.repo.FindMemberByPhone(ctx, identifier)
	}

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("resolve member: %w", err)
	}

	return ref, nil
}
