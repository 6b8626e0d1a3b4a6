package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/wyovotewatch/district-alerts-api/internal/models"
)

var (
	ErrMissingContact      = errors.New("email or phone required")
	ErrUnsupportedRegion   = errors.New("phone must be a Wyoming (307) number")
	ErrConsentRequired     = errors.New("consent required")
	ErrNoDistrictsSelected = errors.New("at least one district required")
	ErrInvalidDistrict     = errors.New("unrecognized district code")
)

const wyomingAreaCode = "307"

const defaultTZ = "America/Denver"

type SubscriberRepository interface {
	// CreateWithMemberships persists the subscriber and all membership rows
	// atomically: on any failure nothing remains visible to dispatch.
	CreateWithMemberships(
		ctx context.Context,
		sub models.Subscriber,
		memberships []models.DistrictMembership,
	) (int64, error)
	CreatePreference(ctx context.Context, pref models.NotificationPreference) error
}

type WelcomeEmailer interface {
	SendWelcome(email string, districts []string) error
}

type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// Service runs the subscription state machine: validate, create subscriber
// with memberships, then best-effort preference write and outbound
// confirmations.
type Service struct {
	repo    SubscriberRepository
	emailer WelcomeEmailer
	sms     SMSSender
	logger  *log.Logger
}

func NewService(
	repo SubscriberRepository,
	emailer WelcomeEmailer,
	sms SMSSender,
	logger *log.Logger,
) *Service {
	return &Service{repo: repo, emailer: emailer, sms: sms, logger: logger}
}

func (s *Service) Subscribe(
	ctx context.Context,
	req models.SubscribeRequest,
) (models.SubscriptionResult, error) {
	if req.Email == "" && req.Phone == "" {
		return models.SubscriptionResult{}, ErrMissingContact
	}
	if !req.ConsentCheckbox {
		return models.SubscriptionResult{}, ErrConsentRequired
	}
	if len(req.SelectedDistricts) == 0 {
		return models.SubscriptionResult{}, ErrNoDistrictsSelected
	}

	phone := ""
	if req.Phone != "" {
		normalized, err := NormalizePhone(req.Phone)
		if err != nil {
			return models.SubscriptionResult{}, err
		}
		phone = normalized
	}

	memberships := make([]models.DistrictMembership, 0, len(req.SelectedDistricts))
	for _, raw := range req.SelectedDistricts {
		chamber, code, err := CanonicalDistrict(raw)
		if err != nil {
			return models.SubscriptionResult{}, err
		}
		memberships = append(memberships, models.DistrictMembership{
			Chamber:      chamber,
			DistrictCode: code,
			AddedVia:     models.AddedViaExact,
		})
	}

	now := time.Now()
	sub := models.Subscriber{
		Email:     req.Email,
		PhoneE164: phone,
		ConsentAt: now,
	}
	// Email is auto-confirmed at creation; SMS always requires confirmation.
	if req.Email != "" {
		sub.EmailConfirmedAt = &now
	}

	id, err := s.repo.CreateWithMemberships(ctx, sub, memberships)
	if err != nil {
		s.logger.Printf("failed to create subscription: %v", err)
		return models.SubscriptionResult{}, err
	}

	pref := models.NotificationPreference{
		SubscriberID: id,
		Mode:         req.Mode,
		QuietHours:   models.QuietHours{Start: "22:00", End: "07:00", TZ: defaultTZ},
	}
	// A missing preference row means realtime downstream, so this write does
	// not roll back the subscriber.
	if err := s.repo.CreatePreference(ctx, pref); err != nil {
		s.logger.Printf("failed to create preferences for subscriber %d: %v", id, err)
	}

	if req.Email != "" {
		codes := make([]string, len(memberships))
		for i, m := range memberships {
			codes[i] = m.DistrictCode
		}
		if err := s.emailer.SendWelcome(req.Email, codes); err != nil {
			s.logger.Printf("failed to send welcome email to subscriber %d: %v", id, err)
		}
	}
	if phone != "" {
		body := "Reply YES to confirm Wyoming vote alerts for your legislators."
		if err := s.sms.Send(ctx, phone, body); err != nil {
			s.logger.Printf("failed to send SMS confirmation to subscriber %d: %v", id, err)
		}
	}

	return models.SubscriptionResult{
		SubscriberID:       id,
		ConfirmationNeeded: phone != "",
	}, nil
}

// NormalizePhone reduces input to digits and returns the E.164-like +1 form.
// Only 10-digit numbers in area code 307 are accepted; a leading country
// code 1 is tolerated.
func NormalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) == 11 && d[0] == '1' {
		d = d[1:]
	}
	if len(d) != 10 || !strings.HasPrefix(d, wyomingAreaCode) {
		return "", ErrUnsupportedRegion
	}
	return "+1" + d, nil
}

// CanonicalDistrict parses a district code like "H07", "h7" or "S4" into its
// chamber and the canonical letter-prefix zero-padded form.
func CanonicalDistrict(raw string) (chamber, code string, err error) {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	if len(trimmed) < 2 {
		return "", "", ErrInvalidDistrict
	}

	switch trimmed[0] {
	case 'H':
		chamber = models.ChamberHouse
	case 'S':
		chamber = models.ChamberSenate
	default:
		return "", "", ErrInvalidDistrict
	}

	n, convErr := strconv.Atoi(trimmed[1:])
	if convErr != nil || n <= 0 {
		return "", "", ErrInvalidDistrict
	}
	return chamber, fmt.Sprintf("%c%02d", trimmed[0], n), nil
}
