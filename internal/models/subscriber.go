package models

import "time"

const (
	ModeRealtime = "realtime"
	ModeDaily    = "daily"

	ChannelEmail = "email"
	ChannelSMS   = "sms"

	AddedViaExact    = "exact"
	AddedViaPossible = "possible"
	AddedViaManual   = "manual"
)

type Subscriber struct {
	ID               int64
	Email            string
	PhoneE164        string
	ConsentAt        time.Time
	EmailConfirmedAt *time.Time
	SMSConfirmedAt   *time.Time
}

// DistrictMembership fans a subscriber out to one district of one chamber.
type DistrictMembership struct {
	SubscriberID int64
	Chamber      string
	DistrictCode string
	AddedVia     string
}

type QuietHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
	TZ    string `json:"tz"`
}

type NotificationPreference struct {
	SubscriberID int64
	Mode         string
	QuietHours   QuietHours
}

type SubscribeRequest struct {
	Email             string   `json:"email" binding:"omitempty,email"`
	Phone             string   `json:"phone"`
	SelectedDistricts []string `json:"selectedDistricts"`
	Mode              string   `json:"mode" binding:"required,oneof=realtime daily"`
	ConsentCheckbox   bool     `json:"consentCheckbox"`
}

type SubscriptionResult struct {
	SubscriberID       int64 `json:"subscriber_id"`
	ConfirmationNeeded bool  `json:"confirmation_needed"`
}
