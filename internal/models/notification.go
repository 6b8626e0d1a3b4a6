package models

// NotificationTarget is one (subscriber, matched district) row for a
// recorded vote. A subscriber with several matching districts appears once
// per district; the dispatcher groups rows before sending.
type NotificationTarget struct {
	SubscriberID   int64
	Email          string
	EmailConfirmed bool
	PhoneE164      string
	SMSConfirmed   bool
	Mode           string
	District       string
	LegislatorName string
	Decision       string
}
