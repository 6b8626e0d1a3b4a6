package notifier

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/wyovotewatch/district-alerts-api/internal/metrics"
	"github.com/wyovotewatch/district-alerts-api/internal/models"
)

type voteSource interface {
	RecordedSince(ctx context.Context, since time.Time) ([]models.Vote, error)
}

type targetSource interface {
	TargetsForVote(ctx context.Context, voteID int64, mode string) ([]models.NotificationTarget, error)
}

type dedupGuard interface {
	ShouldSend(ctx context.Context, subscriberID, voteID int64, channel string) (bool, error)
	RecordSent(ctx context.Context, subscriberID, voteID int64, channel string) error
}

type emailSender interface {
	SendVoteAlert(toEmail string, vote models.Vote, targets []models.NotificationTarget) error
}

type smsSender interface {
	Send(ctx context.Context, to, body string) error
}

type Schedule struct {
	RealtimeSpec     string
	DailySpec        string
	RealtimeLookback time.Duration
	DailyLookback    time.Duration
}

// Notifier dispatches vote alerts on two cron schedules. Every run scans
// recently recorded votes, matches them against district memberships and
// sends at most one message per subscriber, vote and channel.
type Notifier struct {
	votes    voteSource
	subs     targetSource
	guard    dedupGuard
	email    emailSender
	sms      smsSender
	schedule Schedule
	logger   *log.Logger
	m        *metrics.Metrics

	cron   *cron.Cron
	cancel context.CancelFunc
}

func New(
	votes voteSource,
	subs targetSource,
	guard dedupGuard,
	email emailSender,
	sms smsSender,
	schedule Schedule,
	logger *log.Logger,
	m *metrics.Metrics,
) *Notifier {
	return &Notifier{
		votes:    votes,
		subs:     subs,
		guard:    guard,
		email:    email,
		sms:      sms,
		schedule: schedule,
		logger:   logger,
		m:        m,
	}
}

func (n *Notifier) Start(ctx context.Context) error {
	ctx, n.cancel = context.WithCancel(ctx)
	n.cron = cron.New(cron.WithSeconds())

	if _, err := n.cron.AddFunc(n.schedule.RealtimeSpec, func() {
		n.m.CronJob(models.ModeRealtime, func() {
			if err := n.RunDue(ctx, models.ModeRealtime); err != nil {
				n.logger.Printf("realtime dispatch failed: %v", err)
			}
		})
	}); err != nil {
		return fmt.Errorf("schedule realtime dispatch: %w", err)
	}

	if _, err := n.cron.AddFunc(n.schedule.DailySpec, func() {
		n.m.CronJob(models.ModeDaily, func() {
			if err := n.RunDue(ctx, models.ModeDaily); err != nil {
				n.logger.Printf("daily dispatch failed: %v", err)
			}
		})
	}); err != nil {
		return fmt.Errorf("schedule daily dispatch: %w", err)
	}

	n.cron.Start()
	return nil
}

func (n *Notifier) Stop() {
	if n.cancel != nil {
		n.cancel()
	}
	if n.cron != nil {
		<-n.cron.Stop().Done()
	}
}

// RunDue delivers alerts for every vote recorded inside the mode's lookback
// window. Votes already delivered are filtered out by the dedup guard, so
// overlapping windows are safe.
func (n *Notifier) RunDue(ctx context.Context, mode string) error {
	lookback := n.schedule.RealtimeLookback
	if mode == models.ModeDaily {
		lookback = n.schedule.DailyLookback
	}

	votes, err := n.votes.RecordedSince(ctx, time.Now().Add(-lookback))
	if err != nil {
		n.m.TechnicalErrors.WithLabelValues("dispatch_vote_query", "error").Inc()
		return fmt.Errorf("load recorded votes: %w", err)
	}

	for _, vote := range votes {
		targets, err := n.subs.TargetsForVote(ctx, vote.ID, mode)
		if err != nil {
			n.m.TechnicalErrors.WithLabelValues("dispatch_target_query", "error").Inc()
			n.logger.Printf("failed to load targets for vote %d: %v", vote.ID, err)
			continue
		}

		var wg sync.WaitGroup
		for id, rows := range groupBySubscriber(targets) {
			wg.Add(1)
			go func(subscriberID int64, rows []models.NotificationTarget) {
				defer wg.Done()
				if err := n.SendOne(ctx, vote, rows); err != nil {
					n.logger.Printf("failed to notify subscriber %d about vote %d: %v",
						subscriberID, vote.ID, err)
				}
			}(id, rows)
		}
		wg.Wait()
	}
	return nil
}

// SendOne delivers a single vote alert to one subscriber over each of their
// confirmed channels. The guard is consulted before sending and updated
// after, per channel.
func (n *Notifier) SendOne(ctx context.Context, vote models.Vote, rows []models.NotificationTarget) error {
	if len(rows) == 0 {
		return nil
	}
	target := rows[0]

	if target.Email != "" && target.EmailConfirmed {
		if err := n.sendEmail(ctx, vote, target, rows); err != nil {
			return err
		}
	}
	if target.PhoneE164 != "" && target.SMSConfirmed {
		if err := n.sendSMS(ctx, vote, target); err != nil {
			return err
		}
	}
	return nil
}

func (n *Notifier) sendEmail(
	ctx context.Context,
	vote models.Vote,
	target models.NotificationTarget,
	rows []models.NotificationTarget,
) error {
	ok, err := n.guard.ShouldSend(ctx, target.SubscriberID, vote.ID, models.ChannelEmail)
	if err != nil {
		return fmt.Errorf("check email dedup: %w", err)
	}
	if !ok {
		n.m.DedupSuppressed.Inc()
		return nil
	}

	if err := n.email.SendVoteAlert(target.Email, vote, rows); err != nil {
		n.m.DispatchSends.WithLabelValues(models.ChannelEmail, "error").Inc()
		return fmt.Errorf("send email alert: %w", err)
	}
	n.m.DispatchSends.WithLabelValues(models.ChannelEmail, "ok").Inc()

	if err := n.guard.RecordSent(ctx, target.SubscriberID, vote.ID, models.ChannelEmail); err != nil {
		return fmt.Errorf("record email send: %w", err)
	}
	return nil
}

func (n *Notifier) sendSMS(ctx context.Context, vote models.Vote, target models.NotificationTarget) error {
	ok, err := n.guard.ShouldSend(ctx, target.SubscriberID, vote.ID, models.ChannelSMS)
	if err != nil {
		return fmt.Errorf("check sms dedup: %w", err)
	}
	if !ok {
		n.m.DedupSuppressed.Inc()
		return nil
	}

	body := fmt.Sprintf("WY vote on %s: %s (%d-%d). %s (%s) voted %s.",
		vote.BillID, vote.Result, vote.Yeas, vote.Nays,
		target.LegislatorName, target.District, target.Decision)
	if err := n.sms.Send(ctx, target.PhoneE164, body); err != nil {
		n.m.DispatchSends.WithLabelValues(models.ChannelSMS, "error").Inc()
		return fmt.Errorf("send sms alert: %w", err)
	}
	n.m.DispatchSends.WithLabelValues(models.ChannelSMS, "ok").Inc()

	if err := n.guard.RecordSent(ctx, target.SubscriberID, vote.ID, models.ChannelSMS); err != nil {
		return fmt.Errorf("record sms send: %w", err)
	}
	return nil
}

func groupBySubscriber(targets []models.NotificationTarget) map[int64][]models.NotificationTarget {
	grouped := make(map[int64][]models.NotificationTarget)
	for _, t := range targets {
		grouped[t.SubscriberID] = append(grouped[t.SubscriberID], t)
	}
	return grouped
}
