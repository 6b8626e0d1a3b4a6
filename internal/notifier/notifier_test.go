package notifier_test

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wyovotewatch/district-alerts-api/internal/metrics"
	"github.com/wyovotewatch/district-alerts-api/internal/models"
	"github.com/wyovotewatch/district-alerts-api/internal/notifier"
)

type mockVotes struct {
	mock.Mock
}

func (m *mockVotes) RecordedSince(ctx context.Context, since time.Time) ([]models.Vote, error) {
	args := m.Called(ctx, since)
	votes, ok := args.Get(0).([]models.Vote)
	if !ok {
		return nil, args.Error(1)
	}
	return votes, args.Error(1)
}

type mockTargets struct {
	mock.Mock
}

func (m *mockTargets) TargetsForVote(
	ctx context.Context,
	voteID int64,
	mode string,
) ([]models.NotificationTarget, error) {
	args := m.Called(ctx, voteID, mode)
	targets, ok := args.Get(0).([]models.NotificationTarget)
	if !ok {
		return nil, args.Error(1)
	}
	return targets, args.Error(1)
}

type mockGuard struct {
	mock.Mock
}

func (m *mockGuard) ShouldSend(
	ctx context.Context,
	subscriberID, voteID int64,
	channel string,
) (bool, error) {
	args := m.Called(ctx, subscriberID, voteID, channel)
	return args.Bool(0), args.Error(1)
}

func (m *mockGuard) RecordSent(ctx context.Context, subscriberID, voteID int64, channel string) error {
	args := m.Called(ctx, subscriberID, voteID, channel)
	return args.Error(0)
}

type mockEmail struct {
	mock.Mock
}

func (m *mockEmail) SendVoteAlert(
	toEmail string,
	vote models.Vote,
	targets []models.NotificationTarget,
) error {
	args := m.Called(toEmail, vote, targets)
	return args.Error(0)
}

type mockSMS struct {
	mock.Mock
}

func (m *mockSMS) Send(ctx context.Context, to, body string) error {
	args := m.Called(ctx, to, body)
	return args.Error(0)
}

var testSchedule = notifier.Schedule{
	RealtimeSpec:     "@every 1m",
	DailySpec:        "0 0 9 * * *",
	RealtimeLookback: time.Hour,
	DailyLookback:    24 * time.Hour,
}

func newNotifier(
	votes *mockVotes,
	targets *mockTargets,
	guard *mockGuard,
	email *mockEmail,
	sms *mockSMS,
) *notifier.Notifier {
	m := metrics.New("notifier_test", &sql.DB{}, "test")
	return notifier.New(votes, targets, guard, email, sms,
		testSchedule, log.New(log.Writer(), "test: ", 0), m)
}

func TestSendOne_EmailDelivered(t *testing.T) {
	vote := models.Vote{ID: 100, BillID: "HB0042", Result: "passed", Yeas: 40, Nays: 22}
	rows := []models.NotificationTarget{
		{
			SubscriberID: 1, Email: "voter@example.com", EmailConfirmed: true,
			District: "H07", LegislatorName: "Rep. Example", Decision: "aye",
		},
	}

	guard := &mockGuard{}
	email := &mockEmail{}
	sms := &mockSMS{}

	guard.On("ShouldSend", mock.Anything, int64(1), int64(100), models.ChannelEmail).Return(true, nil)
	email.On("SendVoteAlert", "voter@example.com", vote, rows).Return(nil)
	guard.On("RecordSent", mock.Anything, int64(1), int64(100), models.ChannelEmail).Return(nil)

	t.Cleanup(func() {
		guard.AssertExpectations(t)
		email.AssertExpectations(t)
		sms.AssertExpectations(t)
	})

	n := newNotifier(&mockVotes{}, &mockTargets{}, guard, email, sms)
	require.NoError(t, n.SendOne(context.Background(), vote, rows))
}

func TestSendOne_SuppressedByGuard(t *testing.T) {
	vote := models.Vote{ID: 100, BillID: "HB0042"}
	rows := []models.NotificationTarget{
		{SubscriberID: 1, Email: "voter@example.com", EmailConfirmed: true},
	}

	guard := &mockGuard{}
	email := &mockEmail{}

	guard.On("ShouldSend", mock.Anything, int64(1), int64(100), models.ChannelEmail).Return(false, nil)

	t.Cleanup(func() {
		guard.AssertExpectations(t)
		email.AssertNumberOfCalls(t, "SendVoteAlert", 0)
		guard.AssertNumberOfCalls(t, "RecordSent", 0)
	})

	n := newNotifier(&mockVotes{}, &mockTargets{}, guard, email, &mockSMS{})
	require.NoError(t, n.SendOne(context.Background(), vote, rows))
}

func TestSendOne_UnconfirmedChannelsSkipped(t *testing.T) {
	vote := models.Vote{ID: 100}
	rows := []models.NotificationTarget{
		{SubscriberID: 1, Email: "voter@example.com", PhoneE164: "+13075551234"},
	}

	guard := &mockGuard{}
	email := &mockEmail{}
	sms := &mockSMS{}

	t.Cleanup(func() {
		guard.AssertNumberOfCalls(t, "ShouldSend", 0)
		email.AssertNumberOfCalls(t, "SendVoteAlert", 0)
		sms.AssertNumberOfCalls(t, "Send", 0)
	})

	n := newNotifier(&mockVotes{}, &mockTargets{}, guard, email, sms)
	require.NoError(t, n.SendOne(context.Background(), vote, rows))
}

func TestSendOne_SendFailureDoesNotRecord(t *testing.T) {
	vote := models.Vote{ID: 100, BillID: "HB0042"}
	rows := []models.NotificationTarget{
		{SubscriberID: 1, Email: "voter@example.com", EmailConfirmed: true},
	}

	guard := &mockGuard{}
	email := &mockEmail{}

	guard.On("ShouldSend", mock.Anything, int64(1), int64(100), models.ChannelEmail).Return(true, nil)
	email.On("SendVoteAlert", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp fail"))

	t.Cleanup(func() {
		guard.AssertExpectations(t)
		guard.AssertNumberOfCalls(t, "RecordSent", 0)
	})

	n := newNotifier(&mockVotes{}, &mockTargets{}, guard, email, &mockSMS{})
	assert.Error(t, n.SendOne(context.Background(), vote, rows))
}

func TestSendOne_BothChannels(t *testing.T) {
	vote := models.Vote{ID: 100, BillID: "HB0042", Result: "passed"}
	rows := []models.NotificationTarget{
		{
			SubscriberID: 1, Email: "voter@example.com", EmailConfirmed: true,
			PhoneE164: "+13075551234", SMSConfirmed: true,
			District: "H07", LegislatorName: "Rep. Example", Decision: "aye",
		},
	}

	guard := &mockGuard{}
	email := &mockEmail{}
	sms := &mockSMS{}

	guard.On("ShouldSend", mock.Anything, int64(1), int64(100), models.ChannelEmail).Return(true, nil)
	guard.On("ShouldSend", mock.Anything, int64(1), int64(100), models.ChannelSMS).Return(true, nil)
	email.On("SendVoteAlert", "voter@example.com", vote, rows).Return(nil)
	sms.On("Send", mock.Anything, "+13075551234", mock.Anything).Return(nil)
	guard.On("RecordSent", mock.Anything, int64(1), int64(100), models.ChannelEmail).Return(nil)
	guard.On("RecordSent", mock.Anything, int64(1), int64(100), models.ChannelSMS).Return(nil)

	t.Cleanup(func() {
		guard.AssertExpectations(t)
		email.AssertExpectations(t)
		sms.AssertExpectations(t)
	})

	n := newNotifier(&mockVotes{}, &mockTargets{}, guard, email, sms)
	require.NoError(t, n.SendOne(context.Background(), vote, rows))
}

func TestRunDue_GroupsTargetsPerSubscriber(t *testing.T) {
	vote := models.Vote{ID: 100, BillID: "HB0042"}
	targets := []models.NotificationTarget{
		{SubscriberID: 1, Email: "a@example.com", EmailConfirmed: true, District: "H07"},
		{SubscriberID: 1, Email: "a@example.com", EmailConfirmed: true, District: "S04"},
		{SubscriberID: 2, Email: "b@example.com", EmailConfirmed: true, District: "H07"},
	}

	votes := &mockVotes{}
	targetSrc := &mockTargets{}
	guard := &mockGuard{}
	email := &mockEmail{}

	votes.On("RecordedSince", mock.Anything, mock.Anything).Return([]models.Vote{vote}, nil)
	targetSrc.On("TargetsForVote", mock.Anything, int64(100), models.ModeRealtime).
		Return(targets, nil)
	guard.On("ShouldSend", mock.Anything, int64(1), int64(100), models.ChannelEmail).Return(true, nil)
	guard.On("ShouldSend", mock.Anything, int64(2), int64(100), models.ChannelEmail).Return(true, nil)
	// Subscriber 1 gets one email listing both districts.
	email.On("SendVoteAlert", "a@example.com", vote, mock.MatchedBy(
		func(rows []models.NotificationTarget) bool { return len(rows) == 2 },
	)).Return(nil)
	email.On("SendVoteAlert", "b@example.com", vote, mock.MatchedBy(
		func(rows []models.NotificationTarget) bool { return len(rows) == 1 },
	)).Return(nil)
	guard.On("RecordSent", mock.Anything, int64(1), int64(100), models.ChannelEmail).Return(nil)
	guard.On("RecordSent", mock.Anything, int64(2), int64(100), models.ChannelEmail).Return(nil)

	t.Cleanup(func() {
		votes.AssertExpectations(t)
		targetSrc.AssertExpectations(t)
		guard.AssertExpectations(t)
		email.AssertExpectations(t)
	})

	n := newNotifier(votes, targetSrc, guard, email, &mockSMS{})
	require.NoError(t, n.RunDue(context.Background(), models.ModeRealtime))
}

func TestRunDue_VoteQueryError(t *testing.T) {
	votes := &mockVotes{}
	targetSrc := &mockTargets{}

	votes.On("RecordedSince", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	t.Cleanup(func() {
		votes.AssertExpectations(t)
		targetSrc.AssertNumberOfCalls(t, "TargetsForVote", 0)
	})

	n := newNotifier(votes, targetSrc, &mockGuard{}, &mockEmail{}, &mockSMS{})
	assert.Error(t, n.RunDue(context.Background(), models.ModeRealtime))
}

func TestRunDue_SecondRunSuppressed(t *testing.T) {
	vote := models.Vote{ID: 100, BillID: "HB0042"}
	targets := []models.NotificationTarget{
		{SubscriberID: 1, Email: "a@example.com", EmailConfirmed: true, District: "H07"},
	}

	votes := &mockVotes{}
	targetSrc := &mockTargets{}
	guard := &mockGuard{}
	email := &mockEmail{}

	votes.On("RecordedSince", mock.Anything, mock.Anything).Return([]models.Vote{vote}, nil)
	targetSrc.On("TargetsForVote", mock.Anything, int64(100), models.ModeRealtime).
		Return(targets, nil)
	guard.On("ShouldSend", mock.Anything, int64(1), int64(100), models.ChannelEmail).
		Return(true, nil).Once()
	guard.On("ShouldSend", mock.Anything, int64(1), int64(100), models.ChannelEmail).
		Return(false, nil)
	email.On("SendVoteAlert", "a@example.com", vote, targets).Return(nil).Once()
	guard.On("RecordSent", mock.Anything, int64(1), int64(100), models.ChannelEmail).
		Return(nil).Once()

	t.Cleanup(func() {
		guard.AssertExpectations(t)
		email.AssertExpectations(t)
		email.AssertNumberOfCalls(t, "SendVoteAlert", 1)
	})

	n := newNotifier(votes, targetSrc, guard, email, &mockSMS{})
	require.NoError(t, n.RunDue(context.Background(), models.ModeRealtime))
	require.NoError(t, n.RunDue(context.Background(), models.ModeRealtime))
}
