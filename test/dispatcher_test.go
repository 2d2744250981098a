package test

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"tweet_pilot/dal"
	"tweet_pilot/logic"
	"tweet_pilot/shared"
	"tweet_pilot/test/mocks"
)

type dispatchHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockRepo     *mocks.MockIRepo
	mockClock    *mocks.MockIClock
	mockPlatform *mocks.MockIPlatformClient
	mockMetrics  *mocks.MockIMetrics
	mockAudit    *mocks.MockIAuditSink
	now          time.Time
}

func setupDispatchTest(t *testing.T) (*gomock.Controller, *dispatchHarness, logic.IDispatcher) {

	ctrl := gomock.NewController(t)

	h := &dispatchHarness{
		cfg: &shared.Config{
			Dispatch: shared.DispatchConfig{
				BackoffBaseSec: 60,
				BackoffMaxSec:  960,
			},
			Platform: shared.PlatformConfig{TimeoutSec: 5},
		},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockClock:    mocks.NewMockIClock(ctrl),
		mockPlatform: mocks.NewMockIPlatformClient(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
		mockAudit:    mocks.NewMockIAuditSink(ctrl),
		now:          time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC),
	}

	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)
	setupDummyAudit(h.mockAudit)
	h.mockClock.EXPECT().Now().Return(h.now).AnyTimes()
	h.mockClock.EXPECT().Location(gomock.Any()).Return(time.UTC, nil).AnyTimes()

	quota := logic.NewQuotaTracker(h.mockLogger, h.mockRepo, h.mockMetrics, h.mockAudit)
	recorder := logic.NewRecorder(h.mockLogger, h.mockRepo, h.mockClock, h.mockMetrics, h.mockAudit)
	dispatcher := logic.NewDispatcher(h.cfg, h.mockLogger, h.mockRepo, h.mockClock,
		quota, recorder, h.mockPlatform, h.mockMetrics, h.mockAudit)

	return ctrl, h, dispatcher
}

func makePendingTweet(id int64, content string) *dal.ScheduledTweet {
	return &dal.ScheduledTweet{
		Id:            id,
		UserId:        7,
		Content:       content,
		ScheduledFor:  time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		Timezone:      "UTC",
		Status:        dal.TweetStatusPending,
		MaxRetries:    3,
		NextAttemptAt: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		Version:       2,
	}
}

func checkExecLog(attempt int, status dal.TweetStatus, success bool) func(x any) bool {
	return func(x any) bool {
		lg, ok := x.(*dal.TweetExecutionLog)
		if !ok {
			return false
		}
		return lg.Attempt == attempt && lg.Status == status && lg.Success == success
	}
}

func Test_Dispatch_PostsDueTweet(t *testing.T) {

	ctrl, h, dispatcher := setupDispatchTest(t)
	defer ctrl.Finish()

	tw := makePendingTweet(1, "Good morning, internet")
	h.mockRepo.EXPECT().GetDueTweets(gomock.Any(), gomock.Any()).Return([]*dal.ScheduledTweet{tw}, 1, nil)
	h.mockRepo.EXPECT().ClaimTweet(int64(1), 2, gomock.Cond(checkTime(h.now))).Return(true, nil)
	h.mockPlatform.EXPECT().PostTweet(gomock.Any(), gomock.Eq("Good morning, internet")).Return("ext-101", nil)
	h.mockRepo.EXPECT().MarkTweetPosted(
		int64(1),
		gomock.Cond(func(x any) bool {
			ids, ok := x.([]string)
			return ok && len(ids) == 1 && ids[0] == "ext-101"
		}),
		gomock.Cond(checkTime(h.now)),
		gomock.Cond(checkExecLog(1, dal.TweetStatusPosted, true)),
	).Return(true, nil)

	dispatcher.RunCycle()
}

func Test_Dispatch_PostsThreadAtomically(t *testing.T) {

	ctrl, h, dispatcher := setupDispatchTest(t)
	defer ctrl.Finish()

	tw := makePendingTweet(2, "")
	tw.IsThread = true
	tw.ThreadContent = []string{"thread 1/3", "thread 2/3", "thread 3/3"}

	h.mockRepo.EXPECT().GetDueTweets(gomock.Any(), gomock.Any()).Return([]*dal.ScheduledTweet{tw}, 1, nil)
	h.mockRepo.EXPECT().ClaimTweet(int64(2), 2, gomock.Any()).Return(true, nil)
	h.mockPlatform.EXPECT().PostThread(gomock.Any(), gomock.Any()).Return([]string{"e1", "e2", "e3"}, nil)
	h.mockRepo.EXPECT().MarkTweetPosted(
		int64(2),
		gomock.Cond(func(x any) bool {
			ids, ok := x.([]string)
			return ok && len(ids) == 3
		}),
		gomock.Any(),
		gomock.Cond(checkExecLog(1, dal.TweetStatusPosted, true)),
	).Return(true, nil)

	dispatcher.RunCycle()
}

func Test_Dispatch_TransientErrorSchedulesRetry(t *testing.T) {

	ctrl, h, dispatcher := setupDispatchTest(t)
	defer ctrl.Finish()

	tw := makePendingTweet(3, "Flaky platform day")
	h.mockRepo.EXPECT().GetDueTweets(gomock.Any(), gomock.Any()).Return([]*dal.ScheduledTweet{tw}, 1, nil)
	h.mockRepo.EXPECT().ClaimTweet(int64(3), 2, gomock.Any()).Return(true, nil)
	h.mockPlatform.EXPECT().PostTweet(gomock.Any(), gomock.Any()).
		Return("", &logic.PlatformError{StatusCode: 503, Code: "unavailable", Message: "try later"})

	// First retry after the base delay, retry_count goes to 1
	h.mockRepo.EXPECT().MarkTweetRetrying(
		int64(3),
		1,
		gomock.Cond(checkTime(h.now.Add(60*time.Second))),
		gomock.Eq("try later"),
		gomock.Cond(checkExecLog(1, dal.TweetStatusRetrying, false)),
	).Return(true, nil)

	dispatcher.RunCycle()
}

func Test_Dispatch_SecondRetryBacksOffLonger(t *testing.T) {

	ctrl, h, dispatcher := setupDispatchTest(t)
	defer ctrl.Finish()

	tw := makePendingTweet(4, "Still flaky")
	tw.Status = dal.TweetStatusRetrying
	tw.RetryCount = 1

	h.mockRepo.EXPECT().GetDueTweets(gomock.Any(), gomock.Any()).Return([]*dal.ScheduledTweet{tw}, 1, nil)
	h.mockRepo.EXPECT().ClaimTweet(int64(4), 2, gomock.Any()).Return(true, nil)
	h.mockPlatform.EXPECT().PostTweet(gomock.Any(), gomock.Any()).
		Return("", &logic.PlatformError{StatusCode: 429, Code: "rate_limited", Message: "slow down"})
	h.mockRepo.EXPECT().MarkTweetRetrying(
		int64(4),
		2,
		gomock.Cond(checkTime(h.now.Add(120*time.Second))),
		gomock.Any(),
		gomock.Cond(checkExecLog(2, dal.TweetStatusRetrying, false)),
	).Return(true, nil)

	dispatcher.RunCycle()
}

func Test_Dispatch_PermanentErrorFailsImmediately(t *testing.T) {

	ctrl, h, dispatcher := setupDispatchTest(t)
	defer ctrl.Finish()

	tw := makePendingTweet(5, "Account got suspended")
	h.mockRepo.EXPECT().GetDueTweets(gomock.Any(), gomock.Any()).Return([]*dal.ScheduledTweet{tw}, 1, nil)
	h.mockRepo.EXPECT().ClaimTweet(int64(5), 2, gomock.Any()).Return(true, nil)
	h.mockPlatform.EXPECT().PostTweet(gomock.Any(), gomock.Any()).
		Return("", &logic.PlatformError{StatusCode: 403, Code: "suspended", Message: "account suspended"})
	h.mockRepo.EXPECT().MarkTweetFailed(
		int64(5),
		gomock.Eq("account suspended"),
		gomock.Cond(checkExecLog(1, dal.TweetStatusFailed, false)),
	).Return(true, nil)

	dispatcher.RunCycle()
}

func Test_Dispatch_RetryBudgetSpentFails(t *testing.T) {

	ctrl, h, dispatcher := setupDispatchTest(t)
	defer ctrl.Finish()

	tw := makePendingTweet(6, "The last straw")
	tw.Status = dal.TweetStatusRetrying
	tw.RetryCount = 3 // max_retries is 3, no budget left

	h.mockRepo.EXPECT().GetDueTweets(gomock.Any(), gomock.Any()).Return([]*dal.ScheduledTweet{tw}, 1, nil)
	h.mockRepo.EXPECT().ClaimTweet(int64(6), 2, gomock.Any()).Return(true, nil)
	h.mockPlatform.EXPECT().PostTweet(gomock.Any(), gomock.Any()).
		Return("", &logic.PlatformError{StatusCode: 503, Code: "unavailable", Message: "try later"})
	h.mockRepo.EXPECT().MarkTweetFailed(
		int64(6),
		gomock.Any(),
		gomock.Cond(checkExecLog(4, dal.TweetStatusFailed, false)),
	).Return(true, nil)

	dispatcher.RunCycle()
}

func Test_Dispatch_LostClaimSkipsPosting(t *testing.T) {

	ctrl, h, dispatcher := setupDispatchTest(t)
	defer ctrl.Finish()

	tw := makePendingTweet(7, "Someone else got here first")
	h.mockRepo.EXPECT().GetDueTweets(gomock.Any(), gomock.Any()).Return([]*dal.ScheduledTweet{tw}, 1, nil)
	h.mockRepo.EXPECT().ClaimTweet(int64(7), 2, gomock.Any()).Return(false, nil)
	// No platform call, no outcome recording

	dispatcher.RunCycle()
}

func Test_Dispatch_QuotaExhaustedDefersToNextDay(t *testing.T) {

	ctrl, h, dispatcher := setupDispatchTest(t)
	defer ctrl.Finish()

	h.cfg.Dispatch.DailyPostLimit = 10

	tw := makePendingTweet(8, "One too many today")
	h.mockRepo.EXPECT().GetDueTweets(gomock.Any(), gomock.Any()).Return([]*dal.ScheduledTweet{tw}, 1, nil)
	h.mockRepo.EXPECT().TryConsumeQuota(int64(7), dal.ActionPost, "2025-06-10", 10).Return(false, nil)

	nextMidnight := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	h.mockRepo.EXPECT().DeferTweet(int64(8), gomock.Cond(checkTime(nextMidnight))).Return(nil)
	// No claim, no platform call

	dispatcher.RunCycle()
}

func Test_Dispatch_InvalidContentFailsWithoutPlatformCall(t *testing.T) {

	ctrl, h, dispatcher := setupDispatchTest(t)
	defer ctrl.Finish()

	tw := makePendingTweet(9, "Tweet with <b>markup</b> snuck in")
	h.mockRepo.EXPECT().GetDueTweets(gomock.Any(), gomock.Any()).Return([]*dal.ScheduledTweet{tw}, 1, nil)
	h.mockRepo.EXPECT().ClaimTweet(int64(9), 2, gomock.Any()).Return(true, nil)
	h.mockRepo.EXPECT().MarkTweetFailed(
		int64(9),
		gomock.Any(),
		gomock.Cond(checkExecLog(1, dal.TweetStatusFailed, false)),
	).Return(true, nil)

	dispatcher.RunCycle()
}

func Test_Dispatch_CancellationWinsOverLatePost(t *testing.T) {

	ctrl, h, dispatcher := setupDispatchTest(t)
	defer ctrl.Finish()

	tw := makePendingTweet(10, "Cancelled mid-flight")
	h.mockRepo.EXPECT().GetDueTweets(gomock.Any(), gomock.Any()).Return([]*dal.ScheduledTweet{tw}, 1, nil)
	h.mockRepo.EXPECT().ClaimTweet(int64(10), 2, gomock.Any()).Return(true, nil)
	h.mockPlatform.EXPECT().PostTweet(gomock.Any(), gomock.Any()).Return("ext-late", nil)

	// The log row is still written; the status update reports it did not apply
	h.mockRepo.EXPECT().MarkTweetPosted(
		int64(10), gomock.Any(), gomock.Any(),
		gomock.Cond(checkExecLog(1, dal.TweetStatusPosted, true)),
	).Return(false, nil)

	dispatcher.RunCycle()
}

func Test_Dispatch_Cancel(t *testing.T) {

	ctrl, h, dispatcher := setupDispatchTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().CancelTweet(int64(11)).Return(true, nil)
	cancelled, err := dispatcher.Cancel(11)
	if err != nil || !cancelled {
		t.Fatalf("expected cancellation to succeed, got %v / %v", cancelled, err)
	}

	h.mockRepo.EXPECT().CancelTweet(int64(12)).Return(false, nil)
	cancelled, err = dispatcher.Cancel(12)
	if err != nil || cancelled {
		t.Fatalf("expected cancellation to be refused, got %v / %v", cancelled, err)
	}
}
