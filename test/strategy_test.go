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

type strategyHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockRepo     *mocks.MockIRepo
	mockClock    *mocks.MockIClock
	mockPlatform *mocks.MockIPlatformClient
	mockBlocked  *mocks.MockIBlockedAccounts
	mockMetrics  *mocks.MockIMetrics
	mockAudit    *mocks.MockIAuditSink
	now          time.Time
}

func setupStrategyTest(t *testing.T) (*gomock.Controller, *strategyHarness, logic.IStrategyRunner) {

	ctrl := gomock.NewController(t)

	h := &strategyHarness{
		cfg: &shared.Config{
			Strategy: shared.StrategyConfig{
				TargetBatchSize:  25,
				TransientWaitSec: 300,
				ClaimLeaseSec:    600,
			},
			Platform: shared.PlatformConfig{TimeoutSec: 5},
		},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockClock:    mocks.NewMockIClock(ctrl),
		mockPlatform: mocks.NewMockIPlatformClient(ctrl),
		mockBlocked:  mocks.NewMockIBlockedAccounts(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
		mockAudit:    mocks.NewMockIAuditSink(ctrl),
		// 14:30 UTC, inside the default active window used below
		now: time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC),
	}

	setupDummyLogger(h.mockLogger)
	setupDummyMetrics(h.mockMetrics)
	setupDummyAudit(h.mockAudit)
	h.mockClock.EXPECT().Now().Return(h.now).AnyTimes()
	h.mockClock.EXPECT().Location(gomock.Any()).Return(time.UTC, nil).AnyTimes()

	quota := logic.NewQuotaTracker(h.mockLogger, h.mockRepo, h.mockMetrics, h.mockAudit)
	recorder := logic.NewRecorder(h.mockLogger, h.mockRepo, h.mockClock, h.mockMetrics, h.mockAudit)
	runner := logic.NewStrategyRunner(h.cfg, h.mockLogger, h.mockRepo, h.mockClock,
		quota, recorder, h.mockPlatform, h.mockBlocked, h.mockMetrics, h.mockAudit)

	return ctrl, h, runner
}

func makeActiveStrategy(id int64) *dal.GrowthStrategy {
	return &dal.GrowthStrategy{
		Id:           id,
		UserId:       7,
		Status:       dal.StrategyStatusActive,
		StartDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Timezone:     "UTC",
		HoursStart:   9,
		HoursEnd:     18,
		DailyFollows: 10,
		DailyLikes:   10,
		DailyReplies: 10,
	}
}

func makeAccountTarget(id int64, strategyId int64, handle string) *dal.EngagementTarget {
	return &dal.EngagementTarget{
		Id:            id,
		StrategyId:    strategyId,
		TargetType:    dal.TargetTypeAccount,
		AccountHandle: handle,
		AccountId:     "acct-" + handle,
		ShouldFollow:  true,
		Status:        dal.TargetStatusPending,
		ScheduledFor:  time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		Version:       1,
	}
}

func makeTweetTarget(id int64, strategyId int64, tweetId string) *dal.EngagementTarget {
	return &dal.EngagementTarget{
		Id:          id,
		StrategyId:  strategyId,
		TargetType:  dal.TargetTypeTweet,
		TweetId:     tweetId,
		TweetAuthor: "someauthor",
		ShouldLike:  true,
		Status:      dal.TargetStatusPending,
		ScheduledFor: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		Version:     1,
	}
}

// expectClaim matches the runner's claim including its lease: the target gets
// pushed off due queries for claim_lease_sec while the worker executes.
func expectClaim(h *strategyHarness, id int64) *gomock.Call {
	leaseUntil := h.now.Add(600 * time.Second)
	return h.mockRepo.EXPECT().ClaimTarget(id, 1, gomock.Cond(checkTime(leaseUntil)))
}

func expectEngagementLog(h *strategyHarness, action dal.ActionType, success bool) *gomock.Call {
	return h.mockRepo.EXPECT().RecordEngagement(
		gomock.Cond(func(x any) bool {
			lg, ok := x.(*dal.EngagementLog)
			if !ok {
				return false
			}
			return lg.Action == action && lg.Success == success
		}),
		gomock.Eq("2025-06-10"),
	)
}

func Test_Strategy_CompletesPastEndDate(t *testing.T) {

	ctrl, h, runner := setupStrategyTest(t)
	defer ctrl.Finish()

	s := makeActiveStrategy(1)
	s.EndDate = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	h.mockRepo.EXPECT().GetRunnableStrategies(gomock.Any()).Return([]*dal.GrowthStrategy{s}, nil)
	h.mockRepo.EXPECT().SetStrategyStatus(int64(1), dal.StrategyStatusActive, dal.StrategyStatusCompleted).
		Return(true, nil)
	// No target processing on a finished campaign

	runner.RunCycle()
}

func Test_Strategy_OutsideActiveHoursSkipsCycle(t *testing.T) {

	ctrl, h, runner := setupStrategyTest(t)
	defer ctrl.Finish()

	s := makeActiveStrategy(2)
	s.HoursStart = 20
	s.HoursEnd = 23 // now is 14:30, outside

	h.mockRepo.EXPECT().GetRunnableStrategies(gomock.Any()).Return([]*dal.GrowthStrategy{s}, nil)
	// No GetDueTargets call expected

	runner.RunCycle()
}

func Test_Strategy_OvernightWindowWraps(t *testing.T) {

	ctrl, h, runner := setupStrategyTest(t)
	defer ctrl.Finish()

	s := makeActiveStrategy(3)
	s.HoursStart = 22
	s.HoursEnd = 15 // wraps past midnight; 14:30 is inside

	h.mockRepo.EXPECT().GetRunnableStrategies(gomock.Any()).Return([]*dal.GrowthStrategy{s}, nil)
	h.mockRepo.EXPECT().GetDueTargets(int64(3), gomock.Any(), 25).Return(nil, nil)

	runner.RunCycle()
}

func Test_Strategy_FollowsTargetWithinQuota(t *testing.T) {

	ctrl, h, runner := setupStrategyTest(t)
	defer ctrl.Finish()

	s := makeActiveStrategy(4)
	target := makeAccountTarget(40, 4, "interesting_person")

	h.mockRepo.EXPECT().GetRunnableStrategies(gomock.Any()).Return([]*dal.GrowthStrategy{s}, nil)
	h.mockRepo.EXPECT().GetDueTargets(int64(4), gomock.Any(), 25).Return([]*dal.EngagementTarget{target}, nil)
	expectClaim(h, 40).Return(true, nil)
	h.mockBlocked.EXPECT().IsBlocked("interesting_person").Return(false, nil)
	h.mockRepo.EXPECT().GetCompletedTargetActions(int64(40)).Return(map[dal.ActionType]bool{}, nil)
	h.mockRepo.EXPECT().TryConsumeQuota(int64(7), dal.ActionFollow, "2025-06-10", 10).Return(true, nil)
	h.mockPlatform.EXPECT().Follow(gomock.Any(), "acct-interesting_person").Return(nil)
	expectEngagementLog(h, dal.ActionFollow, true).Return(nil)
	h.mockRepo.EXPECT().FinalizeTarget(int64(40), 2, dal.TargetStatusCompleted, "").Return(true, nil)

	runner.RunCycle()
}

func Test_Strategy_QuotaExhaustedDefersTarget(t *testing.T) {

	ctrl, h, runner := setupStrategyTest(t)
	defer ctrl.Finish()

	s := makeActiveStrategy(5)
	s.DailyFollows = 2
	targets := []*dal.EngagementTarget{
		makeAccountTarget(51, 5, "alpha"),
		makeAccountTarget(52, 5, "bravo"),
		makeAccountTarget(53, 5, "charlie"),
	}

	h.mockRepo.EXPECT().GetRunnableStrategies(gomock.Any()).Return([]*dal.GrowthStrategy{s}, nil)
	h.mockRepo.EXPECT().GetDueTargets(int64(5), gomock.Any(), 25).Return(targets, nil)
	for _, target := range targets {
		expectClaim(h, target.Id).Return(true, nil)
		h.mockRepo.EXPECT().GetCompletedTargetActions(target.Id).Return(map[dal.ActionType]bool{}, nil)
	}
	h.mockBlocked.EXPECT().IsBlocked(gomock.Any()).Return(false, nil).Times(3)

	// Two slots left today; the third consume is denied
	h.mockRepo.EXPECT().TryConsumeQuota(int64(7), dal.ActionFollow, "2025-06-10", 2).Return(true, nil).Times(2)
	h.mockRepo.EXPECT().TryConsumeQuota(int64(7), dal.ActionFollow, "2025-06-10", 2).Return(false, nil)

	h.mockPlatform.EXPECT().Follow(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	expectEngagementLog(h, dal.ActionFollow, true).Return(nil).Times(2)
	h.mockRepo.EXPECT().FinalizeTarget(int64(51), 2, dal.TargetStatusCompleted, "").Return(true, nil)
	h.mockRepo.EXPECT().FinalizeTarget(int64(52), 2, dal.TargetStatusCompleted, "").Return(true, nil)

	// The starved target waits for the next local midnight, still pending
	nextMidnight := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	h.mockRepo.EXPECT().DeferTarget(int64(53), 2, gomock.Cond(checkTime(nextMidnight))).Return(true, nil)

	runner.RunCycle()
}

func Test_Strategy_AvoidListSkipsTarget(t *testing.T) {

	ctrl, h, runner := setupStrategyTest(t)
	defer ctrl.Finish()

	s := makeActiveStrategy(6)
	s.AvoidAccounts = []string{"do_not_engage"}
	target := makeAccountTarget(60, 6, "do_not_engage")

	h.mockRepo.EXPECT().GetRunnableStrategies(gomock.Any()).Return([]*dal.GrowthStrategy{s}, nil)
	h.mockRepo.EXPECT().GetDueTargets(int64(6), gomock.Any(), 25).Return([]*dal.EngagementTarget{target}, nil)
	expectClaim(h, 60).Return(true, nil)
	h.mockRepo.EXPECT().FinalizeTarget(int64(60), 2, dal.TargetStatusSkipped, gomock.Any()).Return(true, nil)
	// No quota consumed, no platform call, no log row

	runner.RunCycle()
}

func Test_Strategy_GloballyBlockedAccountSkipsTarget(t *testing.T) {

	ctrl, h, runner := setupStrategyTest(t)
	defer ctrl.Finish()

	s := makeActiveStrategy(7)
	target := makeAccountTarget(70, 7, "spammer")

	h.mockRepo.EXPECT().GetRunnableStrategies(gomock.Any()).Return([]*dal.GrowthStrategy{s}, nil)
	h.mockRepo.EXPECT().GetDueTargets(int64(7), gomock.Any(), 25).Return([]*dal.EngagementTarget{target}, nil)
	expectClaim(h, 70).Return(true, nil)
	h.mockBlocked.EXPECT().IsBlocked("spammer").Return(true, nil)
	h.mockRepo.EXPECT().FinalizeTarget(int64(70), 2, dal.TargetStatusSkipped, gomock.Any()).Return(true, nil)

	runner.RunCycle()
}

func Test_Strategy_UnapprovedReplySkips(t *testing.T) {

	ctrl, h, runner := setupStrategyTest(t)
	defer ctrl.Finish()

	s := makeActiveStrategy(8)
	s.RequireReplyApproval = true
	target := makeTweetTarget(80, 8, "t-555")
	target.ShouldLike = false
	target.ShouldReply = true
	target.ReplyText = "Great point, adding one thing."
	target.ReplyApproved = false

	h.mockRepo.EXPECT().GetRunnableStrategies(gomock.Any()).Return([]*dal.GrowthStrategy{s}, nil)
	h.mockRepo.EXPECT().GetDueTargets(int64(8), gomock.Any(), 25).Return([]*dal.EngagementTarget{target}, nil)
	expectClaim(h, 80).Return(true, nil)
	h.mockBlocked.EXPECT().IsBlocked("someauthor").Return(false, nil)
	h.mockRepo.EXPECT().GetCompletedTargetActions(int64(80)).Return(map[dal.ActionType]bool{}, nil)
	h.mockRepo.EXPECT().FinalizeTarget(int64(80), 2, dal.TargetStatusSkipped, gomock.Any()).Return(true, nil)
	// Reply never reaches the platform

	runner.RunCycle()
}

func Test_Strategy_ApprovedReplyPosts(t *testing.T) {

	ctrl, h, runner := setupStrategyTest(t)
	defer ctrl.Finish()

	s := makeActiveStrategy(9)
	s.RequireReplyApproval = true
	target := makeTweetTarget(90, 9, "t-777")
	target.ShouldLike = false
	target.ShouldReply = true
	target.ReplyText = "Great point, adding one thing."
	target.ReplyApproved = true

	h.mockRepo.EXPECT().GetRunnableStrategies(gomock.Any()).Return([]*dal.GrowthStrategy{s}, nil)
	h.mockRepo.EXPECT().GetDueTargets(int64(9), gomock.Any(), 25).Return([]*dal.EngagementTarget{target}, nil)
	expectClaim(h, 90).Return(true, nil)
	h.mockBlocked.EXPECT().IsBlocked("someauthor").Return(false, nil)
	h.mockRepo.EXPECT().GetCompletedTargetActions(int64(90)).Return(map[dal.ActionType]bool{}, nil)
	h.mockRepo.EXPECT().TryConsumeQuota(int64(7), dal.ActionReply, "2025-06-10", 10).Return(true, nil)
	h.mockPlatform.EXPECT().Reply(gomock.Any(), "t-777", "Great point, adding one thing.").Return("r-1", nil)
	expectEngagementLog(h, dal.ActionReply, true).Return(nil)
	h.mockRepo.EXPECT().FinalizeTarget(int64(90), 2, dal.TargetStatusCompleted, "").Return(true, nil)

	runner.RunCycle()
}

func Test_Strategy_TransientErrorDefersTarget(t *testing.T) {

	ctrl, h, runner := setupStrategyTest(t)
	defer ctrl.Finish()

	s := makeActiveStrategy(10)
	target := makeTweetTarget(100, 10, "t-888")

	h.mockRepo.EXPECT().GetRunnableStrategies(gomock.Any()).Return([]*dal.GrowthStrategy{s}, nil)
	h.mockRepo.EXPECT().GetDueTargets(int64(10), gomock.Any(), 25).Return([]*dal.EngagementTarget{target}, nil)
	expectClaim(h, 100).Return(true, nil)
	h.mockBlocked.EXPECT().IsBlocked("someauthor").Return(false, nil)
	h.mockRepo.EXPECT().GetCompletedTargetActions(int64(100)).Return(map[dal.ActionType]bool{}, nil)
	h.mockRepo.EXPECT().TryConsumeQuota(int64(7), dal.ActionLike, "2025-06-10", 10).Return(true, nil)
	h.mockPlatform.EXPECT().Like(gomock.Any(), "t-888").
		Return(&logic.PlatformError{StatusCode: 429, Code: "rate_limited", Message: "slow down"})
	expectEngagementLog(h, dal.ActionLike, false).Return(nil)
	h.mockRepo.EXPECT().DeferTarget(int64(100), 2, gomock.Cond(checkTime(h.now.Add(300*time.Second)))).Return(true, nil)

	runner.RunCycle()
}

func Test_Strategy_PermanentErrorFailsTarget(t *testing.T) {

	ctrl, h, runner := setupStrategyTest(t)
	defer ctrl.Finish()

	s := makeActiveStrategy(11)
	target := makeTweetTarget(110, 11, "t-999")

	h.mockRepo.EXPECT().GetRunnableStrategies(gomock.Any()).Return([]*dal.GrowthStrategy{s}, nil)
	h.mockRepo.EXPECT().GetDueTargets(int64(11), gomock.Any(), 25).Return([]*dal.EngagementTarget{target}, nil)
	expectClaim(h, 110).Return(true, nil)
	h.mockBlocked.EXPECT().IsBlocked("someauthor").Return(false, nil)
	h.mockRepo.EXPECT().GetCompletedTargetActions(int64(110)).Return(map[dal.ActionType]bool{}, nil)
	h.mockRepo.EXPECT().TryConsumeQuota(int64(7), dal.ActionLike, "2025-06-10", 10).Return(true, nil)
	h.mockPlatform.EXPECT().Like(gomock.Any(), "t-999").
		Return(&logic.PlatformError{StatusCode: 404, Code: "not_found", Message: "tweet deleted"})
	expectEngagementLog(h, dal.ActionLike, false).Return(nil)
	h.mockRepo.EXPECT().FinalizeTarget(int64(110), 2, dal.TargetStatusFailed, gomock.Any()).Return(true, nil)

	runner.RunCycle()
}

func Test_Strategy_SkipsAlreadyCompletedActions(t *testing.T) {

	ctrl, h, runner := setupStrategyTest(t)
	defer ctrl.Finish()

	s := makeActiveStrategy(12)
	target := makeTweetTarget(120, 12, "t-112")
	target.ShouldFollow = true // follow + like requested; follow already done

	h.mockRepo.EXPECT().GetRunnableStrategies(gomock.Any()).Return([]*dal.GrowthStrategy{s}, nil)
	h.mockRepo.EXPECT().GetDueTargets(int64(12), gomock.Any(), 25).Return([]*dal.EngagementTarget{target}, nil)
	expectClaim(h, 120).Return(true, nil)
	h.mockBlocked.EXPECT().IsBlocked("someauthor").Return(false, nil)
	h.mockRepo.EXPECT().GetCompletedTargetActions(int64(120)).
		Return(map[dal.ActionType]bool{dal.ActionFollow: true}, nil)

	// Only the like runs; no second follow, no follow quota consumed
	h.mockRepo.EXPECT().TryConsumeQuota(int64(7), dal.ActionLike, "2025-06-10", 10).Return(true, nil)
	h.mockPlatform.EXPECT().Like(gomock.Any(), "t-112").Return(nil)
	expectEngagementLog(h, dal.ActionLike, true).Return(nil)
	h.mockRepo.EXPECT().FinalizeTarget(int64(120), 2, dal.TargetStatusCompleted, "").Return(true, nil)

	runner.RunCycle()
}

func Test_Strategy_LostClaimLeavesTargetAlone(t *testing.T) {

	ctrl, h, runner := setupStrategyTest(t)
	defer ctrl.Finish()

	s := makeActiveStrategy(13)
	target := makeAccountTarget(130, 13, "contested")

	h.mockRepo.EXPECT().GetRunnableStrategies(gomock.Any()).Return([]*dal.GrowthStrategy{s}, nil)
	h.mockRepo.EXPECT().GetDueTargets(int64(13), gomock.Any(), 25).Return([]*dal.EngagementTarget{target}, nil)
	expectClaim(h, 130).Return(false, nil)

	runner.RunCycle()
}

func Test_Strategy_PauseResume(t *testing.T) {

	ctrl, h, runner := setupStrategyTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().SetStrategyStatus(int64(14), dal.StrategyStatusActive, dal.StrategyStatusPaused).
		Return(true, nil)
	applied, err := runner.Pause(14)
	if err != nil || !applied {
		t.Fatalf("expected pause to apply, got %v / %v", applied, err)
	}

	h.mockRepo.EXPECT().SetStrategyStatus(int64(14), dal.StrategyStatusPaused, dal.StrategyStatusActive).
		Return(true, nil)
	applied, err = runner.Resume(14)
	if err != nil || !applied {
		t.Fatalf("expected resume to apply, got %v / %v", applied, err)
	}
}
