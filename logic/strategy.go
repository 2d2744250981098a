package logic

import (
	"context"
	"fmt"
	"sync"
	"time"
	"tweet_pilot/dal"
	"tweet_pilot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_strategy.go -package mocks tweet_pilot/logic IStrategyRunner

const defaultCycleSec = 60
const defaultTargetBatch = 25
const defaultTransientWaitSec = 300
const defaultClaimLeaseSec = 600

// IStrategyRunner gives every active strategy a periodic engagement cycle:
// gate on active hours, pick the most urgent due targets, act within quota.
type IStrategyRunner interface {
	Start()
	Stop()
	RunCycle()
	Pause(strategyId int64) (bool, error)
	Resume(strategyId int64) (bool, error)
}

type strategyRunner struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	clock    shared.IClock
	quota    IQuotaTracker
	recorder IRecorder
	platform IPlatformClient
	blocked  IBlockedAccounts
	metrics  IMetrics
	audit    IAuditSink
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewStrategyRunner(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	clock shared.IClock,
	quota IQuotaTracker,
	recorder IRecorder,
	platform IPlatformClient,
	blocked IBlockedAccounts,
	metrics IMetrics,
	audit IAuditSink,
) IStrategyRunner {

	return &strategyRunner{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		clock:    clock,
		quota:    quota,
		recorder: recorder,
		platform: platform,
		blocked:  blocked,
		metrics:  metrics,
		audit:    audit,
		stopCh:   make(chan struct{}),
	}
}

func (sr *strategyRunner) Start() {
	go sr.cycleLoop()
}

func (sr *strategyRunner) Stop() {
	sr.stopOnce.Do(func() { close(sr.stopCh) })
}

func (sr *strategyRunner) cycleLoop() {

	cycleSec := sr.cfg.Strategy.CycleSec
	if cycleSec <= 0 {
		cycleSec = defaultCycleSec
	}
	for {
		select {
		case <-sr.stopCh:
			return
		case <-time.After(time.Duration(cycleSec) * time.Second):
		}
		sr.runCycleSafe()
	}
}

func (sr *strategyRunner) runCycleSafe() {

	defer func() {
		if r := recover(); r != nil {
			sr.logger.Errorf("Strategy cycle panicked: %v", r)
			sr.logger.Infof("Sleeping %d seconds after panic", panicSleepSec)
			time.Sleep(time.Second * panicSleepSec)
		}
	}()

	sr.RunCycle()
}

// RunCycle walks every runnable strategy once. A strategy failing its cycle
// is logged and skipped; it never takes the others down with it.
func (sr *strategyRunner) RunCycle() {

	now := sr.clock.Now()
	strategies, err := sr.repo.GetRunnableStrategies(now)
	if err != nil {
		sr.logger.Errorf("Failed to get runnable strategies: %v", err)
		return
	}
	sr.metrics.ActiveStrategyCount(len(strategies))

	for _, s := range strategies {
		if err := sr.runStrategy(s, now); err != nil {
			sr.logger.Errorf("Strategy %d cycle failed: %v", s.Id, err)
		}
	}
}

func (sr *strategyRunner) runStrategy(s *dal.GrowthStrategy, now time.Time) error {

	loc, err := sr.clock.Location(s.Timezone)
	if err != nil {
		sr.logger.Warnf("Strategy %d has bad timezone '%s', using UTC: %v", s.Id, s.Timezone, err)
		loc = time.UTC
	}

	// Past its end date: the campaign is over
	if now.After(s.EndDate) {
		applied, err := sr.repo.SetStrategyStatus(s.Id, dal.StrategyStatusActive, dal.StrategyStatusCompleted)
		if err != nil {
			return err
		}
		if applied {
			sr.logger.Infof("Strategy %d completed: past end date %s", s.Id, s.EndDate.Format("2006-01-02"))
			sr.audit.StrategyTransition(s.Id, dal.StrategyStatusActive, dal.StrategyStatusCompleted)
		}
		return nil
	}

	if !withinActiveHours(now.In(loc).Hour(), s.HoursStart, s.HoursEnd) {
		sr.logger.Debugf("Strategy %d outside active hours, skipping cycle", s.Id)
		return nil
	}

	batch := sr.cfg.Strategy.TargetBatchSize
	if batch <= 0 {
		batch = defaultTargetBatch
	}
	targets, err := sr.repo.GetDueTargets(s.Id, now, batch)
	if err != nil {
		return err
	}

	for _, t := range targets {
		if err := sr.processTarget(s, t, now, loc); err != nil {
			sr.logger.Errorf("Strategy %d target %d failed: %v", s.Id, t.Id, err)
		}
	}
	return nil
}

// withinActiveHours treats the window as [start, end); an end at or before
// start wraps past midnight.
func withinActiveHours(hour, start, end int) bool {
	if start == end {
		return true // degenerate config means always on
	}
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

func avoidKey(t *dal.EngagementTarget) string {
	if t.TargetType == dal.TargetTypeAccount {
		return t.AccountHandle
	}
	return t.TweetAuthor
}

func inAvoidList(s *dal.GrowthStrategy, handle string) bool {
	for _, a := range s.AvoidAccounts {
		if a == handle {
			return true
		}
	}
	return false
}

// requestedActions returns the target's actions in execution order. Follow
// comes first so a new relationship exists before we interact with content.
func requestedActions(t *dal.EngagementTarget) []dal.ActionType {
	var res []dal.ActionType
	if t.ShouldFollow {
		res = append(res, dal.ActionFollow)
	}
	if t.ShouldLike {
		res = append(res, dal.ActionLike)
	}
	if t.ShouldRetweet {
		res = append(res, dal.ActionRetweet)
	}
	if t.ShouldReply {
		res = append(res, dal.ActionReply)
	}
	return res
}

func (sr *strategyRunner) processTarget(s *dal.GrowthStrategy, t *dal.EngagementTarget,
	now time.Time, loc *time.Location) error {

	// The claim leases the target: due queries stop returning it until the
	// lease runs out, and the bumped version invalidates any stale claimant.
	leaseSec := sr.cfg.Strategy.ClaimLeaseSec
	if leaseSec <= 0 {
		leaseSec = defaultClaimLeaseSec
	}
	won, err := sr.repo.ClaimTarget(t.Id, t.Version, now.Add(time.Duration(leaseSec)*time.Second))
	if err != nil {
		return err
	}
	if !won {
		sr.logger.Debugf("Lost claim on target %d", t.Id)
		return nil
	}
	claimVersion := t.Version + 1

	// Avoid lists win over everything, quota included
	handle := avoidKey(t)
	if inAvoidList(s, handle) {
		return sr.skipTarget(s, t, claimVersion, "in strategy avoid list")
	}
	if handle != "" {
		isBlocked, err := sr.blocked.IsBlocked(handle)
		if err != nil {
			sr.logger.Errorf("Blocked-accounts check failed for '%s': %v", handle, err)
		} else if isBlocked {
			return sr.skipTarget(s, t, claimVersion, "globally blocked account")
		}
	}

	actions := requestedActions(t)
	if len(actions) == 0 {
		return sr.skipTarget(s, t, claimVersion, "no actions requested")
	}

	// Actions that already succeeded in an earlier pass are not repeated
	done, err := sr.repo.GetCompletedTargetActions(t.Id)
	if err != nil {
		return err
	}

	day := shared.DayKey(now, loc)
	executed := 0
	quotaDenied := 0
	configSkipped := 0
	var transientErr error
	var permanentErr error

	for _, action := range actions {
		if done[action] {
			executed++
			continue
		}
		if action == dal.ActionReply && s.RequireReplyApproval && !t.ReplyApproved {
			configSkipped++
			continue
		}
		limit := s.DailyLimit(action)
		if limit <= 0 {
			// Action type not enabled on this strategy at all
			configSkipped++
			continue
		}
		ok, err := sr.quota.TryConsume(s.UserId, action, day, limit)
		if err != nil {
			return err
		}
		if !ok {
			quotaDenied++
			continue
		}

		externalId, callErr := sr.executeAction(action, t)
		if err := sr.recorder.Engagement(s, t, action, externalId, callErr, day); err != nil {
			return err
		}
		if callErr == nil {
			executed++
			continue
		}
		if Classify(callErr) == FailurePermanent {
			permanentErr = callErr
		} else {
			transientErr = callErr
		}
		// Platform trouble; no point hammering the remaining actions now
		break
	}

	switch {
	case permanentErr != nil:
		applied, err := sr.repo.FinalizeTarget(t.Id, claimVersion, dal.TargetStatusFailed, permanentErr.Error())
		if err != nil {
			return err
		}
		if applied {
			sr.audit.TargetOutcome(s.Id, t.Id, dal.TargetStatusFailed, permanentErr.Error())
		}
	case transientErr != nil:
		waitSec := sr.cfg.Strategy.TransientWaitSec
		if waitSec <= 0 {
			waitSec = defaultTransientWaitSec
		}
		until := now.Add(time.Duration(waitSec) * time.Second)
		if _, err := sr.repo.DeferTarget(t.Id, claimVersion, until); err != nil {
			return err
		}
		sr.logger.Infof("Target %d deferred to %s after transient error: %v", t.Id, until, transientErr)
	case quotaDenied > 0:
		// Out of allowance today; the target stays pending and is
		// reconsidered after the strategy's local midnight
		until := shared.NextMidnight(now, loc)
		if _, err := sr.repo.DeferTarget(t.Id, claimVersion, until); err != nil {
			return err
		}
		sr.metrics.TargetSkipped("quota")
		sr.logger.Infof("Target %d deferred to %s: daily quota exhausted", t.Id, until)
	case executed > 0:
		applied, err := sr.repo.FinalizeTarget(t.Id, claimVersion, dal.TargetStatusCompleted, "")
		if err != nil {
			return err
		}
		if applied {
			sr.audit.TargetOutcome(s.Id, t.Id, dal.TargetStatusCompleted, "")
		}
	default:
		if err := sr.skipTarget(s, t, claimVersion, "no eligible actions"); err != nil {
			return err
		}
	}
	return nil
}

func (sr *strategyRunner) skipTarget(s *dal.GrowthStrategy, t *dal.EngagementTarget,
	claimVersion int, reason string) error {

	applied, err := sr.repo.FinalizeTarget(t.Id, claimVersion, dal.TargetStatusSkipped, reason)
	if err != nil {
		return err
	}
	if applied {
		sr.metrics.TargetSkipped("policy")
		sr.audit.TargetOutcome(s.Id, t.Id, dal.TargetStatusSkipped, reason)
	}
	return nil
}

func (sr *strategyRunner) executeAction(action dal.ActionType, t *dal.EngagementTarget) (string, error) {

	timeoutSec := sr.cfg.Platform.TimeoutSec
	if timeoutSec <= 0 {
		timeoutSec = defaultPlatformTimeoutSec
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	switch action {
	case dal.ActionFollow:
		accountId := t.AccountId
		if t.TargetType == dal.TargetTypeTweet {
			accountId = t.TweetAuthor
		}
		if accountId == "" {
			accountId = t.AccountHandle
		}
		return "", sr.platform.Follow(ctx, accountId)
	case dal.ActionLike:
		if t.TweetId == "" {
			return "", &PlatformError{StatusCode: 400, Code: "no_tweet", Message: "like requested on account target"}
		}
		return "", sr.platform.Like(ctx, t.TweetId)
	case dal.ActionRetweet:
		if t.TweetId == "" {
			return "", &PlatformError{StatusCode: 400, Code: "no_tweet", Message: "retweet requested on account target"}
		}
		return "", sr.platform.Retweet(ctx, t.TweetId)
	case dal.ActionReply:
		if t.TweetId == "" {
			return "", &PlatformError{StatusCode: 400, Code: "no_tweet", Message: "reply requested on account target"}
		}
		if err := ValidatePost(t.ReplyText); err != nil {
			return "", &PlatformError{StatusCode: 400, Code: "bad_reply", Message: err.Error()}
		}
		return sr.platform.Reply(ctx, t.TweetId, t.ReplyText)
	}
	return "", fmt.Errorf("unsupported action %s", action)
}

// Pause and Resume are the user-facing half of the PAUSED<->ACTIVE pair.
// Every other strategy transition is monotonic and owned by the runner.

func (sr *strategyRunner) Pause(strategyId int64) (bool, error) {
	if !CanStrategyTransition(dal.StrategyStatusActive, dal.StrategyStatusPaused) {
		return false, nil
	}
	applied, err := sr.repo.SetStrategyStatus(strategyId, dal.StrategyStatusActive, dal.StrategyStatusPaused)
	if err != nil {
		return false, err
	}
	if applied {
		sr.audit.StrategyTransition(strategyId, dal.StrategyStatusActive, dal.StrategyStatusPaused)
	}
	return applied, nil
}

func (sr *strategyRunner) Resume(strategyId int64) (bool, error) {
	applied, err := sr.repo.SetStrategyStatus(strategyId, dal.StrategyStatusPaused, dal.StrategyStatusActive)
	if err != nil {
		return false, err
	}
	if applied {
		sr.audit.StrategyTransition(strategyId, dal.StrategyStatusPaused, dal.StrategyStatusActive)
	}
	return applied, nil
}
