package logic

import (
	"context"
	"sync"
	"time"
	"tweet_pilot/dal"
	"tweet_pilot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_dispatcher.go -package mocks tweet_pilot/logic IDispatcher

const defaultPollSec = 15
const defaultMaxParallel = 5
const defaultBatchSize = 20
const panicSleepSec = 10

// IDispatcher drives scheduled tweets through their posting lifecycle.
// RunCycle processes everything currently due and returns when the cycle's
// platform calls have finished; the background loop just calls it on a timer.
type IDispatcher interface {
	Start()
	Stop()
	Wake()
	RunCycle()
	Cancel(tweetId int64) (bool, error)
}

type dispatcher struct {
	cfg      *shared.Config
	logger   shared.ILogger
	repo     dal.IRepo
	clock    shared.IClock
	quota    IQuotaTracker
	recorder IRecorder
	platform IPlatformClient
	metrics  IMetrics
	audit    IAuditSink
	policy   BackoffPolicy
	wakeCh   chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewDispatcher(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	clock shared.IClock,
	quota IQuotaTracker,
	recorder IRecorder,
	platform IPlatformClient,
	metrics IMetrics,
	audit IAuditSink,
) IDispatcher {

	base := cfg.Dispatch.BackoffBaseSec
	if base <= 0 {
		base = 60
	}
	ceiling := cfg.Dispatch.BackoffMaxSec
	if ceiling < base {
		ceiling = base * 16
	}

	return &dispatcher{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		clock:    clock,
		quota:    quota,
		recorder: recorder,
		platform: platform,
		metrics:  metrics,
		audit:    audit,
		policy: BackoffPolicy{
			Base: time.Duration(base) * time.Second,
			Max:  time.Duration(ceiling) * time.Second,
		},
		wakeCh: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
	}
}

func (d *dispatcher) Start() {
	go d.dispatchLoop()
}

func (d *dispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
}

// Wake nudges the loop out of its poll wait, e.g. right after a new tweet is
// scheduled for the immediate future.
func (d *dispatcher) Wake() {
	select {
	case d.wakeCh <- struct{}{}:
	default:
	}
}

func (d *dispatcher) dispatchLoop() {

	pollSec := d.cfg.Dispatch.PollSec
	if pollSec <= 0 {
		pollSec = defaultPollSec
	}

	for {
		select {
		case <-d.stopCh:
			return
		case <-d.wakeCh:
			d.logger.Debug("Dispatcher woken up")
		case <-time.After(time.Duration(pollSec) * time.Second):
		}
		d.runCycleSafe()
	}
}

func (d *dispatcher) runCycleSafe() {

	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorf("Dispatch cycle panicked: %v", r)
			d.logger.Infof("Sleeping %d seconds after panic", panicSleepSec)
			time.Sleep(time.Second * panicSleepSec)
		}
	}()

	d.RunCycle()
}

// RunCycle claims and posts every due tweet, at most MaxParallel in flight at
// a time. Individual item failures are recorded and never abort the cycle.
func (d *dispatcher) RunCycle() {

	batch := d.cfg.Dispatch.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}
	maxParallel := d.cfg.Dispatch.MaxParallel
	if maxParallel <= 0 {
		maxParallel = defaultMaxParallel
	}

	now := d.clock.Now()
	due, total, err := d.repo.GetDueTweets(now, batch)
	if err != nil {
		d.logger.Errorf("Failed to get due tweets: %v", err)
		return
	}
	d.metrics.DueTweetCount(total)
	if len(due) == 0 {
		return
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxParallel)
	for _, t := range due {
		claimed, attempt := d.prepare(t, now)
		if !claimed {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(t *dal.ScheduledTweet, attempt int) {
			defer wg.Done()
			defer func() { <-sem }()
			d.post(t, attempt)
		}(t, attempt)
	}
	wg.Wait()
}

// prepare runs the pre-flight checks and the claim. The claim transaction is
// short; nothing is held while the platform call runs later.
func (d *dispatcher) prepare(t *dal.ScheduledTweet, now time.Time) (claimed bool, attempt int) {

	attempt = t.RetryCount + 1

	// Daily post quota. Consumed before claiming: if we then lose the claim
	// race, the slot is forfeit for this user/day, which errs on the safe
	// side of the limit.
	limit := d.cfg.Dispatch.DailyPostLimit
	if limit > 0 {
		loc, err := d.clock.Location(t.Timezone)
		if err != nil {
			d.logger.Warnf("Tweet %d has bad timezone '%s', using UTC: %v", t.Id, t.Timezone, err)
			loc = time.UTC
		}
		day := shared.DayKey(now, loc)
		ok, err := d.quota.TryConsume(t.UserId, dal.ActionPost, day, limit)
		if err != nil {
			d.logger.Errorf("Quota check failed for tweet %d: %v", t.Id, err)
			return false, 0
		}
		if !ok {
			until := shared.NextMidnight(now, loc)
			d.logger.Infof("Tweet %d deferred to %s: daily post quota exhausted", t.Id, until)
			if err = d.repo.DeferTweet(t.Id, until); err != nil {
				d.logger.Errorf("Failed to defer tweet %d: %v", t.Id, err)
			}
			return false, 0
		}
	}

	won, err := d.repo.ClaimTweet(t.Id, t.Version, now)
	if err != nil {
		d.logger.Errorf("Failed to claim tweet %d: %v", t.Id, err)
		return false, 0
	}
	if !won {
		// Another worker or a cancellation got there first; not an error
		d.logger.Debugf("Lost claim on tweet %d", t.Id)
		return false, 0
	}
	d.audit.TweetTransition(t.Id, t.Status, dal.TweetStatusPosting, attempt, "")
	return true, attempt
}

func (d *dispatcher) post(t *dal.ScheduledTweet, attempt int) {

	startedAt := d.clock.Now()

	// Defensive: refuse to hand invalid content to the platform
	var verr error
	if t.IsThread {
		verr = ValidateThread(t.ThreadContent)
	} else {
		verr = ValidatePost(t.Content)
	}
	if verr != nil {
		d.logger.Warnf("Tweet %d rejected before posting: %v", t.Id, verr)
		if _, err := d.recorder.TweetFailed(t, attempt, startedAt, verr); err != nil {
			d.logger.Errorf("Failed to record validation failure for tweet %d: %v", t.Id, err)
		}
		return
	}

	timeoutSec := d.cfg.Platform.TimeoutSec
	if timeoutSec <= 0 {
		timeoutSec = defaultPlatformTimeoutSec
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	var externalIds []string
	var callErr error
	if t.IsThread {
		externalIds, callErr = d.platform.PostThread(ctx, t.ThreadContent)
	} else {
		var id string
		id, callErr = d.platform.PostTweet(ctx, t.Content)
		if callErr == nil {
			externalIds = []string{id}
		}
	}

	if callErr == nil {
		if _, err := d.recorder.TweetPosted(t, attempt, startedAt, externalIds); err != nil {
			d.logger.Errorf("Failed to record posted outcome for tweet %d: %v", t.Id, err)
		}
		return
	}

	decision := Decide(t.RetryCount, t.MaxRetries, Classify(callErr), d.policy)
	if decision.Kind == OutcomeRetry {
		nextAt := d.clock.Now().Add(decision.Delay)
		if _, err := d.recorder.TweetRetrying(t, attempt, startedAt, nextAt, callErr); err != nil {
			d.logger.Errorf("Failed to record retry outcome for tweet %d: %v", t.Id, err)
		}
		return
	}
	if _, err := d.recorder.TweetFailed(t, attempt, startedAt, callErr); err != nil {
		d.logger.Errorf("Failed to record failed outcome for tweet %d: %v", t.Id, err)
	}
}

// Cancel honors a user's cancellation if the tweet is still waiting; an item
// already claimed into posting keeps whatever outcome its attempt produces.
func (d *dispatcher) Cancel(tweetId int64) (bool, error) {
	cancelled, err := d.repo.CancelTweet(tweetId)
	if err != nil {
		return false, err
	}
	if cancelled {
		d.metrics.TweetCancelled()
		d.audit.TweetTransition(tweetId, dal.TweetStatusPending, dal.TweetStatusCancelled, 0, "user cancel")
	}
	return cancelled, nil
}
