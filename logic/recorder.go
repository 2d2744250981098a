package logic

import (
	"errors"
	"time"
	"tweet_pilot/dal"
	"tweet_pilot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_recorder.go -package mocks tweet_pilot/logic IRecorder

// IRecorder is the single door to the append-only logs. Every write here is
// paired by the DAL with the owning entity's status or counter update, so a
// log row claiming success always has a matching terminal status. Audit and
// metrics fan out from here, fire-and-forget.
type IRecorder interface {
	TweetPosted(t *dal.ScheduledTweet, attempt int, startedAt time.Time, externalIds []string) (applied bool, err error)
	TweetRetrying(t *dal.ScheduledTweet, attempt int, startedAt, nextAttemptAt time.Time, cause error) (applied bool, err error)
	TweetFailed(t *dal.ScheduledTweet, attempt int, startedAt time.Time, cause error) (applied bool, err error)
	Engagement(s *dal.GrowthStrategy, t *dal.EngagementTarget, action dal.ActionType, externalId string, cause error, day string) error
}

type recorder struct {
	logger  shared.ILogger
	repo    dal.IRepo
	clock   shared.IClock
	metrics IMetrics
	audit   IAuditSink
}

func NewRecorder(logger shared.ILogger, repo dal.IRepo, clock shared.IClock,
	metrics IMetrics, audit IAuditSink) IRecorder {

	return &recorder{logger, repo, clock, metrics, audit}
}

func errParts(cause error) (code, message string) {
	if cause == nil {
		return "", ""
	}
	var perr *PlatformError
	if errors.As(cause, &perr) {
		return perr.Code, perr.Message
	}
	return "", cause.Error()
}

func (rc *recorder) TweetPosted(t *dal.ScheduledTweet, attempt int, startedAt time.Time,
	externalIds []string) (applied bool, err error) {

	now := rc.clock.Now()
	execLog := &dal.TweetExecutionLog{
		TweetId:    t.Id,
		Attempt:    attempt,
		Status:     dal.TweetStatusPosted,
		StartedAt:  startedAt,
		FinishedAt: now,
		Success:    true,
	}
	applied, err = rc.repo.MarkTweetPosted(t.Id, externalIds, now, execLog)
	if err != nil {
		return false, err
	}
	if applied {
		rc.metrics.TweetPosted()
		rc.audit.TweetTransition(t.Id, dal.TweetStatusPosting, dal.TweetStatusPosted, attempt, "")
	} else {
		// Lost to a concurrent cancellation; the post happened, the log row
		// says so, but the user's cancel stands.
		rc.logger.Warnf("Tweet %d: posted outcome not applied, cancellation won", t.Id)
	}
	return applied, nil
}

func (rc *recorder) TweetRetrying(t *dal.ScheduledTweet, attempt int, startedAt, nextAttemptAt time.Time,
	cause error) (applied bool, err error) {

	code, message := errParts(cause)
	execLog := &dal.TweetExecutionLog{
		TweetId:      t.Id,
		Attempt:      attempt,
		Status:       dal.TweetStatusRetrying,
		StartedAt:    startedAt,
		FinishedAt:   rc.clock.Now(),
		Success:      false,
		ErrorCode:    code,
		ErrorMessage: message,
	}
	applied, err = rc.repo.MarkTweetRetrying(t.Id, attempt, nextAttemptAt, message, execLog)
	if err != nil {
		return false, err
	}
	if applied {
		rc.metrics.TweetRetried()
		rc.audit.TweetTransition(t.Id, dal.TweetStatusPosting, dal.TweetStatusRetrying, attempt, message)
	}
	return applied, nil
}

func (rc *recorder) TweetFailed(t *dal.ScheduledTweet, attempt int, startedAt time.Time,
	cause error) (applied bool, err error) {

	code, message := errParts(cause)
	execLog := &dal.TweetExecutionLog{
		TweetId:      t.Id,
		Attempt:      attempt,
		Status:       dal.TweetStatusFailed,
		StartedAt:    startedAt,
		FinishedAt:   rc.clock.Now(),
		Success:      false,
		ErrorCode:    code,
		ErrorMessage: message,
	}
	applied, err = rc.repo.MarkTweetFailed(t.Id, message, execLog)
	if err != nil {
		return false, err
	}
	if applied {
		rc.metrics.TweetFailed()
		rc.audit.TweetTransition(t.Id, dal.TweetStatusPosting, dal.TweetStatusFailed, attempt, message)
	}
	return applied, nil
}

func (rc *recorder) Engagement(s *dal.GrowthStrategy, t *dal.EngagementTarget, action dal.ActionType,
	externalId string, cause error, day string) error {

	_, message := errParts(cause)
	execLog := &dal.EngagementLog{
		StrategyId:   s.Id,
		TargetId:     t.Id,
		UserId:       s.UserId,
		Action:       action,
		Success:      cause == nil,
		ExternalId:   externalId,
		ErrorMessage: message,
		CreatedAt:    rc.clock.Now(),
	}
	if err := rc.repo.RecordEngagement(execLog, day); err != nil {
		return err
	}
	if cause == nil {
		rc.metrics.EngagementDone(string(action))
	} else {
		rc.metrics.EngagementFailed(string(action))
	}
	return nil
}
