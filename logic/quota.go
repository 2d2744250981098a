package logic

import (
	"tweet_pilot/dal"
	"tweet_pilot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_quota.go -package mocks tweet_pilot/logic IQuotaTracker

// IQuotaTracker is the per-user, per-day check-and-increment for rate-limited
// action types. The day key is the caller's local calendar date; a new date
// simply starts a new row at zero, so there is no reset job.
type IQuotaTracker interface {
	TryConsume(userId int64, action dal.ActionType, day string, limit int) (bool, error)
}

type quotaTracker struct {
	logger  shared.ILogger
	repo    dal.IRepo
	metrics IMetrics
	audit   IAuditSink
}

func NewQuotaTracker(logger shared.ILogger, repo dal.IRepo, metrics IMetrics, audit IAuditSink) IQuotaTracker {
	return &quotaTracker{logger, repo, metrics, audit}
}

func (qt *quotaTracker) TryConsume(userId int64, action dal.ActionType, day string, limit int) (bool, error) {
	ok, err := qt.repo.TryConsumeQuota(userId, action, day, limit)
	if err != nil {
		return false, err
	}
	qt.audit.QuotaEvent(userId, action, day, ok)
	if !ok {
		qt.metrics.QuotaDenied(string(action))
	}
	return ok, nil
}
