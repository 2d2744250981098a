package logic

import (
	"github.com/google/uuid"
	"tweet_pilot/dal"
	"tweet_pilot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_audit.go -package mocks tweet_pilot/logic IAuditSink

// IAuditSink receives structured records of status transitions and quota
// events. Strictly fire-and-forget: implementations must never return the
// favor with an error, and the core never waits on them.
type IAuditSink interface {
	TweetTransition(tweetId int64, from, to dal.TweetStatus, attempt int, detail string)
	StrategyTransition(strategyId int64, from, to dal.StrategyStatus)
	TargetOutcome(strategyId, targetId int64, status dal.TargetStatus, detail string)
	QuotaEvent(userId int64, action dal.ActionType, day string, allowed bool)
}

// logAuditSink renders audit records as structured log lines. A real
// deployment can swap in a sink that ships them elsewhere; the interface is
// the contract, not the destination.
type logAuditSink struct {
	logger shared.ILogger
}

func NewAuditSink(logger shared.ILogger) IAuditSink {
	return &logAuditSink{logger}
}

func (as *logAuditSink) TweetTransition(tweetId int64, from, to dal.TweetStatus, attempt int, detail string) {
	as.logger.Info("audit tweet transition",
		"event_id", uuid.NewString(), "tweet_id", tweetId, "from", from, "to", to,
		"attempt", attempt, "detail", detail)
}

func (as *logAuditSink) StrategyTransition(strategyId int64, from, to dal.StrategyStatus) {
	as.logger.Info("audit strategy transition",
		"event_id", uuid.NewString(), "strategy_id", strategyId, "from", from, "to", to)
}

func (as *logAuditSink) TargetOutcome(strategyId, targetId int64, status dal.TargetStatus, detail string) {
	as.logger.Info("audit target outcome",
		"event_id", uuid.NewString(), "strategy_id", strategyId, "target_id", targetId,
		"status", status, "detail", detail)
}

func (as *logAuditSink) QuotaEvent(userId int64, action dal.ActionType, day string, allowed bool) {
	as.logger.Debug("audit quota event",
		"event_id", uuid.NewString(), "user_id", userId, "action", action, "day", day,
		"allowed", allowed)
}
