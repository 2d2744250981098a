package test

import (
	"time"

	"go.uber.org/mock/gomock"
	"tweet_pilot/test/mocks"
)

func setupDummyLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func setupDummyMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().TweetPosted().AnyTimes()
	mockMetrics.EXPECT().TweetRetried().AnyTimes()
	mockMetrics.EXPECT().TweetFailed().AnyTimes()
	mockMetrics.EXPECT().TweetCancelled().AnyTimes()
	mockMetrics.EXPECT().DueTweetCount(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().EngagementDone(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().EngagementFailed(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().TargetSkipped(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().QuotaDenied(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ActiveStrategyCount(gomock.Any()).AnyTimes()
}

func setupDummyAudit(mockAudit *mocks.MockIAuditSink) {
	mockAudit.EXPECT().TweetTransition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockAudit.EXPECT().StrategyTransition(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockAudit.EXPECT().TargetOutcome(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockAudit.EXPECT().QuotaEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func checkTime(want time.Time) func(x any) bool {
	return func(x any) bool {
		val, ok := x.(time.Time)
		if !ok {
			return false
		}
		return val.Equal(want)
	}
}
