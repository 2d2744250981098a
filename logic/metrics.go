package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"time"
	"tweet_pilot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks tweet_pilot/logic IMetrics

type IMetrics interface {
	StartPlatformRequest(label string) IRequestObserver
	TweetPosted()
	TweetRetried()
	TweetFailed()
	TweetCancelled()
	DueTweetCount(count int)
	EngagementDone(action string)
	EngagementFailed(action string)
	TargetSkipped(reason string)
	QuotaDenied(action string)
	ActiveStrategyCount(count int)
	ServiceStarted()
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg               *shared.Config
	platformRequests  *prometheus.HistogramVec
	tweetsPosted      prometheus.Counter
	tweetsRetried     prometheus.Counter
	tweetsFailed      prometheus.Counter
	tweetsCancelled   prometheus.Counter
	dueTweets         prometheus.Gauge
	engagementsDone   *prometheus.CounterVec
	engagementsFailed *prometheus.CounterVec
	targetsSkipped    *prometheus.CounterVec
	quotaDenied       *prometheus.CounterVec
	activeStrategies  prometheus.Gauge
	serviceStarted    prometheus.Counter
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.platformRequests = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "platform_requests_duration",
		Help: "Duration in seconds of platform API calls made.",
	}, []string{"label"})
	prometheus.Register(res.platformRequests)

	res.tweetsPosted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweets_posted",
		Help: "Number of scheduled tweets posted",
	})
	prometheus.Register(res.tweetsPosted)

	res.tweetsRetried = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweets_retried",
		Help: "Number of posting attempts scheduled for retry",
	})
	prometheus.Register(res.tweetsRetried)

	res.tweetsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweets_failed",
		Help: "Number of scheduled tweets that reached failed",
	})
	prometheus.Register(res.tweetsFailed)

	res.tweetsCancelled = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweets_cancelled",
		Help: "Number of scheduled tweets cancelled by users",
	})
	prometheus.Register(res.tweetsCancelled)

	res.dueTweets = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "due_tweet_count",
		Help: "Tweets currently due for dispatch",
	})
	prometheus.Register(res.dueTweets)

	res.engagementsDone = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "engagements_done",
		Help: "Successful engagement actions",
	}, []string{"action"})
	prometheus.Register(res.engagementsDone)

	res.engagementsFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "engagements_failed",
		Help: "Failed engagement actions",
	}, []string{"action"})
	prometheus.Register(res.engagementsFailed)

	res.targetsSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "targets_skipped",
		Help: "Engagement targets skipped",
	}, []string{"reason"})
	prometheus.Register(res.targetsSkipped)

	res.quotaDenied = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quota_denied",
		Help: "Action attempts denied by the daily quota",
	}, []string{"action"})
	prometheus.Register(res.quotaDenied)

	res.activeStrategies = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "active_strategy_count",
		Help: "Strategies considered in the last cycle",
	})
	prometheus.Register(res.activeStrategies)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartPlatformRequest(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.platformRequests}
}

func (m *metrics) TweetPosted() {
	m.tweetsPosted.Add(1)
}

func (m *metrics) TweetRetried() {
	m.tweetsRetried.Add(1)
}

func (m *metrics) TweetFailed() {
	m.tweetsFailed.Add(1)
}

func (m *metrics) TweetCancelled() {
	m.tweetsCancelled.Add(1)
}

func (m *metrics) DueTweetCount(count int) {
	m.dueTweets.Set(float64(count))
}

func (m *metrics) EngagementDone(action string) {
	m.engagementsDone.WithLabelValues(action).Add(1)
}

func (m *metrics) EngagementFailed(action string) {
	m.engagementsFailed.WithLabelValues(action).Add(1)
}

func (m *metrics) TargetSkipped(reason string) {
	m.targetsSkipped.WithLabelValues(reason).Add(1)
}

func (m *metrics) QuotaDenied(action string) {
	m.quotaDenied.WithLabelValues(action).Add(1)
}

func (m *metrics) ActiveStrategyCount(count int) {
	m.activeStrategies.Set(float64(count))
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}
