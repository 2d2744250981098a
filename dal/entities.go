package dal

import (
	"time"
)

type TweetStatus string

const (
	TweetStatusDraft     TweetStatus = "draft"
	TweetStatusPending   TweetStatus = "pending"
	TweetStatusPosting   TweetStatus = "posting"
	TweetStatusRetrying  TweetStatus = "retrying"
	TweetStatusPosted    TweetStatus = "posted"
	TweetStatusFailed    TweetStatus = "failed"
	TweetStatusCancelled TweetStatus = "cancelled"
)

type StrategyStatus string

const (
	StrategyStatusDraft     StrategyStatus = "draft"
	StrategyStatusActive    StrategyStatus = "active"
	StrategyStatusPaused    StrategyStatus = "paused"
	StrategyStatusCompleted StrategyStatus = "completed"
	StrategyStatusCancelled StrategyStatus = "cancelled"
)

type TargetStatus string

const (
	TargetStatusPending   TargetStatus = "pending"
	TargetStatusCompleted TargetStatus = "completed"
	TargetStatusFailed    TargetStatus = "failed"
	TargetStatusSkipped   TargetStatus = "skipped"
)

type TargetType string

const (
	TargetTypeAccount TargetType = "account"
	TargetTypeTweet   TargetType = "tweet"
)

type ActionType string

const (
	ActionPost      ActionType = "post"
	ActionFollow    ActionType = "follow"
	ActionUnfollow  ActionType = "unfollow"
	ActionLike      ActionType = "like"
	ActionUnlike    ActionType = "unlike"
	ActionRetweet   ActionType = "retweet"
	ActionUnretweet ActionType = "unretweet"
	ActionReply     ActionType = "reply"
)

type ScheduledTweet struct {
	Id            int64
	UserId        int64
	Content       string   // single-tweet text; empty for threads
	ThreadContent []string // ordered posts; set iff IsThread
	IsThread      bool
	ScheduledFor  time.Time
	Timezone      string // IANA name the user scheduled in
	Status        TweetStatus
	RetryCount    int
	MaxRetries    int
	NextAttemptAt time.Time // equals ScheduledFor until the first retry
	PostedAt      *time.Time
	ExternalIds   []string // platform post id(s); set iff posted
	LastError     string
	LastAttemptAt *time.Time
	ContentHash   int64
	Version       int
	CreatedAt     time.Time
	DeletedAt     *time.Time
}

type TweetExecutionLog struct {
	Id           int64
	TweetId      int64
	Attempt      int // 1-based, contiguous per tweet
	Status       TweetStatus
	StartedAt    time.Time
	FinishedAt   time.Time
	Success      bool
	ErrorCode    string
	ErrorMessage string
	Response     string
}

type GrowthStrategy struct {
	Id                   int64
	UserId               int64
	Status               StrategyStatus
	StartDate            time.Time
	EndDate              time.Time
	Timezone             string
	HoursStart           int // first engagement hour, local, inclusive
	HoursEnd             int // last engagement hour, local, exclusive
	DailyFollows         int
	DailyUnfollows       int
	DailyLikes           int
	DailyRetweets        int
	DailyReplies         int
	Keywords             []string
	TargetAccounts       []string
	AvoidAccounts        []string
	RequireReplyApproval bool
	TotalFollows         int
	TotalUnfollows       int
	TotalLikes           int
	TotalRetweets        int
	TotalReplies         int
	FollowerGain         int
	Version              int
	CreatedAt            time.Time
}

// DailyLimit returns the strategy's per-day cap for one action type.
func (s *GrowthStrategy) DailyLimit(action ActionType) int {
	switch action {
	case ActionFollow:
		return s.DailyFollows
	case ActionUnfollow:
		return s.DailyUnfollows
	case ActionLike:
		return s.DailyLikes
	case ActionRetweet:
		return s.DailyRetweets
	case ActionReply:
		return s.DailyReplies
	}
	return 0
}

type EngagementTarget struct {
	Id             int64
	StrategyId     int64
	TargetType     TargetType
	AccountHandle  string // set iff account target
	AccountId      string
	TweetId        string // set iff tweet target
	TweetAuthor    string
	ShouldFollow   bool
	ShouldLike     bool
	ShouldRetweet  bool
	ShouldReply    bool
	ReplyText      string
	ReplyApproved  bool
	Status         TargetStatus
	ScheduledFor   time.Time
	RelevanceScore float64 // 0..1
	Priority       int     // higher engages first
	LastError      string
	IdentityHash   int64
	Version        int
	CreatedAt      time.Time
}

type EngagementLog struct {
	Id           int64
	StrategyId   int64
	TargetId     int64
	UserId       int64
	Action       ActionType
	Success      bool
	ExternalId   string
	ErrorMessage string
	CreatedAt    time.Time
}

type DailyProgress struct {
	Id            int64
	StrategyId    int64
	Day           string // local calendar date, 2006-01-02
	Follows       int
	Unfollows     int
	Likes         int
	Retweets      int
	Replies       int
	FollowerCount int // snapshot for reporting, not scheduling
}
