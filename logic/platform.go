package logic

import (
	"context"
	"errors"
	"fmt"
	"net"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_platform.go -package mocks tweet_pilot/logic IPlatformClient

// IPlatformClient is the contract the core requires of the social platform.
// The wire protocol behind it is not our business; errors come back already
// carrying enough to classify them.
type IPlatformClient interface {
	PostTweet(ctx context.Context, content string) (externalId string, err error)
	PostThread(ctx context.Context, contents []string) (externalIds []string, err error)
	Follow(ctx context.Context, accountId string) error
	Unfollow(ctx context.Context, accountId string) error
	Like(ctx context.Context, tweetId string) error
	Unlike(ctx context.Context, tweetId string) error
	Retweet(ctx context.Context, tweetId string) error
	Unretweet(ctx context.Context, tweetId string) error
	Reply(ctx context.Context, tweetId, text string) (externalId string, err error)
}

type PlatformError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Class buckets an HTTP-like status into the retry taxonomy: rate limits and
// server-side trouble are transient, every other 4xx is permanent.
func (e *PlatformError) Class() FailureClass {
	if e.StatusCode == 429 || e.StatusCode >= 500 {
		return FailureTransient
	}
	if e.StatusCode >= 400 {
		return FailurePermanent
	}
	return FailureTransient
}

// Classify places any error from a platform call into the taxonomy.
// Timeouts and unknown network trouble count as transient.
func Classify(err error) FailureClass {
	var perr *PlatformError
	if errors.As(err, &perr) {
		return perr.Class()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTransient
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return FailureTransient
	}
	return FailureTransient
}
