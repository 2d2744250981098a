package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tweet_pilot/dal"
	"tweet_pilot/logic"
)

func Test_TweetTransitions(t *testing.T) {
	// Allowed
	assert.True(t, logic.CanTweetTransition(dal.TweetStatusDraft, dal.TweetStatusPending))
	assert.True(t, logic.CanTweetTransition(dal.TweetStatusPending, dal.TweetStatusPosting))
	assert.True(t, logic.CanTweetTransition(dal.TweetStatusPending, dal.TweetStatusCancelled))
	assert.True(t, logic.CanTweetTransition(dal.TweetStatusPosting, dal.TweetStatusPosted))
	assert.True(t, logic.CanTweetTransition(dal.TweetStatusPosting, dal.TweetStatusRetrying))
	assert.True(t, logic.CanTweetTransition(dal.TweetStatusPosting, dal.TweetStatusFailed))
	assert.True(t, logic.CanTweetTransition(dal.TweetStatusRetrying, dal.TweetStatusPosting))
	assert.True(t, logic.CanTweetTransition(dal.TweetStatusRetrying, dal.TweetStatusCancelled))

	// An in-flight post cannot be cancelled
	assert.False(t, logic.CanTweetTransition(dal.TweetStatusPosting, dal.TweetStatusCancelled))

	// Terminal states stay terminal
	for _, from := range []dal.TweetStatus{dal.TweetStatusPosted, dal.TweetStatusFailed, dal.TweetStatusCancelled} {
		for _, to := range []dal.TweetStatus{dal.TweetStatusDraft, dal.TweetStatusPending, dal.TweetStatusPosting,
			dal.TweetStatusRetrying, dal.TweetStatusPosted, dal.TweetStatusFailed, dal.TweetStatusCancelled} {
			assert.False(t, logic.CanTweetTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func Test_StrategyTransitions(t *testing.T) {
	assert.True(t, logic.CanStrategyTransition(dal.StrategyStatusDraft, dal.StrategyStatusActive))
	assert.True(t, logic.CanStrategyTransition(dal.StrategyStatusActive, dal.StrategyStatusPaused))
	assert.True(t, logic.CanStrategyTransition(dal.StrategyStatusPaused, dal.StrategyStatusActive))
	assert.True(t, logic.CanStrategyTransition(dal.StrategyStatusActive, dal.StrategyStatusCompleted))
	assert.True(t, logic.CanStrategyTransition(dal.StrategyStatusPaused, dal.StrategyStatusCompleted))
	assert.True(t, logic.CanStrategyTransition(dal.StrategyStatusActive, dal.StrategyStatusCancelled))

	assert.False(t, logic.CanStrategyTransition(dal.StrategyStatusDraft, dal.StrategyStatusPaused))
	assert.False(t, logic.CanStrategyTransition(dal.StrategyStatusCompleted, dal.StrategyStatusActive))
	assert.False(t, logic.CanStrategyTransition(dal.StrategyStatusCancelled, dal.StrategyStatusActive))
}
