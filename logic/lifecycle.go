package logic

import (
	"tweet_pilot/dal"
)

// Transition validity lives here and nowhere else. The DAL enforces the
// critical ones with guarded updates; everything caller-initiated goes
// through these tables first.

var tweetTransitions = map[dal.TweetStatus][]dal.TweetStatus{
	dal.TweetStatusDraft:    {dal.TweetStatusPending, dal.TweetStatusCancelled},
	dal.TweetStatusPending:  {dal.TweetStatusPosting, dal.TweetStatusCancelled},
	dal.TweetStatusPosting:  {dal.TweetStatusPosted, dal.TweetStatusRetrying, dal.TweetStatusFailed},
	dal.TweetStatusRetrying: {dal.TweetStatusPosting, dal.TweetStatusCancelled},
}

// Strategy transitions are monotonic except for the pause/resume pair.
var strategyTransitions = map[dal.StrategyStatus][]dal.StrategyStatus{
	dal.StrategyStatusDraft:  {dal.StrategyStatusActive, dal.StrategyStatusCancelled},
	dal.StrategyStatusActive: {dal.StrategyStatusPaused, dal.StrategyStatusCompleted, dal.StrategyStatusCancelled},
	dal.StrategyStatusPaused: {dal.StrategyStatusActive, dal.StrategyStatusCompleted, dal.StrategyStatusCancelled},
}

func CanTweetTransition(from, to dal.TweetStatus) bool {
	for _, t := range tweetTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func CanStrategyTransition(from, to dal.StrategyStatus) bool {
	for _, t := range strategyTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}
