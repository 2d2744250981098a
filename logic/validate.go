package logic

import (
	"errors"
	"github.com/microcosm-cc/bluemonday"
	"html"
	"strings"
	"tweet_pilot/dal"
	"unicode/utf8"
)

const maxPostRunes = 280
const maxThreadLen = 25

var strictPolicy = bluemonday.StrictPolicy()

var (
	ErrEmptyContent   = errors.New("content is empty")
	ErrContentTooLong = errors.New("content exceeds platform length limit")
	ErrMarkupContent  = errors.New("content contains markup")
	ErrThreadTooLong  = errors.New("thread has too many posts")
)

var (
	ErrBadTargetType      = errors.New("target type must be account or tweet")
	ErrMixedTargetFields  = errors.New("account and tweet identity fields cannot both be populated")
	ErrMissingTargetField = errors.New("target is missing its identifying field")
	ErrActionNeedsTweet   = errors.New("like, retweet and reply need a tweet target")
	ErrNoActions          = errors.New("target requests no actions")
	ErrReplyNeedsText     = errors.New("reply action needs reply text")
)

// ValidateTarget enforces the intake contract: exactly one identity field
// group is populated, matching the target type, and every requested action is
// executable on that type. Account targets can only be followed; anything
// tweet-directed needs a tweet target.
func ValidateTarget(t *dal.EngagementTarget) error {
	switch t.TargetType {
	case dal.TargetTypeAccount:
		if t.TweetId != "" || t.TweetAuthor != "" {
			return ErrMixedTargetFields
		}
		if t.AccountHandle == "" && t.AccountId == "" {
			return ErrMissingTargetField
		}
		if t.ShouldLike || t.ShouldRetweet || t.ShouldReply {
			return ErrActionNeedsTweet
		}
	case dal.TargetTypeTweet:
		if t.AccountHandle != "" || t.AccountId != "" {
			return ErrMixedTargetFields
		}
		if t.TweetId == "" {
			return ErrMissingTargetField
		}
	default:
		return ErrBadTargetType
	}
	if !t.ShouldFollow && !t.ShouldLike && !t.ShouldRetweet && !t.ShouldReply {
		return ErrNoActions
	}
	if t.ShouldReply && t.ReplyText == "" {
		return ErrReplyNeedsText
	}
	return nil
}

// ValidatePost is the last line of defense before content reaches the
// platform client. Upstream validates too; we refuse rather than truncate.
func ValidatePost(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyContent
	}
	if utf8.RuneCountInString(text) > maxPostRunes {
		return ErrContentTooLong
	}
	// StrictPolicy strips all tags; anything lost to it was markup
	sanitized := html.UnescapeString(strictPolicy.Sanitize(text))
	if sanitized != text {
		return ErrMarkupContent
	}
	return nil
}

func ValidateThread(contents []string) error {
	if len(contents) == 0 {
		return ErrEmptyContent
	}
	if len(contents) > maxThreadLen {
		return ErrThreadTooLong
	}
	for _, text := range contents {
		if err := ValidatePost(text); err != nil {
			return err
		}
	}
	return nil
}
