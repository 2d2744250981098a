package test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"tweet_pilot/dal"
	"tweet_pilot/logic"
)

func Test_ValidatePost_AcceptsPlainText(t *testing.T) {
	assert.NoError(t, logic.ValidatePost("Shipping the new release today. Changelog in the next post."))
	assert.NoError(t, logic.ValidatePost("Exactly at the limit: "+strings.Repeat("x", 258)))
	assert.NoError(t, logic.ValidatePost("Unicode counts runes, not bytes: "+strings.Repeat("ő", 247)))
}

func Test_ValidatePost_RejectsEmpty(t *testing.T) {
	assert.ErrorIs(t, logic.ValidatePost(""), logic.ErrEmptyContent)
	assert.ErrorIs(t, logic.ValidatePost("   \n\t "), logic.ErrEmptyContent)
}

func Test_ValidatePost_RejectsOverlong(t *testing.T) {
	assert.ErrorIs(t, logic.ValidatePost(strings.Repeat("x", 281)), logic.ErrContentTooLong)
	assert.ErrorIs(t, logic.ValidatePost(strings.Repeat("ő", 281)), logic.ErrContentTooLong)
}

func Test_ValidatePost_RejectsMarkup(t *testing.T) {
	assert.ErrorIs(t, logic.ValidatePost(`Click <a href="https://evil.example">here</a>`), logic.ErrMarkupContent)
	assert.ErrorIs(t, logic.ValidatePost("<script>alert(1)</script>"), logic.ErrMarkupContent)
	assert.ErrorIs(t, logic.ValidatePost("some <b>bold</b> claim"), logic.ErrMarkupContent)
}

func Test_ValidateThread(t *testing.T) {
	assert.NoError(t, logic.ValidateThread([]string{"part one", "part two"}))
	assert.ErrorIs(t, logic.ValidateThread(nil), logic.ErrEmptyContent)
	assert.ErrorIs(t, logic.ValidateThread([]string{"ok", ""}), logic.ErrEmptyContent)
	assert.ErrorIs(t, logic.ValidateThread([]string{"ok", strings.Repeat("x", 281)}), logic.ErrContentTooLong)

	long := make([]string, 26)
	for i := range long {
		long[i] = "post"
	}
	assert.ErrorIs(t, logic.ValidateThread(long), logic.ErrThreadTooLong)
}

func accountTargetReq(handle string) *dal.EngagementTarget {
	return &dal.EngagementTarget{
		TargetType:    dal.TargetTypeAccount,
		AccountHandle: handle,
		ShouldFollow:  true,
	}
}

func tweetTargetReq(tweetId string) *dal.EngagementTarget {
	return &dal.EngagementTarget{
		TargetType: dal.TargetTypeTweet,
		TweetId:    tweetId,
		ShouldLike: true,
	}
}

func Test_ValidateTarget_AcceptsMatchingFieldGroup(t *testing.T) {
	assert.NoError(t, logic.ValidateTarget(accountTargetReq("somebody")))
	assert.NoError(t, logic.ValidateTarget(tweetTargetReq("t-1")))

	byId := accountTargetReq("")
	byId.AccountId = "12345"
	assert.NoError(t, logic.ValidateTarget(byId))

	reply := tweetTargetReq("t-2")
	reply.ShouldReply = true
	reply.ReplyText = "Adding one thing to this."
	assert.NoError(t, logic.ValidateTarget(reply))
}

func Test_ValidateTarget_RejectsMixedFieldGroups(t *testing.T) {
	mixed := accountTargetReq("somebody")
	mixed.TweetId = "t-1"
	assert.ErrorIs(t, logic.ValidateTarget(mixed), logic.ErrMixedTargetFields)

	mixed = accountTargetReq("somebody")
	mixed.TweetAuthor = "somebody_else"
	assert.ErrorIs(t, logic.ValidateTarget(mixed), logic.ErrMixedTargetFields)

	mixed2 := tweetTargetReq("t-1")
	mixed2.AccountHandle = "somebody"
	assert.ErrorIs(t, logic.ValidateTarget(mixed2), logic.ErrMixedTargetFields)
}

func Test_ValidateTarget_RejectsMissingIdentity(t *testing.T) {
	assert.ErrorIs(t, logic.ValidateTarget(accountTargetReq("")), logic.ErrMissingTargetField)
	assert.ErrorIs(t, logic.ValidateTarget(tweetTargetReq("")), logic.ErrMissingTargetField)
	assert.ErrorIs(t, logic.ValidateTarget(&dal.EngagementTarget{TargetType: "hashtag"}), logic.ErrBadTargetType)
}

func Test_ValidateTarget_RejectsTweetActionsOnAccounts(t *testing.T) {
	liked := accountTargetReq("somebody")
	liked.ShouldLike = true
	assert.ErrorIs(t, logic.ValidateTarget(liked), logic.ErrActionNeedsTweet)

	replied := accountTargetReq("somebody")
	replied.ShouldReply = true
	replied.ReplyText = "hello"
	assert.ErrorIs(t, logic.ValidateTarget(replied), logic.ErrActionNeedsTweet)
}

func Test_ValidateTarget_RejectsActionlessAndTextlessReply(t *testing.T) {
	idle := accountTargetReq("somebody")
	idle.ShouldFollow = false
	assert.ErrorIs(t, logic.ValidateTarget(idle), logic.ErrNoActions)

	mute := tweetTargetReq("t-1")
	mute.ShouldReply = true
	assert.ErrorIs(t, logic.ValidateTarget(mute), logic.ErrReplyNeedsText)
}
