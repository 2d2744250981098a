package test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"tweet_pilot/logic"
)

var testPolicy = logic.BackoffPolicy{
	Base: 60 * time.Second,
	Max:  960 * time.Second,
}

func Test_Backoff_DoublesUpToCeiling(t *testing.T) {
	assert.Equal(t, 60*time.Second, testPolicy.Delay(1))
	assert.Equal(t, 120*time.Second, testPolicy.Delay(2))
	assert.Equal(t, 240*time.Second, testPolicy.Delay(3))
	assert.Equal(t, 480*time.Second, testPolicy.Delay(4))
	assert.Equal(t, 960*time.Second, testPolicy.Delay(5))
	assert.Equal(t, 960*time.Second, testPolicy.Delay(6))
	assert.Equal(t, 960*time.Second, testPolicy.Delay(20))
}

func Test_Backoff_NonDecreasing(t *testing.T) {
	prev := time.Duration(0)
	for i := 1; i <= 12; i++ {
		d := testPolicy.Delay(i)
		assert.GreaterOrEqual(t, d, prev, "delay shrank at retry %d", i)
		prev = d
	}
}

func Test_Decide_PermanentAlwaysFails(t *testing.T) {
	d := logic.Decide(0, 5, logic.FailurePermanent, testPolicy)
	assert.Equal(t, logic.OutcomeFail, d.Kind)
}

func Test_Decide_TransientRetriesUntilBudgetSpent(t *testing.T) {
	// Three retries allowed: failures at counts 0, 1, 2 retry; at 3 it's over
	for count := 0; count < 3; count++ {
		d := logic.Decide(count, 3, logic.FailureTransient, testPolicy)
		assert.Equal(t, logic.OutcomeRetry, d.Kind, "count %d", count)
		assert.Greater(t, d.Delay, time.Duration(0))
	}
	d := logic.Decide(3, 3, logic.FailureTransient, testPolicy)
	assert.Equal(t, logic.OutcomeFail, d.Kind)
}

func Test_Decide_ZeroRetriesFailsFirstTransient(t *testing.T) {
	d := logic.Decide(0, 0, logic.FailureTransient, testPolicy)
	assert.Equal(t, logic.OutcomeFail, d.Kind)
}

func Test_Classify_StatusCodes(t *testing.T) {
	cases := []struct {
		status int
		want   logic.FailureClass
	}{
		{400, logic.FailurePermanent},
		{401, logic.FailurePermanent},
		{403, logic.FailurePermanent},
		{404, logic.FailurePermanent},
		{422, logic.FailurePermanent},
		{429, logic.FailureTransient},
		{500, logic.FailureTransient},
		{502, logic.FailureTransient},
		{503, logic.FailureTransient},
	}
	for _, c := range cases {
		err := &logic.PlatformError{StatusCode: c.status, Code: "x", Message: "y"}
		assert.Equal(t, c.want, logic.Classify(err), "status %d", c.status)
	}
}
