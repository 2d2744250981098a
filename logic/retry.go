package logic

import (
	"time"
)

type FailureClass int

const (
	// FailureTransient is expected to succeed on resubmission: timeouts,
	// platform rate limits, 5xx.
	FailureTransient FailureClass = iota
	// FailurePermanent will not succeed without intervention: bad content,
	// revoked auth, suspended account.
	FailurePermanent
)

type OutcomeKind int

const (
	OutcomeRetry OutcomeKind = iota
	OutcomeFail
)

type Decision struct {
	Kind  OutcomeKind
	Delay time.Duration // set for OutcomeRetry
}

// BackoffPolicy computes the wait before the next attempt. Exponential with
// a ceiling; non-decreasing in the retry count.
type BackoffPolicy struct {
	Base time.Duration
	Max  time.Duration
}

func (p BackoffPolicy) Delay(retryCount int) time.Duration {
	if retryCount < 1 {
		retryCount = 1
	}
	delay := p.Base
	for i := 1; i < retryCount; i++ {
		delay *= 2
		if delay >= p.Max {
			return p.Max
		}
	}
	if delay > p.Max {
		return p.Max
	}
	return delay
}

// Decide maps one failed attempt to what happens next. retryCount is the
// tweet's count before this failure is recorded; a retry will run as attempt
// retryCount+2.
func Decide(retryCount, maxRetries int, class FailureClass, policy BackoffPolicy) Decision {
	if class == FailurePermanent {
		return Decision{Kind: OutcomeFail}
	}
	if retryCount >= maxRetries {
		return Decision{Kind: OutcomeFail}
	}
	return Decision{Kind: OutcomeRetry, Delay: policy.Delay(retryCount + 1)}
}
