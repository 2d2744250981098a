package logic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"golang.org/x/time/rate"
	"io"
	"net/http"
	"time"
	"tweet_pilot/shared"
)

const defaultPlatformTimeoutSec = 10

// httpPlatformClient talks to the platform gateway over plain JSON/HTTP.
// Every call is paced by a shared limiter and bounded by the configured
// timeout; responses >= 300 become PlatformError so the retry controller
// can classify them.
type httpPlatformClient struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics IMetrics
	limiter *rate.Limiter
	client  http.Client
}

func NewPlatformClient(cfg *shared.Config, logger shared.ILogger, metrics IMetrics) IPlatformClient {

	timeoutSec := cfg.Platform.TimeoutSec
	if timeoutSec <= 0 {
		timeoutSec = defaultPlatformTimeoutSec
	}
	rps := cfg.Platform.Rps
	if rps <= 0 {
		rps = 2
	}
	burst := cfg.Platform.Burst
	if burst <= 0 {
		burst = 5
	}

	return &httpPlatformClient{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		client:  http.Client{Timeout: time.Second * time.Duration(timeoutSec)},
	}
}

type idResponse struct {
	Id string `json:"id"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (pc *httpPlatformClient) call(ctx context.Context, label, method, path string, body any, out any) error {

	if err := pc.limiter.Wait(ctx); err != nil {
		return err
	}

	obs := pc.metrics.StartPlatformRequest(label)
	defer obs.Finish()

	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, pc.cfg.Platform.BaseUrl+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+pc.cfg.Secrets.PlatformToken)

	resp, err := pc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 300 {
		perr := &PlatformError{StatusCode: resp.StatusCode, Message: resp.Status}
		var eresp errorResponse
		if json.Unmarshal(respBody, &eresp) == nil && eresp.Message != "" {
			perr.Code = eresp.Code
			perr.Message = eresp.Message
		}
		pc.logger.Warnf("Platform %s failed: %v", label, perr)
		return perr
	}

	if out != nil {
		if err = json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unexpected platform response for %s: %w", label, err)
		}
	}
	return nil
}

func (pc *httpPlatformClient) PostTweet(ctx context.Context, content string) (string, error) {
	var res idResponse
	body := map[string]string{"text": content}
	if err := pc.call(ctx, "post_tweet", "POST", "/tweets", body, &res); err != nil {
		return "", err
	}
	return res.Id, nil
}

func (pc *httpPlatformClient) PostThread(ctx context.Context, contents []string) ([]string, error) {
	// The gateway posts the whole chain atomically; we never end up with a
	// half-published thread to reconcile.
	var res struct {
		Ids []string `json:"ids"`
	}
	body := map[string][]string{"texts": contents}
	if err := pc.call(ctx, "post_thread", "POST", "/threads", body, &res); err != nil {
		return nil, err
	}
	return res.Ids, nil
}

func (pc *httpPlatformClient) Follow(ctx context.Context, accountId string) error {
	body := map[string]string{"target": accountId}
	return pc.call(ctx, "follow", "POST", "/follows", body, nil)
}

func (pc *httpPlatformClient) Unfollow(ctx context.Context, accountId string) error {
	return pc.call(ctx, "unfollow", "DELETE", "/follows/"+accountId, nil, nil)
}

func (pc *httpPlatformClient) Like(ctx context.Context, tweetId string) error {
	body := map[string]string{"tweet_id": tweetId}
	return pc.call(ctx, "like", "POST", "/likes", body, nil)
}

func (pc *httpPlatformClient) Unlike(ctx context.Context, tweetId string) error {
	return pc.call(ctx, "unlike", "DELETE", "/likes/"+tweetId, nil, nil)
}

func (pc *httpPlatformClient) Retweet(ctx context.Context, tweetId string) error {
	body := map[string]string{"tweet_id": tweetId}
	return pc.call(ctx, "retweet", "POST", "/retweets", body, nil)
}

func (pc *httpPlatformClient) Unretweet(ctx context.Context, tweetId string) error {
	return pc.call(ctx, "unretweet", "DELETE", "/retweets/"+tweetId, nil, nil)
}

func (pc *httpPlatformClient) Reply(ctx context.Context, tweetId, text string) (string, error) {
	var res idResponse
	body := map[string]string{"tweet_id": tweetId, "text": text}
	if err := pc.call(ctx, "reply", "POST", "/replies", body, &res); err != nil {
		return "", err
	}
	return res.Id, nil
}
