package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"tweet_pilot/dal"
	"tweet_pilot/logic"
	"tweet_pilot/shared"
)

type apiHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	repo       dal.IRepo
	clock      shared.IClock
	dispatcher logic.IDispatcher
	strategies logic.IStrategyRunner
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	clock shared.IClock,
	dispatcher logic.IDispatcher,
	strategies logic.IStrategyRunner,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		repo:       repo,
		clock:      clock,
		dispatcher: dispatcher,
		strategies: strategies,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/tweets", func(w http.ResponseWriter, r *http.Request) { hg.postTweets(w, r) }},
		{"GET", "/tweets/{id}", func(w http.ResponseWriter, r *http.Request) { hg.getTweet(w, r) }},
		{"GET", "/tweets/{id}/logs", func(w http.ResponseWriter, r *http.Request) { hg.getTweetLogs(w, r) }},
		{"POST", "/tweets/{id}/cancel", func(w http.ResponseWriter, r *http.Request) { hg.postTweetCancel(w, r) }},
		{"POST", "/strategies", func(w http.ResponseWriter, r *http.Request) { hg.postStrategies(w, r) }},
		{"POST", "/strategies/{id}/targets", func(w http.ResponseWriter, r *http.Request) { hg.postTargets(w, r) }},
		{"POST", "/strategies/{id}/pause", func(w http.ResponseWriter, r *http.Request) { hg.postStrategyPause(w, r) }},
		{"POST", "/strategies/{id}/resume", func(w http.ResponseWriter, r *http.Request) { hg.postStrategyResume(w, r) }},
		{"GET", "/strategies/{id}/progress", func(w http.ResponseWriter, r *http.Request) { hg.getStrategyProgress(w, r) }},
		{"DELETE", "/strategies/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deleteStrategy(w, r) }},
		{"DELETE", "/users/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deleteUser(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func pathId(r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type scheduleTweetReq struct {
	UserId        int64    `json:"user_id"`
	Content       string   `json:"content"`
	ThreadContent []string `json:"thread_content"`
	ScheduledFor  string   `json:"scheduled_for"` // RFC 3339
	Timezone      string   `json:"timezone"`
	MaxRetries    *int     `json:"max_retries"`
}

type tweetResp struct {
	Id            int64    `json:"id"`
	UserId        int64    `json:"user_id"`
	Content       string   `json:"content,omitempty"`
	ThreadContent []string `json:"thread_content,omitempty"`
	IsThread      bool     `json:"is_thread"`
	ScheduledFor  string   `json:"scheduled_for"`
	Timezone      string   `json:"timezone"`
	Status        string   `json:"status"`
	RetryCount    int      `json:"retry_count"`
	MaxRetries    int      `json:"max_retries"`
	NextAttemptAt string   `json:"next_attempt_at"`
	PostedAt      string   `json:"posted_at,omitempty"`
	ExternalIds   []string `json:"external_ids,omitempty"`
	LastError     string   `json:"last_error,omitempty"`
}

func tweetToResp(t *dal.ScheduledTweet) *tweetResp {
	res := tweetResp{
		Id:            t.Id,
		UserId:        t.UserId,
		Content:       t.Content,
		ThreadContent: t.ThreadContent,
		IsThread:      t.IsThread,
		ScheduledFor:  t.ScheduledFor.Format(time.RFC3339),
		Timezone:      t.Timezone,
		Status:        string(t.Status),
		RetryCount:    t.RetryCount,
		MaxRetries:    t.MaxRetries,
		NextAttemptAt: t.NextAttemptAt.Format(time.RFC3339),
		ExternalIds:   t.ExternalIds,
		LastError:     t.LastError,
	}
	if t.PostedAt != nil {
		res.PostedAt = t.PostedAt.Format(time.RFC3339)
	}
	return &res
}

func (hg *apiHandlerGroup) postTweets(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/tweets: Request received")

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req scheduleTweetReq
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Warnf("Failed to parse schedule request: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if req.UserId <= 0 {
		writeErrorResponse(w, "user_id is required", http.StatusBadRequest)
		return
	}
	if req.Content != "" && len(req.ThreadContent) != 0 {
		writeErrorResponse(w, "provide content or thread_content, not both", http.StatusBadRequest)
		return
	}

	var valErr error
	if len(req.ThreadContent) != 0 {
		valErr = logic.ValidateThread(req.ThreadContent)
	} else {
		valErr = logic.ValidatePost(req.Content)
	}
	if valErr != nil {
		writeErrorResponse(w, valErr.Error(), http.StatusBadRequest)
		return
	}

	scheduledFor, err := time.Parse(time.RFC3339, req.ScheduledFor)
	if err != nil {
		writeErrorResponse(w, "scheduled_for must be RFC 3339", http.StatusBadRequest)
		return
	}
	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	if _, err := hg.clock.Location(timezone); err != nil {
		writeErrorResponse(w, "unknown timezone", http.StatusBadRequest)
		return
	}

	maxRetries := hg.cfg.Dispatch.DefaultRetries
	if req.MaxRetries != nil {
		if *req.MaxRetries < 0 {
			writeErrorResponse(w, "max_retries must not be negative", http.StatusBadRequest)
			return
		}
		maxRetries = *req.MaxRetries
	}

	now := hg.clock.Now()
	t := dal.ScheduledTweet{
		UserId:        req.UserId,
		Content:       req.Content,
		ThreadContent: req.ThreadContent,
		IsThread:      len(req.ThreadContent) != 0,
		ScheduledFor:  scheduledFor,
		Timezone:      timezone,
		Status:        dal.TweetStatusPending,
		MaxRetries:    maxRetries,
		NextAttemptAt: scheduledFor,
		CreatedAt:     now,
	}
	isNew, err := hg.repo.AddScheduledTweet(&t)
	if err != nil {
		hg.logger.Errorf("Failed to store scheduled tweet: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if !isNew {
		writeErrorResponse(w, "identical content already scheduled for this user at this time", http.StatusConflict)
		return
	}

	if !scheduledFor.After(now) {
		hg.dispatcher.Wake()
	}
	w.WriteHeader(http.StatusCreated)
	writeJsonResponse(hg.logger, w, tweetToResp(&t))
}

func (hg *apiHandlerGroup) getTweet(w http.ResponseWriter, r *http.Request) {

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	t, err := hg.repo.GetScheduledTweet(id)
	if err != nil {
		hg.logger.Errorf("Failed to load tweet %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if t == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, tweetToResp(t))
}

type execLogResp struct {
	Attempt      int    `json:"attempt"`
	Status       string `json:"status"`
	StartedAt    string `json:"started_at"`
	FinishedAt   string `json:"finished_at"`
	Success      bool   `json:"success"`
	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

func (hg *apiHandlerGroup) getTweetLogs(w http.ResponseWriter, r *http.Request) {

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	t, err := hg.repo.GetScheduledTweet(id)
	if err != nil {
		hg.logger.Errorf("Failed to load tweet %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if t == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}
	logs, err := hg.repo.GetExecutionLogs(id)
	if err != nil {
		hg.logger.Errorf("Failed to load execution logs for tweet %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	res := make([]*execLogResp, 0, len(logs))
	for _, l := range logs {
		res = append(res, &execLogResp{
			Attempt:      l.Attempt,
			Status:       string(l.Status),
			StartedAt:    l.StartedAt.Format(time.RFC3339),
			FinishedAt:   l.FinishedAt.Format(time.RFC3339),
			Success:      l.Success,
			ErrorCode:    l.ErrorCode,
			ErrorMessage: l.ErrorMessage,
		})
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) postTweetCancel(w http.ResponseWriter, r *http.Request) {

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	hg.logger.Infof("POST /api/tweets/%d/cancel: Request received", id)

	t, err := hg.repo.GetScheduledTweet(id)
	if err != nil {
		hg.logger.Errorf("Failed to load tweet %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if t == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}
	cancelled, err := hg.dispatcher.Cancel(id)
	if err != nil {
		hg.logger.Errorf("Failed to cancel tweet %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if !cancelled {
		writeErrorResponse(w, "tweet is not in a cancellable state", http.StatusConflict)
		return
	}
	t, err = hg.repo.GetScheduledTweet(id)
	if err != nil || t == nil {
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, tweetToResp(t))
}

type createStrategyReq struct {
	UserId               int64    `json:"user_id"`
	StartDate            string   `json:"start_date"` // RFC 3339
	EndDate              string   `json:"end_date"`
	Timezone             string   `json:"timezone"`
	HoursStart           int      `json:"hours_start"`
	HoursEnd             int      `json:"hours_end"`
	DailyFollows         int      `json:"daily_follows"`
	DailyUnfollows       int      `json:"daily_unfollows"`
	DailyLikes           int      `json:"daily_likes"`
	DailyRetweets        int      `json:"daily_retweets"`
	DailyReplies         int      `json:"daily_replies"`
	Keywords             []string `json:"keywords"`
	TargetAccounts       []string `json:"target_accounts"`
	AvoidAccounts        []string `json:"avoid_accounts"`
	RequireReplyApproval bool     `json:"require_reply_approval"`
}

func (hg *apiHandlerGroup) postStrategies(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/strategies: Request received")

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req createStrategyReq
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Warnf("Failed to parse strategy request: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if req.UserId <= 0 {
		writeErrorResponse(w, "user_id is required", http.StatusBadRequest)
		return
	}
	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		writeErrorResponse(w, "start_date must be RFC 3339", http.StatusBadRequest)
		return
	}
	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		writeErrorResponse(w, "end_date must be RFC 3339", http.StatusBadRequest)
		return
	}
	if !endDate.After(startDate) {
		writeErrorResponse(w, "end_date must be after start_date", http.StatusBadRequest)
		return
	}
	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	if _, err := hg.clock.Location(timezone); err != nil {
		writeErrorResponse(w, "unknown timezone", http.StatusBadRequest)
		return
	}
	if req.HoursStart < 0 || req.HoursStart > 23 || req.HoursEnd < 0 || req.HoursEnd > 24 {
		writeErrorResponse(w, "active hours out of range", http.StatusBadRequest)
		return
	}
	for _, lim := range []int{req.DailyFollows, req.DailyUnfollows, req.DailyLikes, req.DailyRetweets, req.DailyReplies} {
		if lim < 0 {
			writeErrorResponse(w, "daily limits must not be negative", http.StatusBadRequest)
			return
		}
	}

	s := dal.GrowthStrategy{
		UserId:               req.UserId,
		Status:               dal.StrategyStatusActive,
		StartDate:            startDate,
		EndDate:              endDate,
		Timezone:             timezone,
		HoursStart:           req.HoursStart,
		HoursEnd:             req.HoursEnd,
		DailyFollows:         req.DailyFollows,
		DailyUnfollows:       req.DailyUnfollows,
		DailyLikes:           req.DailyLikes,
		DailyRetweets:        req.DailyRetweets,
		DailyReplies:         req.DailyReplies,
		Keywords:             req.Keywords,
		TargetAccounts:       req.TargetAccounts,
		AvoidAccounts:        req.AvoidAccounts,
		RequireReplyApproval: req.RequireReplyApproval,
		CreatedAt:            hg.clock.Now(),
	}
	id, err := hg.repo.AddStrategy(&s)
	if err != nil {
		hg.logger.Errorf("Failed to store strategy: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJsonResponse(hg.logger, w, map[string]interface{}{"id": id, "status": string(s.Status)})
}

type addTargetReq struct {
	TargetType     string   `json:"target_type"` // account | tweet
	AccountHandle  string   `json:"account_handle"`
	AccountId      string   `json:"account_id"`
	TweetId        string   `json:"tweet_id"`
	TweetAuthor    string   `json:"tweet_author"`
	Actions        []string `json:"actions"` // follow, like, retweet, reply
	ReplyText      string   `json:"reply_text"`
	ReplyApproved  bool     `json:"reply_approved"`
	ScheduledFor   string   `json:"scheduled_for"`
	RelevanceScore float64  `json:"relevance_score"`
	Priority       int      `json:"priority"`
}

func (hg *apiHandlerGroup) postTargets(w http.ResponseWriter, r *http.Request) {

	strategyId, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	hg.logger.Infof("POST /api/strategies/%d/targets: Request received", strategyId)

	s, err := hg.repo.GetStrategy(strategyId)
	if err != nil {
		hg.logger.Errorf("Failed to load strategy %d: %v", strategyId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if s == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req addTargetReq
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Warnf("Failed to parse target request: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	t := dal.EngagementTarget{
		StrategyId:     strategyId,
		TargetType:     dal.TargetType(req.TargetType),
		AccountHandle:  req.AccountHandle,
		AccountId:      req.AccountId,
		TweetId:        req.TweetId,
		TweetAuthor:    req.TweetAuthor,
		ReplyText:      req.ReplyText,
		ReplyApproved:  req.ReplyApproved,
		Status:         dal.TargetStatusPending,
		RelevanceScore: req.RelevanceScore,
		Priority:       req.Priority,
		CreatedAt:      hg.clock.Now(),
	}
	for _, a := range req.Actions {
		switch dal.ActionType(a) {
		case dal.ActionFollow:
			t.ShouldFollow = true
		case dal.ActionLike:
			t.ShouldLike = true
		case dal.ActionRetweet:
			t.ShouldRetweet = true
		case dal.ActionReply:
			t.ShouldReply = true
		default:
			writeErrorResponse(w, "unknown action '"+a+"'", http.StatusBadRequest)
			return
		}
	}
	if err := logic.ValidateTarget(&t); err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	t.ScheduledFor = hg.clock.Now()
	if req.ScheduledFor != "" {
		scheduledFor, err := time.Parse(time.RFC3339, req.ScheduledFor)
		if err != nil {
			writeErrorResponse(w, "scheduled_for must be RFC 3339", http.StatusBadRequest)
			return
		}
		t.ScheduledFor = scheduledFor
	}
	t.IdentityHash = shared.ContentHash(req.TargetType, req.AccountHandle, req.AccountId, req.TweetId)

	isNew, err := hg.repo.AddTargetIfNew(&t)
	if err != nil {
		hg.logger.Errorf("Failed to store target: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if !isNew {
		writeErrorResponse(w, "target already exists on this strategy", http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJsonResponse(hg.logger, w, map[string]interface{}{"id": t.Id, "status": string(t.Status)})
}

func (hg *apiHandlerGroup) postStrategyPause(w http.ResponseWriter, r *http.Request) {
	hg.setStrategyState(w, r, true)
}

func (hg *apiHandlerGroup) postStrategyResume(w http.ResponseWriter, r *http.Request) {
	hg.setStrategyState(w, r, false)
}

func (hg *apiHandlerGroup) setStrategyState(w http.ResponseWriter, r *http.Request, pause bool) {

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	s, err := hg.repo.GetStrategy(id)
	if err != nil {
		hg.logger.Errorf("Failed to load strategy %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if s == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}
	var applied bool
	if pause {
		applied, err = hg.strategies.Pause(id)
	} else {
		applied, err = hg.strategies.Resume(id)
	}
	if err != nil {
		hg.logger.Errorf("Failed to change strategy %d state: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if !applied {
		writeErrorResponse(w, "strategy is not in the required state", http.StatusConflict)
		return
	}
	s, err = hg.repo.GetStrategy(id)
	if err != nil || s == nil {
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, map[string]interface{}{"id": s.Id, "status": string(s.Status)})
}

type dailyProgressResp struct {
	Day           string `json:"day"`
	Follows       int    `json:"follows"`
	Unfollows     int    `json:"unfollows"`
	Likes         int    `json:"likes"`
	Retweets      int    `json:"retweets"`
	Replies       int    `json:"replies"`
	FollowerCount int    `json:"follower_count"`
}

type strategyProgressResp struct {
	Id           int64                `json:"id"`
	Status       string               `json:"status"`
	TotalFollows int                  `json:"total_follows"`
	TotalLikes   int                  `json:"total_likes"`
	TotalRetweet int                  `json:"total_retweets"`
	TotalReplies int                  `json:"total_replies"`
	FollowerGain int                  `json:"follower_gain"`
	Days         []*dailyProgressResp `json:"days"`
}

func (hg *apiHandlerGroup) getStrategyProgress(w http.ResponseWriter, r *http.Request) {

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	s, err := hg.repo.GetStrategy(id)
	if err != nil {
		hg.logger.Errorf("Failed to load strategy %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if s == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}

	loc, err := hg.clock.Location(s.Timezone)
	if err != nil {
		loc = time.UTC
	}
	fromDay := r.URL.Query().Get("from")
	toDay := r.URL.Query().Get("to")
	if fromDay == "" {
		fromDay = shared.DayKey(s.StartDate, loc)
	}
	if toDay == "" {
		toDay = shared.DayKey(hg.clock.Now(), loc)
	}
	days, err := hg.repo.GetDailyProgress(id, fromDay, toDay)
	if err != nil {
		hg.logger.Errorf("Failed to load progress for strategy %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	res := strategyProgressResp{
		Id:           s.Id,
		Status:       string(s.Status),
		TotalFollows: s.TotalFollows,
		TotalLikes:   s.TotalLikes,
		TotalRetweet: s.TotalRetweets,
		TotalReplies: s.TotalReplies,
		FollowerGain: s.FollowerGain,
		Days:         make([]*dailyProgressResp, 0, len(days)),
	}
	for _, d := range days {
		res.Days = append(res.Days, &dailyProgressResp{
			Day:           d.Day,
			Follows:       d.Follows,
			Unfollows:     d.Unfollows,
			Likes:         d.Likes,
			Retweets:      d.Retweets,
			Replies:       d.Replies,
			FollowerCount: d.FollowerCount,
		})
	}
	writeJsonResponse(hg.logger, w, &res)
}

func (hg *apiHandlerGroup) deleteStrategy(w http.ResponseWriter, r *http.Request) {

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	hg.logger.Infof("DELETE /api/strategies/%d: Request received", id)

	s, err := hg.repo.GetStrategy(id)
	if err != nil {
		hg.logger.Errorf("Failed to load strategy %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if s == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}
	if err := hg.repo.DeleteStrategy(id); err != nil {
		hg.logger.Errorf("Failed to delete strategy %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) deleteUser(w http.ResponseWriter, r *http.Request) {

	id, ok := pathId(r)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	hg.logger.Infof("DELETE /api/users/%d: Request received", id)

	if err := hg.repo.DeleteUser(id); err != nil {
		hg.logger.Errorf("Failed to delete user %d data: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
