package dal

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/mattn/go-sqlite3"
	"sync"
	"time"
	"tweet_pilot/shared"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks tweet_pilot/dal IRepo

type IRepo interface {
	InitUpdateDb()

	AddScheduledTweet(t *ScheduledTweet) (isNew bool, err error)
	GetScheduledTweet(id int64) (*ScheduledTweet, error)
	GetDueTweets(now time.Time, limit int) ([]*ScheduledTweet, int, error)
	ClaimTweet(id int64, version int, now time.Time) (won bool, err error)
	MarkTweetPosted(id int64, externalIds []string, postedAt time.Time, execLog *TweetExecutionLog) (applied bool, err error)
	MarkTweetRetrying(id int64, retryCount int, nextAttemptAt time.Time, lastError string, execLog *TweetExecutionLog) (applied bool, err error)
	MarkTweetFailed(id int64, lastError string, execLog *TweetExecutionLog) (applied bool, err error)
	DeferTweet(id int64, until time.Time) error
	CancelTweet(id int64) (cancelled bool, err error)
	GetExecutionLogs(tweetId int64) ([]*TweetExecutionLog, error)

	AddStrategy(s *GrowthStrategy) (int64, error)
	GetStrategy(id int64) (*GrowthStrategy, error)
	GetRunnableStrategies(now time.Time) ([]*GrowthStrategy, error)
	SetStrategyStatus(id int64, from, to StrategyStatus) (applied bool, err error)

	AddTargetIfNew(t *EngagementTarget) (isNew bool, err error)
	GetDueTargets(strategyId int64, now time.Time, limit int) ([]*EngagementTarget, error)
	ClaimTarget(id int64, version int, leaseUntil time.Time) (won bool, err error)
	DeferTarget(id int64, version int, until time.Time) (applied bool, err error)
	FinalizeTarget(id int64, version int, status TargetStatus, lastError string) (applied bool, err error)
	GetCompletedTargetActions(targetId int64) (map[ActionType]bool, error)

	RecordEngagement(execLog *EngagementLog, day string) error
	GetDailyProgress(strategyId int64, fromDay, toDay string) ([]*DailyProgress, error)

	TryConsumeQuota(userId int64, action ActionType, day string, limit int) (bool, error)
	GetQuotaUsed(userId int64, action ActionType, day string) (int, error)

	DeleteStrategy(id int64) error
	DeleteUser(userId int64) error
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

// listToDb serializes a string slice into a TEXT column; empty slice becomes ''.
func listToDb(items []string) string {
	if len(items) == 0 {
		return ""
	}
	b, _ := json.Marshal(items)
	return string(b)
}

func listFromDb(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		return nil
	}
	return res
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == 19 && sqliteErr.ExtendedCode == 2067
	}
	return false
}

// =========================== Scheduled tweets ===========================

func (repo *Repo) AddScheduledTweet(t *ScheduledTweet) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if t.ContentHash == 0 {
		parts := append([]string{t.Content}, t.ThreadContent...)
		parts = append(parts, t.ScheduledFor.UTC().Format(time.RFC3339))
		t.ContentHash = shared.ContentHash(parts...)
	}
	if t.NextAttemptAt.IsZero() {
		t.NextAttemptAt = t.ScheduledFor
	}

	// Same user, same content, same instant: someone double-submitted
	row := repo.db.QueryRow(`SELECT COUNT(*) FROM scheduled_tweets
		WHERE user_id=? AND content_hash=? AND deleted_at IS NULL AND status NOT IN ('failed', 'cancelled')`,
		t.UserId, t.ContentHash)
	var dupes int
	if err = row.Scan(&dupes); err != nil {
		return false, err
	}
	if dupes > 0 {
		return false, nil
	}

	res, err := repo.db.Exec(`INSERT INTO scheduled_tweets
		(user_id, content, thread_content, is_thread, scheduled_for, timezone, status,
		 retry_count, max_retries, next_attempt_at, content_hash, version, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)`,
		t.UserId, t.Content, listToDb(t.ThreadContent), t.IsThread, t.ScheduledFor, t.Timezone,
		t.Status, t.RetryCount, t.MaxRetries, t.NextAttemptAt, t.ContentHash, t.CreatedAt)
	if err != nil {
		return false, err
	}
	t.Id, err = res.LastInsertId()
	return true, err
}

const tweetColumns = `id, user_id, content, thread_content, is_thread, scheduled_for, timezone, status,
	retry_count, max_retries, next_attempt_at, posted_at, external_ids, last_error, last_attempt_at,
	content_hash, version, created_at, deleted_at`

func scanTweet(row interface{ Scan(...any) error }) (*ScheduledTweet, error) {
	var t ScheduledTweet
	var threadContent, externalIds string
	var postedAt, lastAttemptAt, deletedAt sql.NullTime
	err := row.Scan(&t.Id, &t.UserId, &t.Content, &threadContent, &t.IsThread, &t.ScheduledFor,
		&t.Timezone, &t.Status, &t.RetryCount, &t.MaxRetries, &t.NextAttemptAt, &postedAt,
		&externalIds, &t.LastError, &lastAttemptAt, &t.ContentHash, &t.Version, &t.CreatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}
	t.ThreadContent = listFromDb(threadContent)
	t.ExternalIds = listFromDb(externalIds)
	if postedAt.Valid {
		t.PostedAt = &postedAt.Time
	}
	if lastAttemptAt.Valid {
		t.LastAttemptAt = &lastAttemptAt.Time
	}
	if deletedAt.Valid {
		t.DeletedAt = &deletedAt.Time
	}
	return &t, nil
}

func (repo *Repo) GetScheduledTweet(id int64) (*ScheduledTweet, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+tweetColumns+` FROM scheduled_tweets WHERE id=?`, id)
	res, err := scanTweet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetDueTweets(now time.Time, limit int) ([]*ScheduledTweet, int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	var total int
	row := repo.db.QueryRow(`SELECT COUNT(*) FROM scheduled_tweets
		WHERE status IN ('pending', 'retrying') AND next_attempt_at<=? AND deleted_at IS NULL`, now)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := repo.db.Query(`SELECT `+tweetColumns+` FROM scheduled_tweets
		WHERE status IN ('pending', 'retrying') AND next_attempt_at<=? AND deleted_at IS NULL
		ORDER BY next_attempt_at LIMIT ?`, now, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var res []*ScheduledTweet
	for rows.Next() {
		t, err := scanTweet(rows)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, t)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

// ClaimTweet is the single-winner transition into 'posting'. The version check
// makes sure a concurrent claim or cancellation invalidates ours.
func (repo *Repo) ClaimTweet(id int64, version int, now time.Time) (won bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`UPDATE scheduled_tweets
		SET status='posting', version=version+1, last_attempt_at=?
		WHERE id=? AND version=? AND status IN ('pending', 'retrying') AND deleted_at IS NULL`,
		now, id, version)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

// finalizeTweet applies a from-'posting' transition together with its execution
// log row in one transaction. Cancellation refuses to touch a 'posting' row, so
// after a won claim the status update normally always applies; should the row
// ever leave 'posting' through some other path, the log row is still written,
// because the platform call did happen and the history must show it.
func (repo *Repo) finalizeTweet(execLog *TweetExecutionLog, update string, args ...any) (applied bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(update, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	_, err = tx.Exec(`INSERT INTO tweet_execution_logs
		(tweet_id, attempt, status, started_at, finished_at, success, error_code, error_message, response)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		execLog.TweetId, execLog.Attempt, execLog.Status, execLog.StartedAt, execLog.FinishedAt,
		execLog.Success, execLog.ErrorCode, execLog.ErrorMessage, execLog.Response)
	if err != nil {
		return false, err
	}

	if err = tx.Commit(); err != nil {
		return false, err
	}
	return n == 1, nil
}

func (repo *Repo) MarkTweetPosted(id int64, externalIds []string, postedAt time.Time,
	execLog *TweetExecutionLog) (applied bool, err error) {

	return repo.finalizeTweet(execLog,
		`UPDATE scheduled_tweets SET status='posted', posted_at=?, external_ids=?, last_error='', version=version+1
		WHERE id=? AND status='posting'`,
		postedAt, listToDb(externalIds), id)
}

func (repo *Repo) MarkTweetRetrying(id int64, retryCount int, nextAttemptAt time.Time, lastError string,
	execLog *TweetExecutionLog) (applied bool, err error) {

	return repo.finalizeTweet(execLog,
		`UPDATE scheduled_tweets SET status='retrying', retry_count=?, next_attempt_at=?, last_error=?, version=version+1
		WHERE id=? AND status='posting'`,
		retryCount, nextAttemptAt, lastError, id)
}

func (repo *Repo) MarkTweetFailed(id int64, lastError string, execLog *TweetExecutionLog) (applied bool, err error) {

	return repo.finalizeTweet(execLog,
		`UPDATE scheduled_tweets SET status='failed', last_error=?, version=version+1
		WHERE id=? AND status='posting'`,
		lastError, id)
}

// DeferTweet pushes the next attempt out without touching status or retries.
// Used when the user's daily post quota is exhausted.
func (repo *Repo) DeferTweet(id int64, until time.Time) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE scheduled_tweets SET next_attempt_at=?
		WHERE id=? AND status IN ('pending', 'retrying')`, until, id)
	return err
}

// CancelTweet honors a cancellation only while the item is still waiting.
// An in-flight 'posting' row is never reverted.
func (repo *Repo) CancelTweet(id int64) (cancelled bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`UPDATE scheduled_tweets SET status='cancelled', version=version+1
		WHERE id=? AND status IN ('pending', 'retrying') AND deleted_at IS NULL`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

func (repo *Repo) GetExecutionLogs(tweetId int64) ([]*TweetExecutionLog, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, tweet_id, attempt, status, started_at, finished_at,
		success, error_code, error_message, response
		FROM tweet_execution_logs WHERE tweet_id=? ORDER BY attempt`, tweetId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*TweetExecutionLog, 0)
	for rows.Next() {
		lg := TweetExecutionLog{}
		err = rows.Scan(&lg.Id, &lg.TweetId, &lg.Attempt, &lg.Status, &lg.StartedAt, &lg.FinishedAt,
			&lg.Success, &lg.ErrorCode, &lg.ErrorMessage, &lg.Response)
		if err != nil {
			return nil, err
		}
		res = append(res, &lg)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// =========================== Strategies ===========================

const strategyColumns = `id, user_id, status, start_date, end_date, timezone, hours_start, hours_end,
	daily_follows, daily_unfollows, daily_likes, daily_retweets, daily_replies,
	keywords, target_accounts, avoid_accounts, require_reply_approval,
	total_follows, total_unfollows, total_likes, total_retweets, total_replies, follower_gain,
	version, created_at`

func scanStrategy(row interface{ Scan(...any) error }) (*GrowthStrategy, error) {
	var s GrowthStrategy
	var keywords, targetAccounts, avoidAccounts string
	err := row.Scan(&s.Id, &s.UserId, &s.Status, &s.StartDate, &s.EndDate, &s.Timezone,
		&s.HoursStart, &s.HoursEnd, &s.DailyFollows, &s.DailyUnfollows, &s.DailyLikes,
		&s.DailyRetweets, &s.DailyReplies, &keywords, &targetAccounts, &avoidAccounts,
		&s.RequireReplyApproval, &s.TotalFollows, &s.TotalUnfollows, &s.TotalLikes,
		&s.TotalRetweets, &s.TotalReplies, &s.FollowerGain, &s.Version, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.Keywords = listFromDb(keywords)
	s.TargetAccounts = listFromDb(targetAccounts)
	s.AvoidAccounts = listFromDb(avoidAccounts)
	return &s, nil
}

func (repo *Repo) AddStrategy(s *GrowthStrategy) (int64, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`INSERT INTO growth_strategies
		(user_id, status, start_date, end_date, timezone, hours_start, hours_end,
		 daily_follows, daily_unfollows, daily_likes, daily_retweets, daily_replies,
		 keywords, target_accounts, avoid_accounts, require_reply_approval, version, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)`,
		s.UserId, s.Status, s.StartDate, s.EndDate, s.Timezone, s.HoursStart, s.HoursEnd,
		s.DailyFollows, s.DailyUnfollows, s.DailyLikes, s.DailyRetweets, s.DailyReplies,
		listToDb(s.Keywords), listToDb(s.TargetAccounts), listToDb(s.AvoidAccounts),
		s.RequireReplyApproval, s.CreatedAt)
	if err != nil {
		return 0, err
	}
	s.Id, err = res.LastInsertId()
	return s.Id, err
}

func (repo *Repo) GetStrategy(id int64) (*GrowthStrategy, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+strategyColumns+` FROM growth_strategies WHERE id=?`, id)
	res, err := scanStrategy(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetRunnableStrategies(now time.Time) ([]*GrowthStrategy, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+strategyColumns+` FROM growth_strategies
		WHERE status='active' AND start_date<=? ORDER BY id`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*GrowthStrategy
	for rows.Next() {
		s, err := scanStrategy(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) SetStrategyStatus(id int64, from, to StrategyStatus) (applied bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`UPDATE growth_strategies SET status=?, version=version+1
		WHERE id=? AND status=?`, to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

// =========================== Engagement targets ===========================

const targetColumns = `id, strategy_id, target_type, account_handle, account_id, tweet_id, tweet_author,
	should_follow, should_like, should_retweet, should_reply, reply_text, reply_approved,
	status, scheduled_for, relevance_score, priority, last_error, identity_hash, version, created_at`

func scanTarget(row interface{ Scan(...any) error }) (*EngagementTarget, error) {
	var t EngagementTarget
	err := row.Scan(&t.Id, &t.StrategyId, &t.TargetType, &t.AccountHandle, &t.AccountId,
		&t.TweetId, &t.TweetAuthor, &t.ShouldFollow, &t.ShouldLike, &t.ShouldRetweet,
		&t.ShouldReply, &t.ReplyText, &t.ReplyApproved, &t.Status, &t.ScheduledFor,
		&t.RelevanceScore, &t.Priority, &t.LastError, &t.IdentityHash, &t.Version, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (repo *Repo) AddTargetIfNew(t *EngagementTarget) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if t.IdentityHash == 0 {
		t.IdentityHash = shared.ContentHash(string(t.TargetType), t.AccountHandle, t.AccountId, t.TweetId)
	}

	isNew = true
	_, err = repo.db.Exec(`INSERT INTO engagement_targets
		(strategy_id, target_type, account_handle, account_id, tweet_id, tweet_author,
		 should_follow, should_like, should_retweet, should_reply, reply_text, reply_approved,
		 status, scheduled_for, relevance_score, priority, identity_hash, version, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)`,
		t.StrategyId, t.TargetType, t.AccountHandle, t.AccountId, t.TweetId, t.TweetAuthor,
		t.ShouldFollow, t.ShouldLike, t.ShouldRetweet, t.ShouldReply, t.ReplyText, t.ReplyApproved,
		t.Status, t.ScheduledFor, t.RelevanceScore, t.Priority, t.IdentityHash, t.CreatedAt)
	if err != nil {
		// Duplicate key: target already tracked under this strategy
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}
	return isNew, nil
}

func (repo *Repo) GetDueTargets(strategyId int64, now time.Time, limit int) ([]*EngagementTarget, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	// Selection order is part of the contract: most urgent first, then most
	// relevant, earliest due as the final tie-break.
	rows, err := repo.db.Query(`SELECT `+targetColumns+` FROM engagement_targets
		WHERE strategy_id=? AND status='pending' AND scheduled_for<=?
		ORDER BY priority DESC, relevance_score DESC, scheduled_for ASC LIMIT ?`,
		strategyId, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*EngagementTarget
	for rows.Next() {
		t, err := scanTarget(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// ClaimTarget bumps the version and leases the target by pushing its
// scheduled_for past the lease deadline, so due-target queries stop returning
// it while the winner is still executing. The target stays 'pending' until
// its outcome is known; a worker crash just means the lease runs out and the
// target becomes claimable again.
func (repo *Repo) ClaimTarget(id int64, version int, leaseUntil time.Time) (won bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`UPDATE engagement_targets SET version=version+1, scheduled_for=?
		WHERE id=? AND version=? AND status='pending'`, leaseUntil, id, version)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

// DeferTarget and FinalizeTarget CAS on the version the caller holds from its
// claim; a worker whose lease expired and was re-claimed cannot overwrite the
// new claimant's outcome.

func (repo *Repo) DeferTarget(id int64, version int, until time.Time) (applied bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`UPDATE engagement_targets SET scheduled_for=?, version=version+1
		WHERE id=? AND version=? AND status='pending'`, until, id, version)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

func (repo *Repo) FinalizeTarget(id int64, version int, status TargetStatus, lastError string) (applied bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	res, err := repo.db.Exec(`UPDATE engagement_targets SET status=?, last_error=?, version=version+1
		WHERE id=? AND version=? AND status='pending'`, status, lastError, id, version)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

func (repo *Repo) GetCompletedTargetActions(targetId int64) (map[ActionType]bool, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT DISTINCT action FROM engagement_logs
		WHERE target_id=? AND success=1`, targetId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make(map[ActionType]bool)
	for rows.Next() {
		var action ActionType
		if err = rows.Scan(&action); err != nil {
			return nil, err
		}
		res[action] = true
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// =========================== Engagement logs & progress ===========================

// Column names per action type; whitelisted here so they can be spliced into SQL.
var strategyTotalColumn = map[ActionType]string{
	ActionFollow:   "total_follows",
	ActionUnfollow: "total_unfollows",
	ActionLike:     "total_likes",
	ActionRetweet:  "total_retweets",
	ActionReply:    "total_replies",
}

var progressColumn = map[ActionType]string{
	ActionFollow:   "follows",
	ActionUnfollow: "unfollows",
	ActionLike:     "likes",
	ActionRetweet:  "retweets",
	ActionReply:    "replies",
}

var rateLimitColumn = map[ActionType]string{
	ActionFollow:   "follows",
	ActionUnfollow: "unfollows",
	ActionLike:     "likes",
	ActionRetweet:  "retweets",
	ActionReply:    "replies",
	ActionPost:     "posts",
}

// RecordEngagement appends the log row and, for a successful action, bumps the
// strategy running total and today's progress row in the same transaction, so
// totals can never drift from the log.
func (repo *Repo) RecordEngagement(execLog *EngagementLog, day string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO engagement_logs
		(strategy_id, target_id, user_id, action, success, external_id, error_message, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		execLog.StrategyId, execLog.TargetId, execLog.UserId, execLog.Action, execLog.Success,
		execLog.ExternalId, execLog.ErrorMessage, execLog.CreatedAt)
	if err != nil {
		return err
	}

	if execLog.Success {
		totalCol, ok := strategyTotalColumn[execLog.Action]
		if !ok {
			return fmt.Errorf("no strategy total for action %s", execLog.Action)
		}
		query := fmt.Sprintf(`UPDATE growth_strategies SET %s=%s+1 WHERE id=?`, totalCol, totalCol)
		if _, err = tx.Exec(query, execLog.StrategyId); err != nil {
			return err
		}
		progCol := progressColumn[execLog.Action]
		query = fmt.Sprintf(`INSERT INTO daily_progress (strategy_id, day, %s) VALUES(?, ?, 1)
			ON CONFLICT (strategy_id, day) DO UPDATE SET %s=%s+1`, progCol, progCol, progCol)
		if _, err = tx.Exec(query, execLog.StrategyId, day); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (repo *Repo) GetDailyProgress(strategyId int64, fromDay, toDay string) ([]*DailyProgress, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, strategy_id, day, follows, unfollows, likes, retweets,
		replies, follower_count
		FROM daily_progress WHERE strategy_id=? AND day>=? AND day<=? ORDER BY day`,
		strategyId, fromDay, toDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*DailyProgress, 0)
	for rows.Next() {
		dp := DailyProgress{}
		err = rows.Scan(&dp.Id, &dp.StrategyId, &dp.Day, &dp.Follows, &dp.Unfollows, &dp.Likes,
			&dp.Retweets, &dp.Replies, &dp.FollowerCount)
		if err != nil {
			return nil, err
		}
		res = append(res, &dp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// =========================== Rate limit quota ===========================

// TryConsumeQuota is the sole authority for daily action limits: a single
// guarded UPDATE that increments only while under the limit. A new user/day
// row starts at zero; nothing ever resets counters in place.
// A limit <= 0 means uncapped: the count is still kept for reporting.
func (repo *Repo) TryConsumeQuota(userId int64, action ActionType, day string, limit int) (bool, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	col, ok := rateLimitColumn[action]
	if !ok {
		return false, fmt.Errorf("no rate limit column for action %s", action)
	}

	tx, err := repo.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO rate_limit_trackers (user_id, day, last_reset)
		VALUES(?, ?, ?) ON CONFLICT (user_id, day) DO NOTHING`,
		userId, day, time.Now().UTC())
	if err != nil {
		return false, err
	}

	var query string
	var args []any
	if limit > 0 {
		query = fmt.Sprintf(`UPDATE rate_limit_trackers SET %s=%s+1
			WHERE user_id=? AND day=? AND %s<?`, col, col, col)
		args = []any{userId, day, limit}
	} else {
		query = fmt.Sprintf(`UPDATE rate_limit_trackers SET %s=%s+1 WHERE user_id=? AND day=?`, col, col)
		args = []any{userId, day}
	}
	res, err := tx.Exec(query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if err = tx.Commit(); err != nil {
		return false, err
	}
	return n == 1, nil
}

func (repo *Repo) GetQuotaUsed(userId int64, action ActionType, day string) (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	col, ok := rateLimitColumn[action]
	if !ok {
		return 0, fmt.Errorf("no rate limit column for action %s", action)
	}
	query := fmt.Sprintf(`SELECT %s FROM rate_limit_trackers WHERE user_id=? AND day=?`, col)
	row := repo.db.QueryRow(query, userId, day)
	var count int
	if err := row.Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

// =========================== Ownership cascades ===========================

// DeleteStrategy removes the strategy and everything it owns as one explicit
// multi-statement transaction.
func (repo *Repo) DeleteStrategy(id int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err = deleteStrategyTx(tx, id); err != nil {
		return err
	}
	return tx.Commit()
}

func deleteStrategyTx(tx *sql.Tx, id int64) error {
	if _, err := tx.Exec(`DELETE FROM engagement_logs WHERE strategy_id=?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM engagement_targets WHERE strategy_id=?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM daily_progress WHERE strategy_id=?`, id); err != nil {
		return err
	}
	_, err := tx.Exec(`DELETE FROM growth_strategies WHERE id=?`, id)
	return err
}

// DeleteUser cascades through the user's strategies and soft-deletes their
// scheduled tweets. Execution logs survive as audit history.
func (repo *Repo) DeleteUser(userId int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT id FROM growth_strategies WHERE user_id=?`, userId)
	if err != nil {
		return err
	}
	var strategyIds []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			_ = rows.Close()
			return err
		}
		strategyIds = append(strategyIds, id)
	}
	if err = rows.Err(); err != nil {
		_ = rows.Close()
		return err
	}
	_ = rows.Close()

	for _, id := range strategyIds {
		if err = deleteStrategyTx(tx, id); err != nil {
			return err
		}
	}

	_, err = tx.Exec(`UPDATE scheduled_tweets SET deleted_at=? WHERE user_id=? AND deleted_at IS NULL`,
		time.Now().UTC(), userId)
	if err != nil {
		return err
	}
	return tx.Commit()
}
