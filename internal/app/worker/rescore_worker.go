package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"ioi_scoring/internal/app/service"
	"ioi_scoring/internal/domain/model"
	"ioi_scoring/internal/platform/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RescoreWorker drains the rescore queue and reruns submission scoring through
// the scoring service. A Redis SetNX lock keeps recomputation to one job at a
// time across worker instances, so concurrent reconfigurations cannot
// interleave writes to the same judge result.
type RescoreWorker struct {
	rdb            *redis.Client
	scoringService *service.ScoringService
}

func NewRescoreWorker(rdb *redis.Client, scoringService *service.ScoringService) *RescoreWorker {
	return &RescoreWorker{rdb: rdb, scoringService: scoringService}
}

func (w *RescoreWorker) Start(ctx context.Context) {
	slog.Info("rescore worker started", "queue", config.AppConfig.RescoreQueueName)
	for {
		select {
		case <-ctx.Done():
			slog.Info("rescore worker stopping")
			return
		default:
			popped, err := w.rdb.BRPop(ctx, 0*time.Second, config.AppConfig.RescoreQueueName).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					time.Sleep(1 * time.Second)
					continue
				}
				slog.Error("BRPop on rescore queue failed", "err", err)
				time.Sleep(5 * time.Second)
				continue
			}
			// BRPop returns [queueName, value].
			if len(popped) < 2 || popped[1] == "" {
				continue
			}
			w.processJobWithLock(ctx, popped[1])
		}
	}
}

func (w *RescoreWorker) processJobWithLock(ctx context.Context, payload string) {
	var job model.RescoreJob
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		slog.Error("dropping malformed rescore job", "err", err)
		return
	}

	lockValue := uuid.NewString()
	lockTTL := time.Duration(config.AppConfig.RescoreLockTTLSeconds) * time.Second

	ok, err := w.rdb.SetNX(ctx, config.AppConfig.RescoreLockKey, lockValue, lockTTL).Result()
	if err != nil {
		slog.Error("failed to attempt rescore lock acquisition", "job_id", job.ID, "err", err)
		w.requeueJob(ctx, payload)
		return
	}
	if !ok {
		slog.Info("rescore lock busy, re-queueing job", "job_id", job.ID)
		w.requeueJob(ctx, payload)
		return
	}

	defer func() {
		// Release only if we still hold the lock (CAS delete).
		script := redis.NewScript(`
            if redis.call("get", KEYS[1]) == ARGV[1] then
                return redis.call("del", KEYS[1])
            else
                return 0
            end
        `)
		deleted, err := script.Run(ctx, w.rdb, []string{config.AppConfig.RescoreLockKey}, lockValue).Result()
		if err != nil {
			slog.Error("failed to release rescore lock", "job_id", job.ID, "err", err)
		} else if deleted.(int64) != 1 {
			slog.Warn("rescore lock already expired or taken over", "job_id", job.ID)
		}
	}()

	resp, err := w.scoringService.CalculateSubmissionScore(ctx, job.SubmissionID)
	if err != nil {
		slog.Error("rescore job failed", "job_id", job.ID, "submission_id", job.SubmissionID, "err", err)
		return
	}
	if !resp.Success {
		slog.Warn("rescore job skipped", "job_id", job.ID, "submission_id", job.SubmissionID, "message", resp.Message)
		return
	}
	slog.Info("rescore job completed",
		"job_id", job.ID, "submission_id", job.SubmissionID, "score", resp.Score, "verdict", resp.Verdict)
}

func (w *RescoreWorker) requeueJob(ctx context.Context, payload string) {
	if err := w.rdb.RPush(ctx, config.AppConfig.RescoreQueueName, payload).Err(); err != nil {
		slog.Error("failed to re-queue rescore job", "err", err)
	}
}
