package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ioi_scoring/internal/common"
	"ioi_scoring/internal/domain/model"
	"ioi_scoring/internal/domain/repository"
	"ioi_scoring/internal/platform/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RescoreService pushes rescore jobs onto the Redis queue consumed by the
// rescore worker. Jobs carry the whole payload; there is no separate job
// table.
type RescoreService struct {
	rdb            *redis.Client
	submissionRepo repository.SubmissionRepository
}

func NewRescoreService(rdb *redis.Client, submissionRepo repository.SubmissionRepository) *RescoreService {
	return &RescoreService{rdb: rdb, submissionRepo: submissionRepo}
}

// EnqueueProblemRescore queues one rescore job per submission of the problem
// and returns how many were enqueued.
func (s *RescoreService) EnqueueProblemRescore(ctx context.Context, problemID int64) (int, error) {
	ids, err := s.submissionRepo.ListSubmissionIDsByProblem(ctx, problemID)
	if err != nil {
		return 0, common.Errorf("failed to list submissions of problem %d: %w", problemID, err)
	}

	enqueued := 0
	for _, submissionID := range ids {
		job := model.RescoreJob{
			ID:           uuid.NewString(),
			SubmissionID: submissionID,
			ProblemID:    problemID,
			EnqueuedAt:   time.Now().UTC(),
		}
		payload, err := json.Marshal(job)
		if err != nil {
			return enqueued, common.Errorf("failed to marshal rescore job: %w", err)
		}
		if err := s.rdb.LPush(ctx, config.AppConfig.RescoreQueueName, payload).Err(); err != nil {
			return enqueued, common.Errorf("failed to push rescore job to Redis queue: %w", err)
		}
		enqueued++
		slog.Debug("rescore job enqueued", "job_id", job.ID, "submission_id", submissionID)
	}
	return enqueued, nil
}
