package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ioi_scoring/internal/common"
	"ioi_scoring/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

// Redis hash holding one JSON config per problem, keyed problem_<id>.
const problemConfigCollection = "ioi_problem_config"

// ProblemConfigRepository is the key-value store for per-problem scoring
// configuration. Get returns common.ErrNotFound for unconfigured problems;
// callers decide whether that means a default config.
type ProblemConfigRepository interface {
	Get(ctx context.Context, problemID int64) (*model.ProblemScoringConfig, error)
	Set(ctx context.Context, cfg model.ProblemScoringConfig) error
}

type redisProblemConfigRepository struct {
	rdb *redis.Client
}

func NewRedisProblemConfigRepository(rdb *redis.Client) ProblemConfigRepository {
	return &redisProblemConfigRepository{rdb: rdb}
}

func configKey(problemID int64) string {
	return fmt.Sprintf("problem_%d", problemID)
}

func (r *redisProblemConfigRepository) Get(ctx context.Context, problemID int64) (*model.ProblemScoringConfig, error) {
	raw, err := r.rdb.HGet(ctx, problemConfigCollection, configKey(problemID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("redisProblemConfigRepository.Get: %w", err)
	}
	cfg := &model.ProblemScoringConfig{}
	if err := json.Unmarshal([]byte(raw), cfg); err != nil {
		return nil, fmt.Errorf("redisProblemConfigRepository.Get unmarshal: %w", err)
	}
	return cfg, nil
}

func (r *redisProblemConfigRepository) Set(ctx context.Context, cfg model.ProblemScoringConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("redisProblemConfigRepository.Set marshal: %w", err)
	}
	if err := r.rdb.HSet(ctx, problemConfigCollection, configKey(cfg.ProblemID), raw).Err(); err != nil {
		return fmt.Errorf("redisProblemConfigRepository.Set: %w", err)
	}
	return nil
}
