package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ioi_scoring/internal/common"
	"ioi_scoring/internal/domain/model"
	"ioi_scoring/internal/domain/repository"

	"github.com/go-playground/validator/v10"
)

// Rescorer enqueues score recomputation for every submission of a problem.
type Rescorer interface {
	EnqueueProblemRescore(ctx context.Context, problemID int64) (int, error)
}

// ProblemConfigService owns the per-problem scoring configuration: boundary
// validation, wholesale replacement in the KV store, and the default config
// for problems never configured.
type ProblemConfigService struct {
	configRepo repository.ProblemConfigRepository
	rescorer   Rescorer
	validate   *validator.Validate
}

func NewProblemConfigService(configRepo repository.ProblemConfigRepository, rescorer Rescorer) *ProblemConfigService {
	return &ProblemConfigService{
		configRepo: configRepo,
		rescorer:   rescorer,
		validate:   validator.New(),
	}
}

type ConfigureProblemRequest struct {
	ProblemID        int64                  `json:"problem_id" validate:"required,gt=0"`
	SubtaskEnabled   bool                   `json:"subtask_enabled"`
	FinalScoreMethod model.FinalScoreMethod `json:"final_score_method" validate:"required,oneof=BestSubmission BestSubtaskSum"`
	Subtasks         []model.Subtask        `json:"subtasks" validate:"dive"`
}

type ConfigureProblemResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ConfigureProblem validates and stores a problem's scoring configuration,
// replacing whatever was there, then enqueues a rescore of the problem's
// submissions so stored judge results catch up with the new rules.
func (s *ProblemConfigService) ConfigureProblem(ctx context.Context, req ConfigureProblemRequest) (*ConfigureProblemResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %v: %w", err, common.ErrValidation)
	}

	cfg := model.ProblemScoringConfig{
		ProblemID:        req.ProblemID,
		SubtaskEnabled:   req.SubtaskEnabled,
		FinalScoreMethod: req.FinalScoreMethod,
		Subtasks:         req.Subtasks,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %v: %w", err, common.ErrValidation)
	}

	if err := s.configRepo.Set(ctx, cfg); err != nil {
		return nil, common.Errorf("failed to store scoring config for problem %d: %w", cfg.ProblemID, err)
	}

	enqueued, err := s.rescorer.EnqueueProblemRescore(ctx, cfg.ProblemID)
	if err != nil {
		// The config is stored; a failed enqueue only delays rescoring.
		slog.Warn("failed to enqueue rescore after reconfiguration",
			"problem_id", cfg.ProblemID, "err", err)
	} else if enqueued > 0 {
		slog.Info("rescore jobs enqueued", "problem_id", cfg.ProblemID, "count", enqueued)
	}

	return &ConfigureProblemResponse{
		Success: true,
		Message: fmt.Sprintf("Problem %d configured successfully", cfg.ProblemID),
	}, nil
}

// GetProblemConfig returns the stored configuration, or the default config
// when the problem was never configured.
func (s *ProblemConfigService) GetProblemConfig(ctx context.Context, problemID int64) (*model.ProblemScoringConfig, error) {
	cfg, err := s.configRepo.Get(ctx, problemID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			def := model.DefaultScoringConfig(problemID)
			return &def, nil
		}
		return nil, common.Errorf("failed to load scoring config for problem %d: %w", problemID, err)
	}
	return cfg, nil
}
