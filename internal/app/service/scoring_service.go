package service

import (
	"context"
	"errors"
	"log/slog"

	"ioi_scoring/internal/app/scoring"
	"ioi_scoring/internal/common"
	"ioi_scoring/internal/domain/model"
	"ioi_scoring/internal/domain/repository"
)

// ScoringService recomputes and persists submission scores and assembles the
// submission detail view. The numeric work lives in the scoring package; this
// service only moves data between storage and the core.
type ScoringService struct {
	submissionRepo repository.SubmissionRepository
	configService  *ProblemConfigService
}

func NewScoringService(submissionRepo repository.SubmissionRepository, configService *ProblemConfigService) *ScoringService {
	return &ScoringService{submissionRepo: submissionRepo, configService: configService}
}

type CalculateScoreResponse struct {
	Success        bool                  `json:"success"`
	SubmissionID   int64                 `json:"submission_id"`
	Score          int                   `json:"score"`
	Verdict        model.Verdict         `json:"verdict"`
	SubtaskResults []model.SubtaskResult `json:"subtask_results"`
	Message        string                `json:"message"`
}

// CalculateSubmissionScore recomputes a submission's score from its stored
// test case results and overwrites the judge result. Safe to call any number
// of times: identical inputs produce identical stored values.
//
// A missing submission or judge result is reported through the response
// envelope (success=false) rather than an error, matching how the judging
// pipeline consumes this operation.
func (s *ScoringService) CalculateSubmissionScore(ctx context.Context, submissionID int64) (*CalculateScoreResponse, error) {
	sub, err := s.submissionRepo.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return &CalculateScoreResponse{
				Success:        false,
				SubmissionID:   submissionID,
				Verdict:        model.VerdictNotFound,
				SubtaskResults: []model.SubtaskResult{},
				Message:        "Submission not found",
			}, nil
		}
		return nil, common.Errorf("failed to load submission %d: %w", submissionID, err)
	}

	jr, err := s.submissionRepo.GetJudgeResultBySubmissionID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return &CalculateScoreResponse{
				Success:        false,
				SubmissionID:   submissionID,
				Verdict:        model.VerdictNotJudged,
				SubtaskResults: []model.SubtaskResult{},
				Message:        "Judge result not found",
			}, nil
		}
		return nil, common.Errorf("failed to load judge result for submission %d: %w", submissionID, err)
	}

	testCaseResults, err := s.submissionRepo.GetTestCaseResults(ctx, jr.ID)
	if err != nil {
		return nil, common.Errorf("failed to load test case results for submission %d: %w", submissionID, err)
	}

	cfg, err := s.configService.GetProblemConfig(ctx, sub.ProblemID)
	if err != nil {
		return nil, err
	}

	result := scoring.ScoreSubmission(*cfg, testCaseResults)

	jr.Score = result.TotalScore
	jr.Verdict = result.Verdict
	jr.TimeUsed = result.TimeUsed
	jr.MemoryUsed = result.MemoryUsed
	if err := s.submissionRepo.UpdateJudgeResult(ctx, jr); err != nil {
		return nil, common.Errorf("failed to persist judge result %d: %w", jr.ID, err)
	}

	slog.Info("submission rescored",
		"submission_id", submissionID, "score", result.TotalScore, "verdict", result.Verdict)

	subtaskResults := result.SubtaskResults
	if subtaskResults == nil {
		subtaskResults = []model.SubtaskResult{}
	}
	return &CalculateScoreResponse{
		Success:        true,
		SubmissionID:   submissionID,
		Score:          result.TotalScore,
		Verdict:        result.Verdict,
		SubtaskResults: subtaskResults,
		Message:        "Score calculated and saved",
	}, nil
}

type SubmissionDetailResponse struct {
	Submission      *model.Submission           `json:"submission"`
	JudgeResult     *model.JudgeResult          `json:"judge_result"`
	TestCaseResults []model.TestCaseResult      `json:"test_case_results"`
	SubtaskResults  []model.SubtaskResult       `json:"subtask_results"`
	ProblemConfig   *model.ProblemScoringConfig `json:"problem_config"`
}

// GetSubmissionDetail returns the submission with its stored judging data and
// subtask results computed on the fly; subtask results are never persisted.
// Code is blanked unless includeCode is set.
func (s *ScoringService) GetSubmissionDetail(ctx context.Context, submissionID int64, includeCode bool) (*SubmissionDetailResponse, error) {
	sub, err := s.submissionRepo.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("submission %d: %w", submissionID, common.ErrNotFound)
		}
		return nil, common.Errorf("failed to load submission %d: %w", submissionID, err)
	}
	if !includeCode {
		sub.Code = ""
	}

	detail := &SubmissionDetailResponse{
		Submission:      sub,
		TestCaseResults: []model.TestCaseResult{},
		SubtaskResults:  []model.SubtaskResult{},
	}

	jr, err := s.submissionRepo.GetJudgeResultBySubmissionID(ctx, submissionID)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, common.Errorf("failed to load judge result for submission %d: %w", submissionID, err)
	}
	if jr != nil {
		detail.JudgeResult = jr
		detail.TestCaseResults, err = s.submissionRepo.GetTestCaseResults(ctx, jr.ID)
		if err != nil {
			return nil, common.Errorf("failed to load test case results for submission %d: %w", submissionID, err)
		}
	}

	cfg, err := s.configService.GetProblemConfig(ctx, sub.ProblemID)
	if err != nil {
		return nil, err
	}
	detail.ProblemConfig = cfg
	if results := scoring.SubtaskResults(*cfg, detail.TestCaseResults); results != nil {
		detail.SubtaskResults = results
	}

	return detail, nil
}
