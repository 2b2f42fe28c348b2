package service

import (
	"context"

	"ioi_scoring/internal/app/scoring"
	"ioi_scoring/internal/common"
	"ioi_scoring/internal/domain/model"
	"ioi_scoring/internal/domain/repository"

	"github.com/gosimple/slug"
)

type LeaderboardService struct {
	contestRepo    repository.ContestRepository
	submissionRepo repository.SubmissionRepository
	configService  *ProblemConfigService
}

func NewLeaderboardService(
	contestRepo repository.ContestRepository,
	submissionRepo repository.SubmissionRepository,
	configService *ProblemConfigService,
) *LeaderboardService {
	return &LeaderboardService{
		contestRepo:    contestRepo,
		submissionRepo: submissionRepo,
		configService:  configService,
	}
}

type LeaderboardResponse struct {
	ContestID  int64                    `json:"contest_id"`
	Problems   []model.Problem          `json:"problems"`
	Entries    []model.LeaderboardEntry `json:"entries"`
	TotalCount int                      `json:"total_count"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
}

// GetLeaderboard recomputes the contest standings from scratch: one pass over
// every participant's submissions, then sort, rank and paginate.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, contestID int64, page, pageSize int) (*LeaderboardResponse, error) {
	if _, err := s.contestRepo.GetContestByID(ctx, contestID); err != nil {
		return nil, common.Errorf("contest %d: %w", contestID, err)
	}

	users, err := s.contestRepo.ListContestUsers(ctx, contestID)
	if err != nil {
		return nil, common.Errorf("failed to list contest users: %w", err)
	}
	problems, err := s.contestRepo.ListContestProblems(ctx, contestID)
	if err != nil {
		return nil, common.Errorf("failed to list contest problems: %w", err)
	}
	submissions, err := s.submissionRepo.ListSubmissionsWithResults(ctx, contestID)
	if err != nil {
		return nil, common.Errorf("failed to list contest submissions: %w", err)
	}

	configs := make(map[int64]model.ProblemScoringConfig, len(problems))
	for i := range problems {
		problems[i].Slug = slug.Make(problems[i].Title)
		cfg, err := s.configService.GetProblemConfig(ctx, problems[i].ID)
		if err != nil {
			return nil, err
		}
		configs[problems[i].ID] = *cfg
	}

	entries := scoring.BuildLeaderboard(users, problems, submissions, configs)
	pageEntries := scoring.Paginate(entries, page, pageSize)

	return &LeaderboardResponse{
		ContestID:  contestID,
		Problems:   problems,
		Entries:    pageEntries,
		TotalCount: len(entries),
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
