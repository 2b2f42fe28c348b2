package service

import (
	"context"
	"testing"

	"ioi_scoring/internal/common"
	"ioi_scoring/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeaderboardServiceForTest(contestRepo *fakeContestRepo, subRepo *fakeSubmissionRepo, cfgRepo *fakeConfigRepo) *LeaderboardService {
	configService := NewProblemConfigService(cfgRepo, &fakeRescorer{})
	return NewLeaderboardService(contestRepo, subRepo, configService)
}

func judgedSub(id, userID, problemID int64, score int) model.SubmissionWithResult {
	return model.SubmissionWithResult{
		Submission: model.Submission{ID: id, UserID: userID, ProblemID: problemID},
		Result:     &model.JudgeResult{ID: id, SubmissionID: id, Score: score},
	}
}

func TestGetLeaderboardUnknownContest(t *testing.T) {
	contestRepo := &fakeContestRepo{contests: map[int64]model.Contest{}}
	svc := newLeaderboardServiceForTest(contestRepo, newFakeSubmissionRepo(), newFakeConfigRepo())

	_, err := svc.GetLeaderboard(context.Background(), 99, 1, 50)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetLeaderboardRanksAndPaginates(t *testing.T) {
	contestRepo := &fakeContestRepo{
		contests: map[int64]model.Contest{1: {ID: 1, Title: "Round 1"}},
		users: []model.User{
			{ID: 1, Username: "alice"},
			{ID: 2, Username: "bob"},
			{ID: 3, Username: "carol"},
		},
		problems: []model.Problem{{ID: 1, ContestID: 1, Title: "Mountain Walking"}},
	}
	subRepo := newFakeSubmissionRepo()
	subRepo.withResults = []model.SubmissionWithResult{
		judgedSub(10, 1, 1, 100),
		judgedSub(11, 2, 1, 70),
		judgedSub(12, 3, 1, 70),
	}
	svc := newLeaderboardServiceForTest(contestRepo, subRepo, newFakeConfigRepo())

	resp, err := svc.GetLeaderboard(context.Background(), 1, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ContestID)
	assert.Equal(t, 3, resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.PageSize)

	require.Len(t, resp.Entries, 2)
	assert.Equal(t, 1, resp.Entries[0].Rank)
	assert.Equal(t, "alice", resp.Entries[0].User.Username)
	assert.Equal(t, 100, resp.Entries[0].TotalScore)
	assert.Equal(t, 2, resp.Entries[1].Rank)
	assert.Equal(t, 70, resp.Entries[1].TotalScore)

	// The tied third entry lands on page 2 with the shared rank.
	resp2, err := svc.GetLeaderboard(context.Background(), 1, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, resp2.TotalCount)
	require.Len(t, resp2.Entries, 1)
	assert.Equal(t, 2, resp2.Entries[0].Rank)
	assert.Equal(t, "carol", resp2.Entries[0].User.Username)
}

func TestGetLeaderboardPageBeyondEnd(t *testing.T) {
	contestRepo := &fakeContestRepo{
		contests: map[int64]model.Contest{1: {ID: 1}},
		users:    []model.User{{ID: 1, Username: "alice"}},
		problems: []model.Problem{{ID: 1, ContestID: 1, Title: "P"}},
	}
	svc := newLeaderboardServiceForTest(contestRepo, newFakeSubmissionRepo(), newFakeConfigRepo())

	resp, err := svc.GetLeaderboard(context.Background(), 1, 10, 50)
	require.NoError(t, err)
	assert.Empty(t, resp.Entries)
	assert.Equal(t, 1, resp.TotalCount)
}

func TestGetLeaderboardDerivesProblemSlugs(t *testing.T) {
	contestRepo := &fakeContestRepo{
		contests: map[int64]model.Contest{1: {ID: 1}},
		users:    []model.User{{ID: 1, Username: "alice"}},
		problems: []model.Problem{{ID: 1, ContestID: 1, Title: "Mountain Walking"}},
	}
	svc := newLeaderboardServiceForTest(contestRepo, newFakeSubmissionRepo(), newFakeConfigRepo())

	resp, err := svc.GetLeaderboard(context.Background(), 1, 1, 50)
	require.NoError(t, err)
	require.Len(t, resp.Problems, 1)
	assert.Equal(t, "mountain-walking", resp.Problems[0].Slug)
}

func TestGetLeaderboardUsesStoredConfigs(t *testing.T) {
	contestRepo := &fakeContestRepo{
		contests: map[int64]model.Contest{1: {ID: 1}},
		users:    []model.User{{ID: 1, Username: "alice"}},
		problems: []model.Problem{{ID: 1, ContestID: 1, Title: "P"}},
	}
	subRepo := newFakeSubmissionRepo()
	// Two complementary submissions; BestSubtaskSum should combine them.
	first := judgedSub(10, 1, 1, 30)
	first.TestCaseResults = []model.TestCaseResult{
		{JudgeResultID: 10, TestCaseID: 1, Verdict: model.VerdictAccepted, Score: 30, ExpectedScore: 30},
		{JudgeResultID: 10, TestCaseID: 2, Verdict: model.VerdictWrongAnswer, Score: 0, ExpectedScore: 10},
	}
	second := judgedSub(11, 1, 1, 70)
	second.TestCaseResults = []model.TestCaseResult{
		{JudgeResultID: 11, TestCaseID: 1, Verdict: model.VerdictWrongAnswer, Score: 0, ExpectedScore: 30},
		{JudgeResultID: 11, TestCaseID: 2, Verdict: model.VerdictAccepted, Score: 10, ExpectedScore: 10},
	}
	subRepo.withResults = []model.SubmissionWithResult{first, second}

	cfgRepo := newFakeConfigRepo()
	cfgRepo.configs[1] = model.ProblemScoringConfig{
		ProblemID:        1,
		SubtaskEnabled:   true,
		FinalScoreMethod: model.FinalBestSubtaskSum,
		Subtasks: []model.Subtask{
			{ID: 1, Name: "A", MaxScore: 30, ScoringMethod: model.ScoringSum, TestCaseIDs: []int64{1}},
			{ID: 2, Name: "B", MaxScore: 70, ScoringMethod: model.ScoringGroupMin, TestCaseIDs: []int64{2}},
		},
	}
	svc := newLeaderboardServiceForTest(contestRepo, subRepo, cfgRepo)

	resp, err := svc.GetLeaderboard(context.Background(), 1, 1, 50)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, 100, resp.Entries[0].TotalScore)
	require.Len(t, resp.Entries[0].ProblemScores, 1)
	assert.Equal(t, 2, resp.Entries[0].ProblemScores[0].SubmissionCount)
	require.Len(t, resp.Entries[0].ProblemScores[0].SubtaskScores, 2)
}
