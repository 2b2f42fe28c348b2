package scoring

import (
	"testing"

	"ioi_scoring/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subWithResults(id, userID int64, storedScore int, results []model.TestCaseResult) model.SubmissionWithResult {
	return model.SubmissionWithResult{
		Submission: model.Submission{ID: id, UserID: userID, ProblemID: 1},
		Result:     &model.JudgeResult{ID: id, SubmissionID: id, Score: storedScore},
		TestCaseResults: results,
	}
}

// Two complementary submissions: the first solves only the Sum subtask, the
// second solves only the GroupMin subtask.
func complementarySubmissions() []model.SubmissionWithResult {
	first := subWithResults(10, 1, 30, []model.TestCaseResult{
		accepted(1, 10, 10), accepted(2, 10, 10), accepted(3, 10, 10),
		tcr(4, model.VerdictWrongAnswer, 0, 10),
	})
	second := subWithResults(11, 1, 70, []model.TestCaseResult{
		tcr(1, model.VerdictWrongAnswer, 0, 10),
		accepted(4, 10, 10), accepted(5, 10, 10), accepted(6, 10, 10), accepted(7, 10, 10),
	})
	return []model.SubmissionWithResult{first, second}
}

func TestFinalScoreBestSubmission(t *testing.T) {
	cfg := twoSubtaskConfig()
	cfg.FinalScoreMethod = model.FinalBestSubmission

	score, breakdown := FinalScore(cfg, complementarySubmissions())
	assert.Equal(t, 70, score)
	assert.Nil(t, breakdown)
}

func TestFinalScoreBestSubtaskSum(t *testing.T) {
	cfg := twoSubtaskConfig()
	cfg.FinalScoreMethod = model.FinalBestSubtaskSum

	score, breakdown := FinalScore(cfg, complementarySubmissions())
	assert.Equal(t, 100, score)

	require.Len(t, breakdown, 2)
	assert.Equal(t, int64(1), breakdown[0].SubtaskID)
	assert.Equal(t, 30, breakdown[0].BestScore)
	assert.Equal(t, 30, breakdown[0].MaxScore)
	assert.Equal(t, int64(2), breakdown[1].SubtaskID)
	assert.Equal(t, 70, breakdown[1].BestScore)
}

func TestFinalScoreBestSubtaskSumNeverBelowBestSubmission(t *testing.T) {
	cfg := twoSubtaskConfig()
	subs := complementarySubmissions()

	cfg.FinalScoreMethod = model.FinalBestSubmission
	bestSub, _ := FinalScore(cfg, subs)

	cfg.FinalScoreMethod = model.FinalBestSubtaskSum
	bestSum, _ := FinalScore(cfg, subs)

	assert.GreaterOrEqual(t, bestSum, bestSub)
}

func TestFinalScoreMonotoneInSubmissions(t *testing.T) {
	cfg := twoSubtaskConfig()
	cfg.FinalScoreMethod = model.FinalBestSubtaskSum
	subs := complementarySubmissions()

	partial, _ := FinalScore(cfg, subs[:1])
	full, _ := FinalScore(cfg, subs)
	assert.GreaterOrEqual(t, full, partial)
}

func TestFinalScoreNoSubmissions(t *testing.T) {
	score, breakdown := FinalScore(twoSubtaskConfig(), nil)
	assert.Equal(t, 0, score)
	assert.Nil(t, breakdown)
}

func TestFinalScoreBestSubtaskSumFallsBackWhenSubtasksDisabled(t *testing.T) {
	cfg := model.DefaultScoringConfig(1)
	cfg.FinalScoreMethod = model.FinalBestSubtaskSum

	subs := []model.SubmissionWithResult{
		subWithResults(10, 1, 45, nil),
		subWithResults(11, 1, 80, nil),
	}
	score, breakdown := FinalScore(cfg, subs)
	assert.Equal(t, 80, score)
	assert.Nil(t, breakdown)
}

func TestFinalScoreIgnoresUnjudgedSubmissions(t *testing.T) {
	cfg := model.DefaultScoringConfig(1)
	subs := []model.SubmissionWithResult{
		{Submission: model.Submission{ID: 10, UserID: 1, ProblemID: 1}}, // no judge result yet
		subWithResults(11, 1, 55, nil),
	}
	score, _ := FinalScore(cfg, subs)
	assert.Equal(t, 55, score)
}
