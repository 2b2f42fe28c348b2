package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoringMethodIsValid(t *testing.T) {
	assert.True(t, ScoringSum.IsValid())
	assert.True(t, ScoringGroupMin.IsValid())
	assert.True(t, ScoringGroupMul.IsValid())
	assert.False(t, ScoringMethod("Max").IsValid())
	assert.False(t, ScoringMethod("").IsValid())
}

func TestFinalScoreMethodIsValid(t *testing.T) {
	assert.True(t, FinalBestSubmission.IsValid())
	assert.True(t, FinalBestSubtaskSum.IsValid())
	assert.False(t, FinalScoreMethod("Median").IsValid())
}

func TestDefaultScoringConfig(t *testing.T) {
	cfg := DefaultScoringConfig(5)
	assert.Equal(t, int64(5), cfg.ProblemID)
	assert.False(t, cfg.SubtaskEnabled)
	assert.Equal(t, FinalBestSubmission, cfg.FinalScoreMethod)
	assert.Empty(t, cfg.Subtasks)
	require.NoError(t, cfg.Validate())
}

func TestProblemScoringConfigValidate(t *testing.T) {
	valid := ProblemScoringConfig{
		ProblemID:        1,
		SubtaskEnabled:   true,
		FinalScoreMethod: FinalBestSubtaskSum,
		Subtasks: []Subtask{
			{ID: 1, Name: "A", MaxScore: 30, ScoringMethod: ScoringSum, TestCaseIDs: []int64{1, 2}},
			{ID: 2, Name: "B", MaxScore: 70, ScoringMethod: ScoringGroupMin, TestCaseIDs: []int64{3, 4}},
		},
	}
	require.NoError(t, valid.Validate())

	dupSubtask := valid
	dupSubtask.Subtasks = []Subtask{valid.Subtasks[0], valid.Subtasks[0]}
	assert.ErrorContains(t, dupSubtask.Validate(), "duplicate subtask id")

	sharedCase := valid
	sharedCase.Subtasks = []Subtask{
		valid.Subtasks[0],
		{ID: 2, Name: "B", MaxScore: 70, ScoringMethod: ScoringGroupMin, TestCaseIDs: []int64{2, 3}},
	}
	assert.ErrorContains(t, sharedCase.Validate(), "test case 2 appears in subtasks 1 and 2")

	badMethod := valid
	badMethod.Subtasks = []Subtask{
		{ID: 1, Name: "A", MaxScore: 30, ScoringMethod: "Max", TestCaseIDs: []int64{1}},
	}
	assert.ErrorContains(t, badMethod.Validate(), "unknown scoring method")

	negativeScore := valid
	negativeScore.Subtasks = []Subtask{
		{ID: 1, Name: "A", MaxScore: -1, ScoringMethod: ScoringSum, TestCaseIDs: []int64{1}},
	}
	assert.ErrorContains(t, negativeScore.Validate(), "negative max_score")

	badFinal := valid
	badFinal.FinalScoreMethod = "Median"
	assert.ErrorContains(t, badFinal.Validate(), "unknown final score method")
}
