package model

import (
	"fmt"
)

// ScoringMethod combines test-case scores into a subtask score.
type ScoringMethod string

const (
	// ScoringSum adds the raw test case scores, clamped to the subtask budget.
	ScoringSum ScoringMethod = "Sum"
	// ScoringGroupMin awards the full budget only when every listed case is
	// Accepted; anything else scores zero.
	ScoringGroupMin ScoringMethod = "GroupMin"
	// ScoringGroupMul multiplies the per-case score ratios and scales by the
	// budget, so a single zero-scoring case collapses the subtask to zero.
	ScoringGroupMul ScoringMethod = "GroupMul"
)

func (m ScoringMethod) IsValid() bool {
	switch m {
	case ScoringSum, ScoringGroupMin, ScoringGroupMul:
		return true
	}
	return false
}

// FinalScoreMethod combines scores from multiple submissions into one
// per-problem result.
type FinalScoreMethod string

const (
	// FinalBestSubmission takes the best total over all submissions.
	FinalBestSubmission FinalScoreMethod = "BestSubmission"
	// FinalBestSubtaskSum takes, per subtask, the best score over all
	// submissions and sums those. Used at IOI 2010-2016.
	FinalBestSubtaskSum FinalScoreMethod = "BestSubtaskSum"
)

func (m FinalScoreMethod) IsValid() bool {
	return m == FinalBestSubmission || m == FinalBestSubtaskSum
}

type Subtask struct {
	ID            int64         `json:"id" validate:"required"`
	Name          string        `json:"name" validate:"required"`
	MaxScore      int           `json:"max_score" validate:"min=0"`
	ScoringMethod ScoringMethod `json:"scoring_method" validate:"oneof=Sum GroupMin GroupMul"`
	TestCaseIDs   []int64       `json:"test_case_ids" validate:"min=1,unique"`
}

// ProblemScoringConfig is the per-problem scoring configuration, replaced
// wholesale on every reconfiguration.
type ProblemScoringConfig struct {
	ProblemID        int64            `json:"problem_id" validate:"required,gt=0"`
	SubtaskEnabled   bool             `json:"subtask_enabled"`
	FinalScoreMethod FinalScoreMethod `json:"final_score_method" validate:"oneof=BestSubmission BestSubtaskSum"`
	Subtasks         []Subtask        `json:"subtasks" validate:"dive"`
}

// DefaultScoringConfig is what an unconfigured problem scores under: no
// subtasks, best submission wins.
func DefaultScoringConfig(problemID int64) ProblemScoringConfig {
	return ProblemScoringConfig{
		ProblemID:        problemID,
		SubtaskEnabled:   false,
		FinalScoreMethod: FinalBestSubmission,
		Subtasks:         nil,
	}
}

// Validate covers the cross-field rules struct tags cannot express: a test
// case may belong to at most one subtask, and subtask ids must be unique.
func (c ProblemScoringConfig) Validate() error {
	if !c.FinalScoreMethod.IsValid() {
		return fmt.Errorf("unknown final score method %q", c.FinalScoreMethod)
	}
	seenSubtask := make(map[int64]bool, len(c.Subtasks))
	seenCase := make(map[int64]int64)
	for _, st := range c.Subtasks {
		if seenSubtask[st.ID] {
			return fmt.Errorf("duplicate subtask id %d", st.ID)
		}
		seenSubtask[st.ID] = true
		if !st.ScoringMethod.IsValid() {
			return fmt.Errorf("subtask %d: unknown scoring method %q", st.ID, st.ScoringMethod)
		}
		if st.MaxScore < 0 {
			return fmt.Errorf("subtask %d: negative max_score %d", st.ID, st.MaxScore)
		}
		for _, tcID := range st.TestCaseIDs {
			if owner, ok := seenCase[tcID]; ok {
				return fmt.Errorf("test case %d appears in subtasks %d and %d", tcID, owner, st.ID)
			}
			seenCase[tcID] = st.ID
		}
	}
	return nil
}
