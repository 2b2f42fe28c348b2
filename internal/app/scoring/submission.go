package scoring

import (
	"ioi_scoring/internal/domain/model"
)

// implicitMaxScore is the problem budget when subtask mode is disabled and
// test case scores are summed directly.
const implicitMaxScore = 100

// SubmissionScore is the full recomputed outcome for one submission.
type SubmissionScore struct {
	SubtaskResults []model.SubtaskResult
	TotalScore     int
	MaxScore       int
	Verdict        model.Verdict
	TimeUsed       int
	MemoryUsed     int
}

// ProblemMaxScore is the maximum attainable total for a problem under the
// given configuration.
func ProblemMaxScore(cfg model.ProblemScoringConfig) int {
	if !cfg.SubtaskEnabled {
		return implicitMaxScore
	}
	max := 0
	for _, st := range cfg.Subtasks {
		max += st.MaxScore
	}
	return max
}

// SubtaskResults computes one SubtaskResult per configured subtask, in
// configuration order. Empty when subtask mode is disabled.
func SubtaskResults(cfg model.ProblemScoringConfig, results []model.TestCaseResult) []model.SubtaskResult {
	if !cfg.SubtaskEnabled {
		return nil
	}
	byCase := ResultsByTestCase(results)
	out := make([]model.SubtaskResult, 0, len(cfg.Subtasks))
	for _, st := range cfg.Subtasks {
		out = append(out, ScoreSubtask(st, byCase))
	}
	return out
}

// ScoreSubmission turns a submission's test case results into subtask results,
// a total score and an overall verdict. It is idempotent: the same inputs
// always produce the same outcome, so rescoring may overwrite prior values.
func ScoreSubmission(cfg model.ProblemScoringConfig, results []model.TestCaseResult) SubmissionScore {
	out := SubmissionScore{MaxScore: ProblemMaxScore(cfg)}
	for _, r := range results {
		if r.TimeUsed > out.TimeUsed {
			out.TimeUsed = r.TimeUsed
		}
		if r.MemoryUsed > out.MemoryUsed {
			out.MemoryUsed = r.MemoryUsed
		}
	}

	if cfg.SubtaskEnabled && len(cfg.Subtasks) > 0 {
		out.SubtaskResults = SubtaskResults(cfg, results)
		for _, sr := range out.SubtaskResults {
			out.TotalScore += sr.Score
		}
		out.Verdict = overallVerdictFromSubtasks(out.SubtaskResults, out.TotalScore, out.MaxScore)
		return out
	}

	// Degenerate mode: the whole problem is one implicit Sum subtask.
	sum := 0
	for _, r := range results {
		sum += r.Score
	}
	out.TotalScore = clamp(sum, 0, out.MaxScore)
	out.Verdict = overallVerdictFromTestCases(results, out.TotalScore, out.MaxScore)
	return out
}

func overallVerdictFromSubtasks(subtasks []model.SubtaskResult, total, max int) model.Verdict {
	if len(subtasks) == 0 {
		return model.VerdictUnknown
	}
	if total >= max {
		return model.VerdictAccepted
	}
	if total > 0 {
		return model.VerdictPartiallyCorrect
	}
	for _, sr := range subtasks {
		if sr.Verdict != model.VerdictAccepted && sr.Verdict != model.VerdictNoData {
			return sr.Verdict
		}
	}
	return model.VerdictWrongAnswer
}

func overallVerdictFromTestCases(results []model.TestCaseResult, total, max int) model.Verdict {
	if len(results) == 0 {
		return model.VerdictUnknown
	}
	if total >= max {
		return model.VerdictAccepted
	}
	if total > 0 {
		return model.VerdictPartiallyCorrect
	}
	for _, r := range results {
		if r.Verdict != model.VerdictAccepted {
			return r.Verdict
		}
	}
	return model.VerdictWrongAnswer
}
