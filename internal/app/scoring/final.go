package scoring

import (
	"ioi_scoring/internal/domain/model"
)

// FinalScore aggregates all of a user's submissions for one problem into a
// final score. BestSubmission reads the stored judge result totals;
// BestSubtaskSum recomputes each subtask from every submission's test case
// results and combines the per-subtask maxima, so the final score can exceed
// any single submission's total. The per-subtask breakdown is returned for
// BestSubtaskSum and nil otherwise.
//
// Adding a submission can never lower the result. No submissions means 0.
func FinalScore(cfg model.ProblemScoringConfig, subs []model.SubmissionWithResult) (int, []model.SubtaskBestScore) {
	if len(subs) == 0 {
		return 0, nil
	}

	if cfg.FinalScoreMethod != model.FinalBestSubtaskSum ||
		!cfg.SubtaskEnabled || len(cfg.Subtasks) == 0 {
		return bestSubmissionTotal(subs), nil
	}

	breakdown := make([]model.SubtaskBestScore, 0, len(cfg.Subtasks))
	total := 0
	for _, st := range cfg.Subtasks {
		best := 0
		for _, sub := range subs {
			score := ScoreSubtask(st, ResultsByTestCase(sub.TestCaseResults)).Score
			if score > best {
				best = score
			}
		}
		breakdown = append(breakdown, model.SubtaskBestScore{
			SubtaskID:   st.ID,
			SubtaskName: st.Name,
			BestScore:   best,
			MaxScore:    st.MaxScore,
		})
		total += best
	}
	return total, breakdown
}

func bestSubmissionTotal(subs []model.SubmissionWithResult) int {
	best := 0
	for _, sub := range subs {
		if sub.Result != nil && sub.Result.Score > best {
			best = sub.Result.Score
		}
	}
	return best
}
