// Package scoring implements the pure IOI scoring pipeline: test case results
// roll up into subtask scores, subtask scores into submission totals, totals
// into per-problem final scores, and final scores into ranked leaderboards.
// Every function here is a deterministic, side-effect-free function of its
// inputs; storage and transport live in the surrounding services.
package scoring

import (
	"math"

	"ioi_scoring/internal/domain/model"
)

// ResultsByTestCase indexes test case results by their test case id for
// subtask lookups.
func ResultsByTestCase(results []model.TestCaseResult) map[int64]model.TestCaseResult {
	byCase := make(map[int64]model.TestCaseResult, len(results))
	for _, r := range results {
		byCase[r.TestCaseID] = r
	}
	return byCase
}

// ScoreSubtask computes one subtask's score and verdict for a submission.
//
// A test case the subtask lists but the submission has no result for counts as
// score 0 with verdict NotAttempted; under GroupMul its factor is 0. A subtask
// with no test cases configured scores 0 with verdict NoData.
func ScoreSubtask(st model.Subtask, byCase map[int64]model.TestCaseResult) model.SubtaskResult {
	out := model.SubtaskResult{
		SubtaskID:   st.ID,
		SubtaskName: st.Name,
		MaxScore:    st.MaxScore,
	}
	if len(st.TestCaseIDs) == 0 {
		out.Verdict = model.VerdictNoData
		return out
	}

	allAccepted := true
	firstFailing := model.VerdictUnknown
	haveFailing := false
	for _, tcID := range st.TestCaseIDs {
		r, ok := byCase[tcID]
		v := model.VerdictNotAttempted
		if ok {
			v = r.Verdict
			if r.TimeUsed > out.TimeUsed {
				out.TimeUsed = r.TimeUsed
			}
			if r.MemoryUsed > out.MemoryUsed {
				out.MemoryUsed = r.MemoryUsed
			}
		}
		if v != model.VerdictAccepted {
			allAccepted = false
			if !haveFailing {
				firstFailing = v
				haveFailing = true
			}
		}
	}

	switch st.ScoringMethod {
	case model.ScoringGroupMin:
		if allAccepted {
			out.Score = st.MaxScore
		}
	case model.ScoringGroupMul:
		product := 1.0
		for _, tcID := range st.TestCaseIDs {
			r, ok := byCase[tcID]
			if !ok {
				product = 0
				break
			}
			product *= caseFactor(r)
		}
		out.Score = int(math.Round(float64(st.MaxScore) * product))
	default: // Sum
		sum := 0
		for _, tcID := range st.TestCaseIDs {
			if r, ok := byCase[tcID]; ok {
				sum += r.Score
			}
		}
		out.Score = clamp(sum, 0, st.MaxScore)
	}

	switch {
	case out.Score == st.MaxScore:
		out.Verdict = model.VerdictAccepted
	case out.Score > 0:
		out.Verdict = model.VerdictPartiallyCorrect
	default:
		out.Verdict = firstFailing
	}
	return out
}

// caseFactor is the GroupMul ratio for one test case, total by construction:
// the achieved/expected ratio clamped to [0, 1]; when the expected score is 0
// the factor is 1 if nothing was achieved either, else 0.
func caseFactor(r model.TestCaseResult) float64 {
	if r.ExpectedScore <= 0 {
		if r.Score == 0 {
			return 1
		}
		return 0
	}
	f := float64(r.Score) / float64(r.ExpectedScore)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
