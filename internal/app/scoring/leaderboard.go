package scoring

import (
	"sort"

	"ioi_scoring/internal/domain/model"
)

// BuildLeaderboard computes the full ranked standings for a contest. configs
// must hold a (possibly default) scoring config for every problem.
//
// Entries are ordered by total score descending, with username ascending as a
// deterministic tie-break on the ordering only. Tied totals share a rank and
// the rank after a tie skips the tied positions (scores 100, 70, 70, 50 rank
// 1, 2, 2, 4).
func BuildLeaderboard(
	users []model.User,
	problems []model.Problem,
	submissions []model.SubmissionWithResult,
	configs map[int64]model.ProblemScoringConfig,
) []model.LeaderboardEntry {
	byUser := make(map[int64][]model.SubmissionWithResult, len(users))
	for _, sub := range submissions {
		uid := sub.Submission.UserID
		byUser[uid] = append(byUser[uid], sub)
	}

	entries := make([]model.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		userSubs := byUser[user.ID]

		problemScores := make([]model.ProblemScore, 0, len(problems))
		total := 0
		for _, problem := range problems {
			var problemSubs []model.SubmissionWithResult
			for _, sub := range userSubs {
				if sub.Submission.ProblemID == problem.ID {
					problemSubs = append(problemSubs, sub)
				}
			}

			cfg, ok := configs[problem.ID]
			if !ok {
				cfg = model.DefaultScoringConfig(problem.ID)
			}
			score, subtaskScores := FinalScore(cfg, problemSubs)

			problemScores = append(problemScores, model.ProblemScore{
				ProblemID:       problem.ID,
				ProblemTitle:    problem.Title,
				Score:           score,
				MaxScore:        ProblemMaxScore(cfg),
				SubmissionCount: len(problemSubs),
				SubtaskScores:   subtaskScores,
			})
			total += score
		}

		entries = append(entries, model.LeaderboardEntry{
			User:          user,
			ProblemScores: problemScores,
			TotalScore:    total,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		return entries[i].User.Username < entries[j].User.Username
	})

	rank := 1
	for i := range entries {
		if i > 0 && entries[i].TotalScore != entries[i-1].TotalScore {
			rank = i + 1
		}
		entries[i].Rank = rank
	}
	return entries
}

// Paginate slices ranked entries by 1-based page and page size. Pages past the
// end are empty, never an error.
func Paginate(entries []model.LeaderboardEntry, page, pageSize int) []model.LeaderboardEntry {
	start := (page - 1) * pageSize
	if start >= len(entries) || start < 0 {
		return []model.LeaderboardEntry{}
	}
	end := start + pageSize
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end]
}
