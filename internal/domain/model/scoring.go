package model

// SubtaskResult is computed from a submission's test case results; it is never
// a stored input.
type SubtaskResult struct {
	SubtaskID   int64   `json:"subtask_id"`
	SubtaskName string  `json:"subtask_name"`
	Score       int     `json:"score"`
	MaxScore    int     `json:"max_score"`
	Verdict     Verdict `json:"verdict"`
	TimeUsed    int     `json:"time_used"`
	MemoryUsed  int     `json:"memory_used"`
}

// SubtaskBestScore is the best score for one subtask across all of a user's
// submissions (BestSubtaskSum breakdown).
type SubtaskBestScore struct {
	SubtaskID   int64  `json:"subtask_id"`
	SubtaskName string `json:"subtask_name"`
	BestScore   int    `json:"best_score"`
	MaxScore    int    `json:"max_score"`
}

// ProblemScore is one user's final standing on one problem.
type ProblemScore struct {
	ProblemID       int64              `json:"problem_id"`
	ProblemTitle    string             `json:"problem_title"`
	Score           int                `json:"score"`
	MaxScore        int                `json:"max_score"`
	SubmissionCount int                `json:"submission_count"`
	SubtaskScores   []SubtaskBestScore `json:"subtask_scores,omitempty"`
}

// LeaderboardEntry is one ranked row; recomputed on every request, never
// persisted.
type LeaderboardEntry struct {
	Rank          int            `json:"rank"`
	User          User           `json:"user"`
	ProblemScores []ProblemScore `json:"problem_scores"`
	TotalScore    int            `json:"total_score"`
}
