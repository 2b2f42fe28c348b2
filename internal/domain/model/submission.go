package model

import "time"

// Verdict is the categorical judging outcome for a test case, subtask or submission.
type Verdict string

const (
	VerdictAccepted            Verdict = "Accepted"
	VerdictPartiallyCorrect    Verdict = "PartiallyCorrect"
	VerdictWrongAnswer         Verdict = "WrongAnswer"
	VerdictTimeLimitExceeded   Verdict = "TimeLimitExceeded"
	VerdictMemoryLimitExceeded Verdict = "MemoryLimitExceeded"
	VerdictRuntimeError        Verdict = "RuntimeError"
	VerdictCompileError        Verdict = "CompileError"
	VerdictSystemError         Verdict = "SystemError"

	// VerdictNotAttempted marks a test case that a subtask lists but the
	// submission has no recorded result for.
	VerdictNotAttempted Verdict = "NotAttempted"
	// VerdictNoData marks a subtask with no test cases configured.
	VerdictNoData Verdict = "NoData"
	// VerdictNotJudged is reported when a submission has no judge result yet.
	VerdictNotJudged Verdict = "NotJudged"
	VerdictNotFound  Verdict = "NotFound"
	VerdictUnknown   Verdict = "Unknown"
)

type Submission struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProblemID int64     `json:"problem_id"`
	Language  string    `json:"language"`
	Code      string    `json:"code"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// JudgeResult is the stored per-submission judging summary. Score, verdict and
// the time/memory maxima are overwritten whenever the submission is rescored.
type JudgeResult struct {
	ID           int64     `json:"id"`
	SubmissionID int64     `json:"submission_id"`
	Verdict      Verdict   `json:"verdict"`
	Score        int       `json:"score"`
	TimeUsed     int       `json:"time_used"`
	MemoryUsed   int       `json:"memory_used"`
	CreatedAt    time.Time `json:"created_at"`
}

// TestCaseResult is produced by the judging subsystem and immutable once
// recorded. ExpectedScore is the maximum attainable for that case.
type TestCaseResult struct {
	ID            int64     `json:"id"`
	JudgeResultID int64     `json:"judge_result_id"`
	TestCaseID    int64     `json:"test_case_id"`
	Verdict       Verdict   `json:"verdict"`
	Score         int       `json:"score"`
	ExpectedScore int       `json:"expected_score"`
	TimeUsed      int       `json:"time_used"`
	MemoryUsed    int       `json:"memory_used"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmissionWithResult bundles a submission with its judge result (nil when the
// submission has not been judged) and its test case results.
type SubmissionWithResult struct {
	Submission      Submission       `json:"submission"`
	Result          *JudgeResult     `json:"result,omitempty"`
	TestCaseResults []TestCaseResult `json:"test_case_results,omitempty"`
}
