package model

import "time"

// RescoreJob asks the worker to recompute one submission's score, typically
// after the problem's scoring configuration was replaced.
type RescoreJob struct {
	ID           string    `json:"id"`
	SubmissionID int64     `json:"submission_id"`
	ProblemID    int64     `json:"problem_id"`
	EnqueuedAt   time.Time `json:"enqueued_at"`
}
