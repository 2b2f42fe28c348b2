package model

import "time"

type Contest struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
}

type Problem struct {
	ID            int64     `json:"id"`
	ContestID     int64     `json:"contest_id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug,omitempty"` // derived from title, not stored
	TimeLimitMs   int       `json:"time_limit_ms"`
	MemoryLimitKb int       `json:"memory_limit_kb"`
	CreatedAt     time.Time `json:"created_at"`
}
