package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ioi_scoring/internal/common"
	"ioi_scoring/internal/domain/model"
)

type SubmissionRepository interface {
	GetSubmissionByID(ctx context.Context, id int64) (*model.Submission, error)
	GetJudgeResultBySubmissionID(ctx context.Context, submissionID int64) (*model.JudgeResult, error)
	GetTestCaseResults(ctx context.Context, judgeResultID int64) ([]model.TestCaseResult, error)
	// UpdateJudgeResult overwrites the stored verdict, score and resource
	// maxima; rescoring calls this repeatedly for the same row.
	UpdateJudgeResult(ctx context.Context, jr *model.JudgeResult) error
	ListSubmissionsWithResults(ctx context.Context, contestID int64) ([]model.SubmissionWithResult, error)
	ListSubmissionIDsByProblem(ctx context.Context, problemID int64) ([]int64, error)
}

type pgSubmissionRepository struct {
	db *sql.DB
}

func NewPgSubmissionRepository(db *sql.DB) SubmissionRepository {
	return &pgSubmissionRepository{db: db}
}

func (r *pgSubmissionRepository) GetSubmissionByID(ctx context.Context, id int64) (*model.Submission, error) {
	query := `SELECT id, user_id, problem_id, language, code, status, created_at
	          FROM submissions WHERE id = $1`
	sub := &model.Submission{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sub.ID, &sub.UserID, &sub.ProblemID, &sub.Language, &sub.Code, &sub.Status, &sub.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgSubmissionRepository.GetSubmissionByID: %w", err)
	}
	return sub, nil
}

func (r *pgSubmissionRepository) GetJudgeResultBySubmissionID(ctx context.Context, submissionID int64) (*model.JudgeResult, error) {
	query := `SELECT id, submission_id, verdict, score, time_used, memory_used, created_at
	          FROM judge_results WHERE submission_id = $1`
	jr := &model.JudgeResult{}
	err := r.db.QueryRowContext(ctx, query, submissionID).Scan(
		&jr.ID, &jr.SubmissionID, &jr.Verdict, &jr.Score, &jr.TimeUsed, &jr.MemoryUsed, &jr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgSubmissionRepository.GetJudgeResultBySubmissionID: %w", err)
	}
	return jr, nil
}

func (r *pgSubmissionRepository) GetTestCaseResults(ctx context.Context, judgeResultID int64) ([]model.TestCaseResult, error) {
	query := `SELECT id, judge_result_id, test_case_id, verdict, score, expected_score,
	                 time_used, memory_used, created_at
	          FROM test_case_results WHERE judge_result_id = $1 ORDER BY test_case_id`
	rows, err := r.db.QueryContext(ctx, query, judgeResultID)
	if err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.GetTestCaseResults: %w", err)
	}
	defer rows.Close()
	return scanTestCaseResults(rows)
}

func (r *pgSubmissionRepository) UpdateJudgeResult(ctx context.Context, jr *model.JudgeResult) error {
	query := `UPDATE judge_results
	          SET verdict = $1, score = $2, time_used = $3, memory_used = $4
	          WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, jr.Verdict, jr.Score, jr.TimeUsed, jr.MemoryUsed, jr.ID)
	if err != nil {
		return fmt.Errorf("pgSubmissionRepository.UpdateJudgeResult: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// ListSubmissionsWithResults loads every submission in the contest together
// with its judge result and test case results, for leaderboard computation.
func (r *pgSubmissionRepository) ListSubmissionsWithResults(ctx context.Context, contestID int64) ([]model.SubmissionWithResult, error) {
	query := `SELECT s.id, s.user_id, s.problem_id, s.language, s.status, s.created_at,
	                 jr.id, jr.verdict, jr.score, jr.time_used, jr.memory_used, jr.created_at
	          FROM submissions s
	          JOIN problems p ON p.id = s.problem_id
	          LEFT JOIN judge_results jr ON jr.submission_id = s.id
	          WHERE p.contest_id = $1
	          ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, query, contestID)
	if err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.ListSubmissionsWithResults: %w", err)
	}
	defer rows.Close()

	subs := []model.SubmissionWithResult{}
	byJudgeResult := map[int64]int{} // judge result id -> index in subs
	for rows.Next() {
		var swr model.SubmissionWithResult
		var jrID, jrScore, jrTime, jrMemory sql.NullInt64
		var jrVerdict sql.NullString
		var jrCreatedAt sql.NullTime
		err := rows.Scan(
			&swr.Submission.ID, &swr.Submission.UserID, &swr.Submission.ProblemID,
			&swr.Submission.Language, &swr.Submission.Status, &swr.Submission.CreatedAt,
			&jrID, &jrVerdict, &jrScore, &jrTime, &jrMemory, &jrCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("pgSubmissionRepository.ListSubmissionsWithResults scan: %w", err)
		}
		if jrID.Valid {
			swr.Result = &model.JudgeResult{
				ID:           jrID.Int64,
				SubmissionID: swr.Submission.ID,
				Verdict:      model.Verdict(jrVerdict.String),
				Score:        int(jrScore.Int64),
				TimeUsed:     int(jrTime.Int64),
				MemoryUsed:   int(jrMemory.Int64),
				CreatedAt:    jrCreatedAt.Time,
			}
			byJudgeResult[jrID.Int64] = len(subs)
		}
		subs = append(subs, swr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.ListSubmissionsWithResults rows: %w", err)
	}
	if len(byJudgeResult) == 0 {
		return subs, nil
	}

	ids := make([]int64, 0, len(byJudgeResult))
	for id := range byJudgeResult {
		ids = append(ids, id)
	}
	tcQuery := `SELECT id, judge_result_id, test_case_id, verdict, score, expected_score,
	                   time_used, memory_used, created_at
	            FROM test_case_results WHERE judge_result_id = ANY($1) ORDER BY test_case_id`
	tcRows, err := r.db.QueryContext(ctx, tcQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.ListSubmissionsWithResults test cases: %w", err)
	}
	defer tcRows.Close()
	results, err := scanTestCaseResults(tcRows)
	if err != nil {
		return nil, err
	}
	for _, tcr := range results {
		if i, ok := byJudgeResult[tcr.JudgeResultID]; ok {
			subs[i].TestCaseResults = append(subs[i].TestCaseResults, tcr)
		}
	}
	return subs, nil
}

func (r *pgSubmissionRepository) ListSubmissionIDsByProblem(ctx context.Context, problemID int64) ([]int64, error) {
	query := `SELECT id FROM submissions WHERE problem_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, problemID)
	if err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.ListSubmissionIDsByProblem: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("pgSubmissionRepository.ListSubmissionIDsByProblem scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanTestCaseResults(rows *sql.Rows) ([]model.TestCaseResult, error) {
	results := []model.TestCaseResult{}
	for rows.Next() {
		var tcr model.TestCaseResult
		err := rows.Scan(
			&tcr.ID, &tcr.JudgeResultID, &tcr.TestCaseID, &tcr.Verdict, &tcr.Score,
			&tcr.ExpectedScore, &tcr.TimeUsed, &tcr.MemoryUsed, &tcr.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanTestCaseResults: %w", err)
		}
		results = append(results, tcr)
	}
	return results, rows.Err()
}
