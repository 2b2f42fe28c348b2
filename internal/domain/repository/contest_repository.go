package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ioi_scoring/internal/common"
	"ioi_scoring/internal/domain/model"
)

type ContestRepository interface {
	GetContestByID(ctx context.Context, id int64) (*model.Contest, error)
	ListContestUsers(ctx context.Context, contestID int64) ([]model.User, error)
	ListContestProblems(ctx context.Context, contestID int64) ([]model.Problem, error)
}

type pgContestRepository struct {
	db *sql.DB
}

func NewPgContestRepository(db *sql.DB) ContestRepository {
	return &pgContestRepository{db: db}
}

func (r *pgContestRepository) GetContestByID(ctx context.Context, id int64) (*model.Contest, error) {
	query := `SELECT id, title, description, start_time, end_time, created_at
	          FROM contests WHERE id = $1`
	contest := &model.Contest{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&contest.ID, &contest.Title, &contest.Description,
		&contest.StartTime, &contest.EndTime, &contest.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgContestRepository.GetContestByID: %w", err)
	}
	return contest, nil
}

func (r *pgContestRepository) ListContestUsers(ctx context.Context, contestID int64) ([]model.User, error) {
	query := `SELECT u.id, u.username, u.created_at
	          FROM users u
	          JOIN contest_participants cp ON cp.user_id = u.id
	          WHERE cp.contest_id = $1
	          ORDER BY u.id`
	rows, err := r.db.QueryContext(ctx, query, contestID)
	if err != nil {
		return nil, fmt.Errorf("pgContestRepository.ListContestUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgContestRepository.ListContestUsers scan: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *pgContestRepository) ListContestProblems(ctx context.Context, contestID int64) ([]model.Problem, error) {
	query := `SELECT id, contest_id, title, time_limit_ms, memory_limit_kb, created_at
	          FROM problems WHERE contest_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, contestID)
	if err != nil {
		return nil, fmt.Errorf("pgContestRepository.ListContestProblems: %w", err)
	}
	defer rows.Close()

	problems := []model.Problem{}
	for rows.Next() {
		var p model.Problem
		if err := rows.Scan(&p.ID, &p.ContestID, &p.Title, &p.TimeLimitMs, &p.MemoryLimitKb, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgContestRepository.ListContestProblems scan: %w", err)
		}
		problems = append(problems, p)
	}
	return problems, rows.Err()
}
