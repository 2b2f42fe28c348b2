package service

import (
	"context"

	"ioi_scoring/internal/common"
	"ioi_scoring/internal/domain/model"
)

// In-memory repository fakes. They honor the same not-found contracts as the
// real implementations so the services exercise their error paths.

type fakeConfigRepo struct {
	configs map[int64]model.ProblemScoringConfig
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: map[int64]model.ProblemScoringConfig{}}
}

func (f *fakeConfigRepo) Get(_ context.Context, problemID int64) (*model.ProblemScoringConfig, error) {
	cfg, ok := f.configs[problemID]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := cfg
	return &out, nil
}

func (f *fakeConfigRepo) Set(_ context.Context, cfg model.ProblemScoringConfig) error {
	f.configs[cfg.ProblemID] = cfg
	return nil
}

type fakeRescorer struct {
	enqueuedProblems []int64
	countPerCall     int
}

func (f *fakeRescorer) EnqueueProblemRescore(_ context.Context, problemID int64) (int, error) {
	f.enqueuedProblems = append(f.enqueuedProblems, problemID)
	return f.countPerCall, nil
}

type fakeSubmissionRepo struct {
	submissions     map[int64]model.Submission
	judgeResults    map[int64]model.JudgeResult      // by submission id
	testCaseResults map[int64][]model.TestCaseResult // by judge result id
	withResults     []model.SubmissionWithResult
	updatedResults  []model.JudgeResult
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{
		submissions:     map[int64]model.Submission{},
		judgeResults:    map[int64]model.JudgeResult{},
		testCaseResults: map[int64][]model.TestCaseResult{},
	}
}

func (f *fakeSubmissionRepo) GetSubmissionByID(_ context.Context, id int64) (*model.Submission, error) {
	sub, ok := f.submissions[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := sub
	return &out, nil
}

func (f *fakeSubmissionRepo) GetJudgeResultBySubmissionID(_ context.Context, submissionID int64) (*model.JudgeResult, error) {
	jr, ok := f.judgeResults[submissionID]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := jr
	return &out, nil
}

func (f *fakeSubmissionRepo) GetTestCaseResults(_ context.Context, judgeResultID int64) ([]model.TestCaseResult, error) {
	return f.testCaseResults[judgeResultID], nil
}

func (f *fakeSubmissionRepo) UpdateJudgeResult(_ context.Context, jr *model.JudgeResult) error {
	stored, ok := f.judgeResults[jr.SubmissionID]
	if !ok || stored.ID != jr.ID {
		return common.ErrNotFound
	}
	f.judgeResults[jr.SubmissionID] = *jr
	f.updatedResults = append(f.updatedResults, *jr)
	return nil
}

func (f *fakeSubmissionRepo) ListSubmissionsWithResults(_ context.Context, _ int64) ([]model.SubmissionWithResult, error) {
	return f.withResults, nil
}

func (f *fakeSubmissionRepo) ListSubmissionIDsByProblem(_ context.Context, problemID int64) ([]int64, error) {
	ids := []int64{}
	for id, sub := range f.submissions {
		if sub.ProblemID == problemID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type fakeContestRepo struct {
	contests map[int64]model.Contest
	users    []model.User
	problems []model.Problem
}

func (f *fakeContestRepo) GetContestByID(_ context.Context, id int64) (*model.Contest, error) {
	c, ok := f.contests[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := c
	return &out, nil
}

func (f *fakeContestRepo) ListContestUsers(_ context.Context, _ int64) ([]model.User, error) {
	return f.users, nil
}

func (f *fakeContestRepo) ListContestProblems(_ context.Context, _ int64) ([]model.Problem, error) {
	return f.problems, nil
}
