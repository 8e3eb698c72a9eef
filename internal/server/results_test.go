package server

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/labreports-tracker/constants"
	v1 "github.com/joseph-ayodele/labreports-tracker/gen/proto/labreports/v1"
	"github.com/joseph-ayodele/labreports-tracker/internal/common"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
)

type fakeResultsRepo struct {
	results map[uuid.UUID]*entity.LabResult

	getErr error
}

func (f *fakeResultsRepo) UpsertForJob(_ context.Context, res *entity.LabResult) (*entity.LabResult, error) {
	return res, nil
}

func (f *fakeResultsRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.LabResult, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	r, ok := f.results[id]
	if !ok {
		return nil, fmt.Errorf("%w: result %s", common.ErrNotFound, id)
	}
	return r, nil
}

func (f *fakeResultsRepo) GetByJobID(_ context.Context, jobID uuid.UUID) (*entity.LabResult, error) {
	for _, r := range f.results {
		if r.JobID == jobID {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: no result for job %s", common.ErrNotFound, jobID)
}

type fakeJobsRepo struct {
	jobs map[uuid.UUID]*entity.AnalysisJob

	getErr error
}

func (f *fakeJobsRepo) Create(context.Context, uuid.UUID, uuid.UUID) (*entity.AnalysisJob, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeJobsRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.AnalysisJob, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, id)
	}
	return j, nil
}

func (f *fakeJobsRepo) GetForOwner(ctx context.Context, id, profileID uuid.UUID) (*entity.AnalysisJob, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	j, err := f.GetByID(ctx, id)
	if err != nil || j.ProfileID != profileID {
		return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, id)
	}
	return j, nil
}

func (f *fakeJobsRepo) FindActive(context.Context, uuid.UUID, uuid.UUID) (*entity.AnalysisJob, error) {
	return nil, fmt.Errorf("%w: no active job", common.ErrNotFound)
}

func (f *fakeJobsRepo) Update(context.Context, uuid.UUID, entity.JobUpdate) (bool, error) {
	return false, nil
}

func resultsFixture() (*fakeResultsRepo, *fakeJobsRepo, *entity.LabResult, uuid.UUID) {
	profileID := uuid.New()
	job := &entity.AnalysisJob{
		ID: uuid.New(), FileID: uuid.New(), ProfileID: profileID,
		Status: constants.JobStatusCompleted, Progress: 100,
	}
	res := &entity.LabResult{
		ID:            uuid.New(),
		JobID:         job.ID,
		PanelType:     constants.PanelHormone,
		ReportDate:    time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
		Summary:       "All 1 tests within normal range.",
		TotalTests:    1,
		NormalCount:   1,
		OverallStatus: constants.OverallNormal,
		CreatedAt:     time.Now(),
		Rows: []entity.TestRow{
			{ID: "row-1", Name: "IgG", Value: 1493, Unit: "mg/dL", RefMin: 540, RefMax: 1822, Status: constants.RowNormal},
		},
	}
	results := &fakeResultsRepo{results: map[uuid.UUID]*entity.LabResult{res.ID: res}}
	jobsRepo := &fakeJobsRepo{jobs: map[uuid.UUID]*entity.AnalysisJob{job.ID: job}}
	return results, jobsRepo, res, profileID
}

func TestGetResultOK(t *testing.T) {
	results, jobsRepo, res, profileID := resultsFixture()
	s := NewResultsServer(results, jobsRepo, nil, nil)

	resp, err := s.GetResult(context.Background(), &v1.GetResultRequest{
		ResultId:  res.ID.String(),
		ProfileId: profileID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, res.ID.String(), resp.GetResult().GetId())
	assert.Equal(t, string(constants.PanelHormone), resp.GetResult().GetPanelType())
	require.Len(t, resp.GetResult().GetRows(), 1)
}

func TestGetResultUnknownIsNotFound(t *testing.T) {
	results, jobsRepo, _, profileID := resultsFixture()
	s := NewResultsServer(results, jobsRepo, nil, nil)

	_, err := s.GetResult(context.Background(), &v1.GetResultRequest{
		ResultId:  uuid.New().String(),
		ProfileId: profileID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetResultForeignOwnerLooksAbsent(t *testing.T) {
	results, jobsRepo, res, _ := resultsFixture()
	s := NewResultsServer(results, jobsRepo, nil, nil)

	_, err := s.GetResult(context.Background(), &v1.GetResultRequest{
		ResultId:  res.ID.String(),
		ProfileId: uuid.New().String(),
	})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetResultStorageFailureIsInternal(t *testing.T) {
	results, jobsRepo, res, profileID := resultsFixture()
	results.getErr = fmt.Errorf("connection reset")
	s := NewResultsServer(results, jobsRepo, nil, nil)

	_, err := s.GetResult(context.Background(), &v1.GetResultRequest{
		ResultId:  res.ID.String(),
		ProfileId: profileID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
	// the upstream failure text must not reach the client
	assert.NotContains(t, status.Convert(err).Message(), "connection reset")
}

func TestGetResultOwnerCheckFailureIsInternal(t *testing.T) {
	results, jobsRepo, res, profileID := resultsFixture()
	jobsRepo.getErr = fmt.Errorf("connection reset")
	s := NewResultsServer(results, jobsRepo, nil, nil)

	_, err := s.GetResult(context.Background(), &v1.GetResultRequest{
		ResultId:  res.ID.String(),
		ProfileId: profileID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestGetResultBadUUID(t *testing.T) {
	results, jobsRepo, _, profileID := resultsFixture()
	s := NewResultsServer(results, jobsRepo, nil, nil)

	_, err := s.GetResult(context.Background(), &v1.GetResultRequest{
		ResultId:  "not-a-uuid",
		ProfileId: profileID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
