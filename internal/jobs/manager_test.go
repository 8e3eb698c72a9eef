package jobs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/labreports-tracker/constants"
	"github.com/joseph-ayodele/labreports-tracker/internal/async"
	"github.com/joseph-ayodele/labreports-tracker/internal/common"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
)

type memJobs struct {
	jobs map[uuid.UUID]*entity.AnalysisJob

	findActiveErr error
}

func newMemJobs() *memJobs { return &memJobs{jobs: map[uuid.UUID]*entity.AnalysisJob{}} }

func (m *memJobs) Create(_ context.Context, fileID, profileID uuid.UUID) (*entity.AnalysisJob, error) {
	job := &entity.AnalysisJob{
		ID: uuid.New(), FileID: fileID, ProfileID: profileID,
		Status: constants.JobStatusQueued, CreatedAt: time.Now(),
	}
	m.jobs[job.ID] = job
	return job, nil
}

func (m *memJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.AnalysisJob, error) {
	job, ok := m.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, id)
	}
	cp := *job
	return &cp, nil
}

func (m *memJobs) GetForOwner(ctx context.Context, id, profileID uuid.UUID) (*entity.AnalysisJob, error) {
	job, err := m.GetByID(ctx, id)
	if err != nil || job.ProfileID != profileID {
		return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, id)
	}
	return job, nil
}

func (m *memJobs) FindActive(_ context.Context, fileID, profileID uuid.UUID) (*entity.AnalysisJob, error) {
	if m.findActiveErr != nil {
		return nil, m.findActiveErr
	}
	for _, j := range m.jobs {
		if j.FileID == fileID && j.ProfileID == profileID && !j.Status.Terminal() {
			cp := *j
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: no active job", common.ErrNotFound)
}

func (m *memJobs) Update(_ context.Context, id uuid.UUID, upd entity.JobUpdate) (bool, error) {
	job, ok := m.jobs[id]
	if !ok || job.Status.Terminal() {
		return false, nil
	}
	if upd.Progress != nil && job.Progress > *upd.Progress {
		return false, nil
	}
	if upd.Status != nil {
		job.Status = *upd.Status
	}
	if upd.Progress != nil {
		job.Progress = *upd.Progress
	}
	if upd.ResultID != nil {
		job.ResultID = upd.ResultID
	}
	if upd.ErrorMessage != nil {
		job.ErrorMessage = upd.ErrorMessage
	}
	return true, nil
}

type memFiles struct {
	files map[uuid.UUID]*entity.ReportFile
}

func (m *memFiles) GetByID(_ context.Context, id uuid.UUID) (*entity.ReportFile, error) {
	f, ok := m.files[id]
	if !ok {
		return nil, fmt.Errorf("%w: report file %s", common.ErrNotFound, id)
	}
	return f, nil
}

func (m *memFiles) Create(context.Context, uuid.UUID, string, string, time.Time) (*entity.ReportFile, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *memFiles) ListByProfile(context.Context, uuid.UUID) ([]*entity.ReportFile, error) {
	return nil, fmt.Errorf("not implemented")
}

type memProfiles struct {
	ids map[uuid.UUID]bool

	existsErr error
}

func (m *memProfiles) GetByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	if !m.ids[id] {
		return nil, fmt.Errorf("%w: profile %s", common.ErrNotFound, id)
	}
	return &entity.Profile{ID: id, Name: "test"}, nil
}

func (m *memProfiles) CreateProfile(context.Context, string) (*entity.Profile, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *memProfiles) ListProfiles(context.Context) ([]*entity.Profile, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *memProfiles) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.ids[id], nil
}

type memQueue struct {
	enqueued []async.Job
	fail     bool
}

func (q *memQueue) Enqueue(_ context.Context, job async.Job) error {
	if q.fail {
		return fmt.Errorf("queue unavailable")
	}
	q.enqueued = append(q.enqueued, job)
	return nil
}

func (q *memQueue) Shutdown(context.Context) {}

func setup() (*Manager, *memJobs, *memQueue, uuid.UUID, uuid.UUID) {
	fileID := uuid.New()
	profileID := uuid.New()
	jobsRepo := newMemJobs()
	queue := &memQueue{}
	files := &memFiles{files: map[uuid.UUID]*entity.ReportFile{
		fileID: {ID: fileID, ProfileID: profileID, Filename: "report.pdf", ReportText: "IgG\n(540 - 1822 mg/dL)\n1493\n"},
	}}
	profiles := &memProfiles{ids: map[uuid.UUID]bool{profileID: true}}
	return NewManager(jobsRepo, files, profiles, queue, nil), jobsRepo, queue, fileID, profileID
}

func TestCreateJobEnqueuesOnce(t *testing.T) {
	m, _, queue, fileID, profileID := setup()

	job, err := m.CreateJob(context.Background(), fileID, profileID)
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusQueued, job.Status)
	assert.Zero(t, job.Progress)
	require.Len(t, queue.enqueued, 1)
	assert.Equal(t, job.ID, queue.enqueued[0].JobID)
	assert.Equal(t, fileID, queue.enqueued[0].FileID)
	assert.NotEmpty(t, queue.enqueued[0].TraceID)
}

func TestCreateJobUnknownProfile(t *testing.T) {
	m, _, queue, fileID, _ := setup()

	_, err := m.CreateJob(context.Background(), fileID, uuid.New())
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, queue.enqueued)
}

func TestCreateJobProfileCheckFailureSurfaces(t *testing.T) {
	m, _, queue, fileID, profileID := setup()
	m.Profiles.(*memProfiles).existsErr = fmt.Errorf("db down")

	_, err := m.CreateJob(context.Background(), fileID, profileID)
	require.ErrorIs(t, err, common.ErrPersistence)
	assert.Empty(t, queue.enqueued)
}

func TestCreateJobUnknownFile(t *testing.T) {
	m, _, queue, _, profileID := setup()

	_, err := m.CreateJob(context.Background(), uuid.New(), profileID)
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, queue.enqueued)
}

func TestCreateJobForeignFileLooksAbsent(t *testing.T) {
	m, _, _, fileID, _ := setup()
	foreign := uuid.New()
	m.Profiles.(*memProfiles).ids[foreign] = true

	_, err := m.CreateJob(context.Background(), fileID, foreign)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreateJobConflictsWithActiveJob(t *testing.T) {
	m, _, queue, fileID, profileID := setup()
	_, err := m.CreateJob(context.Background(), fileID, profileID)
	require.NoError(t, err)

	_, err = m.CreateJob(context.Background(), fileID, profileID)
	require.ErrorIs(t, err, common.ErrConflict)
	assert.Len(t, queue.enqueued, 1)
}

func TestCreateJobConflictCheckFailureIsNotAllClear(t *testing.T) {
	m, jobsRepo, queue, fileID, profileID := setup()
	jobsRepo.findActiveErr = fmt.Errorf("connection reset")

	_, err := m.CreateJob(context.Background(), fileID, profileID)
	require.ErrorIs(t, err, common.ErrPersistence)
	assert.Empty(t, queue.enqueued)
	assert.Empty(t, jobsRepo.jobs)
}

func TestCreateJobAllowedAfterTerminal(t *testing.T) {
	m, jobsRepo, queue, fileID, profileID := setup()
	first, err := m.CreateJob(context.Background(), fileID, profileID)
	require.NoError(t, err)

	done := constants.JobStatusCompleted
	_, err = jobsRepo.Update(context.Background(), first.ID, entity.JobUpdate{Status: &done})
	require.NoError(t, err)

	second, err := m.CreateJob(context.Background(), fileID, profileID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, queue.enqueued, 2)
}

func TestGetJobStatus(t *testing.T) {
	m, _, _, fileID, profileID := setup()
	job, err := m.CreateJob(context.Background(), fileID, profileID)
	require.NoError(t, err)

	got, err := m.GetJobStatus(context.Background(), job.ID, profileID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, constants.JobStatusQueued, got.Status)

	_, err = m.GetJobStatus(context.Background(), job.ID, uuid.New())
	require.ErrorIs(t, err, common.ErrNotFound)

	_, err = m.GetJobStatus(context.Background(), uuid.New(), profileID)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestCancelJob(t *testing.T) {
	m, _, _, fileID, profileID := setup()
	job, err := m.CreateJob(context.Background(), fileID, profileID)
	require.NoError(t, err)

	cancelled, err := m.CancelJob(context.Background(), job.ID, profileID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, cancelled.Status)
	require.NotNil(t, cancelled.ErrorMessage)
	assert.Equal(t, "cancelled", *cancelled.ErrorMessage)
}

func TestCancelTerminalJobRejected(t *testing.T) {
	m, jobsRepo, _, fileID, profileID := setup()
	job, err := m.CreateJob(context.Background(), fileID, profileID)
	require.NoError(t, err)

	done := constants.JobStatusCompleted
	_, err = jobsRepo.Update(context.Background(), job.ID, entity.JobUpdate{Status: &done})
	require.NoError(t, err)

	_, err = m.CancelJob(context.Background(), job.ID, profileID)
	require.ErrorIs(t, err, common.ErrInvalidState)

	got, err := m.GetJobStatus(context.Background(), job.ID, profileID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, got.Status)
}

func TestCreateJobQueueFailureSurfaces(t *testing.T) {
	m, _, queue, fileID, profileID := setup()
	queue.fail = true

	_, err := m.CreateJob(context.Background(), fileID, profileID)
	require.Error(t, err)
}
