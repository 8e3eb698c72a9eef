package pipeline

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/labreports-tracker/constants"
	"github.com/joseph-ayodele/labreports-tracker/internal/async"
	"github.com/joseph-ayodele/labreports-tracker/internal/common"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
	"github.com/joseph-ayodele/labreports-tracker/internal/extract"
)

const hormoneReport = `LABORATORY REPORT
Date: 17.03.2024

IgG
(540 - 1822 mg/dL)
1493

SHBG
(18.3 - 54.1 nmol/L)
60.0

Testosterone
(8.6 - 29.0 nmol/L)
4.1

Doctor's notes: discuss testosterone result
`

// fakeJobs applies the same conditional-update semantics as the real
// repository: non-terminal only, progress never decreases.
type fakeJobs struct {
	mu       sync.Mutex
	jobs     map[uuid.UUID]*entity.AnalysisJob
	progress []int
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{jobs: map[uuid.UUID]*entity.AnalysisJob{}}
}

func (f *fakeJobs) add(job *entity.AnalysisJob) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[job.ID] = job
}

func (f *fakeJobs) Create(_ context.Context, fileID, profileID uuid.UUID) (*entity.AnalysisJob, error) {
	job := &entity.AnalysisJob{
		ID: uuid.New(), FileID: fileID, ProfileID: profileID,
		Status: constants.JobStatusQueued,
	}
	f.add(job)
	return job, nil
}

func (f *fakeJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.AnalysisJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %s not found", id)
	}
	cp := *job
	return &cp, nil
}

func (f *fakeJobs) GetForOwner(ctx context.Context, id, _ uuid.UUID) (*entity.AnalysisJob, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeJobs) FindActive(_ context.Context, fileID, profileID uuid.UUID) (*entity.AnalysisJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.jobs {
		if j.FileID == fileID && j.ProfileID == profileID && !j.Status.Terminal() {
			cp := *j
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("no active job")
}

func (f *fakeJobs) Update(_ context.Context, id uuid.UUID, upd entity.JobUpdate) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
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
		f.progress = append(f.progress, *upd.Progress)
	}
	if upd.ResultID != nil {
		job.ResultID = upd.ResultID
	}
	if upd.ErrorMessage != nil {
		job.ErrorMessage = upd.ErrorMessage
	}
	return true, nil
}

type fakeFiles struct {
	files map[uuid.UUID]*entity.ReportFile
}

func (f *fakeFiles) GetByID(_ context.Context, id uuid.UUID) (*entity.ReportFile, error) {
	file, ok := f.files[id]
	if !ok {
		return nil, fmt.Errorf("file %s not found", id)
	}
	return file, nil
}

func (f *fakeFiles) Create(context.Context, uuid.UUID, string, string, time.Time) (*entity.ReportFile, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeFiles) ListByProfile(context.Context, uuid.UUID) ([]*entity.ReportFile, error) {
	return nil, fmt.Errorf("not implemented")
}

type fakeResults struct {
	mu      sync.Mutex
	byJob   map[uuid.UUID]*entity.LabResult
	upserts int
}

func newFakeResults() *fakeResults {
	return &fakeResults{byJob: map[uuid.UUID]*entity.LabResult{}}
}

func (f *fakeResults) UpsertForJob(_ context.Context, res *entity.LabResult) (*entity.LabResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	if existing, ok := f.byJob[res.JobID]; ok {
		return existing, nil
	}
	cp := *res
	cp.ID = uuid.New()
	f.byJob[res.JobID] = &cp
	return &cp, nil
}

func (f *fakeResults) GetByID(_ context.Context, id uuid.UUID) (*entity.LabResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.byJob {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("result %s not found", id)
}

func (f *fakeResults) GetByJobID(_ context.Context, jobID uuid.UUID) (*entity.LabResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byJob[jobID]
	if !ok {
		return nil, fmt.Errorf("no result for job %s", jobID)
	}
	return r, nil
}

// stubEnricher attaches a fixed note to every row.
type stubEnricher struct{}

func (stubEnricher) Enrich(_ context.Context, rows []entity.TestRow) []entity.RowNote {
	notes := make([]entity.RowNote, len(rows))
	for i, r := range rows {
		notes[i] = entity.RowNote{
			Text:       "A short note about " + r.Name + ".",
			Confidence: 0.9,
			Source:     "openai:test:" + constants.PromptVersion,
			CreatedAt:  time.Now(),
		}
	}
	return notes
}

type harness struct {
	jobs    *fakeJobs
	files   *fakeFiles
	results *fakeResults
	proc    *Processor
	job     async.Job
}

func newHarness(t *testing.T, reportText string) *harness {
	t.Helper()
	fileID := uuid.New()
	profileID := uuid.New()

	jobs := newFakeJobs()
	files := &fakeFiles{files: map[uuid.UUID]*entity.ReportFile{
		fileID: {ID: fileID, ProfileID: profileID, Filename: "report.pdf", ReportText: reportText},
	}}
	results := newFakeResults()

	row, err := jobs.Create(context.Background(), fileID, profileID)
	require.NoError(t, err)

	proc := NewProcessor(
		jobs, results,
		NewExtractStage(files, extract.NewParser(nil, nil), nil),
		NewEnrichStage(stubEnricher{}, nil),
		nil,
	)
	return &harness{
		jobs: jobs, files: files, results: results, proc: proc,
		job: async.Job{JobID: row.ID, FileID: fileID, ProfileID: profileID},
	}
}

func TestExtractStageFailuresAreExtractionErrors(t *testing.T) {
	fileID := uuid.New()
	files := &fakeFiles{files: map[uuid.UUID]*entity.ReportFile{
		fileID: {ID: fileID, Filename: "empty.pdf", ReportText: ""},
	}}
	stage := NewExtractStage(files, extract.NewParser(nil, nil), nil)

	_, err := stage.Run(context.Background(), fileID)
	require.ErrorIs(t, err, common.ErrExtraction)

	_, err = stage.Run(context.Background(), uuid.New())
	require.ErrorIs(t, err, common.ErrExtraction)
}

func TestProcessorHappyPath(t *testing.T) {
	h := newHarness(t, hormoneReport)

	require.NoError(t, h.proc.Process(context.Background(), h.job, 1))

	job, err := h.jobs.GetByID(context.Background(), h.job.JobID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, job.Status)
	assert.Equal(t, 100, job.Progress)
	require.NotNil(t, job.ResultID)
	assert.Equal(t, []int{5, 35, 65, 95, 100}, h.jobs.progress)

	res, err := h.results.GetByJobID(context.Background(), h.job.JobID)
	require.NoError(t, err)
	assert.Equal(t, *job.ResultID, res.ID)
	assert.Equal(t, constants.PanelHormone, res.PanelType)
	assert.Equal(t, 3, res.TotalTests)
	assert.Equal(t, 1, res.NormalCount)
	assert.Equal(t, 1, res.AbnormalCount)
	assert.Equal(t, 1, res.CriticalCount)
	assert.Equal(t, constants.OverallCritical, res.OverallStatus)
	assert.Equal(t, "discuss testosterone result", res.DoctorNotes)
	for _, row := range res.Rows {
		require.NotNil(t, row.Note, "row %s", row.Name)
		assert.NotEmpty(t, row.Note.Text)
	}
}

func TestProcessorEmptyExtractionCompletes(t *testing.T) {
	h := newHarness(t, "This document mentions no laboratory measurements at all.\nDate: 01.02.2024\n")

	require.NoError(t, h.proc.Process(context.Background(), h.job, 1))

	job, err := h.jobs.GetByID(context.Background(), h.job.JobID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, job.Status)

	res, err := h.results.GetByJobID(context.Background(), h.job.JobID)
	require.NoError(t, err)
	assert.Zero(t, res.TotalTests)
	assert.Equal(t, constants.OverallNormal, res.OverallStatus)
	assert.Equal(t, "No recognized test values in this report.", res.Summary)
}

func TestProcessorAlreadyTerminalIsNoop(t *testing.T) {
	h := newHarness(t, hormoneReport)
	failed := constants.JobStatusFailed
	_, err := h.jobs.Update(context.Background(), h.job.JobID, entity.JobUpdate{Status: &failed})
	require.NoError(t, err)

	require.NoError(t, h.proc.Process(context.Background(), h.job, 2))

	assert.Zero(t, h.results.upserts)
	job, _ := h.jobs.GetByID(context.Background(), h.job.JobID)
	assert.Equal(t, constants.JobStatusFailed, job.Status)
}

func TestProcessorMissingFileIsRetryable(t *testing.T) {
	h := newHarness(t, hormoneReport)
	h.job.FileID = uuid.New() // unknown file

	err := h.proc.Process(context.Background(), h.job, 1)
	require.Error(t, err)

	// the job is left RUNNING for the next attempt
	job, _ := h.jobs.GetByID(context.Background(), h.job.JobID)
	assert.Equal(t, constants.JobStatusRunning, job.Status)
}

func TestProcessorRedeliveryReusesPersistedResult(t *testing.T) {
	h := newHarness(t, hormoneReport)
	require.NoError(t, h.proc.Process(context.Background(), h.job, 1))
	first, err := h.results.GetByJobID(context.Background(), h.job.JobID)
	require.NoError(t, err)

	// terminal job: a redelivered unit must not touch anything
	require.NoError(t, h.proc.Process(context.Background(), h.job, 2))

	again, err := h.results.GetByJobID(context.Background(), h.job.JobID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestMarkFailed(t *testing.T) {
	h := newHarness(t, hormoneReport)

	h.proc.MarkFailed(context.Background(), h.job, fmt.Errorf("extraction blew up"))

	job, err := h.jobs.GetByID(context.Background(), h.job.JobID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Equal(t, "extraction blew up", *job.ErrorMessage)
}

func TestMarkFailedDoesNotOverwriteCompleted(t *testing.T) {
	h := newHarness(t, hormoneReport)
	require.NoError(t, h.proc.Process(context.Background(), h.job, 1))

	h.proc.MarkFailed(context.Background(), h.job, fmt.Errorf("late failure"))

	job, _ := h.jobs.GetByID(context.Background(), h.job.JobID)
	assert.Equal(t, constants.JobStatusCompleted, job.Status)
	assert.Nil(t, job.ErrorMessage)
}
