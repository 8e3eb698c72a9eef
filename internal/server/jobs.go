package server

import (
	"context"
	"log/slog"

	v1 "github.com/joseph-ayodele/labreports-tracker/gen/proto/labreports/v1"
	"github.com/joseph-ayodele/labreports-tracker/internal/common"
	"github.com/joseph-ayodele/labreports-tracker/internal/jobs"
)

type JobsServer struct {
	v1.UnimplementedJobsServiceServer
	mgr    *jobs.Manager
	logger *slog.Logger
}

func NewJobsServer(mgr *jobs.Manager, logger *slog.Logger) *JobsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobsServer{mgr: mgr, logger: logger}
}

// CreateAnalysisJob registers a job for a stored report file and returns it
// in QUEUED state. Submitting a file that already has a live job fails with
// AlreadyExists.
func (s *JobsServer) CreateAnalysisJob(ctx context.Context, req *v1.CreateAnalysisJobRequest) (*v1.CreateAnalysisJobResponse, error) {
	fileID, err := parseUUID("file_id", req.GetFileId())
	if err != nil {
		return nil, err
	}
	profileID, err := parseUUID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	job, err := s.mgr.CreateJob(ctx, fileID, profileID)
	if err != nil {
		s.logger.Warn("server.create_job_failed", "file_id", fileID, "err", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.CreateAnalysisJobResponse{Job: toPBJob(job)}, nil
}

// GetJobStatus is the polling surface: status, progress, and, once the job
// completed, the result id.
func (s *JobsServer) GetJobStatus(ctx context.Context, req *v1.GetJobStatusRequest) (*v1.GetJobStatusResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	profileID, err := parseUUID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	job, err := s.mgr.GetJobStatus(ctx, jobID, profileID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.GetJobStatusResponse{Job: toPBJob(job)}, nil
}

// CancelJob stops a live job. Terminal jobs fail with FailedPrecondition.
func (s *JobsServer) CancelJob(ctx context.Context, req *v1.CancelJobRequest) (*v1.CancelJobResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	profileID, err := parseUUID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	job, err := s.mgr.CancelJob(ctx, jobID, profileID)
	if err != nil {
		s.logger.Warn("server.cancel_job_failed", "job_id", jobID, "err", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.CancelJobResponse{Job: toPBJob(job)}, nil
}
