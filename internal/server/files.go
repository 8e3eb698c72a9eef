package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	v1 "github.com/joseph-ayodele/labreports-tracker/gen/proto/labreports/v1"
	"github.com/joseph-ayodele/labreports-tracker/internal/common"
	"github.com/joseph-ayodele/labreports-tracker/internal/repository"
)

type FilesServer struct {
	v1.UnimplementedFilesServiceServer
	files    repository.ReportFileRepository
	profiles repository.ProfileRepository
	logger   *slog.Logger

	now func() time.Time
}

func NewFilesServer(files repository.ReportFileRepository, profiles repository.ProfileRepository, logger *slog.Logger) *FilesServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &FilesServer{files: files, profiles: profiles, logger: logger, now: time.Now}
}

// UploadReportFile stores report text under a profile so a job can later
// analyze it. The text itself is not parsed here.
func (s *FilesServer) UploadReportFile(ctx context.Context, req *v1.UploadReportFileRequest) (*v1.UploadReportFileResponse, error) {
	profileID, err := parseUUID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	if strings.TrimSpace(req.GetReportText()) == "" {
		return nil, common.InvalidArgumentError("report_text is required")
	}

	if _, err := s.profiles.GetByID(ctx, profileID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.GRPCStatus(fmt.Errorf("%w: profile %s", common.ErrNotFound, profileID))
		}
		return nil, common.GRPCStatus(err)
	}

	f, err := s.files.Create(ctx, profileID, filename, req.GetReportText(), s.now())
	if err != nil {
		s.logger.Error("server.upload_file_failed", "profile_id", profileID, "filename", filename, "err", err)
		return nil, common.GRPCStatus(err)
	}
	s.logger.Info("server.file_uploaded", "file_id", f.ID, "profile_id", profileID, "bytes", len(req.GetReportText()))
	return &v1.UploadReportFileResponse{File: toPBFile(f)}, nil
}

// ListReportFiles returns the profile's stored files ordered by upload time.
func (s *FilesServer) ListReportFiles(ctx context.Context, req *v1.ListReportFilesRequest) (*v1.ListReportFilesResponse, error) {
	profileID, err := parseUUID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	files, err := s.files.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	out := make([]*v1.ReportFile, 0, len(files))
	for _, f := range files {
		out = append(out, toPBFile(f))
	}
	return &v1.ListReportFilesResponse{Files: out}, nil
}
