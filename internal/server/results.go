package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/joseph-ayodele/labreports-tracker/gen/proto/labreports/v1"
	"github.com/joseph-ayodele/labreports-tracker/internal/common"
	"github.com/joseph-ayodele/labreports-tracker/internal/export"
	"github.com/joseph-ayodele/labreports-tracker/internal/repository"
)

type ResultsServer struct {
	v1.UnimplementedResultsServiceServer
	results repository.LabResultRepository
	jobsRep repository.AnalysisJobRepository
	exports *export.Service
	logger  *slog.Logger
}

func NewResultsServer(
	results repository.LabResultRepository,
	jobsRep repository.AnalysisJobRepository,
	exports *export.Service,
	logger *slog.Logger,
) *ResultsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResultsServer{results: results, jobsRep: jobsRep, exports: exports, logger: logger}
}

// GetResult returns a stored result with its rows, counts, and the abnormal
// and critical subsets already split out for highlighting.
func (s *ResultsServer) GetResult(ctx context.Context, req *v1.GetResultRequest) (*v1.GetResultResponse, error) {
	resultID, err := parseUUID("result_id", req.GetResultId())
	if err != nil {
		return nil, err
	}
	profileID, err := parseUUID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	res, err := s.results.GetByID(ctx, resultID)
	if err != nil {
		// only a genuine miss becomes NotFound; storage failures stay internal
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.GRPCStatus(fmt.Errorf("%w: result %s", common.ErrNotFound, resultID))
		}
		s.logger.Error("server.get_result_failed", "result_id", resultID, "err", err)
		return nil, common.GRPCStatus(err)
	}
	// ownership runs through the producing job; a miss there presents as an
	// absent result so foreign ids stay unguessable
	if _, err := s.jobsRep.GetForOwner(ctx, res.JobID, profileID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.GRPCStatus(fmt.Errorf("%w: result %s", common.ErrNotFound, resultID))
		}
		s.logger.Error("server.get_result_failed", "result_id", resultID, "err", err)
		return nil, common.GRPCStatus(err)
	}

	return &v1.GetResultResponse{Result: toPBResult(res)}, nil
}

// ExportResultXlsx returns the result as an XLSX workbook.
func (s *ResultsServer) ExportResultXlsx(ctx context.Context, req *v1.ExportResultXlsxRequest) (*v1.ExportResultXlsxResponse, error) {
	resultID, err := parseUUID("result_id", req.GetResultId())
	if err != nil {
		return nil, err
	}
	profileID, err := parseUUID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exports.ExportResultXLSX(ctx, resultID, profileID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "result_id", resultID, "err", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.ExportResultXlsxResponse{Xlsx: xlsx}, nil
}
