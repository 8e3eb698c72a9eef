package server

import (
	"context"
	"log/slog"
	"strings"

	v1 "github.com/joseph-ayodele/labreports-tracker/gen/proto/labreports/v1"
	"github.com/joseph-ayodele/labreports-tracker/internal/common"
	"github.com/joseph-ayodele/labreports-tracker/internal/repository"
)

type ProfilesServer struct {
	v1.UnimplementedProfilesServiceServer
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

func NewProfilesServer(profiles repository.ProfileRepository, logger *slog.Logger) *ProfilesServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfilesServer{profiles: profiles, logger: logger}
}

// CreateProfile registers a new profile. Files and jobs are always scoped to
// one.
func (s *ProfilesServer) CreateProfile(ctx context.Context, req *v1.CreateProfileRequest) (*v1.CreateProfileResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	p, err := s.profiles.CreateProfile(ctx, name)
	if err != nil {
		s.logger.Error("server.create_profile_failed", "name", name, "err", err)
		return nil, common.GRPCStatus(err)
	}
	s.logger.Info("server.profile_created", "profile_id", p.ID)
	return &v1.CreateProfileResponse{Profile: toPBProfile(p)}, nil
}

// ListProfiles returns all profiles ordered by creation time.
func (s *ProfilesServer) ListProfiles(ctx context.Context, _ *v1.ListProfilesRequest) (*v1.ListProfilesResponse, error) {
	plist, err := s.profiles.ListProfiles(ctx)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	out := make([]*v1.Profile, 0, len(plist))
	for _, p := range plist {
		out = append(out, toPBProfile(p))
	}
	return &v1.ListProfilesResponse{Profiles: out}, nil
}
