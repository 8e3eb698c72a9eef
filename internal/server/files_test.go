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

	v1 "github.com/joseph-ayodele/labreports-tracker/gen/proto/labreports/v1"
	"github.com/joseph-ayodele/labreports-tracker/internal/common"
	"github.com/joseph-ayodele/labreports-tracker/internal/entity"
)

type fakeFilesRepo struct {
	files map[uuid.UUID]*entity.ReportFile
}

func (f *fakeFilesRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ReportFile, error) {
	file, ok := f.files[id]
	if !ok {
		return nil, fmt.Errorf("%w: report file %s", common.ErrNotFound, id)
	}
	return file, nil
}

func (f *fakeFilesRepo) Create(_ context.Context, profileID uuid.UUID, filename, reportText string, uploadedAt time.Time) (*entity.ReportFile, error) {
	file := &entity.ReportFile{
		ID: uuid.New(), ProfileID: profileID,
		Filename: filename, ReportText: reportText, UploadedAt: uploadedAt,
	}
	f.files[file.ID] = file
	return file, nil
}

func (f *fakeFilesRepo) ListByProfile(_ context.Context, profileID uuid.UUID) ([]*entity.ReportFile, error) {
	var out []*entity.ReportFile
	for _, file := range f.files {
		if file.ProfileID == profileID {
			out = append(out, file)
		}
	}
	return out, nil
}

type fakeProfilesRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func (f *fakeProfilesRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: profile %s", common.ErrNotFound, id)
	}
	return p, nil
}

func (f *fakeProfilesRepo) CreateProfile(_ context.Context, name string) (*entity.Profile, error) {
	p := &entity.Profile{ID: uuid.New(), Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.profiles[p.ID] = p
	return p, nil
}

func (f *fakeProfilesRepo) ListProfiles(context.Context) ([]*entity.Profile, error) {
	out := make([]*entity.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfilesRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.profiles[id]
	return ok, nil
}

func TestCreateProfileAndList(t *testing.T) {
	profiles := &fakeProfilesRepo{profiles: map[uuid.UUID]*entity.Profile{}}
	s := NewProfilesServer(profiles, nil)

	created, err := s.CreateProfile(context.Background(), &v1.CreateProfileRequest{Name: "  Alice  "})
	require.NoError(t, err)
	assert.Equal(t, "Alice", created.GetProfile().GetName())
	assert.NotEmpty(t, created.GetProfile().GetId())

	list, err := s.ListProfiles(context.Background(), &v1.ListProfilesRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetProfiles(), 1)
}

func TestCreateProfileBlankNameRejected(t *testing.T) {
	s := NewProfilesServer(&fakeProfilesRepo{profiles: map[uuid.UUID]*entity.Profile{}}, nil)

	_, err := s.CreateProfile(context.Background(), &v1.CreateProfileRequest{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUploadReportFileAndList(t *testing.T) {
	profiles := &fakeProfilesRepo{profiles: map[uuid.UUID]*entity.Profile{}}
	owner, err := profiles.CreateProfile(context.Background(), "Alice")
	require.NoError(t, err)

	files := &fakeFilesRepo{files: map[uuid.UUID]*entity.ReportFile{}}
	s := NewFilesServer(files, profiles, nil)

	up, err := s.UploadReportFile(context.Background(), &v1.UploadReportFileRequest{
		ProfileId:  owner.ID.String(),
		Filename:   "march.pdf",
		ReportText: "IgG\n(540 - 1822 mg/dL)\n1493\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "march.pdf", up.GetFile().GetFilename())
	assert.Equal(t, owner.ID.String(), up.GetFile().GetProfileId())

	list, err := s.ListReportFiles(context.Background(), &v1.ListReportFilesRequest{ProfileId: owner.ID.String()})
	require.NoError(t, err)
	require.Len(t, list.GetFiles(), 1)
	assert.Equal(t, up.GetFile().GetId(), list.GetFiles()[0].GetId())
}

func TestUploadReportFileUnknownProfile(t *testing.T) {
	files := &fakeFilesRepo{files: map[uuid.UUID]*entity.ReportFile{}}
	profiles := &fakeProfilesRepo{profiles: map[uuid.UUID]*entity.Profile{}}
	s := NewFilesServer(files, profiles, nil)

	_, err := s.UploadReportFile(context.Background(), &v1.UploadReportFileRequest{
		ProfileId:  uuid.New().String(),
		Filename:   "march.pdf",
		ReportText: "text",
	})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestUploadReportFileEmptyTextRejected(t *testing.T) {
	profiles := &fakeProfilesRepo{profiles: map[uuid.UUID]*entity.Profile{}}
	owner, err := profiles.CreateProfile(context.Background(), "Alice")
	require.NoError(t, err)
	s := NewFilesServer(&fakeFilesRepo{files: map[uuid.UUID]*entity.ReportFile{}}, profiles, nil)

	_, err = s.UploadReportFile(context.Background(), &v1.UploadReportFileRequest{
		ProfileId:  owner.ID.String(),
		Filename:   "march.pdf",
		ReportText: "   ",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
