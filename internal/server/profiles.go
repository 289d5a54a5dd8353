package server

import (
	"context"
	"log/slog"
	"strings"

	billspb "github.com/ecotrack-app/carbon-tracker/gen/proto/carbontracker/v1"
	"github.com/ecotrack-app/carbon-tracker/internal/common"
	"github.com/ecotrack-app/carbon-tracker/internal/repository"
	"github.com/ecotrack-app/carbon-tracker/internal/utils"
)

type ProfileService struct {
	billspb.UnimplementedProfilesServiceServer
	profilesRepo repository.ProfileRepository
	logger       *slog.Logger
}

func NewProfileService(profilesRepo repository.ProfileRepository, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		profilesRepo: profilesRepo,
		logger:       logger,
	}
}

func (s *ProfileService) CreateProfile(ctx context.Context, req *billspb.CreateProfileRequest) (*billspb.CreateProfileResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	region := strings.ToUpper(strings.TrimSpace(req.GetRegion()))
	if region == "" {
		region = "SG"
	}
	if len(region) != 2 {
		return nil, common.InvalidArgumentError("region must be a 2-letter country code")
	}

	p, err := s.profilesRepo.Create(ctx, name, region)
	if err != nil {
		s.logger.Error("create profile failed", "name", name, "error", err)
		return nil, common.InternalError("create profile failed")
	}
	s.logger.Info("profile created", "profile_id", p.ID, "region", p.Region)
	return &billspb.CreateProfileResponse{Profile: utils.ToPBProfile(p)}, nil
}

func (s *ProfileService) ListProfiles(ctx context.Context, _ *billspb.ListProfilesRequest) (*billspb.ListProfilesResponse, error) {
	ps, err := s.profilesRepo.List(ctx)
	if err != nil {
		s.logger.Error("list profiles failed", "error", err)
		return nil, common.InternalError("list profiles failed")
	}
	out := make([]*billspb.Profile, 0, len(ps))
	for _, p := range ps {
		out = append(out, utils.ToPBProfile(p))
	}
	return &billspb.ListProfilesResponse{Profiles: out}, nil
}
