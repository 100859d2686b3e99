package services

import (
	"context"

	"github.com/fmhevents/elation/internal/models"
)

type AboutService struct {
	about models.AboutRepo
}

func NewAboutService(about models.AboutRepo) *AboutService {
	return &AboutService{
		about: about,
	}
}

// Init creates the singleton document once at startup, keeping the read
// path race-free.
func (as *AboutService) Init(ctx context.Context) error {
	return as.about.EnsureAbout(ctx)
}

func (as *AboutService) Get(ctx context.Context) (*models.About, error) {
	return as.about.GetAbout(ctx)
}

// Update replaces only the supplied fields; nested structures (team list,
// stats, social links) are replaced wholesale when present.
func (as *AboutService) Update(ctx context.Context, update models.AboutUpdate) (*models.About, error) {
	fields := map[string]interface{}{}
	if update.OurStory != nil {
		fields["our_story"] = *update.OurStory
	}
	if update.OurStoryImage != nil {
		fields["our_story_image"] = *update.OurStoryImage
	}
	if update.Mission != nil {
		fields["mission"] = *update.Mission
	}
	if update.MissionImage != nil {
		fields["mission_image"] = *update.MissionImage
	}
	if update.Vision != nil {
		fields["vision"] = *update.Vision
	}
	if update.VisionImage != nil {
		fields["vision_image"] = *update.VisionImage
	}
	if update.Values != nil {
		fields["values"] = *update.Values
	}
	if update.TeamMembers != nil {
		fields["team_members"] = update.TeamMembers
	}
	if update.JourneyStats != nil {
		fields["journey_stats"] = *update.JourneyStats
	}
	if update.SocialMedia != nil {
		fields["social_media"] = *update.SocialMedia
	}
	return as.about.UpdateAbout(ctx, fields)
}
