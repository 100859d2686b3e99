package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamMember struct {
	Name     string `bson:"name" json:"name" validate:"required"`
	PhotoURL string `bson:"photo_url" json:"photoUrl"`
	Role     string `bson:"role" json:"role" validate:"required"`
}

type JourneyStats struct {
	EventsHandled int `bson:"events_handled" json:"eventsHandled"`
	Vendors       int `bson:"vendors" json:"vendors"`
	Clients       int `bson:"clients" json:"clients"`
}

type SocialMedia struct {
	Instagram string `bson:"instagram" json:"instagram"`
	Facebook  string `bson:"facebook" json:"facebook"`
	LinkedIn  string `bson:"linkedin" json:"linkedin"`
	Twitter   string `bson:"twitter" json:"twitter"`
}

// About is a singleton document; exactly one exists after startup init.
type About struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OurStory      string             `bson:"our_story" json:"ourStory"`
	OurStoryImage string             `bson:"our_story_image" json:"ourStoryImage"`
	Mission       string             `bson:"mission" json:"mission"`
	MissionImage  string             `bson:"mission_image" json:"missionImage"`
	Vision        string             `bson:"vision" json:"vision"`
	VisionImage   string             `bson:"vision_image" json:"visionImage"`
	Values        string             `bson:"values" json:"values"`
	TeamMembers   []TeamMember       `bson:"team_members" json:"teamMembers"`
	JourneyStats  JourneyStats       `bson:"journey_stats" json:"journeyStats"`
	SocialMedia   SocialMedia        `bson:"social_media" json:"socialMedia"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// AboutUpdate carries the fields present in an admin edit; nil means
// "leave unchanged", supplied nested structures replace wholesale.
type AboutUpdate struct {
	OurStory      *string       `json:"ourStory"`
	OurStoryImage *string       `json:"ourStoryImage"`
	Mission       *string       `json:"mission"`
	MissionImage  *string       `json:"missionImage"`
	Vision        *string       `json:"vision"`
	VisionImage   *string       `json:"visionImage"`
	Values        *string       `json:"values"`
	TeamMembers   []TeamMember  `json:"teamMembers"`
	JourneyStats  *JourneyStats `json:"journeyStats"`
	SocialMedia   *SocialMedia  `json:"socialMedia"`
}
