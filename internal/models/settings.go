package models

import "time"

// SettingsKey is the fixed _id of the singleton settings document. Writing
// through this key makes "at most one document" a storage-level guarantee
// instead of a convention.
const SettingsKey = "site"

// SocialLink is one entry of the socials map.
type SocialLink struct {
	URL  string `json:"url"  bson:"url"`
	Show bool   `json:"show" bson:"show"`
}

// SocialPlatforms is the fixed set of platforms the settings document tracks.
var SocialPlatforms = []string{
	"artstation", "github", "youtube", "linkedin",
	"twitter", "instagram", "hashnode", "gumroad",
}

// SettingsModel is the singleton site-wide settings document.
type SettingsModel struct {
	Key                string                `json:"-" bson:"_id"`
	HeroText           string                `json:"heroText"           bson:"heroText"`
	HeroVideo          string                `json:"heroVideo"          bson:"heroVideo"`
	ProfileImage       string                `json:"profileImage"       bson:"profileImage"`
	ProfileDescription string                `json:"profileDescription" bson:"profileDescription"`
	ContactEmail       string                `json:"contactEmail"       bson:"contactEmail"`
	AboutPageTitle     string                `json:"aboutPageTitle"     bson:"aboutPageTitle"`
	AboutPageSubtitle  string                `json:"aboutPageSubtitle"  bson:"aboutPageSubtitle"`
	AboutHeading       string                `json:"aboutHeading"       bson:"aboutHeading"`
	AboutBody          string                `json:"aboutBody"          bson:"aboutBody"`
	Socials            map[string]SocialLink `json:"socials"            bson:"socials"`
	UpdatedAt          time.Time             `json:"updatedAt"          bson:"updatedAt"`
}

func (SettingsModel) CollectionName() string { return "settings" }

// DefaultSettings returns the schema defaults used when no document exists
// yet ("get-or-default" contract).
func DefaultSettings() SettingsModel {
	socials := make(map[string]SocialLink, len(SocialPlatforms))
	for _, platform := range SocialPlatforms {
		socials[platform] = SocialLink{Show: true}
	}
	return SettingsModel{
		Key:               SettingsKey,
		HeroText:          "Mrigtrishna",
		ContactEmail:      "contact@mrigtrishna.com",
		AboutPageTitle:    "The Studio",
		AboutPageSubtitle: "Mrigtrishna is a specialized production lab focused on high-fidelity environment art and technical optimization.",
		AboutHeading:      "I am Niraj Kumar.",
		Socials:           socials,
	}
}
