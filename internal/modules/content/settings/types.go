package settings

import (
	"context"
	"slices"

	"github.com/mrigtrishna/core/internal/models"
)

// UpdateSettingsDTO is a partial update: only the fields present in the JSON
// body are applied, everything else keeps its stored value.
type UpdateSettingsDTO struct {
	HeroText           *string                      `json:"heroText"`
	HeroVideo          *string                      `json:"heroVideo"`
	ProfileImage       *string                      `json:"profileImage"`
	ProfileDescription *string                      `json:"profileDescription"`
	ContactEmail       *string                      `json:"contactEmail"`
	AboutPageTitle     *string                      `json:"aboutPageTitle"`
	AboutPageSubtitle  *string                      `json:"aboutPageSubtitle"`
	AboutHeading       *string                      `json:"aboutHeading"`
	AboutBody          *string                      `json:"aboutBody"`
	Socials            map[string]models.SocialLink `json:"socials"`
}

// Store is the singleton settings document access.
type Store interface {
	// Get returns the stored document, or the schema defaults if none
	// exists yet.
	Get(ctx context.Context) (models.SettingsModel, error)
	// Replace upserts the full document under the fixed singleton key.
	Replace(ctx context.Context, doc models.SettingsModel) error
}

// applyUpdate merges the submitted fields into the current document.
// Platforms outside the fixed social set are dropped.
func applyUpdate(current models.SettingsModel, dto UpdateSettingsDTO) models.SettingsModel {
	setIf(&current.HeroText, dto.HeroText)
	setIf(&current.HeroVideo, dto.HeroVideo)
	setIf(&current.ProfileImage, dto.ProfileImage)
	setIf(&current.ProfileDescription, dto.ProfileDescription)
	setIf(&current.ContactEmail, dto.ContactEmail)
	setIf(&current.AboutPageTitle, dto.AboutPageTitle)
	setIf(&current.AboutPageSubtitle, dto.AboutPageSubtitle)
	setIf(&current.AboutHeading, dto.AboutHeading)
	setIf(&current.AboutBody, dto.AboutBody)

	if dto.Socials != nil {
		if current.Socials == nil {
			current.Socials = models.DefaultSettings().Socials
		}
		for platform, link := range dto.Socials {
			if slices.Contains(models.SocialPlatforms, platform) {
				current.Socials[platform] = link
			}
		}
	}

	current.Key = models.SettingsKey
	return current
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
