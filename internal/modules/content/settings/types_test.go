package settings

import (
	"testing"

	"github.com/mrigtrishna/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestApplyUpdateOnlyTouchesSubmittedFields(t *testing.T) {
	current := models.DefaultSettings()
	current.AboutBody = "original body"

	merged := applyUpdate(current, UpdateSettingsDTO{
		HeroText: strptr("New Hero"),
	})

	assert.Equal(t, "New Hero", merged.HeroText)
	assert.Equal(t, "original body", merged.AboutBody)
	assert.Equal(t, current.ContactEmail, merged.ContactEmail)
}

func TestApplyUpdateAllowsClearingWithEmptyString(t *testing.T) {
	current := models.DefaultSettings()
	current.HeroVideo = "https://cdn.example.com/hero.mp4"

	merged := applyUpdate(current, UpdateSettingsDTO{HeroVideo: strptr("")})
	assert.Empty(t, merged.HeroVideo)
}

func TestApplyUpdateMergesSocials(t *testing.T) {
	current := models.DefaultSettings()

	merged := applyUpdate(current, UpdateSettingsDTO{
		Socials: map[string]models.SocialLink{
			"github": {URL: "https://github.com/someone", Show: true},
		},
	})

	require.Contains(t, merged.Socials, "github")
	assert.Equal(t, "https://github.com/someone", merged.Socials["github"].URL)
	// Untouched platforms keep their values.
	assert.True(t, merged.Socials["artstation"].Show)
}

func TestApplyUpdateDropsUnknownPlatforms(t *testing.T) {
	merged := applyUpdate(models.DefaultSettings(), UpdateSettingsDTO{
		Socials: map[string]models.SocialLink{
			"myspace": {URL: "https://myspace.com/x", Show: true},
		},
	})

	assert.NotContains(t, merged.Socials, "myspace")
}

func TestApplyUpdatePinsSingletonKey(t *testing.T) {
	current := models.DefaultSettings()
	current.Key = "tampered"

	merged := applyUpdate(current, UpdateSettingsDTO{})
	assert.Equal(t, models.SettingsKey, merged.Key)
}

func TestApplyUpdateIsIdempotent(t *testing.T) {
	dto := UpdateSettingsDTO{
		HeroText: strptr("Stable"),
		Socials: map[string]models.SocialLink{
			"twitter": {URL: "https://twitter.com/x", Show: false},
		},
	}

	once := applyUpdate(models.DefaultSettings(), dto)
	twice := applyUpdate(once, dto)
	assert.Equal(t, once, twice)
}
