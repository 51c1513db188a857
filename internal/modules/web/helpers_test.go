package web

import (
	"testing"

	"github.com/mrigtrishna/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstN(t *testing.T) {
	items := []int{1, 2, 3}
	assert.Equal(t, []int{1, 2}, firstN(items, 2))
	assert.Equal(t, items, firstN(items, 5))
	assert.Empty(t, firstN([]int{}, 3))
}

func TestPortfolioCategoriesDeduplicatesInOrder(t *testing.T) {
	items := []models.PortfolioModel{
		{Category: "Environment"},
		{Category: "Props"},
		{Category: "Environment"},
		{Category: ""},
	}
	assert.Equal(t, []string{"Environment", "Props"}, portfolioCategories(items))
}

func TestOrderedSocialsFollowsFixedPlatformOrder(t *testing.T) {
	doc := models.DefaultSettings()
	doc.Socials["github"] = models.SocialLink{URL: "https://github.com/x", Show: true}

	socials := orderedSocials(doc)
	require.Len(t, socials, len(models.SocialPlatforms))
	for i, platform := range models.SocialPlatforms {
		assert.Equal(t, platform, socials[i].Platform)
	}
}

func TestIconSVGFallsBackToBox(t *testing.T) {
	assert.Equal(t, skillIconSVG[models.IconBox], iconSVG("Sparkles"))
	assert.Equal(t, skillIconSVG[models.IconCpu], iconSVG(models.IconCpu))
}
