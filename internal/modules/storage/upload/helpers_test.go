package upload

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildObjectKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	assert.Equal(t, "1700000000000-scene.png", buildObjectKey(now, "scene.png"))
	assert.Equal(t, "1700000000000-my-final-render.png", buildObjectKey(now, "my final  render.png"))
	assert.Equal(t, "1700000000000-padded.jpg", buildObjectKey(now, "  padded.jpg  "))
}

func TestBuildObjectKeyEmptyNameGetsRandomSuffix(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	key := buildObjectKey(now, "   ")
	assert.Regexp(t, fmt.Sprintf(`^%d-[0-9a-f]{18}$`, now.UnixMilli()), key)

	other := buildObjectKey(now, "")
	assert.NotEqual(t, key, other)
}
