package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_TaskReward(t *testing.T) {
	data := RewardData{
		AppName:   "GrowthPlatform",
		Email:     "a@example.com",
		TaskTitle: "Write <tests>",
		Points:    50,
		ClaimedAt: time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC),
	}
	subject, text, html, err := Render(TaskReward, data)
	require.NoError(t, err)

	assert.Equal(t, "You earned 50 points", subject)
	assert.Contains(t, text, `"Write <tests>"`)
	assert.Contains(t, text, "50 points have been added")
	assert.Contains(t, text, "04 March 2025, 10:30 UTC")
	assert.Contains(t, html, "Write &lt;tests&gt;")
	assert.NotContains(t, html, "Support")
}

func TestRender_Singular(t *testing.T) {
	subject, text, _, err := Render(TaskReward, RewardData{Email: "a@example.com", Points: 1})
	require.NoError(t, err)
	assert.Equal(t, "You earned 1 point", subject)
	assert.Contains(t, text, "a task")
	assert.Contains(t, text, "GrowthPlatform")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", RewardData{})
	require.Error(t, err)
}

func TestDefaultFn(t *testing.T) {
	assert.Equal(t, "x", defaultFn("x", ""))
	assert.Equal(t, "x", defaultFn("x", nil))
	assert.Equal(t, "x", defaultFn("x", 0))
	assert.Equal(t, 3, defaultFn("x", 3))
	assert.Equal(t, "v", defaultFn("x", "v"))
}
