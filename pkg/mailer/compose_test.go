package mailer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeReward(t *testing.T) {
	job := RewardJob{To: "a@example.com", TaskID: "t1", TaskTitle: "Onboarding", Points: 50}
	subject, text, html, err := ComposeReward(job, "GrowthPlatform", "https://help.example.com", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "You earned 50 points", subject)
	assert.Contains(t, text, "Onboarding")
	assert.Contains(t, html, "https://help.example.com")
}

func TestRewardJob_JSONShape(t *testing.T) {
	b, err := json.Marshal(RewardJob{To: "a@example.com", UserID: "u1", TaskID: "t1", TaskTitle: "x", Points: 5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"to":"a@example.com","user_id":"u1","task_id":"t1","task_title":"x","points":5}`, string(b))
}

func TestRewardJob_Valid(t *testing.T) {
	assert.True(t, RewardJob{To: "a@example.com", TaskID: "t1"}.Valid())
	assert.False(t, RewardJob{TaskID: "t1"}.Valid())
	assert.False(t, RewardJob{To: "a@example.com"}.Valid())
}
