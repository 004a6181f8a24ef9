package mailer

import (
	"time"

	tpl "github.com/oksasatya/growthpoints/pkg/mailer/templates"
)

// ComposeReward renders the subject and bodies for a reward email.
func ComposeReward(job RewardJob, appName, supportURL string, at time.Time) (subject, text, html string, err error) {
	return tpl.Render(tpl.TaskReward, tpl.RewardData{
		AppName:    appName,
		Email:      job.To,
		TaskTitle:  job.TaskTitle,
		Points:     job.Points,
		SupportURL: supportURL,
		ClaimedAt:  at,
	})
}
