package mailer

// RewardJob is the JSON payload put on the RabbitMQ queue after a successful claim.
type RewardJob struct {
	To        string `json:"to"`
	UserID    string `json:"user_id"`
	TaskID    string `json:"task_id"`
	TaskTitle string `json:"task_title"`
	Points    int64  `json:"points"`
}

// Valid reports whether the job carries enough to send an email.
func (j RewardJob) Valid() bool {
	return j.To != "" && j.TaskID != ""
}
