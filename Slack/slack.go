package Slack

import (
	"fmt"
	"log"
	"os"

	"github.com/slack-go/slack"
)

// NotifyResetSummary posts the outcome of an effective reset run to the ops
// channel. Notification is best effort: it is disabled unless both
// SLACK_BOT_TOKEN and SLACK_RESET_CHANNEL are set, and failures are logged
// rather than surfaced to the job.
func NotifyResetSummary(dateKey, label string, processed int) {
	token := os.Getenv("SLACK_BOT_TOKEN")
	channel := os.Getenv("SLACK_RESET_CHANNEL")
	if token == "" || channel == "" {
		return
	}

	message := fmt.Sprintf("Daily task reset %s: %d task(s) reset (trigger %s)",
		dateKey, processed, label)

	client := slack.New(token)
	_, _, err := client.PostMessage(channel, slack.MsgOptionText(message, false))
	if err != nil {
		log.Printf("Error sending reset summary to Slack: %v", err)
		return
	}
	log.Printf("Sent reset summary for %s to Slack", dateKey)
}
