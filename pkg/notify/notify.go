// Package notify delivers new trend alerts by email or Telegram.
package notify

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/umputun/politrend/pkg/domain"
)

// ErrNotConfigured is returned when a transport lacks credentials or a recipient.
// It is not a delivery failure, callers record such alerts as would-send.
var ErrNotConfigured = errors.New("notification transport not configured")

// message is a rendered alert for one or more trends
type message struct {
	Subject string
	Plain   string
	HTML    string
}

// render builds the alert text for the given entities, one entity per line
func render(entities []*domain.TrackedEntity) message {
	var subject string
	if len(entities) == 1 {
		subject = fmt.Sprintf("New political trend: %s (#%d)", entities[0].Topic, entities[0].CurrentRank)
	} else {
		subject = fmt.Sprintf("%d new political trends", len(entities))
	}

	var plain, htmlBody strings.Builder
	htmlBody.WriteString("<ul>\n")
	for _, e := range entities {
		line := fmt.Sprintf("#%d %s [%s], sentiment %s, first seen %s",
			e.CurrentRank, e.Topic, e.Category, e.SentimentLabel, e.FirstSeen.UTC().Format("2006-01-02 15:04 MST"))
		plain.WriteString(line)
		plain.WriteString("\n")
		htmlBody.WriteString("<li>")
		htmlBody.WriteString(html.EscapeString(line))
		htmlBody.WriteString("</li>\n")
	}
	htmlBody.WriteString("</ul>\n")

	return message{Subject: subject, Plain: plain.String(), HTML: htmlBody.String()}
}
