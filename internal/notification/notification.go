// Package notification sends templated CRM emails.
//
// Dispatch is best effort: callers fire a single attempt after their
// own work has committed and log failures without surfacing them.
// There is no queue and no retry.
package notification

import "fmt"

// Template names known to the dispatcher.
const (
	// TemplateLeadThankYou thanks the submitter of a web form lead.
	TemplateLeadThankYou = "lead_thank_you"
	// TemplateLeadNotification notifies the sales contact about a new lead.
	TemplateLeadNotification = "lead_notification"
)

// Message describes a single outbound notification.
type Message struct {
	// Template selects the subject/body pair to render.
	Template string
	// To is the destination address.
	To string
	// Context holds the values the template renders.
	Context map[string]interface{}
}

// Validate checks the message can be dispatched.
func (m Message) Validate() error {
	if m.To == "" {
		return fmt.Errorf("notification recipient must not be empty")
	}
	if _, ok := templates[m.Template]; !ok {
		return fmt.Errorf("unknown notification template: %s", m.Template)
	}
	return nil
}

// Sender dispatches a notification message.
type Sender interface {
	// Send makes exactly one delivery attempt.
	Send(msg Message) error
}
