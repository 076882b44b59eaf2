package notification

import (
	"bytes"
	"fmt"
	"text/template"
)

// emailTemplate is a renderable subject/body pair.
type emailTemplate struct {
	subject *template.Template
	body    *template.Template
}

const leadThankYouSubject = `Thank you for contacting us`

const leadThankYouBody = `Hello {{.Name}},

Thank you for your interest. Our sales team has received your request
and will get back to you shortly.

Best regards,
The Sales Team
`

const leadNotificationSubject = `New lead: {{.Company}}`

const leadNotificationBody = `A new sales lead was submitted.

Company:  {{.Company}}
Contact:  {{.Name}} <{{.Email}}>
Comment:  {{.Comment}}
Source IP: {{.IPAddress}}

Lead ID: {{.LeadID}}
`

var templates = map[string]emailTemplate{
	TemplateLeadThankYou: {
		subject: template.Must(template.New("lead_thank_you_subject").Parse(leadThankYouSubject)),
		body:    template.Must(template.New("lead_thank_you_body").Parse(leadThankYouBody)),
	},
	TemplateLeadNotification: {
		subject: template.Must(template.New("lead_notification_subject").Parse(leadNotificationSubject)),
		body:    template.Must(template.New("lead_notification_body").Parse(leadNotificationBody)),
	},
}

// render produces the subject and body for a message.
func render(msg Message) (subject, body string, err error) {
	tmpl, ok := templates[msg.Template]
	if !ok {
		return "", "", fmt.Errorf("unknown notification template: %s", msg.Template)
	}

	var subjectBuf bytes.Buffer
	if err := tmpl.subject.Execute(&subjectBuf, msg.Context); err != nil {
		return "", "", fmt.Errorf("failed to render subject: %w", err)
	}

	var bodyBuf bytes.Buffer
	if err := tmpl.body.Execute(&bodyBuf, msg.Context); err != nil {
		return "", "", fmt.Errorf("failed to render body: %w", err)
	}

	return subjectBuf.String(), bodyBuf.String(), nil
}
