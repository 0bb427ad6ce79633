// Package invite turns invite recommendations into email invitations and
// delivers them over SMTP.
package invite

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spachava753/cmbridge/contacts"
	"github.com/spachava753/cmbridge/recommend"
)

// ErrNoEmail is returned when a recommended contact has no email address.
var ErrNoEmail = errors.New("invite: contact has no email address")

// Template fills in the invitation text.
type Template struct {
	// Inviter is the name shown as the sender of the invitation.
	Inviter string
	AppName string
	// Link is where the invitee can join. It is appended to the body.
	Link string
}

// Message is one outgoing invitation.
type Message struct {
	ContactID string
	To        []string
	Subject   string
	TextBody  string
	HTMLBody  string
}

// Compose builds the invitation for r. Only invite recommendations are
// accepted; the first email address of the contact is the recipient. The
// message carries a plain text body and an HTML alternative.
func Compose(r recommend.Recommendation, tmpl Template) (Message, error) {
	if r.Type != recommend.InviteRecommendation {
		return Message{}, fmt.Errorf("invite: recommendation type %s is not an invite", r.Type)
	}
	to := firstEmail(r.Contact)
	if to == "" {
		return Message{}, fmt.Errorf("%w: %q", ErrNoEmail, r.Contact.Identifier)
	}
	data := bodyData{
		Name:    firstNonEmpty(r.Contact.GivenName, r.Contact.DisplayName, "there"),
		Inviter: firstNonEmpty(tmpl.Inviter, "A friend"),
		App:     firstNonEmpty(tmpl.AppName, "the app"),
		Reason:  strings.TrimSpace(r.Reason),
		Link:    strings.TrimSpace(tmpl.Link),
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\n%s invited you to join %s.\n", data.Name, data.Inviter, data.App)
	if data.Reason != "" {
		fmt.Fprintf(&text, "\n%s\n", data.Reason)
	}
	if data.Link != "" {
		fmt.Fprintf(&text, "\nJoin here: %s\n", data.Link)
	}

	var html strings.Builder
	if err := htmlBody.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("invite: rendering html body: %w", err)
	}

	return Message{
		ContactID: r.Contact.Identifier,
		To:        []string{to},
		Subject:   fmt.Sprintf("%s invited you to %s", data.Inviter, data.App),
		TextBody:  text.String(),
		HTMLBody:  html.String(),
	}, nil
}

type bodyData struct {
	Name    string
	Inviter string
	App     string
	Reason  string
	Link    string
}

var htmlBody = template.Must(template.New("invite").Parse(`<p>Hi {{.Name}},</p>
<p>{{.Inviter}} invited you to join {{.App}}.</p>
{{- with .Reason}}
<p>{{.}}</p>
{{- end}}
{{- with .Link}}
<p><a href="{{.}}">Join {{$.App}}</a></p>
{{- end}}
`))

func firstEmail(c contacts.Contact) string {
	for _, e := range c.EmailAddresses {
		if v := strings.TrimSpace(e.Value); v != "" {
			return v
		}
	}
	return ""
}

func validateMessage(msg Message) error {
	if len(uniqueRecipients(msg.To)) == 0 {
		return errors.New("invite: at least one recipient is required")
	}
	if strings.TrimSpace(msg.TextBody) == "" && strings.TrimSpace(msg.HTMLBody) == "" {
		return errors.New("invite: either text body or html body is required")
	}
	return nil
}

func uniqueRecipients(groups ...[]string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, 8)
	for _, group := range groups {
		for _, recipient := range group {
			recipient = strings.TrimSpace(recipient)
			if recipient == "" {
				continue
			}
			if _, ok := seen[recipient]; ok {
				continue
			}
			seen[recipient] = struct{}{}
			out = append(out, recipient)
		}
	}
	return out
}

// buildMessage renders msg as an RFC 5322 message. A message with both
// bodies is multipart/alternative, plain text first.
func buildMessage(from string, msg Message, messageID string, now time.Time) []byte {
	subject := firstNonEmpty(sanitizeHeader(msg.Subject), "(no subject)")
	var out strings.Builder
	header := func(name, value string) {
		out.WriteString(name + ": " + value + "\r\n")
	}
	header("From", sanitizeHeader(from))
	header("To", strings.Join(uniqueRecipients(msg.To), ", "))
	header("Subject", subject)
	header("Date", now.Format(time.RFC1123Z))
	header("Message-ID", messageID)
	header("MIME-Version", "1.0")

	parts := make([]bodyPart, 0, 2)
	if text := normalizeBody(msg.TextBody); text != "" {
		parts = append(parts, bodyPart{"text/plain; charset=UTF-8", text})
	}
	if html := normalizeBody(msg.HTMLBody); html != "" {
		parts = append(parts, bodyPart{"text/html; charset=UTF-8", html})
	}

	switch len(parts) {
	case 0:
		header("Content-Type", "text/plain; charset=UTF-8")
		out.WriteString("\r\n")
	case 1:
		header("Content-Type", parts[0].contentType)
		out.WriteString("\r\n" + parts[0].body + "\r\n")
	default:
		boundary := "cmbridge-" + uuid.NewString()
		header("Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", boundary))
		out.WriteString("\r\n")
		for _, p := range parts {
			out.WriteString("--" + boundary + "\r\n")
			out.WriteString("Content-Type: " + p.contentType + "\r\n\r\n")
			out.WriteString(p.body + "\r\n")
		}
		out.WriteString("--" + boundary + "--\r\n")
	}
	return []byte(out.String())
}

type bodyPart struct {
	contentType string
	body        string
}

func sanitizeHeader(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.TrimSpace(value)
}

func normalizeBody(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\r", "\n")
	body = strings.ReplaceAll(body, "\n", "\r\n")
	return strings.TrimSpace(body)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
