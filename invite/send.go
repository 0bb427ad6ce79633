package invite

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/google/uuid"
	"github.com/spachava753/cmbridge/config"
	"github.com/spachava753/cmbridge/recommend"
)

// Sender delivers invitations through one SMTP relay. The zero Sender
// can only be used for dry runs.
type Sender struct {
	cfg    config.SMTP
	logger log.Interface
	now    func() time.Time
}

// NewSender returns a Sender for cfg. A nil logger uses log.Log.
func NewSender(cfg config.SMTP, logger log.Interface) (*Sender, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, fmt.Errorf("invite: %s is required", config.EnvSMTPAddr)
	}
	if strings.TrimSpace(cfg.From) == "" {
		return nil, fmt.Errorf("invite: %s is required", config.EnvSMTPFrom)
	}
	if logger == nil {
		logger = log.Log
	}
	return &Sender{cfg: cfg, logger: logger, now: time.Now}, nil
}

// Send delivers msg and returns its Message-ID.
func (s *Sender) Send(ctx context.Context, msg Message) (string, error) {
	if err := validateMessage(msg); err != nil {
		return "", err
	}
	messageID := generateMessageID(s.cfg.From)
	raw := buildMessage(s.cfg.From, msg, messageID, s.now())

	client, err := s.connect(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	if err := client.Mail(s.cfg.From, nil); err != nil {
		return "", fmt.Errorf("invite: MAIL FROM failed: %w", err)
	}
	for _, rcpt := range uniqueRecipients(msg.To) {
		if err := client.Rcpt(rcpt, nil); err != nil {
			return "", fmt.Errorf("invite: RCPT TO %q failed: %w", rcpt, err)
		}
	}
	writer, err := client.Data()
	if err != nil {
		return "", fmt.Errorf("invite: DATA failed: %w", err)
	}
	if _, err := writer.Write(raw); err != nil {
		return "", fmt.Errorf("invite: writing message failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("invite: finalizing message failed: %w", err)
	}
	if err := client.Quit(); err != nil {
		return "", fmt.Errorf("invite: QUIT failed: %w", err)
	}
	s.logger.WithFields(log.Fields{"to": strings.Join(msg.To, ","), "id": messageID}).Info("invite: sent")
	return messageID, nil
}

func (s *Sender) connect(ctx context.Context) (*smtp.Client, error) {
	var (
		conn net.Conn
		err  error
	)
	if s.cfg.TLS {
		host, _, splitErr := net.SplitHostPort(s.cfg.Addr)
		if splitErr != nil {
			return nil, fmt.Errorf("invite: bad SMTP address %q: %w", s.cfg.Addr, splitErr)
		}
		dialer := &tls.Dialer{Config: &tls.Config{ServerName: host}}
		conn, err = dialer.DialContext(ctx, "tcp", s.cfg.Addr)
	} else {
		var dialer net.Dialer
		conn, err = dialer.DialContext(ctx, "tcp", s.cfg.Addr)
	}
	if err != nil {
		return nil, fmt.Errorf("invite: SMTP dial failed: %w", err)
	}
	if err := applyDeadline(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	client := smtp.NewClient(conn)
	if s.cfg.Username != "" {
		auth := sasl.NewPlainClient("", s.cfg.Username, s.cfg.Password)
		if err := client.Auth(auth); err != nil {
			client.Close()
			return nil, fmt.Errorf("invite: SMTP auth failed: %w", err)
		}
	}
	return client, nil
}

// applyDeadline bounds every read and write on conn by the deadline of ctx.
func applyDeadline(ctx context.Context, conn net.Conn) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		return nil
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("invite: setting SMTP deadline failed: %w", err)
	}
	return nil
}

func generateMessageID(address string) string {
	domain := "localhost"
	if at := strings.LastIndex(address, "@"); at >= 0 && at < len(address)-1 {
		domain = strings.Trim(address[at+1:], "<> ")
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}

// Result is the outcome of one invitation.
type Result struct {
	ContactID string
	To        string
	MessageID string
	Err       error
}

// SendAll composes and delivers an invitation for every invite
// recommendation in recs. Recommendations of other types and contacts
// without an email address are reported in the results and skipped. With
// dryRun set nothing is sent. The returned error is non-nil only when ctx
// ends.
func (s *Sender) SendAll(ctx context.Context, recs []recommend.Recommendation, tmpl Template, dryRun bool) ([]Result, error) {
	out := make([]Result, 0, len(recs))
	for _, r := range recs {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		res := Result{ContactID: r.Contact.Identifier}
		msg, err := Compose(r, tmpl)
		if err != nil {
			res.Err = err
			out = append(out, res)
			continue
		}
		res.To = msg.To[0]
		if dryRun {
			out = append(out, res)
			continue
		}
		res.MessageID, res.Err = s.Send(ctx, msg)
		if res.Err != nil && !errors.Is(res.Err, context.Canceled) {
			s.logger.WithError(res.Err).WithField("contact", res.ContactID).Warn("invite: send failed")
		}
		out = append(out, res)
	}
	return out, nil
}
