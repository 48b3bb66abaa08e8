package mailer

import (
	"context"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Sender delivers one rendered notification to a recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// SMTPSender implements Sender via an SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewSMTPSender creates an SMTP backed sender.
func NewSMTPSender(host string, port int, user, password, from string, logger *slog.Logger) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
		logger: logger,
	}
}

// Send composes a multipart message and delivers it synchronously.
// gomail carries no context support, so cancellation is only honored
// between the queue and the dial.
func (s *SMTPSender) Send(ctx context.Context, to, subject, text, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	m.AddAlternative("text/html", html)

	return s.dialer.DialAndSend(m)
}

// LogSender records deliveries instead of sending them. Used when no SMTP
// relay is configured, which keeps local runs self-contained.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender that only logs.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the message envelope and succeeds.
func (s *LogSender) Send(ctx context.Context, to, subject, text, html string) error {
	s.logger.Info("mail delivery skipped, no smtp relay configured",
		slog.String("to", to),
		slog.String("subject", subject),
	)
	return nil
}
