package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/craftlink/marketplace/internal/config"
)

// Module exposes the mail sender implementation to the fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) Sender {
	if !p.Config.MailEnabled() {
		return NewLogSender(p.Logger)
	}
	return NewSMTPSender(p.Config.SMTPHost, p.Config.SMTPPort, p.Config.SMTPUser, p.Config.SMTPPassword, p.Config.MailFrom, p.Logger)
}
