package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer menulis link reset ke log, bukan mengirim email. Dipakai di
// development dan environment tanpa SMTP; integrasi SMTP tinggal mengganti
// implementasi auth.Mailer di registry.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger.Named("mailer")}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	// Token mentah memang di-log di sini; hanya hash-nya yang tersimpan di DB.
	m.logger.Info("password reset requested",
		zap.String("email", email),
		zap.String("reset_token", token),
	)
	return nil
}
