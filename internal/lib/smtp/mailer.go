package smtp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/discount-storefront/internal/lib/sl"
)

// Mailer отправляет письма с кодом восстановления пароля через SMTP транспорт.
type Mailer struct {
	transport TransportInterface
	log       *slog.Logger
}

// NewMailer создает Mailer поверх SMTP транспорта.
func NewMailer(transport TransportInterface, log *slog.Logger) *Mailer {
	return &Mailer{transport: transport, log: log}
}

// SendResetCode отправляет одноразовый код восстановления на адрес пользователя.
func (m *Mailer) SendResetCode(_ context.Context, toEmail, toName, code string) error {
	const op = "smtp.SendResetCode"

	client, err := m.transport.Connect()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := client.Quit(); err != nil {
			m.log.Warn("failed to quit smtp session", sl.Err(err))
		}
	}()

	from := m.transport.GetSMTPUser()
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Password reset code\r\n\r\nHello %s,\r\n\r\nYour password reset code is: %s\r\nIt expires in 10 minutes.\r\n",
		from, toEmail, toName, code)
	if _, err := wc.Write([]byte(msg)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// LogMailer — замена для окружений без SMTP: код пишется только в лог сервера,
// в ответ API он не попадает.
type LogMailer struct {
	log *slog.Logger
}

// NewLogMailer создает LogMailer.
func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// SendResetCode пишет код восстановления в лог вместо отправки письма.
func (m *LogMailer) SendResetCode(_ context.Context, toEmail, _, code string) error {
	m.log.Info("password reset code issued",
		slog.String("email", toEmail),
		slog.String("code", code),
	)
	return nil
}
