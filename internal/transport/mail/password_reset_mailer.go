package mail

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
)

// PasswordResetMailer delivers password reset links over SMTP.
type PasswordResetMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	baseURL  string
}

func NewPasswordResetMailer(host, port, username, password, from, baseURL string) *PasswordResetMailer {
	return &PasswordResetMailer{
		host:     strings.TrimSpace(host),
		port:     strings.TrimSpace(port),
		username: username,
		password: password,
		from:     strings.TrimSpace(from),
		baseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// ResetURL builds the redemption link embedding the token.
func (m *PasswordResetMailer) ResetURL(token string) string {
	return fmt.Sprintf("%s/login/redefinir-senha?token=%s", m.baseURL, token)
}

func (m *PasswordResetMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	if m == nil {
		return errors.New("mailer not configured")
	}
	if m.host == "" || m.port == "" || m.from == "" {
		return errors.New("mailer missing configuration")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	addr := net.JoinHostPort(m.host, m.port)
	var auth smtp.Auth
	if m.username != "" || m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{email}, m.buildMessage(email, token))
}

// buildMessage assembles the raw RFC 5322 message. The subject carries
// accented characters, so it goes through RFC 2047 Q-encoding.
func (m *PasswordResetMailer) buildMessage(email, token string) []byte {
	resetURL := m.ResetURL(token)
	subject := mime.QEncoding.Encode("utf-8", "Recuperação de Senha")
	body := fmt.Sprintf(`<p>Olá,</p>
<p>Você solicitou a recuperação de senha. Clique no link abaixo para redefinir sua senha:</p>
<p><a href="%s">%s</a></p>
<p>Este link expira em 1 hora.</p>
<p>Se você não solicitou a recuperação de senha, ignore este email.</p>`, resetURL, resetURL)

	message := strings.Builder{}
	message.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", email))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	message.WriteString(body)
	message.WriteString("\r\n")
	return []byte(message.String())
}
