package mail

import (
	"mime"
	"strings"
	"testing"
)

func TestBuildMessageEncodesSubject(t *testing.T) {
	m := NewPasswordResetMailer("smtp.redect.com", "587", "user", "pass", "no-reply@redect.com", "https://app.redect.com")

	msg := string(m.buildMessage("member@redect.com", "deadbeef"))

	var subjectLine string
	for _, line := range strings.Split(msg, "\r\n") {
		if strings.HasPrefix(line, "Subject: ") {
			subjectLine = strings.TrimPrefix(line, "Subject: ")
			break
		}
	}
	if subjectLine == "" {
		t.Fatalf("no Subject header in message:\n%s", msg)
	}
	if !strings.HasPrefix(subjectLine, "=?utf-8?q?") {
		t.Errorf("subject not Q-encoded: %q", subjectLine)
	}
	if strings.ContainsAny(subjectLine, "çã") {
		t.Errorf("subject header carries raw non-ASCII bytes: %q", subjectLine)
	}

	decoded, err := new(mime.WordDecoder).DecodeHeader(subjectLine)
	if err != nil {
		t.Fatalf("decode subject: %v", err)
	}
	if decoded != "Recuperação de Senha" {
		t.Errorf("decoded subject: expected %q, got %q", "Recuperação de Senha", decoded)
	}
}

func TestResetURL(t *testing.T) {
	m := NewPasswordResetMailer("smtp.redect.com", "587", "", "", "no-reply@redect.com", "https://app.redect.com/")

	got := m.ResetURL("abc123")
	want := "https://app.redect.com/login/redefinir-senha?token=abc123"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
