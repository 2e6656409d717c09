package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/smtp"
	"path/filepath"
	"strings"
	"time"
)

// MailService renders OTP mails and delivers them over SMTP STARTTLS.
type MailService struct {
	host         string
	port         string
	username     string
	password     string
	mailFrom     string
	mailFromName string
	templatesDir string
}

func NewMailService(host, port, username, password, mailFrom, mailFromName, templatesDir string) *MailService {
	return &MailService{
		host:         host,
		port:         port,
		username:     username,
		password:     password,
		mailFrom:     mailFrom,
		mailFromName: mailFromName,
		templatesDir: templatesDir,
	}
}

func (s *MailService) SendVerificationEmail(to, otp string) error {
	return s.send(to, "Verify your email", "verify-email.html", otp)
}

func (s *MailService) SendPasswordResetEmail(to, otp string) error {
	return s.send(to, "Reset your password", "reset-password.html", otp)
}

func (s *MailService) send(to, subject, templateFile, otp string) error {
	htmlBody, err := s.render(templateFile, otp)
	if err != nil {
		return err
	}

	fromHeader := fmt.Sprintf("%s <%s>", s.mailFromName, s.mailFrom)

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	if err := s.sendSMTPWithTimeout(to, []byte(msg)); err != nil {
		return err
	}

	log.Printf("[MAIL] sent to=%s", to)
	return nil
}

func (s *MailService) render(templateFile, otp string) (string, error) {
	tmpl, err := template.ParseFiles(filepath.Join(s.templatesDir, templateFile))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]string{"Otp": otp}); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *MailService) sendSMTPWithTimeout(to string, msg []byte) error {
	addr := net.JoinHostPort(s.host, s.port)

	conn, err := net.DialTimeout("tcp", addr, 8*time.Second)
	if err != nil {
		return err
	}
	// deadline covers the whole session, not just the dial
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}

	if s.username != "" {
		auth := smtp.PlainAuth("", s.username, s.password, s.host)
		if err := c.Auth(auth); err != nil {
			return err
		}
	}

	if err := c.Mail(s.mailFrom); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
