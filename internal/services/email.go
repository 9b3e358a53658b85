package services

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sitedesk/sitedesk/internal/config"
	"github.com/sitedesk/sitedesk/pkg/logger"
)

// EmailService delivers share invitations over SMTP. Delivery is
// best-effort: a failed send is logged and reported, never retried here
// (the async queue owns retries).
type EmailService struct {
	cfg *config.SMTPConfig
}

func NewEmailService(cfg *config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendShareInvitation emails a project share link to the recipients.
func (s *EmailService) SendShareInvitation(task *ShareEmailTask) error {
	if !s.cfg.Enabled || s.cfg.Host == "" {
		logger.Infof("[Email] SMTP disabled, skipping share invitation for project %d", task.ProjectID)
		return nil
	}

	if len(task.Recipients) == 0 {
		return nil
	}

	subject := fmt.Sprintf("[SiteDesk] %s shared the project %q with you", task.SharedBy, task.ProjectName)
	body := s.buildShareBody(task)

	return s.sendEmail(task.Recipients, subject, body)
}

func (s *EmailService) buildShareBody(task *ShareEmailTask) string {
	var sb strings.Builder

	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString("<h2>Project shared with you</h2>")
	sb.WriteString(fmt.Sprintf("<p><b>%s</b> invited you to view <b>%s</b>.</p>", task.SharedBy, task.ProjectName))

	if task.Message != "" {
		sb.WriteString(fmt.Sprintf("<blockquote style=\"background: #f5f5f5; padding: 12px; border-radius: 4px;\">%s</blockquote>", task.Message))
	}

	sb.WriteString(fmt.Sprintf("<p><a href=\"%s\">Open the project</a></p>", task.ShareURL))
	sb.WriteString("<hr><p style=\"color: #888; font-size: 12px;\">This link expires automatically. Sent by SiteDesk.</p>")
	sb.WriteString("</body></html>")

	return sb.String()
}

func (s *EmailService) sendEmail(to []string, subject, body string) error {
	from := s.cfg.From
	if from == "" {
		from = s.cfg.Username
	}

	headers := make(map[string]string)
	headers["From"] = from
	headers["To"] = strings.Join(to, ",")
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" && s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	var err error
	if s.cfg.UseTLS {
		err = s.sendEmailTLS(addr, auth, from, to, message.String())
	} else {
		err = smtp.SendMail(addr, auth, from, to, []byte(message.String()))
	}

	if err != nil {
		logger.Infof("[Email] Failed to send email: %v", err)
		return err
	}

	logger.Infof("[Email] Sent share invitation to %v", to)
	return nil
}

func (s *EmailService) sendEmailTLS(addr string, auth smtp.Auth, from string, to []string, message string) error {
	tlsConfig := &tls.Config{
		ServerName: s.cfg.Host,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}

	_, err = w.Write([]byte(message))
	if err != nil {
		return err
	}

	return w.Close()
}
