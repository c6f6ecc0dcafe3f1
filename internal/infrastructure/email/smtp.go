package email

import (
	"context"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/codearena/arena-admin/internal/shared/config"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

// ReportNotice tells a reporter what happened to their problem report.
type ReportNotice struct {
	To           string
	ProblemTitle string
	Status       string // resolved or dismissed
	Resolution   string
}

type Notifier interface {
	SendReportNotice(ctx context.Context, notice ReportNotice) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPEmailService struct {
	config SMTPConfig
	send   func(m ...*gomail.Message) error
}

func NewSMTPEmailService(cfg SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &SMTPEmailService{config: cfg, send: dialer.DialAndSend}
}

// newWithSender builds a service that hands messages to sender instead of dialing SMTP.
func newWithSender(cfg SMTPConfig, sender gomail.Sender) *SMTPEmailService {
	return &SMTPEmailService{
		config: cfg,
		send: func(m ...*gomail.Message) error {
			return gomail.Send(sender, m...)
		},
	}
}

// NewNotifier returns an SMTP notifier, or one that only logs when e-mail is disabled.
func NewNotifier(cfg config.EmailConfig, log logger.Interface) Notifier {
	if !cfg.Enabled {
		return &logNotifier{logger: log}
	}
	return NewSMTPEmailService(SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	})
}

func (s *SMTPEmailService) SendReportNotice(ctx context.Context, n ReportNotice) error {
	if n.To == "" {
		return fmt.Errorf("report notice has no recipient")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("Your report on %q was %s", n.ProblemTitle, n.Status)

	resolution := n.Resolution
	if resolution == "" {
		resolution = "No further details were given."
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Problem report %s</h2>
			<p>Thank you for reporting an issue with <strong>%s</strong>.</p>
			<p>Our staff marked your report as <strong>%s</strong>:</p>
			<blockquote>%s</blockquote>
		</body>
		</html>
	`, html.EscapeString(n.Status), html.EscapeString(n.ProblemTitle),
		html.EscapeString(n.Status), strings.ReplaceAll(html.EscapeString(resolution), "\n", "<br>"))

	plainBody := fmt.Sprintf(`
Problem report %s

Thank you for reporting an issue with %s.
Our staff marked your report as %s:

%s
	`, n.Status, n.ProblemTitle, n.Status, resolution)

	return s.sendEmail(n.To, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

type logNotifier struct {
	logger logger.Interface
}

func (n *logNotifier) SendReportNotice(_ context.Context, notice ReportNotice) error {
	n.logger.Infow("email disabled, report notice not sent", "to", notice.To, "status", notice.Status)
	return nil
}
