package email

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/codearena/arena-admin/internal/shared/config"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

func TestSMTPEmailService_SendReportNotice(t *testing.T) {
	var (
		gotFrom string
		gotTo   []string
		body    bytes.Buffer
	)
	sender := gomail.SendFunc(func(from string, to []string, msg io.WriterTo) error {
		gotFrom, gotTo = from, to
		_, err := msg.WriteTo(&body)
		return err
	})

	svc := newWithSender(SMTPConfig{FromAddress: "staff@codearena.test", FromName: "Staff"}, sender)
	err := svc.SendReportNotice(context.Background(), ReportNotice{
		To:           "reporter@example.com",
		ProblemTitle: "A <b>+</b> B",
		Status:       "resolved",
		Resolution:   "Fixed the test data",
	})

	require.NoError(t, err)
	assert.Equal(t, "staff@codearena.test", gotFrom)
	assert.Equal(t, []string{"reporter@example.com"}, gotTo)
	assert.Contains(t, body.String(), "Fixed the test data")
	assert.Contains(t, body.String(), "text/html")
}

func TestSMTPEmailService_RequiresRecipient(t *testing.T) {
	svc := newWithSender(SMTPConfig{}, gomail.SendFunc(func(string, []string, io.WriterTo) error {
		t.Fatal("must not send")
		return nil
	}))
	assert.Error(t, svc.SendReportNotice(context.Background(), ReportNotice{Status: "resolved"}))
}

func TestNewNotifier_Disabled(t *testing.T) {
	n := NewNotifier(config.EmailConfig{Enabled: false}, logger.NewNop())
	assert.NoError(t, n.SendReportNotice(context.Background(), ReportNotice{To: "x@example.com"}))
}
