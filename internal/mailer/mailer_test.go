package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/go-mail/mail/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaughan-dsouza/salesdesk/internal/config"
	"github.com/vaughan-dsouza/salesdesk/internal/testutil"
)

type fakeSender struct {
	sent []*mail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*mail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestSMTP_SendConfirmation(t *testing.T) {
	sender := &fakeSender{}
	m := NewSMTP(sender, "noreply@example.com")

	link := "http://localhost:3001/users/confirm?token=abc"
	require.NoError(t, m.SendConfirmation(context.Background(), "alice@example.com", "Alice", link))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"alice@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"noreply@example.com"}, msg.GetHeader("From"))

	var raw bytes.Buffer
	_, err := msg.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "Confirm your SalesDesk account")
	assert.Contains(t, raw.String(), "Hello Alice")
}

func TestSMTP_SendError(t *testing.T) {
	sendErr := errors.New("dial tcp: connection refused")
	m := NewSMTP(&fakeSender{err: sendErr}, "noreply@example.com")

	err := m.SendConfirmation(context.Background(), "alice@example.com", "", "http://x")
	assert.ErrorIs(t, err, sendErr)
}

func TestSMTP_CanceledContext(t *testing.T) {
	sender := &fakeSender{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSMTP(sender, "noreply@example.com").SendConfirmation(ctx, "a@b.c", "", "http://x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sender.sent)
}

func TestNew_SelectsImplementation(t *testing.T) {
	log := testutil.MakeNoopLogger()

	assert.IsType(t, &Noop{}, New(config.SMTP{}, log))
	assert.IsType(t, &SMTP{}, New(config.SMTP{Host: "smtp.example.com", Port: 587}, log))

	assert.NoError(t, NewNoop(log).SendConfirmation(context.Background(), "a@b.c", "", "http://x"))
}
