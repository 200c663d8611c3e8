package mailx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSMTPSender(t *testing.T) {
	_, err := NewSMTPSender(SMTPConfig{})
	require.Error(t, err)

	_, err = NewSMTPSender(SMTPConfig{Host: "smtp.example.test", Username: "nobody"})
	require.Error(t, err)

	s, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.test", Username: "door@example.test"})
	require.NoError(t, err)
	require.Equal(t, 465, s.dialer.Port)
	require.True(t, s.dialer.SSL)
	require.Equal(t, "door@example.test", s.from)

	s, err = NewSMTPSender(SMTPConfig{Host: "smtp.example.test", Port: 587, From: "keys@example.test"})
	require.NoError(t, err)
	require.False(t, s.dialer.SSL)
}

func TestSMTPSender_Compose(t *testing.T) {
	s, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.test", From: "keys@example.test"})
	require.NoError(t, err)

	gm, err := s.compose(Message{To: "alice@example.test", Subject: "Your code", Body: "12345"})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = gm.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	require.Contains(t, raw, "From: keys@example.test")
	require.Contains(t, raw, "To: alice@example.test")
	require.Contains(t, raw, "Subject: Your code")
	require.Contains(t, raw, "12345")

	_, err = s.compose(Message{Subject: "x"})
	require.ErrorIs(t, err, ErrNoRecipient)
}

func TestSMTPSender_CancelledContext(t *testing.T) {
	s, err := NewSMTPSender(SMTPConfig{Host: "smtp.example.test", From: "keys@example.test"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Send(ctx, Message{To: "a@example.test"}), context.Canceled)
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	s := LogSender{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))}

	require.NoError(t, s.Send(context.Background(), Message{To: "a@example.test", Subject: "hi", Body: "secret-code"}))
	require.Contains(t, buf.String(), "a@example.test")
	require.NotContains(t, buf.String(), "secret-code")

	require.ErrorIs(t, s.Send(context.Background(), Message{}), ErrNoRecipient)
}
