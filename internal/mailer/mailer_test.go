package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("implicit TLS on 465", func(t *testing.T) {
		m := New("smtp.example.com", 465, "noreply@example.com", "password")
		assert.Equal(t, "noreply@example.com", m.from)
		assert.True(t, m.dialer.SSL)
		assert.Equal(t, "smtp.example.com", m.dialer.Host)
		assert.Equal(t, 465, m.dialer.Port)
	})

	t.Run("STARTTLS on 587", func(t *testing.T) {
		m := New("smtp.example.com", 587, "noreply@example.com", "password")
		assert.False(t, m.dialer.SSL)
	})
}

func TestSendCode_Unreachable(t *testing.T) {
	// Port 1 is never an SMTP listener; dispatch must fail, not hang.
	m := New("127.0.0.1", 1, "noreply@example.com", "password")

	err := m.SendCode("jane@example.com", "123456")
	assert.Error(t, err)
}
