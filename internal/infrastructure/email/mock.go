package email

import (
	"context"
	"sync"
)

// SentMail is one delivery attempt recorded by MockMailer.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MockMailer records mails instead of sending them. Identical attempts are
// recorded once.
type MockMailer struct {
	mu   sync.Mutex
	seen map[SentMail]struct{}
	sent []SentMail
}

func NewMockMailer() *MockMailer {
	return &MockMailer{seen: make(map[SentMail]struct{})}
}

func (m *MockMailer) Send(_ context.Context, to, subject, body string) error {
	mail := SentMail{To: to, Subject: subject, Body: body}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.seen[mail]; ok {
		return nil
	}
	m.seen[mail] = struct{}{}
	m.sent = append(m.sent, mail)
	return nil
}

// Sent returns the recorded mails in the order they were first attempted.
func (m *MockMailer) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]SentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

func (m *MockMailer) Contains(to, subject, body string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.seen[SentMail{To: to, Subject: subject, Body: body}]
	return ok
}

func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seen = make(map[SentMail]struct{})
	m.sent = nil
}
