package transport

import (
	"sync"

	"github.com/jordan-wright/email"
)

// MockMailTransport keeps sent mails in memory instead of delivering them, for tests
// and local development.
type MockMailTransport struct {
	sync.RWMutex
	mails []*email.Email
}

func NewMock() *MockMailTransport {
	return &MockMailTransport{
		mails: make([]*email.Email, 0),
	}
}

func (m *MockMailTransport) Send(mail *email.Email) error {
	m.Lock()
	defer m.Unlock()

	m.mails = append(m.mails, mail)

	return nil
}

// GetLastSentMail returns the last sent mail, nil if none was sent yet.
func (m *MockMailTransport) GetLastSentMail() *email.Email {
	m.RLock()
	defer m.RUnlock()

	if len(m.mails) == 0 {
		return nil
	}

	return m.mails[len(m.mails)-1]
}

// GetSentMails returns all sent mails.
func (m *MockMailTransport) GetSentMails() []*email.Email {
	m.RLock()
	defer m.RUnlock()

	return m.mails
}
