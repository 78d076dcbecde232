// Package notification holds the simulated delivery channels. Real SMS
// and email delivery are out of scope; these stubs log what would have
// been sent so the flows stay observable in development.
package notification

import "github.com/sirupsen/logrus"

// LogSMSSender writes login codes to the log instead of sending them.
type LogSMSSender struct{}

// NewLogSMSSender creates a new LogSMSSender.
func NewLogSMSSender() *LogSMSSender {
	return &LogSMSSender{}
}

// SendLoginCode logs the code that would have been texted.
func (s *LogSMSSender) SendLoginCode(mobile, code string) error {
	logrus.WithFields(logrus.Fields{"mobile": mobile, "code": code}).Info("simulated SMS: login code")
	return nil
}

// LogMailer writes password-reset notifications to the log.
type LogMailer struct{}

// NewLogMailer creates a new LogMailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// SendPasswordReset logs the reset mail that would have been sent.
func (m *LogMailer) SendPasswordReset(email, name string) error {
	logrus.WithFields(logrus.Fields{"email": email, "name": name}).Info("simulated email: password reset")
	return nil
}
