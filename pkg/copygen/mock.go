package copygen

import (
	"context"

	"kalahaat/internal/i18n"
)

// Mock is a Generator for tests and for running without an API key. It
// records the last call and returns a canned response or error.
type Mock struct {
	Response     string
	Err          error
	CallCount    int
	LastTitle    string
	LastCategory string
	LastLang     i18n.Language
}

// GenerateDescription returns the configured response or error.
func (m *Mock) GenerateDescription(_ context.Context, title, category string, lang i18n.Language) (string, error) {
	m.CallCount++
	m.LastTitle = title
	m.LastCategory = category
	m.LastLang = lang
	if m.Err != nil {
		return "", m.Err
	}
	if m.Response == "" {
		return "A handcrafted piece rooted in tribal tradition.", nil
	}
	return m.Response, nil
}
