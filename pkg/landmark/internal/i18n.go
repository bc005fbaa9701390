package internal

import (
	"embed"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFiles embed.FS

// Message identifiers for diagnostics.
const (
	MessageDuplicateMain  = "DuplicateMain"
	MessageMissingLabel   = "MissingLabel"
	MessageDuplicateLabel = "DuplicateLabel"
)

// Messages renders localized diagnostic messages.
type Messages struct {
	localizer *i18n.Localizer
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFiles.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		data, err := localeFiles.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}

// NewMessages builds a localizer for the given BCP 47 locales, in
// preference order. Unknown locales fall back to English.
func NewMessages(locales ...string) (*Messages, error) {
	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}
	return &Messages{localizer: i18n.NewLocalizer(bundle, locales...)}, nil
}

// MustMessages is like NewMessages but panics on a broken embedded bundle.
func MustMessages(locales ...string) *Messages {
	m, err := NewMessages(locales...)
	if err != nil {
		panic(err)
	}
	return m
}

// Render returns the message for id with data applied. The id itself is
// returned if the message cannot be localized.
func (m *Messages) Render(id string, data map[string]any) string {
	msg, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		GetLogger().Debug("Failed to localize message", "id", id, "error", err)
		return id
	}
	return msg
}
