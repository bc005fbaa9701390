package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessagesRender(t *testing.T) {
	m, err := NewMessages("en")
	require.NoError(t, err)

	msg := m.Render(MessageDuplicateLabel, map[string]any{"Role": "region", "Label": "Sidebar"})
	require.Contains(t, msg, "'region' role")
	require.Contains(t, msg, "'Sidebar' label")
}

func TestMessagesFrench(t *testing.T) {
	m := MustMessages("fr-FR", "en")

	msg := m.Render(MessageMissingLabel, map[string]any{"Role": "navigation"})
	require.True(t, strings.HasPrefix(msg, "La page contient"), "got %q", msg)
}

func TestMessagesFallback(t *testing.T) {
	m := MustMessages("de")

	msg := m.Render(MessageDuplicateMain, nil)
	require.Contains(t, msg, "no more than one landmark")
}

func TestMessagesUnknownID(t *testing.T) {
	m := MustMessages("en")
	require.Equal(t, "NoSuchMessage", m.Render("NoSuchMessage", nil))
}
