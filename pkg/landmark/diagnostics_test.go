package landmark_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
)

func TestUnlabeledSameRoleWarnsOnce(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)

	add(t, reg, doc, "intro", landmark.RoleRegion, "")
	add(t, reg, doc, "side", landmark.RoleRegion, "")

	diags := reg.Diagnostics()
	require.Len(t, diags, 1)
	require.Equal(t, landmark.SeverityWarning, diags[0].Severity)
	require.Equal(t, landmark.CodeMissingLabel, diags[0].Code)
	require.Equal(t, landmark.RoleRegion, diags[0].Role)
	require.Equal(t, []string{"intro", "side"}, ids(diags[0].Elements))
	require.Contains(t, diags[0].Message, "'region' role")
}

func TestOnlyUnlabeledLandmarksAreListed(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)

	add(t, reg, doc, "intro", landmark.RoleRegion, "Intro")
	add(t, reg, doc, "side", landmark.RoleRegion, "")

	diags := reg.Diagnostics()
	require.Len(t, diags, 1)
	require.Equal(t, []string{"side"}, ids(diags[0].Elements))
}

func TestDistinctLabelsAreQuiet(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)

	add(t, reg, doc, "intro", landmark.RoleRegion, "Intro")
	add(t, reg, doc, "side", landmark.RoleRegion, "Related")
	add(t, reg, doc, "nav", landmark.RoleNavigation, "")

	require.Empty(t, reg.Diagnostics())
}

func TestDuplicateLabelWarns(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)

	add(t, reg, doc, "intro", landmark.RoleRegion, "Details")
	add(t, reg, doc, "side", landmark.RoleRegion, "Details")

	diags := reg.Diagnostics()
	require.Len(t, diags, 1)
	require.Equal(t, landmark.CodeDuplicateLabel, diags[0].Code)
	require.Equal(t, "Details", diags[0].Label)
	require.Equal(t, []string{"intro", "side"}, ids(diags[0].Elements))
	require.Contains(t, diags[0].Message, "'Details' label")
}

func TestUpdateRevalidatesLabels(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)

	add(t, reg, doc, "intro", landmark.RoleRegion, "Intro")
	side := add(t, reg, doc, "side", landmark.RoleRegion, "Related")
	require.Empty(t, reg.Diagnostics())

	reg.Update(side, landmark.WithLabel("Intro"))
	diags := reg.Diagnostics()
	require.Len(t, diags, 1)
	require.Equal(t, landmark.CodeDuplicateLabel, diags[0].Code)

	reg.ClearDiagnostics()
	reg.Update(side, landmark.WithLabel("Related"))
	require.Empty(t, reg.Diagnostics())
}

func TestDuplicateMainIsAnError(t *testing.T) {
	doc := newDoc(t)
	reg := newRegistry(t, doc)

	add(t, reg, doc, "main", landmark.RoleMain, "")
	require.Empty(t, reg.Diagnostics())

	add(t, reg, doc, "side", landmark.RoleMain, "")

	var errs []landmark.Diagnostic
	for _, d := range reg.Diagnostics() {
		if d.Severity == landmark.SeverityError {
			errs = append(errs, d)
		}
	}
	require.Len(t, errs, 1)
	require.Equal(t, landmark.CodeDuplicateMain, errs[0].Code)
	require.Equal(t, []string{"main", "side"}, ids(errs[0].Elements))

	// The registry keeps both landmarks.
	require.Len(t, reg.LandmarksByRole(landmark.RoleMain), 2)
}

func TestDiagnosticsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	doc := newDoc(t)
	reg := landmark.New(doc, landmark.WithLogger(logger))
	add(t, reg, doc, "main", landmark.RoleMain, "")
	add(t, reg, doc, "side", landmark.RoleMain, "")

	var levels []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		levels = append(levels, record["level"].(string))
		require.Equal(t, "main", record["role"])
	}
	require.Equal(t, []string{"ERROR", "WARN"}, levels)
}

func TestDiagnosticHandlerAndLocale(t *testing.T) {
	var got []landmark.Diagnostic
	doc := newDoc(t)
	reg := newRegistry(t, doc,
		landmark.WithLocale("fr"),
		landmark.WithDiagnosticHandler(func(d landmark.Diagnostic) { got = append(got, d) }),
	)

	add(t, reg, doc, "intro", landmark.RoleRegion, "")
	add(t, reg, doc, "side", landmark.RoleRegion, "")

	require.Len(t, got, 1)
	require.True(t, strings.HasPrefix(got[0].Message, "La page contient"), got[0].Message)
	require.Contains(t, got[0].String(), "warning [missing-label]")
}
