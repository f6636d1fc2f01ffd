package integrationtests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/pagewire/internal/app"
	"github.com/pagecraft/pagewire/internal/testutil"
)

const chromeManifest = `
feature "VideoModal" {
  description      = "Full-screen video lightbox."
  provides_actions = ["{key}.open", "{key}.close"]
}

feature "CursorLabel" {
  provides_actions = ["{key}.show", "{key}.hide"]
}

feature "FloatingPanel" {
  provides_actions = ["{key}.toggle"]
}

widget "button" {
  trigger_events = ["click", "hover"]
}

widget "card" {
  trigger_events = ["click"]
  decorators     = ["hoverLabel"]
}

decorator "hoverLabel" {
  requires_features = ["CursorLabel"]
}
`

func TestPipelineInjectsMissingOverlays(t *testing.T) {
	t.Parallel()

	res := testutil.RunWiringTest(t, map[string]string{
		"catalog/chrome.hcl": chromeManifest,
		"site/home.json": `{
			"id": "home",
			"sections": [
				{"id": "hero", "nodes": [
					{"id": "cta", "type": "button", "on": {"click": "modal.open"}},
					{"id": "teaser", "type": "card"}
				]}
			]
		}`,
	}, true)

	require.NoError(t, res.Err)

	// The explicit binding injects VideoModal under "modal"; the card's
	// default decorator implies CursorLabel under its default key.
	assert.Contains(t, res.Output, "+ modal = VideoModal")
	assert.Contains(t, res.Output, "+ cursorLabel = CursorLabel")
	assert.NotContains(t, res.Output, "! unresolved")

	// The wiring check unmounts everything it mounted.
	assert.Empty(t, res.App.Registry().List())
}

func TestPipelineIsIdempotentForConfiguredPages(t *testing.T) {
	t.Parallel()

	res := testutil.RunWiringTest(t, map[string]string{
		"catalog/chrome.hcl": chromeManifest,
		"site/home.json": `{
			"id": "home",
			"overlays": [{"key": "modal", "feature": "VideoModal"}],
			"sections": [
				{"id": "hero", "nodes": [
					{"id": "cta", "type": "button", "on": {"click": "modal.open"}}
				]}
			]
		}`,
	}, true)

	require.NoError(t, res.Err)
	assert.NotContains(t, res.Output, "+ modal", "an already-configured overlay must not be re-injected")
	assert.NotContains(t, res.Output, "! unresolved")
}

func TestPipelineStrictModeFailsOnUnresolvedActions(t *testing.T) {
	t.Parallel()

	res := testutil.RunWiringTest(t, map[string]string{
		"catalog/chrome.hcl": chromeManifest,
		"site/home.json": `{
			"id": "home",
			"sections": [
				{"id": "hero", "nodes": [
					{"id": "cta", "type": "button", "on": {"click": "timetravel.start"}}
				]}
			]
		}`,
	}, true)

	require.ErrorIs(t, res.Err, app.ErrUnresolvedActions)
	assert.Contains(t, res.Output, "! unresolved: timetravel.start")
}

func TestPipelineAcceptsYAMLPages(t *testing.T) {
	t.Parallel()

	res := testutil.RunWiringTest(t, map[string]string{
		"catalog/chrome.hcl": chromeManifest,
		"site/pricing.yaml": `
id: pricing
sections:
  - id: plans
    nodes:
      - id: details
        type: button
        on:
          click:
            - action: panel.toggle
              panelId: comparison
`,
	}, true)

	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "+ panel = FloatingPanel")
}

func TestPipelineFanOutBindingsResolveOnce(t *testing.T) {
	t.Parallel()

	res := testutil.RunWiringTest(t, map[string]string{
		"catalog/chrome.hcl": chromeManifest,
		"site/home.json": `{
			"id": "home",
			"sections": [
				{"id": "hero", "nodes": [
					{"id": "cta", "type": "button", "on": {
						"click": ["modal.open", "modal.close"]
					}}
				]}
			]
		}`,
	}, true)

	require.NoError(t, res.Err)
	// Both actions share the "modal" namespace: one injection serves both.
	assert.Equal(t, 1, strings.Count(res.Output, "+ modal = VideoModal"))
}

func TestPipelineRejectsBrokenSite(t *testing.T) {
	t.Parallel()

	res := testutil.RunWiringTest(t, map[string]string{
		"catalog/chrome.hcl": chromeManifest,
		"site/broken.json":   `{"sections": [{"nodes": [{"on": {"click": 42}}]}]}`,
	}, false)

	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "startup panicked")
}
