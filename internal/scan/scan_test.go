package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagecraft/pagewire/internal/page"
)

// fakeMeta is a minimal Metadata stub for scanner tests.
type fakeMeta struct {
	events     map[string][]string
	decorators map[string][]string
	requires   map[string][]string
}

func (m *fakeMeta) TriggerEvents(t string) []string     { return m.events[t] }
func (m *fakeMeta) DefaultDecorators(t string) []string { return m.decorators[t] }
func (m *fakeMeta) DecoratorRequires(r string) []string { return m.requires[r] }

func literal(action string) page.Binding {
	return page.Binding{Kind: page.LiteralBinding, Action: action}
}

func TestCollectActionsWalksNestedChildren(t *testing.T) {
	t.Parallel()

	tree := []*page.Node{{
		ID:   "root",
		Type: "section",
		Children: []*page.Node{{
			ID:   "child",
			Type: "button",
			On:   map[string]page.BindingList{"click": {literal("modal.open")}},
			Children: []*page.Node{{
				ID:   "grandchild",
				Type: "link",
				On:   map[string]page.BindingList{"click": {literal("a.x"), literal("a.y")}},
			}},
		}},
	}}

	got := CollectActions(context.Background(), tree)
	assert.ElementsMatch(t, []string{"modal.open", "a.x", "a.y"}, got)
}

func TestCollectActionsDeduplicatesFirstSeen(t *testing.T) {
	t.Parallel()

	tree := []*page.Node{
		{Type: "button", On: map[string]page.BindingList{"click": {literal("modal.open")}}},
		{Type: "button", On: map[string]page.BindingList{"hover": {literal("modal.open"), literal("label.show")}}},
	}

	got := CollectActions(context.Background(), tree)
	assert.Equal(t, []string{"modal.open", "label.show"}, got)
}

func TestCollectActionsSkipsEmptyAndMalformedBindings(t *testing.T) {
	t.Parallel()

	tree := []*page.Node{
		// An `on` map with an empty binding list contributes nothing.
		{Type: "button", On: map[string]page.BindingList{"click": {}}},
		// A structured binding without an action is skipped, not fatal.
		{Type: "button", On: map[string]page.BindingList{"click": {
			{Kind: page.StructuredBinding, Params: map[string]any{"videoId": "x"}},
			literal("modal.open"),
		}}},
	}

	got := CollectActions(context.Background(), tree)
	assert.Equal(t, []string{"modal.open"}, got)
}

func TestCollectActionsEmptyTree(t *testing.T) {
	t.Parallel()

	assert.Empty(t, CollectActions(context.Background(), nil))
}

func TestCollectDecoratorOverlays(t *testing.T) {
	t.Parallel()

	meta := &fakeMeta{
		decorators: map[string][]string{"button": {"glow"}},
		requires: map[string][]string{
			"glow":   {"CursorLabel"},
			"sticky": {"FloatingPanel", "CursorLabel"},
		},
	}

	tree := []*page.Node{
		// No explicit decorators: the type default ("glow") applies.
		{Type: "button"},
		{Type: "card", Decorators: []string{"sticky"}, Children: []*page.Node{
			// Explicit empty list suppresses the type default.
			{Type: "button", Decorators: []string{}},
		}},
		// Unknown decorator reference implies nothing.
		{Type: "card", Decorators: []string{"unknown"}},
	}

	got := CollectDecoratorOverlays(context.Background(), tree, meta)
	assert.Equal(t, []string{"CursorLabel", "FloatingPanel"}, got)
}

func TestCollectPresetActions(t *testing.T) {
	t.Parallel()

	site := page.NewSite()
	site.Pages["home"] = &page.Page{
		ID: "home",
		Sections: []*page.Section{
			{ID: "hero", Nodes: []*page.Node{
				{Type: "button", On: map[string]page.BindingList{"click": {literal("modal.open")}}},
				{Type: "button", On: map[string]page.BindingList{"click": {literal("modal.open")}}},
			}},
			{ID: "footer", Nodes: []*page.Node{
				{Type: "link", On: map[string]page.BindingList{"click": {literal("modal.open"), literal("label.show")}}},
			}},
		},
	}

	got := CollectPresetActions(site)
	assert.Equal(t, map[string][]string{
		"modal.open": {"hero", "footer"},
		"label.show": {"footer"},
	}, got)
}
