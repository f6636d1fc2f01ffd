package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/pagewire/internal/page"
)

func TestCollectTriggerableWidgets(t *testing.T) {
	t.Parallel()

	meta := &fakeMeta{events: map[string][]string{
		"button": {"click", "hover"},
		"video":  {"play", "ended"},
	}}

	site := page.NewSite()
	site.Pages["home"] = &page.Page{
		ID: "home",
		Sections: []*page.Section{
			{ID: "hero", Nodes: []*page.Node{
				{ID: "wrap", Type: "container", Children: []*page.Node{
					// Id-less intermediate node: a positional id appears in
					// its child's breadcrumb path.
					{Type: "row", Children: []*page.Node{
						{ID: "cta", Type: "button", On: map[string]page.BindingList{
							"click": {literal("modal.open")},
						}},
					}},
				}},
			}},
			{ID: "media", Nodes: []*page.Node{
				{ID: "promo", Type: "video"},
			}},
		},
	}

	got := CollectTriggerableWidgets(context.Background(), site, meta)
	require.Len(t, got, 2)

	cta := got[0]
	assert.Equal(t, "home", cta.PageID)
	assert.Equal(t, "hero", cta.SectionID)
	assert.Equal(t, 0, cta.SectionIndex)
	assert.Equal(t, []string{"wrap", "row-1"}, cta.Path)
	assert.Equal(t, "cta", cta.NodeID)
	assert.Equal(t, "button", cta.NodeType)
	assert.Equal(t, []string{"click", "hover"}, cta.TriggerEvents)
	require.Contains(t, cta.On, "click")
	assert.Equal(t, "modal.open", cta.On["click"][0].Action)

	promo := got[1]
	assert.Equal(t, "media", promo.SectionID)
	assert.Equal(t, 1, promo.SectionIndex)
	assert.Empty(t, promo.Path)
	assert.Equal(t, "promo", promo.NodeID)
	assert.Equal(t, []string{"play", "ended"}, promo.TriggerEvents)
	assert.Empty(t, promo.On)
}

func TestCollectTriggerableWidgetsSynthesizesNodeID(t *testing.T) {
	t.Parallel()

	meta := &fakeMeta{events: map[string][]string{"button": {"click"}}}

	site := page.NewSite()
	site.Pages["p"] = &page.Page{
		ID: "p",
		Sections: []*page.Section{{ID: "s", Nodes: []*page.Node{
			{Type: "button"},
			{ID: "named", Type: "button"},
		}}},
	}

	got := CollectTriggerableWidgets(context.Background(), site, meta)
	require.Len(t, got, 2)
	assert.Equal(t, "button-0", got[0].NodeID)
	assert.Equal(t, "named", got[1].NodeID)
}

func TestCollectTriggerableWidgetsVisitsPagesInSortedOrder(t *testing.T) {
	t.Parallel()

	meta := &fakeMeta{events: map[string][]string{"button": {"click"}}}

	site := page.NewSite()
	for _, id := range []string{"zeta", "alpha", "mid"} {
		site.Pages[id] = &page.Page{
			ID:       id,
			Sections: []*page.Section{{ID: "s", Nodes: []*page.Node{{ID: "b", Type: "button"}}}},
		}
	}

	got := CollectTriggerableWidgets(context.Background(), site, meta)
	require.Len(t, got, 3)
	assert.Equal(t, "alpha", got[0].PageID)
	assert.Equal(t, "mid", got[1].PageID)
	assert.Equal(t, "zeta", got[2].PageID)
}
