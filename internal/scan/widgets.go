package scan

import (
	"context"
	"fmt"
	"sort"

	"github.com/pagecraft/pagewire/internal/page"
)

// TriggerableWidget is the flattened inventory record for one node whose
// type can emit trigger events. It carries everything an authoring tool
// needs to render a trigger/response assignment surface: where the node
// lives, what it can emit, and what it is currently bound to.
type TriggerableWidget struct {
	PageID       string
	SectionID    string
	SectionIndex int
	// Path is the chain of ancestor node ids from the section root down to
	// (excluding) the node itself.
	Path     []string
	NodeID   string
	NodeType string
	// TriggerEvents are the event names the node's type supports,
	// independent of whether bindings exist yet.
	TriggerEvents []string
	// On is the node's current bindings; possibly empty.
	On map[string]page.BindingList
}

// CollectTriggerableWidgets inventories every node in the site whose type
// declares at least one trigger event. Pages are visited in sorted-id
// order, sections by position, nodes depth-first, so output order is
// stable for a given site.
func CollectTriggerableWidgets(ctx context.Context, site *page.Site, meta Metadata) []TriggerableWidget {
	var out []TriggerableWidget

	pageIDs := make([]string, 0, len(site.Pages))
	for id := range site.Pages {
		pageIDs = append(pageIDs, id)
	}
	sort.Strings(pageIDs)

	for _, pageID := range pageIDs {
		pg := site.Pages[pageID]
		for sectionIndex, section := range pg.Sections {
			walkNodes(section.Nodes, func(n *page.Node, ancestors []string, depth int) {
				events := meta.TriggerEvents(n.Type)
				if len(events) == 0 {
					return
				}
				out = append(out, TriggerableWidget{
					PageID:        pageID,
					SectionID:     section.ID,
					SectionIndex:  sectionIndex,
					Path:          ancestors,
					NodeID:        nodeID(n, depth),
					NodeType:      n.Type,
					TriggerEvents: events,
					On:            n.On,
				})
			})
		}
	}
	return out
}

// positionalID synthesizes a stable id for a node that lacks one.
func positionalID(nodeType string, depth int) string {
	return fmt.Sprintf("%s-%d", nodeType, depth)
}
