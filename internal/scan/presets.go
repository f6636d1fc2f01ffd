package scan

import (
	"sort"

	"github.com/pagecraft/pagewire/internal/page"
)

// CollectPresetActions maps every referenced action identifier to the
// ordered, de-duplicated list of section ids that reference it, across the
// whole site. This powers impact analysis: which sections break if the
// feature providing action X is removed.
//
// Pages are visited in sorted-id order and sections by position, so each
// action's section list is stable for a given site.
func CollectPresetActions(site *page.Site) map[string][]string {
	out := make(map[string][]string)
	seen := make(map[string]map[string]struct{})

	pageIDs := make([]string, 0, len(site.Pages))
	for id := range site.Pages {
		pageIDs = append(pageIDs, id)
	}
	sort.Strings(pageIDs)

	for _, pageID := range pageIDs {
		for _, section := range site.Pages[pageID].Sections {
			walkNodes(section.Nodes, func(n *page.Node, _ []string, _ int) {
				for _, event := range sortedEvents(n.On) {
					for _, b := range n.On[event] {
						if b.Action == "" {
							continue
						}
						if seen[b.Action] == nil {
							seen[b.Action] = make(map[string]struct{})
						}
						if _, dup := seen[b.Action][section.ID]; dup {
							continue
						}
						seen[b.Action][section.ID] = struct{}{}
						out[b.Action] = append(out[b.Action], section.ID)
					}
				}
			})
		}
	}
	return out
}
