package app

import (
	"fmt"
	"io"

	"github.com/pagecraft/pagewire/internal/resolve"
	"github.com/pagecraft/pagewire/internal/scan"
)

// PageReport summarizes the wiring outcome for one page.
type PageReport struct {
	PageID string `json:"page"`
	// Actions is every action identifier the page's trees reference, in
	// first-seen order.
	Actions []string `json:"actions"`
	// ImpliedFeatures are the feature ids required purely by decoration.
	ImpliedFeatures []string `json:"impliedFeatures,omitempty"`
	// ExistingKeys are the overlay keys already configured on the page.
	ExistingKeys []string `json:"existingKeys,omitempty"`
	// Injected are the overlay bindings resolution scheduled for the page.
	Injected []resolve.Binding `json:"injected,omitempty"`
	// Unresolved are actions that still have no handler after injection.
	Unresolved []string `json:"unresolved,omitempty"`
}

// Report is the site-wide wiring summary; it is also the inspector
// snapshot payload.
type Report struct {
	Pages []PageReport `json:"pages"`
	// PresetActions maps each action to the sections referencing it,
	// for impact analysis.
	PresetActions map[string][]string `json:"presetActions,omitempty"`
	// Widgets lists every node whose type can fire trigger events,
	// site-wide, for authoring tooling.
	Widgets []scan.TriggerableWidget `json:"widgets,omitempty"`
}

// Unresolved reports whether any page has unresolved actions.
func (r *Report) Unresolved() bool {
	for _, pr := range r.Pages {
		if len(pr.Unresolved) > 0 {
			return true
		}
	}
	return false
}

// write prints the human-readable run summary.
func (r *Report) write(w io.Writer) {
	for _, pr := range r.Pages {
		fmt.Fprintf(w, "page %s: %d action(s), %d overlay(s) injected\n",
			pr.PageID, len(pr.Actions), len(pr.Injected))
		for _, b := range pr.Injected {
			fmt.Fprintf(w, "  + %s = %s\n", b.Key, b.FeatureID)
		}
		for _, actionID := range pr.Unresolved {
			fmt.Fprintf(w, "  ! unresolved: %s\n", actionID)
		}
	}
}
