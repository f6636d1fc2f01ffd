package resolve

import (
	"strings"

	"github.com/pagecraft/pagewire/internal/catalog"
)

// Resolution is the diagnostic answer for a single action: whether it is
// currently resolved on a page, by which key and feature, and every catalog
// feature that could provide it regardless of key claims.
type Resolution struct {
	ActionID string `json:"action"`
	Resolved bool   `json:"resolved"`
	// Key and FeatureID are set only when Resolved.
	Key       string `json:"key,omitempty"`
	FeatureID string `json:"feature,omitempty"`
	// Candidates lists every feature whose provides_actions matches, in
	// catalog declaration order.
	Candidates []string `json:"candidates,omitempty"`
}

// ResolveAction answers "is this action satisfied on a page with these
// keys, and by what". It performs no mutation and is safe to call
// repeatedly for live authoring feedback.
//
// Precedence: an action whose namespace prefix is already an existing key
// counts as resolved by that key, attributed to the first candidate
// (best-effort, since several features could share a namespace
// convention); otherwise a candidate whose default key is already present
// resolves it; otherwise it is unresolved.
func (r *Resolver) ResolveAction(actionID string, existingKeys []string) Resolution {
	existing := make(map[string]struct{}, len(existingKeys))
	for _, key := range existingKeys {
		existing[key] = struct{}{}
	}

	var candidates []string
	for _, feature := range r.catalog.Features() {
		for _, entry := range feature.ProvidesActions {
			if ActionMatches(entry, actionID) {
				candidates = append(candidates, feature.ID)
				break
			}
		}
	}

	res := Resolution{ActionID: actionID, Candidates: candidates}

	if idx := strings.Index(actionID, "."); idx > 0 {
		prefix := actionID[:idx]
		if _, ok := existing[prefix]; ok {
			res.Resolved = true
			res.Key = prefix
			if len(candidates) > 0 {
				res.FeatureID = candidates[0]
			}
			return res
		}
	}

	for _, featureID := range candidates {
		key := catalog.DefaultKey(featureID)
		if _, ok := existing[key]; ok {
			res.Resolved = true
			res.Key = key
			res.FeatureID = featureID
			return res
		}
	}

	return res
}
