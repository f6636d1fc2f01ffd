package resolve

import (
	"strings"

	"github.com/pagecraft/pagewire/internal/catalog"
)

// ActionMatches reports whether a provides_actions entry satisfies an
// action identifier.
//
// Two forms exist: literal equality, and the "{key}" template, where the
// placeholder stands for an arbitrary non-empty feature key followed by the
// entry's fixed verb suffix ("{key}.show" matches "cursorLabel.show"). The
// non-empty prefix requirement keeps a bare suffix from matching
// everything: "{key}.show" does not match ".show".
func ActionMatches(entry, actionID string) bool {
	if !strings.Contains(entry, catalog.KeyPlaceholder) {
		return entry == actionID
	}
	suffix := strings.Replace(entry, catalog.KeyPlaceholder, "", 1)
	return strings.HasSuffix(actionID, suffix) && len(actionID) > len(suffix)
}

// DeriveKey derives the instance key for an action about to be provided by
// featureID: the action's namespace (substring before the first '.') when
// it has one, else the feature's default key.
func DeriveKey(actionID, featureID string) string {
	if idx := strings.Index(actionID, "."); idx >= 0 {
		return actionID[:idx]
	}
	return catalog.DefaultKey(featureID)
}
