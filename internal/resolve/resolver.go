package resolve

import (
	"context"

	"github.com/pagecraft/pagewire/internal/catalog"
	"github.com/pagecraft/pagewire/internal/ctxlog"
)

// Binding is one synthesized injection: mount feature FeatureID and make
// its instance addressable under Key.
type Binding struct {
	Key       string `json:"key"`
	FeatureID string `json:"feature"`
}

// Resolver matches required actions against a feature catalog. It holds no
// mutable state; one resolver may serve concurrent resolutions.
type Resolver struct {
	catalog *catalog.Catalog
}

// New creates a resolver over the given catalog.
func New(cat *catalog.Catalog) *Resolver {
	return &Resolver{catalog: cat}
}

// ResolveRequiredOverlays decides which features are missing from a page.
//
// For each required action (in input order) it picks the first feature in
// catalog declaration order that is not already scheduled and whose
// provides_actions entries satisfy the action, derives the instance key
// from the action's namespace (or the feature's default key for
// namespace-less actions), and claims both. Actions with no provider, and
// actions whose derived key is already claimed by an existing or scheduled
// feature, produce no binding and no error.
//
// The result never contains a key from existingKeys, two bindings sharing
// a key, or two bindings sharing a feature; applying the result and
// resolving again yields nothing.
func (r *Resolver) ResolveRequiredOverlays(ctx context.Context, requiredActions, existingKeys []string) []Binding {
	if len(requiredActions) == 0 {
		return nil
	}
	logger := ctxlog.FromContext(ctx)

	claimedKeys := make(map[string]struct{}, len(existingKeys))
	for _, key := range existingKeys {
		claimedKeys[key] = struct{}{}
	}
	claimedFeatures := make(map[string]struct{})

	var result []Binding
	for _, actionID := range requiredActions {
		feature := r.firstProvider(actionID, claimedFeatures)
		if feature == nil {
			logger.Debug("No catalog provider for action.", "action", actionID)
			continue
		}

		key := DeriveKey(actionID, feature.ID)
		if _, claimed := claimedKeys[key]; claimed {
			// A feature already exists (or is scheduled) under this key;
			// do not double-inject.
			continue
		}

		result = append(result, Binding{Key: key, FeatureID: feature.ID})
		claimedKeys[key] = struct{}{}
		claimedFeatures[feature.ID] = struct{}{}
		logger.Debug("Scheduled overlay injection.", "action", actionID, "key", key, "feature", feature.ID)
	}
	return result
}

// firstProvider returns the first feature in catalog declaration order that
// is not already claimed and provides the action, or nil.
func (r *Resolver) firstProvider(actionID string, claimedFeatures map[string]struct{}) *catalog.Feature {
	for _, feature := range r.catalog.Features() {
		if _, claimed := claimedFeatures[feature.ID]; claimed {
			continue
		}
		for _, entry := range feature.ProvidesActions {
			if ActionMatches(entry, actionID) {
				return feature
			}
		}
	}
	return nil
}
