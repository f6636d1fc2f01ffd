package app

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/pagecraft/pagewire/internal/action"
	"github.com/pagecraft/pagewire/internal/ctxlog"
	"github.com/pagecraft/pagewire/internal/inspector"
	"github.com/pagecraft/pagewire/internal/page"
	"github.com/pagecraft/pagewire/internal/resolve"
	"github.com/pagecraft/pagewire/internal/scan"
)

// ErrUnresolvedActions is returned by Run in strict mode when some scanned
// action still has no provider after resolution.
var ErrUnresolvedActions = errors.New("unresolved actions remain after overlay resolution")

// pageKeys holds the post-resolution overlay keys per page for the
// inspector's live queries.
type pageKeys struct {
	mu   sync.RWMutex
	keys map[string][]string
}

// Run executes the build-time wiring pipeline: scan every page, resolve
// missing overlays, verify the runtime wiring against the action registry,
// and report. With an inspect port configured it then serves the snapshot
// to authoring clients until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	keys := &pageKeys{keys: make(map[string][]string)}

	report := &Report{
		PresetActions: scan.CollectPresetActions(a.site),
		Widgets:       scan.CollectTriggerableWidgets(ctx, a.site, a.catalog),
	}
	for _, pageID := range sortedPageIDs(a.site) {
		pr := a.wirePage(ctx, a.site.Pages[pageID])
		report.Pages = append(report.Pages, pr)

		finalKeys := append([]string{}, pr.ExistingKeys...)
		for _, b := range pr.Injected {
			finalKeys = append(finalKeys, b.Key)
		}
		keys.mu.Lock()
		keys.keys[pageID] = finalKeys
		keys.mu.Unlock()
	}

	report.write(a.outW)

	if a.config.InspectPort > 0 {
		srv := inspector.New(a.config.InspectPort, func(pageID, actionID string) (resolve.Resolution, bool) {
			keys.mu.RLock()
			ks, ok := keys.keys[pageID]
			keys.mu.RUnlock()
			if !ok {
				return resolve.Resolution{}, false
			}
			return a.resolver.ResolveAction(actionID, ks), true
		})
		srv.Start(ctx)
		if err := srv.Publish(ctx, report); err != nil {
			return err
		}
		a.logger.Info("Inspector serving wiring snapshot; waiting for shutdown.", "port", a.config.InspectPort)
		<-ctx.Done()
		if err := srv.Shutdown(context.WithoutCancel(ctx)); err != nil {
			return err
		}
	}

	if a.config.Strict && report.Unresolved() {
		return ErrUnresolvedActions
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// wirePage runs scan → resolve → verify for one page.
func (a *App) wirePage(ctx context.Context, pg *page.Page) PageReport {
	logger := ctxlog.FromContext(ctx)

	var actions []string
	var implied []string
	actionSeen := make(map[string]struct{})
	impliedSeen := make(map[string]struct{})
	for _, section := range pg.Sections {
		for _, actionID := range scan.CollectActions(ctx, section.Nodes) {
			if _, dup := actionSeen[actionID]; dup {
				continue
			}
			actionSeen[actionID] = struct{}{}
			actions = append(actions, actionID)
		}
		for _, featureID := range scan.CollectDecoratorOverlays(ctx, section.Nodes, a.catalog) {
			if _, dup := impliedSeen[featureID]; dup {
				continue
			}
			impliedSeen[featureID] = struct{}{}
			implied = append(implied, featureID)
		}
	}

	// Decorator-implied features enter resolution as their provider's
	// action, so one code path handles both sources of requirement.
	required := append([]string{}, actions...)
	for _, featureID := range implied {
		actionID, ok := a.catalog.ActionForFeature(featureID)
		if !ok {
			logger.Warn("Decorator implies a feature the catalog does not declare.",
				"page", pg.ID, "feature", featureID)
			continue
		}
		if _, dup := actionSeen[actionID]; dup {
			continue
		}
		actionSeen[actionID] = struct{}{}
		required = append(required, actionID)
	}

	existing := pg.OverlayKeys()
	injected := a.resolver.ResolveRequiredOverlays(ctx, required, existing)
	logger.Info("Page wiring resolved.",
		"page", pg.ID,
		"actions", len(actions),
		"implied_features", len(implied),
		"injected", len(injected),
	)

	unresolved := a.verifyWiring(ctx, pg, injected, actions)
	return PageReport{
		PageID:          pg.ID,
		Actions:         actions,
		ImpliedFeatures: implied,
		ExistingKeys:    existing,
		Injected:        injected,
		Unresolved:      unresolved,
	}
}

// verifyWiring mounts the page's configured and injected overlays into the
// registry, fires every scanned action once with a diagnostic payload, and
// reports the actions that found no handler. Everything mounted here is
// unmounted again before returning.
func (a *App) verifyWiring(ctx context.Context, pg *page.Page, injected []resolve.Binding, actions []string) []string {
	logger := ctxlog.FromContext(ctx)

	type mounted struct {
		key     string
		feature action.Mountable
	}
	var mounts []mounted

	mount := func(key, featureID string) {
		feature, ok := a.features[featureID]
		if !ok {
			logger.Debug("No built-in implementation for feature; wiring check skips it.",
				"page", pg.ID, "feature", featureID)
			return
		}
		feature.Mount(ctx, key, a.registry)
		mounts = append(mounts, mounted{key: key, feature: feature})
	}

	for _, ov := range pg.Overlays {
		mount(ov.Key, ov.Feature)
	}
	for _, b := range injected {
		mount(b.Key, b.FeatureID)
	}

	var unresolved []string
	for _, actionID := range actions {
		if !a.registry.Has(actionID) {
			logger.Warn("Action has no handler after overlay resolution.",
				"page", pg.ID, "action", actionID)
			unresolved = append(unresolved, actionID)
			continue
		}
		a.registry.Execute(ctx, actionID, action.Payload{
			Source: "wiring-check",
			Event:  "verify",
		})
	}

	for _, m := range mounts {
		m.feature.Unmount(ctx, m.key, a.registry)
	}
	return unresolved
}

func sortedPageIDs(site *page.Site) []string {
	ids := make([]string, 0, len(site.Pages))
	for id := range site.Pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
