package scan

import (
	"context"
	"sort"

	"github.com/pagecraft/pagewire/internal/ctxlog"
	"github.com/pagecraft/pagewire/internal/page"
)

// Metadata is the scanner's view of the catalog: per-type capability
// metadata and decorator definitions. It is read-only.
type Metadata interface {
	// TriggerEvents returns the trigger event names a node type supports.
	TriggerEvents(nodeType string) []string
	// DefaultDecorators returns the decorator references applied to nodes
	// of a type that carry no explicit decorator list.
	DefaultDecorators(nodeType string) []string
	// DecoratorRequires returns the feature identifiers a decorator
	// reference implies.
	DecoratorRequires(ref string) []string
}

// CollectActions walks nodes depth-first and returns every action
// identifier referenced by an event binding, de-duplicated, in first-seen
// order.
//
// A structured binding whose action field is empty is skipped with a
// warning rather than failing the scan: one bad binding must not take down
// build-time assembly for a whole site.
func CollectActions(ctx context.Context, nodes []*page.Node) []string {
	var out []string
	seen := make(map[string]struct{})
	walkNodes(nodes, func(n *page.Node, _ []string, _ int) {
		for _, event := range sortedEvents(n.On) {
			for _, b := range n.On[event] {
				if b.Action == "" {
					ctxlog.FromContext(ctx).Warn(
						"Skipping binding with no action identifier.",
						"node", n.ID, "type", n.Type,
					)
					continue
				}
				if _, dup := seen[b.Action]; dup {
					continue
				}
				seen[b.Action] = struct{}{}
				out = append(out, b.Action)
			}
		}
	})
	return out
}

// CollectDecoratorOverlays walks nodes depth-first and returns the feature
// identifiers implied purely by decoration, de-duplicated, in first-seen
// order. A node's effective decorator list is its explicit one when
// present, else its type's default list.
func CollectDecoratorOverlays(ctx context.Context, nodes []*page.Node, meta Metadata) []string {
	var out []string
	seen := make(map[string]struct{})
	walkNodes(nodes, func(n *page.Node, _ []string, _ int) {
		refs := n.Decorators
		if !n.HasExplicitDecorators() {
			refs = meta.DefaultDecorators(n.Type)
		}
		for _, ref := range refs {
			for _, featureID := range meta.DecoratorRequires(ref) {
				if _, dup := seen[featureID]; dup {
					continue
				}
				seen[featureID] = struct{}{}
				out = append(out, featureID)
			}
		}
	})
	return out
}

// walkNodes visits every node depth-first, children after their parent.
// The visitor receives the node, the ids of its ancestors (root first, with
// positional ids synthesized for id-less nodes), and the node's depth.
func walkNodes(nodes []*page.Node, visit func(n *page.Node, ancestors []string, depth int)) {
	var walk func(nodes []*page.Node, ancestors []string, depth int)
	walk = func(nodes []*page.Node, ancestors []string, depth int) {
		for _, n := range nodes {
			visit(n, ancestors, depth)
			if len(n.Children) > 0 {
				walk(n.Children, append(ancestors[:len(ancestors):len(ancestors)], nodeID(n, depth)), depth+1)
			}
		}
	}
	walk(nodes, nil, 0)
}

// sortedEvents returns the event names of an `on` map in sorted order, so
// traversal output does not depend on map iteration order.
func sortedEvents(on map[string]page.BindingList) []string {
	if len(on) == 0 {
		return nil
	}
	events := make([]string, 0, len(on))
	for event := range on {
		events = append(events, event)
	}
	sort.Strings(events)
	return events
}

// nodeID returns the node's explicit id, or a positional "{type}-{depth}"
// id when it has none.
func nodeID(n *page.Node, depth int) string {
	if n.ID != "" {
		return n.ID
	}
	return positionalID(n.Type, depth)
}
