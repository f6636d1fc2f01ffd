package catalog

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zclconf/go-cty/cty"
)

// KeyPlaceholder is the literal placeholder a provides_actions template uses
// to stand in for an arbitrary non-empty feature key, e.g. "{key}.show".
const KeyPlaceholder = "{key}"

// Feature describes one mountable chrome feature: its identifier and the
// action identifiers it can satisfy, each entry either a literal identifier
// or a KeyPlaceholder template.
type Feature struct {
	ID              string
	Description     string
	ProvidesActions []string
	// Defaults are manifest-declared parameter defaults handed to the
	// feature instance when it is auto-injected.
	Defaults map[string]cty.Value
}

// Widget is the capability metadata for one node type.
type Widget struct {
	Type          string
	Description   string
	TriggerEvents []string
	// DefaultDecorators apply to nodes of this type that carry no explicit
	// decorator list.
	DefaultDecorators []string
}

// Decorator is a named, reusable behavior attachment that may imply
// required features independent of explicit bindings.
type Decorator struct {
	ID               string
	Description      string
	RequiresFeatures []string
}

// Catalog aggregates features, widgets, and decorators. Feature order is
// declaration order and is preserved; it is the resolver's tie-break order.
type Catalog struct {
	features     []*Feature
	featuresByID map[string]*Feature
	widgets      map[string]*Widget
	decorators   map[string]*Decorator
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		featuresByID: make(map[string]*Feature),
		widgets:      make(map[string]*Widget),
		decorators:   make(map[string]*Decorator),
	}
}

// AddFeature appends a feature descriptor. A duplicate id is a
// configuration error.
func (c *Catalog) AddFeature(f *Feature) error {
	if _, exists := c.featuresByID[f.ID]; exists {
		return fmt.Errorf("feature %q declared twice in catalog", f.ID)
	}
	c.features = append(c.features, f)
	c.featuresByID[f.ID] = f
	return nil
}

// AddWidget registers capability metadata for a node type.
func (c *Catalog) AddWidget(w *Widget) error {
	if _, exists := c.widgets[w.Type]; exists {
		return fmt.Errorf("widget type %q declared twice in catalog", w.Type)
	}
	c.widgets[w.Type] = w
	return nil
}

// AddDecorator registers a decorator definition.
func (c *Catalog) AddDecorator(d *Decorator) error {
	if _, exists := c.decorators[d.ID]; exists {
		return fmt.Errorf("decorator %q declared twice in catalog", d.ID)
	}
	c.decorators[d.ID] = d
	return nil
}

// Features returns every feature descriptor in declaration order. The
// returned slice is shared; callers must not mutate it.
func (c *Catalog) Features() []*Feature {
	return c.features
}

// Feature looks up a feature descriptor by id.
func (c *Catalog) Feature(id string) (*Feature, bool) {
	f, ok := c.featuresByID[id]
	return f, ok
}

// TriggerEvents returns the trigger event names a node type supports, or
// nil for unknown types.
func (c *Catalog) TriggerEvents(nodeType string) []string {
	if w, ok := c.widgets[nodeType]; ok {
		return w.TriggerEvents
	}
	return nil
}

// DefaultDecorators returns a node type's default decorator references, or
// nil for unknown types.
func (c *Catalog) DefaultDecorators(nodeType string) []string {
	if w, ok := c.widgets[nodeType]; ok {
		return w.DefaultDecorators
	}
	return nil
}

// DecoratorRequires returns the feature identifiers a decorator reference
// implies. Unknown references imply nothing.
func (c *Catalog) DecoratorRequires(ref string) []string {
	if d, ok := c.decorators[ref]; ok {
		return d.RequiresFeatures
	}
	return nil
}

// ActionForFeature derives a concrete action identifier for a feature from
// its first provides_actions entry, instantiating a template with the
// feature's default key. Used to translate decorator-implied features into
// required actions the resolver understands.
func (c *Catalog) ActionForFeature(id string) (string, bool) {
	f, ok := c.featuresByID[id]
	if !ok || len(f.ProvidesActions) == 0 {
		return "", false
	}
	entry := f.ProvidesActions[0]
	if strings.Contains(entry, KeyPlaceholder) {
		return strings.Replace(entry, KeyPlaceholder, DefaultKey(id), 1), true
	}
	return entry, true
}

// DefaultKey derives a feature's default instance key: the feature
// identifier with its first rune lower-cased ("VideoModal" → "videoModal").
func DefaultKey(featureID string) string {
	if featureID == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(featureID)
	return string(unicode.ToLower(r)) + featureID[size:]
}
