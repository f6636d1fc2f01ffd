package page

// Site is the aggregate of every page loaded from a site directory. It is
// the workspace-wide view the scanner and resolver operate on.
type Site struct {
	// Pages is keyed by page id.
	Pages map[string]*Page
}

// NewSite creates an empty site.
func NewSite() *Site {
	return &Site{Pages: make(map[string]*Page)}
}

// Page is one page document: an ordered list of sections plus the overlays
// already configured on the page by the author.
type Page struct {
	ID       string     `json:"id"`
	Sections []*Section `json:"sections"`
	// Overlays are the chrome features already mounted on this page. Their
	// keys are the "existing keys" the resolver must not collide with.
	Overlays []*Overlay `json:"overlays,omitempty"`
}

// OverlayKeys returns the feature keys already present on the page.
func (p *Page) OverlayKeys() []string {
	keys := make([]string, 0, len(p.Overlays))
	for _, ov := range p.Overlays {
		keys = append(keys, ov.Key)
	}
	return keys
}

// Overlay is a configured feature instance: a concrete feature identifier
// addressable under a page-unique key.
type Overlay struct {
	Key     string `json:"key"`
	Feature string `json:"feature"`
}

// Section is a top-level slice of a page holding a tree of nodes.
type Section struct {
	ID    string  `json:"id"`
	Nodes []*Node `json:"nodes"`
}

// Node is one node of the declarative UI tree.
type Node struct {
	// ID is optional; unique within its parent's listing by convention but
	// not enforced here.
	ID string `json:"id,omitempty"`
	// Type names the node's kind. The core never interprets it; it is the
	// lookup key into the catalog's widget capability metadata.
	Type string `json:"type"`
	// On maps a DOM-level event name to the bindings it fires.
	On map[string]BindingList `json:"on,omitempty"`
	// Decorators overrides the type's default decorator list when present.
	// nil means "absent, use the type default"; an explicit empty list
	// means "no decorators".
	Decorators []string `json:"decorators,omitempty"`
	// Children is the recursive containment list.
	Children []*Node `json:"children,omitempty"`
}

// HasExplicitDecorators distinguishes an absent decorator list (type
// default applies) from an explicitly empty one.
func (n *Node) HasExplicitDecorators() bool {
	return n.Decorators != nil
}
