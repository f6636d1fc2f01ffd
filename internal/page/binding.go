package page

import (
	"fmt"

	"github.com/goccy/go-json"
)

// BindingKind tags the two source shapes a binding can take.
type BindingKind int

const (
	// LiteralBinding is the bare-string form: "modal.open".
	LiteralBinding BindingKind = iota
	// StructuredBinding is the object form: {"action": "modal.open", ...}.
	StructuredBinding
)

// Binding is a node's declared intent to invoke an action identifier when
// an event fires. Only Action matters to the core; Params ride along for
// the handling feature.
type Binding struct {
	Kind   BindingKind
	Action string
	// Params holds the structured form's extra fields, nil for literals.
	Params map[string]any
}

// UnmarshalJSON accepts either a bare identifier string or an object
// carrying an "action" field plus arbitrary parameters. A structured
// binding with a missing or empty action decodes successfully and is
// skipped (with a diagnostic) at scan time; any other shape is a malformed
// document and fails the load.
func (b *Binding) UnmarshalJSON(data []byte) error {
	var literal string
	if err := json.Unmarshal(data, &literal); err == nil {
		*b = Binding{Kind: LiteralBinding, Action: literal}
		return nil
	}

	var structured map[string]any
	if err := json.Unmarshal(data, &structured); err != nil {
		return fmt.Errorf("binding must be an action string or an object: %w", err)
	}

	action, _ := structured["action"].(string)
	delete(structured, "action")
	var params map[string]any
	if len(structured) > 0 {
		params = structured
	}
	*b = Binding{Kind: StructuredBinding, Action: action, Params: params}
	return nil
}

// MarshalJSON writes the binding back in its source shape.
func (b Binding) MarshalJSON() ([]byte, error) {
	if b.Kind == LiteralBinding {
		return json.Marshal(b.Action)
	}
	obj := make(map[string]any, len(b.Params)+1)
	for k, v := range b.Params {
		obj[k] = v
	}
	obj["action"] = b.Action
	return json.Marshal(obj)
}

// BindingList is the one-or-many value of an event entry: an event name may
// map to a single binding or an ordered fan-out list.
type BindingList []Binding

// UnmarshalJSON accepts a single binding or an array of bindings.
func (l *BindingList) UnmarshalJSON(data []byte) error {
	var many []Binding
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}

	var one Binding
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = BindingList{one}
	return nil
}
