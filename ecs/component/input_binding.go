package component

import (
	"github.com/milk9111/colourblind/colour"
	"github.com/milk9111/colourblind/common"
	"github.com/milk9111/colourblind/input"
)

// InputBinding marks an entity as player controlled. Colours holds one
// key-set per playable colour, indexed in colour.Playable order.
type InputBinding struct {
	Jump       input.KeySet
	Left       input.KeySet
	Right      input.KeySet
	Flashlight input.KeySet
	Interact   input.KeySet
	Colours    [len(colour.Playable)]input.KeySet
}

var InputBindingComponent = NewComponent[InputBinding]()

// Validate rejects bindings with an empty key-set.
func (b InputBinding) Validate() error {
	named := []struct {
		field string
		set   input.KeySet
	}{
		{"jump", b.Jump},
		{"left", b.Left},
		{"right", b.Right},
		{"flashlight", b.Flashlight},
		{"interact", b.Interact},
	}
	for _, n := range named {
		if n.set.Empty() {
			return common.NewConfigError("input", n.field, "empty key-set")
		}
	}
	for i, set := range b.Colours {
		if set.Empty() {
			return common.NewConfigError("input", colour.Playable[i].String(), "empty key-set")
		}
	}
	return nil
}

// NewInputBinding parses key names per intent. colours is keyed by colour
// name and must cover every playable colour.
func NewInputBinding(jump, left, right, flashlight, interact []string, colours map[colour.Colour][]string) (InputBinding, error) {
	var b InputBinding
	parse := []struct {
		field string
		names []string
		dst   *input.KeySet
	}{
		{"jump", jump, &b.Jump},
		{"left", left, &b.Left},
		{"right", right, &b.Right},
		{"flashlight", flashlight, &b.Flashlight},
		{"interact", interact, &b.Interact},
	}
	for i, c := range colour.Playable {
		parse = append(parse, struct {
			field string
			names []string
			dst   *input.KeySet
		}{c.String(), colours[c], &b.Colours[i]})
	}
	for _, p := range parse {
		set, err := input.ParseKeySet(p.names)
		if err != nil {
			return InputBinding{}, common.NewConfigError("input", p.field, err.Error())
		}
		*p.dst = set
	}
	if err := b.Validate(); err != nil {
		return InputBinding{}, err
	}
	return b, nil
}
