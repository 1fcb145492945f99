package properties

import "fmt"

// FeatureTable maps an Action00 feature's property ids to the
// descriptor that reads/writes/prints/parses them, and its text
// name(s) to that same (id, descriptor) pair — a property whose
// descriptor covers several sub-fields (e.g. a split byte) is
// registered once per name it contributes, all pointing at the one
// descriptor instance, per §4.5's "sub-index" design.
type FeatureTable struct {
	Feature byte
	Name    string

	byID   map[byte]Descriptor
	byName map[string]byte
}

// binding is one property id's descriptor plus the text name(s) a
// record-level parser should dispatch to it under.
type binding struct {
	id    byte
	names []string
	desc  Descriptor
}

// Property binds a single-name descriptor to a property id.
func Property(id byte, desc Descriptor) binding {
	return binding{id: id, names: []string{desc.Name()}, desc: desc}
}

// SplitProperty binds a descriptor covering several text names to one
// property id.
func SplitProperty(id byte, desc Descriptor, names ...string) binding {
	return binding{id: id, names: names, desc: desc}
}

// NewFeatureTable builds a table from its property bindings.
func NewFeatureTable(feature byte, name string, bindings ...binding) *FeatureTable {
	t := &FeatureTable{
		Feature: feature,
		Name:    name,
		byID:    make(map[byte]Descriptor, len(bindings)),
		byName:  make(map[string]byte, len(bindings)),
	}
	for _, b := range bindings {
		t.byID[b.id] = b.desc
		for _, n := range b.names {
			t.byName[n] = b.id
		}
	}
	return t
}

// DescriptorByID returns the descriptor bound to a wire property id,
// used when decoding/encoding the binary property-major body.
func (t *FeatureTable) DescriptorByID(id byte) (Descriptor, error) {
	d, ok := t.byID[id]
	if !ok {
		return nil, fmt.Errorf("properties: feature %q has no property 0x%02X", t.Name, id)
	}
	return d, nil
}

// DescriptorByName returns a property's id and descriptor given the
// leading identifier of its text statement, used when parsing a
// feature instance block.
func (t *FeatureTable) DescriptorByName(name string) (byte, Descriptor, error) {
	id, ok := t.byName[name]
	if !ok {
		return 0, nil, fmt.Errorf("properties: feature %q has no property named %q", t.Name, name)
	}
	d, err := t.DescriptorByID(id)
	return id, d, err
}

// Features is the registry of every known feature's property table,
// keyed by the Action00 feature-type discriminant byte. Feature files
// populate it from their own init().
var Features = map[byte]*FeatureTable{}

// register is called by each feature file's init() to add itself to
// the shared registry.
func register(t *FeatureTable) {
	Features[t.Feature] = t
}
