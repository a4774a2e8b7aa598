// Package registry implement the volume registry that the geometry
// assembler composes into. It models the Geant4 logical/physical volume
// hierarchy as a tree: exactly one world volume, every other logical volume
// reachable from it through exactly one placement chain.
package registry

import (
	"fmt"
	"sort"

	"github.com/vbiancacci/legend-pygeom-hades/geometry"
)

// Material is a predefined simulation material, referenced by its NIST name
// (eg "G4_AIR", "G4_Pb").
type Material struct {
	Name string `json:"name" bson:"name"`
}

// LogicalVolume is a shape plus a material. It is owned by its creator
// until placed into a registry; afterwards the registry owns it.
type LogicalVolume struct {
	Name     string   `json:"name" bson:"name"`
	Solid    Solid    `json:"solid" bson:"solid"`
	Material Material `json:"material" bson:"material"`

	daughters []*PhysicalVolume
	parent    *PhysicalVolume
}

// Daughters returns the placements directly inside this volume.
func (lv *LogicalVolume) Daughters() []*PhysicalVolume {
	return lv.daughters
}

// PhysicalVolume is a placed instance of a logical volume inside a parent
// logical volume. The physical volume owns the placement transform.
type PhysicalVolume struct {
	Name     string         `json:"name" bson:"name"`
	Position geometry.Point `json:"position" bson:"position"`
	Child    *LogicalVolume `json:"child" bson:"child"`

	parent *LogicalVolume
}

// Parent returns the logical volume this placement lives in.
func (pv *PhysicalVolume) Parent() *LogicalVolume {
	return pv.parent
}

// Registry owns the flattened set of logical and physical volumes of one
// composed geometry. Construct one registry per construction pass; the
// registry is not safe for concurrent mutation and is never reused.
type Registry struct {
	world    *LogicalVolume
	logical  map[string]*LogicalVolume
	physical map[string]*PhysicalVolume
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		logical:  map[string]*LogicalVolume{},
		physical: map[string]*PhysicalVolume{},
	}
}

// SetWorld registers lv as the world volume and merges its whole subtree
// into the registry. A registry has exactly one world; setting a second one
// is an error.
func (r *Registry) SetWorld(lv *LogicalVolume) error {
	if r.world != nil {
		return fmt.Errorf("registry already has world volume %q", r.world.Name)
	}
	if err := r.addRecursive(lv); err != nil {
		return err
	}
	r.world = lv
	return nil
}

// World returns the world volume, or nil if none was set.
func (r *Registry) World() *LogicalVolume {
	return r.world
}

// Place registers a placement of child inside parent at the given position
// and merges the child's whole subtree into the registry. The parent must
// already be registered, so callers place parents before children; a
// logical volume can have at most one parent placement.
func (r *Registry) Place(
	child *LogicalVolume, name string, pos geometry.Point, parent *LogicalVolume,
) (*PhysicalVolume, error) {
	if parent == nil {
		return nil, fmt.Errorf("placement %q has no parent volume", name)
	}
	if _, ok := r.logical[parent.Name]; !ok {
		return nil, fmt.Errorf(
			"parent volume %q of placement %q is not registered", parent.Name, name,
		)
	}
	if child.parent != nil {
		return nil, fmt.Errorf(
			"volume %q is already placed as %q, a volume has exactly one parent",
			child.Name, child.parent.Name,
		)
	}
	if _, ok := r.physical[name]; ok {
		return nil, fmt.Errorf("duplicate placement name %q", name)
	}
	if err := r.addRecursive(child); err != nil {
		return nil, err
	}

	pv := &PhysicalVolume{Name: name, Position: pos, Child: child, parent: parent}
	child.parent = pv
	parent.daughters = append(parent.daughters, pv)
	r.physical[name] = pv
	return pv, nil
}

// addRecursive merges an externally built subtree (eg parsed from a GDML
// template) into the registry, re-checking the naming invariants.
func (r *Registry) addRecursive(lv *LogicalVolume) error {
	if err := r.addLogical(lv); err != nil {
		return err
	}
	for _, pv := range lv.daughters {
		if _, ok := r.physical[pv.Name]; ok {
			return fmt.Errorf("duplicate placement name %q", pv.Name)
		}
		r.physical[pv.Name] = pv
		if err := r.addRecursive(pv.Child); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) addLogical(lv *LogicalVolume) error {
	if lv == nil {
		return fmt.Errorf("nil logical volume")
	}
	if prev, ok := r.logical[lv.Name]; ok && prev != lv {
		return fmt.Errorf("duplicate logical volume name %q", lv.Name)
	}
	r.logical[lv.Name] = lv
	return nil
}

// Logical returns the registered logical volume with the given name.
func (r *Registry) Logical(name string) (*LogicalVolume, bool) {
	lv, ok := r.logical[name]
	return lv, ok
}

// Physical returns the registered placement with the given name.
func (r *Registry) Physical(name string) (*PhysicalVolume, bool) {
	pv, ok := r.physical[name]
	return pv, ok
}

// LogicalNames returns the sorted names of all registered logical volumes.
func (r *Registry) LogicalNames() []string {
	names := make([]string, 0, len(r.logical))
	for name := range r.logical {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PhysicalNames returns the sorted names of all registered placements.
func (r *Registry) PhysicalNames() []string {
	names := make([]string, 0, len(r.physical))
	for name := range r.physical {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewPhysicalVolume builds a detached placement of child inside parent,
// outside any registry. Used when assembling a subtree from a template
// before it is merged via Place.
func NewPhysicalVolume(
	name string, pos geometry.Point, child, parent *LogicalVolume,
) (*PhysicalVolume, error) {
	if child.parent != nil {
		return nil, fmt.Errorf(
			"volume %q is already placed as %q, a volume has exactly one parent",
			child.Name, child.parent.Name,
		)
	}
	pv := &PhysicalVolume{Name: name, Position: pos, Child: child, parent: parent}
	child.parent = pv
	parent.daughters = append(parent.daughters, pv)
	return pv, nil
}
