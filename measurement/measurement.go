// Package measurement decode HADES measurement identifiers of the form
// {source}_{holder}_{position}_{id}, eg "am_HS1_top_dlt".
package measurement

import (
	"strings"

	"github.com/vbiancacci/legend-pygeom-hades/errors"
)

// Spec is a decoded measurement identifier.
type Spec struct {
	Source   string `json:"source"`
	Holder   string `json:"holder"`
	Position string `json:"position"`
	ID       string `json:"id"`
}

// Parse decodes a measurement identifier. The am source in the HS1 holder
// uses the collimated source geometry, so that single combination is
// rewritten to "am_collimated"; no other combination is renamed.
func Parse(s string) (Spec, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 4 {
		return Spec{}, &errors.Malformed{
			Input:  s,
			Reason: "expected exactly 4 underscore-separated fields {source}_{holder}_{position}_{id}",
		}
	}
	spec := Spec{
		Source:   parts[0],
		Holder:   parts[1],
		Position: parts[2],
		ID:       parts[3],
	}
	if spec.Source == "am" && spec.Holder == "HS1" {
		spec.Source = "am_collimated"
	}
	return spec, nil
}

// RawSource returns the un-rewritten source name, used to key the
// run-database correction tables by source+holder.
func (s Spec) RawSource() string {
	if s.Source == "am_collimated" {
		return "am"
	}
	return s.Source
}

// SourceKey returns the {rawSource}_{holder} pair identifying the physical
// source fixture, eg "am_HS1".
func (s Spec) SourceKey() string {
	return s.RawSource() + "_" + s.Holder
}
