package metadata

// defaultEnrichment is substituted when the store reports no enrichment for
// a detector. A deliberate reasonable-value substitution, not a
// data-quality fix.
const defaultEnrichment = 0.9

// Merge combines a detector's base hardware record with its supplementary
// HADES dimension record into one unified metadata record. Pure transform:
// the store hands out value copies, so nothing shared is ever mutated.
func Merge(store Store, name string, extra HADESTable) (DetectorMetadata, error) {
	det, err := store.Get(name)
	if err != nil {
		return DetectorMetadata{}, err
	}
	if det.Production.Enrichment == 0 {
		det.Production.Enrichment = defaultEnrichment
	}
	hades, err := extra.Get(name)
	if err != nil {
		return DetectorMetadata{}, err
	}
	det.HADES = hades
	return det, nil
}
