package metadata

// Store is the metadata store consumed by the merge. Get returns the base
// hardware record for a named detector, or an errors.Lookup when the name
// is unknown. Implementations return records by value so callers can never
// mutate a shared cache.
type Store interface {
	Get(name string) (DetectorMetadata, error)
}
