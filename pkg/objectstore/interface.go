package objectstore

// ObjectStore signs read URLs for job / result / collection artifacts.
//
// Artifacts themselves are written by workers; the coordinator only hands
// out time limited locations.
type ObjectStore interface {
	// SignGet returns a time limited URL granting read access to key.
	SignGet(key string) (string, error)

	// Exists reports whether the artifact is present.
	Exists(key string) (bool, error)
}
