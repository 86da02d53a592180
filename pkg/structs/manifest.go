package structs

// SourceManifestSchema is the only manifest schema version we accept.
const SourceManifestSchema = 2

// SourceManifest is the JSON body fetched from a source URL. It describes
// which layers a source declares and the named datasets within each.
type SourceManifest struct {
	// Schema must equal SourceManifestSchema exactly
	Schema int `json:"schema"`

	// Layers maps layer name to the named dataset entries it contains
	Layers map[string][]ManifestEntry `json:"layers"`
}

// ManifestEntry is a single named dataset within a layer.
type ManifestEntry struct {
	Name string `json:"name"`
}
