package sources

import (
	"fmt"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/geofabric/batch/pkg/errors"
	"github.com/geofabric/batch/pkg/structs"
)

// ShortName derives the short source name from its URL; the final path
// segment with any extensions stripped. Eg. "https://x.com/data/us.tar.gz"
// yields "us".
func ShortName(rawurl string) string {
	u, err := url.Parse(rawurl)
	base := rawurl
	if err == nil && u.Path != "" {
		base = path.Base(u.Path)
	}
	if i := strings.Index(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}

// Explode resolves an attach entry against its manifest into concrete
// (layer, name) tuples. An unpinned layer explodes into every manifest
// layer; within a layer, an unpinned name explodes into every entry.
// Pinning a layer or name that the manifest does not declare is a
// malformed tuple.
func Explode(entry *structs.AttachEntry, man *structs.SourceManifest) ([]*structs.AttachEntry, error) {
	if entry.Layer == "" && entry.Name != "" {
		return nil, fmt.Errorf("%w: name %q pinned without a layer", errors.ErrBadTuple, entry.Name)
	}

	layers := []string{}
	if entry.Layer != "" {
		if _, ok := man.Layers[entry.Layer]; !ok {
			return nil, fmt.Errorf("%w: layer %q not in manifest", errors.ErrBadTuple, entry.Layer)
		}
		layers = append(layers, entry.Layer)
	} else {
		for l := range man.Layers {
			layers = append(layers, l)
		}
		sort.Strings(layers)
	}

	out := []*structs.AttachEntry{}
	for _, layer := range layers {
		if entry.Name != "" {
			if !layerHasName(man.Layers[layer], entry.Name) {
				return nil, fmt.Errorf("%w: name %q not in layer %q", errors.ErrBadTuple, entry.Name, layer)
			}
			out = append(out, &structs.AttachEntry{Source: entry.Source, Layer: layer, Name: entry.Name})
			continue
		}
		for _, e := range man.Layers[layer] {
			out = append(out, &structs.AttachEntry{Source: entry.Source, Layer: layer, Name: e.Name})
		}
	}

	if len(out) == 0 {
		return nil, errors.ErrNoEntries
	}
	return out, nil
}

func layerHasName(entries []structs.ManifestEntry, name string) bool {
	for _, e := range entries {
		if e.Name == name {
			return true
		}
	}
	return false
}
