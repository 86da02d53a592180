package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geofabric/batch/pkg/errors"
	"github.com/geofabric/batch/pkg/structs"
)

func TestShortName(t *testing.T) {
	cases := []struct {
		Name   string
		In     string
		Expect string
	}{
		{"PlainFile", "https://data.example.com/us.tar.gz", "us"},
		{"NestedPath", "https://data.example.com/sources/2024/ca.zip", "ca"},
		{"NoExtension", "https://data.example.com/oak", "oak"},
		{"QueryString", "https://data.example.com/wa.tar?token=abc", "wa"},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, ShortName(c.In))
		})
	}
}

func TestExplode(t *testing.T) {
	man := &structs.SourceManifest{
		Schema: structs.SourceManifestSchema,
		Layers: map[string][]structs.ManifestEntry{
			"roads": {{Name: "ca"}, {Name: "wa"}},
			"water": {{Name: "ca"}},
		},
	}
	src := "https://data.example.com/us.tar.gz"

	cases := []struct {
		Name   string
		In     *structs.AttachEntry
		Expect []*structs.AttachEntry
	}{
		{
			"BareURL",
			&structs.AttachEntry{Source: src},
			[]*structs.AttachEntry{
				{Source: src, Layer: "roads", Name: "ca"},
				{Source: src, Layer: "roads", Name: "wa"},
				{Source: src, Layer: "water", Name: "ca"},
			},
		},
		{
			"PinnedLayer",
			&structs.AttachEntry{Source: src, Layer: "roads"},
			[]*structs.AttachEntry{
				{Source: src, Layer: "roads", Name: "ca"},
				{Source: src, Layer: "roads", Name: "wa"},
			},
		},
		{
			"PinnedLayerAndName",
			&structs.AttachEntry{Source: src, Layer: "water", Name: "ca"},
			[]*structs.AttachEntry{
				{Source: src, Layer: "water", Name: "ca"},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			result, err := Explode(c.In, man)

			assert.Nil(t, err)
			assert.Equal(t, c.Expect, result)
		})
	}
}

func TestExplodeBadTuples(t *testing.T) {
	man := &structs.SourceManifest{
		Schema: structs.SourceManifestSchema,
		Layers: map[string][]structs.ManifestEntry{
			"roads": {{Name: "ca"}},
		},
	}

	cases := []struct {
		Name string
		In   *structs.AttachEntry
	}{
		{"UnknownLayer", &structs.AttachEntry{Source: "x", Layer: "rail"}},
		{"UnknownName", &structs.AttachEntry{Source: "x", Layer: "roads", Name: "tx"}},
		{"NameWithoutLayer", &structs.AttachEntry{Source: "x", Name: "ca"}},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			_, err := Explode(c.In, man)

			assert.ErrorIs(t, err, errors.ErrBadTuple)
		})
	}
}

func TestExplodeEmptyManifest(t *testing.T) {
	man := &structs.SourceManifest{Schema: structs.SourceManifestSchema}

	_, err := Explode(&structs.AttachEntry{Source: "x"}, man)

	assert.ErrorIs(t, err, errors.ErrNoEntries)
}
