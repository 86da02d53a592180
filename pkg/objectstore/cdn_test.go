package objectstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCDNSignGet(t *testing.T) {
	store, err := NewCDNStore(&Options{
		Backend: BackendCDN,
		Host:    "https://cdn.example.com/",
		Secret:  "sekret",
		Expiry:  time.Hour,
	})
	assert.Nil(t, err)
	store.timeNow = func() time.Time { return time.Unix(1700000000, 0) }

	result, err := store.SignGet("jobs/abc/raw.tar.gz")

	assert.Nil(t, err)
	expectSig := cdnSignature("sekret", "jobs/abc/raw.tar.gz", 1700003600)
	assert.Equal(t, "https://cdn.example.com/jobs/abc/raw.tar.gz?expires=1700003600&sig="+expectSig, result)
}

func TestCDNSignGetDeterministic(t *testing.T) {
	a := cdnSignature("s", "k", 100)
	b := cdnSignature("s", "k", 100)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, cdnSignature("s", "k", 101))
	assert.NotEqual(t, a, cdnSignature("other", "k", 100))
}

func TestNewCDNStoreRequiresConfig(t *testing.T) {
	_, err := NewCDNStore(&Options{Backend: BackendCDN})

	assert.NotNil(t, err)
}

func TestNewStoreDefaults(t *testing.T) {
	o := &Options{}
	o.SetDefaults()

	assert.Equal(t, BackendS3, o.Backend)
	assert.Equal(t, time.Hour, o.Expiry)
}
