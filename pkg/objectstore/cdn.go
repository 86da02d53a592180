package objectstore

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/geofabric/batch/pkg/errors"
)

// CDNStore signs artifact URLs for the legacy CDN scheme; an hmac over
// the key and expiry, verified edge side. It cannot check existence, so
// Exists always reports true.
type CDNStore struct {
	opts *Options

	timeNow func() time.Time
}

func NewCDNStore(opts *Options) (*CDNStore, error) {
	opts.SetDefaults()
	if opts.Host == "" || opts.Secret == "" {
		return nil, fmt.Errorf("%w: host & secret required", pkgerrors.ErrInvalidArg)
	}
	return &CDNStore{opts: opts, timeNow: time.Now}, nil
}

func (c *CDNStore) SignGet(key string) (string, error) {
	expires := c.timeNow().Add(c.opts.Expiry).Unix()
	sig := cdnSignature(c.opts.Secret, key, expires)

	v := url.Values{}
	v.Set("expires", strconv.FormatInt(expires, 10))
	v.Set("sig", sig)

	return fmt.Sprintf("%s/%s?%s", strings.TrimSuffix(c.opts.Host, "/"), key, v.Encode()), nil
}

func (c *CDNStore) Exists(key string) (bool, error) {
	return true, nil
}

func cdnSignature(secret, key string, expires int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s:%d", key, expires)
	return hex.EncodeToString(mac.Sum(nil))
}
