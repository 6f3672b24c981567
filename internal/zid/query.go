package zid

import (
	"net/url"
	"strconv"
)

// query collects optional parameters. Nil values and empty strings never
// reach the encoded string.
type query url.Values

func (q query) setInt(key string, v *int) {
	if v == nil {
		return
	}
	url.Values(q).Set(key, strconv.Itoa(*v))
}

// setString drops empty strings as well as nil; the store treats an empty
// filter the same as an absent one.
func (q query) setString(key string, v *string) {
	if v == nil || *v == "" {
		return
	}
	url.Values(q).Set(key, *v)
}

// withQuery appends the encoded query to endpoint when there is one
func withQuery(endpoint string, q query) string {
	encoded := url.Values(q).Encode()
	if encoded == "" {
		return endpoint
	}
	return endpoint + "?" + encoded
}
