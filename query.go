package courier

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// QueryMap parses the URL's raw query string into a map of key-value pairs
// with URL decoding applied to both sides. Duplicate keys keep the last
// value.
func (req *HttpRequest) QueryMap() map[string]string {
	res := make(map[string]string)
	if req.url == nil {
		return res
	}
	raw := req.url.RawQuery
	keyStart := 0
	keyEnd := 0
	valueStart := 0
	valueEnd := 0
	for keyEnd < len(raw) {
		if raw[keyEnd] == '=' {
			valueStart = keyEnd + 1
			valueEnd = valueStart
			for valueEnd < len(raw) && raw[valueEnd] != '&' {
				valueEnd++
			}
			key, _ := url.QueryUnescape(raw[keyStart:keyEnd])
			value, _ := url.QueryUnescape(raw[valueStart:valueEnd])
			res[key] = value
			keyStart = valueEnd + 1
			keyEnd = keyStart
		}
		keyEnd++
	}
	return res
}

func (req *HttpRequest) queryLookup(key string) (string, bool) {
	if req.queryCache == nil {
		req.queryCache = req.QueryMap()
	}
	value, ok := req.queryCache[key]
	return value, ok
}

// QueryGetString extracts a query parameter as a URL-decoded string.
// Returns nil if the parameter is missing, but a pointer to the empty
// string for an empty parameter.
func (req *HttpRequest) QueryGetString(key string) *string {
	val, ok := req.queryLookup(key)
	if ok {
		return &val
	}
	return nil
}

// QueryGetInt32 extracts a query parameter as a 32-bit signed integer.
// Returns nil if the parameter is missing or does not parse.
func (req *HttpRequest) QueryGetInt32(key string) *int32 {
	val, ok := req.queryLookup(key)
	if ok {
		num, err := strconv.Atoi(val)
		if err == nil {
			v := int32(num)
			return &v
		}
	}
	return nil
}

// QueryGetInt64 extracts a query parameter as a 64-bit signed integer.
// Returns nil if the parameter is missing or does not parse.
func (req *HttpRequest) QueryGetInt64(key string) *int64 {
	val, ok := req.queryLookup(key)
	if ok {
		num, err := strconv.Atoi(val)
		if err == nil {
			v := int64(num)
			return &v
		}
	}
	return nil
}

// QueryGetUUID extracts and validates a query parameter as a UUID.
// Returns nil if the parameter is missing or not a valid UUID.
func (req *HttpRequest) QueryGetUUID(key string) *uuid.UUID {
	val, ok := req.queryLookup(key)
	if !ok {
		return nil
	}
	g, err := uuid.Parse(val)
	if err != nil {
		return nil
	}
	return &g
}
