// Package courier models a single incoming HTTP request as an
// immutable-after-construction value with typed accessors for the method,
// URL, headers and body, plus the content-negotiation questions handlers
// actually ask: is the client sending JSON, and will it accept JSON or HTML
// back.
//
// The package performs no I/O and owns no sockets. A transport layer parses
// raw bytes, builds an HttpRequest, and hands it down the pipeline; routing,
// body decoding and response writing live in external collaborators that
// read from the request through the accessors here.
//
// Every accessor is a pure read and none of them can fail: a header that was
// never set reads as an empty string rather than an error, so request
// introspection can never interrupt a handler. Callers that need to tell
// "absent" from "present but empty" use HasHeader first.
package courier

import (
	"net/url"
	"strings"
)

// HttpRequest is the parsed form of one inbound request. All fields are set
// at construction and treated as read-only afterward, with two exceptions:
// InputParams and QueryParams are extension points that middleware writes
// once before handlers read them. The core never interprets either map.
//
// Each request is a request-scoped, single-owner value; nothing here is
// safe for concurrent mutation and nothing needs to be.
type HttpRequest struct {
	version float64
	method  RequestMethod
	url     *url.URL
	headers *Headers
	body    []byte

	// Populated by upstream middleware (decoded body fields, computed
	// values), read by handlers. Single writer, then many readers.
	InputParams map[string]string
	QueryParams map[string]string

	queryCache map[string]string
}

// RequestOption configures an HttpRequest during construction.
type RequestOption func(*HttpRequest)

// WithBody sets the raw request body. The default is an empty byte slice.
func WithBody(body []byte) RequestOption {
	return func(req *HttpRequest) {
		req.body = body
	}
}

// WithVersion sets the HTTP protocol version. The default is 1.1.
func WithVersion(version float64) RequestOption {
	return func(req *HttpRequest) {
		req.version = version
	}
}

// WithHeader sets a single header. Options are applied in order, so a
// repeated key keeps the last value.
func WithHeader(key string, value string) RequestOption {
	return func(req *HttpRequest) {
		req.headers.Set(key, value)
	}
}

// WithHeaders replaces the request's header collection wholesale.
func WithHeaders(headers *Headers) RequestOption {
	return func(req *HttpRequest) {
		if headers != nil {
			req.headers = headers
		}
	}
}

// NewRequest builds a request from a verb and a parsed URL. Construction
// always succeeds; the transport layer upstream is responsible for having
// validated the URL and headers before they arrive here.
func NewRequest(method RequestMethod, u *url.URL, options ...RequestOption) *HttpRequest {
	req := &HttpRequest{
		version:     1.1,
		method:      method,
		url:         u,
		headers:     NewHeaders(),
		body:        []byte{},
		InputParams: map[string]string{},
		QueryParams: map[string]string{},
	}
	for _, option := range options {
		option(req)
	}
	return req
}

func (req *HttpRequest) Method() RequestMethod {
	return req.method
}

func (req *HttpRequest) Version() float64 {
	return req.version
}

func (req *HttpRequest) Url() *url.URL {
	return req.url
}

func (req *HttpRequest) Body() []byte {
	return req.body
}

// Path returns the URL's path component alone, without query string or
// fragment.
func (req *HttpRequest) Path() string {
	if req.url == nil {
		return ""
	}
	return req.url.Path
}

// Header returns the value stored under key as a single-element list. When
// the key is absent the caller-supplied fallback is returned if given,
// otherwise [""]. The empty-string result is a sentinel, not an error: a
// handler cannot tell a missing header from an empty one through Header
// alone and should check HasHeader when the distinction matters.
func (req *HttpRequest) Header(key string, fallback ...string) []string {
	if value, ok := req.headers.Get(key); ok {
		return []string{value}
	}
	if len(fallback) > 0 {
		return fallback
	}
	return []string{""}
}

// HeaderNames returns every header name present, in insertion order. The
// order is stable across repeated calls on the same request.
func (req *HttpRequest) HeaderNames() []string {
	return req.headers.Names()
}

// HasHeader reports whether key is present. Lookup is exact-match on the
// stored key, with no case folding.
func (req *HttpRequest) HasHeader(key string) bool {
	return req.headers.Has(key)
}

// Accepts reports whether the client will take a response of the given
// content type. A wildcard Accept header ("*/*" or a bare "*") matches any
// type. Matching is substring containment, not media-type parsing; the
// callers here only need a yes/no routing decision.
func (req *HttpRequest) Accepts(contentType string) bool {
	accept := req.Header("Accept")[0]
	return strings.Contains(accept, contentType) ||
		strings.Contains(accept, "*/*") ||
		strings.Contains(accept, "*")
}

// AcceptsStrict is Accepts without the wildcard fallback: true only when the
// Accept header itself contains contentType.
func (req *HttpRequest) AcceptsStrict(contentType string) bool {
	return strings.Contains(req.Header("Accept")[0], contentType)
}

// AcceptsAnyContentType reports whether the client sent a wildcard Accept
// header.
func (req *HttpRequest) AcceptsAnyContentType() bool {
	return req.AcceptsStrict("*/*") || req.AcceptsStrict("*")
}

// AcceptsJson reports whether a JSON response satisfies the Accept header,
// either through an explicit JSON media type or a wildcard.
func (req *HttpRequest) AcceptsJson() bool {
	return req.Accepts("application/json") || req.Accepts("application/ld+json")
}

// AcceptsHtml reports whether an HTML response satisfies the Accept header.
func (req *HttpRequest) AcceptsHtml() bool {
	return req.Accepts("text/html")
}

// IsJson reports whether the client sent a JSON body, judged from the
// Content-Type header alone. Independent of what the client accepts back.
func (req *HttpRequest) IsJson() bool {
	contentType := req.Header("Content-Type")[0]
	return strings.Contains(contentType, "application/json") ||
		strings.Contains(contentType, "application/ld+json")
}

// BearerToken extracts the credential from a "Bearer ..." Authorization
// header. Returns nil when the header is absent or carries another scheme.
func (req *HttpRequest) BearerToken() *string {
	token, ok := strings.CutPrefix(req.Header("Authorization")[0], "Bearer ")
	if !ok {
		return nil
	}
	return &token
}
