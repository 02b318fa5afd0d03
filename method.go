package courier

// RequestMethod represents the HTTP request verb exactly as it appears on
// the wire. The set of values is closed: the nine constants below are the
// only methods the library recognizes, which keeps dispatch type-safe and
// prevents string-based verb errors.
type RequestMethod string

// HTTP method constants covering every verb defined by the protocol.
//
// Supported methods:
//   - Get: Retrieve data, idempotent and safe
//   - Head: Like Get but returns headers only
//   - Post: Create new resources, non-idempotent
//   - Put: Update/replace entire resources, idempotent
//   - Delete: Remove resources, idempotent
//   - Connect: Establish a tunnel to the origin server
//   - Options: Resource introspection and CORS preflight
//   - Trace: Message loop-back diagnostics
//   - Patch: Partial resource updates
const (
	Get     RequestMethod = "GET"
	Head    RequestMethod = "HEAD"
	Post    RequestMethod = "POST"
	Put     RequestMethod = "PUT"
	Delete  RequestMethod = "DELETE"
	Connect RequestMethod = "CONNECT"
	Options RequestMethod = "OPTIONS"
	Trace   RequestMethod = "TRACE"
	Patch   RequestMethod = "PATCH"
)

// RequestMethods provides string-to-RequestMethod mapping for request
// construction. Transport parsers use it to convert an incoming verb string
// into a strongly-typed RequestMethod before building a request.
var (
	RequestMethods = map[string]RequestMethod{
		"GET":     Get,
		"HEAD":    Head,
		"POST":    Post,
		"PUT":     Put,
		"DELETE":  Delete,
		"CONNECT": Connect,
		"OPTIONS": Options,
		"TRACE":   Trace,
		"PATCH":   Patch,
	}
)

func (m RequestMethod) String() string {
	return string(m)
}
