package courier

import "github.com/rs/zerolog"

// MarshalZerologObject lets a request be attached to a log event with
// Object("request", req). Headers are emitted as a nested dictionary in
// insertion order.
func (req *HttpRequest) MarshalZerologObject(e *zerolog.Event) {
	headers := zerolog.Dict()
	for _, name := range req.headers.Names() {
		value, _ := req.headers.Get(name)
		headers.Str(name, value)
	}
	e.Str("method", req.method.String()).
		Str("path", req.Path()).
		Float64("version", req.version).
		Int("body_bytes", len(req.body)).
		Dict("headers", headers)
	if req.url != nil && req.url.RawQuery != "" {
		e.Str("query", req.url.RawQuery)
	}
}

// Dump logs the full request at debug level for handler development.
func (req *HttpRequest) Dump(logger zerolog.Logger) {
	logger.Debug().Object("request", req).Msg("request dump")
}
