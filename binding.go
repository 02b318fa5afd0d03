package courier

// RequestBinding pairs a request with the parameters a router extracted
// from its path, such as the "42" matched by ":id". The routing layer
// builds one per dispatch and hands it to the selected handler; the binding
// never mutates the request it references.
type RequestBinding struct {
	Request *HttpRequest
	Params  map[string]string
}

func NewRequestBinding(req *HttpRequest, params map[string]string) *RequestBinding {
	if params == nil {
		params = map[string]string{}
	}
	return &RequestBinding{
		Request: req,
		Params:  params,
	}
}
