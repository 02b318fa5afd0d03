package courier

// Headers is a single-valued header collection with case-sensitive keys.
// Keys are compared exactly as given; no folding or canonicalization is
// applied, so "Accept" and "accept" are distinct entries. Insertion order is
// preserved, which makes listing header names stable across repeated calls
// on the same request. Setting an existing key overwrites its value in
// place; last write wins.
type Headers struct {
	keys   []string
	values map[string]string
}

func NewHeaders() *Headers {
	return &Headers{
		keys:   []string{},
		values: map[string]string{},
	}
}

// Set stores value under key, overwriting any previous value. A key keeps
// its original position when overwritten.
func (h *Headers) Set(key string, value string) {
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (h *Headers) Get(key string) (string, bool) {
	value, ok := h.values[key]
	return value, ok
}

func (h *Headers) Has(key string) bool {
	_, ok := h.values[key]
	return ok
}

// Names returns every header name in insertion order. The returned slice is
// a copy and safe for the caller to keep.
func (h *Headers) Names() []string {
	names := make([]string, len(h.keys))
	copy(names, h.keys)
	return names
}

func (h *Headers) Len() int {
	return len(h.keys)
}
