package courier

import (
	"net/url"
	"reflect"
	"testing"
)

func queryRequest(t *testing.T, rawQuery string) *HttpRequest {
	t.Helper()
	u, err := url.Parse("https://example.com/search?" + rawQuery)
	if err != nil {
		t.Fatal(err)
	}
	return NewRequest(Get, u)
}

func TestQueryMap(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  map[string]string
	}{
		{
			name:  "empty",
			query: "",
			want:  map[string]string{},
		},
		{
			name:  "single",
			query: "a=1",
			want:  map[string]string{"a": "1"},
		},
		{
			name:  "multiple",
			query: "a=1&b=two",
			want:  map[string]string{"a": "1", "b": "two"},
		},
		{
			name:  "url decoded",
			query: "msg=hello%20world",
			want:  map[string]string{"msg": "hello world"},
		},
		{
			name:  "empty value",
			query: "a=&b=2",
			want:  map[string]string{"a": "", "b": "2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := queryRequest(t, tt.query)
			if got := req.QueryMap(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("QueryMap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueryGetString(t *testing.T) {
	req := queryRequest(t, "name=jack&empty=")
	if got := req.QueryGetString("name"); got == nil || *got != "jack" {
		t.Errorf("QueryGetString(name) = %v, want jack", got)
	}
	if got := req.QueryGetString("empty"); got == nil || *got != "" {
		t.Error("empty parameter should yield a pointer to the empty string")
	}
	if req.QueryGetString("missing") != nil {
		t.Error("missing parameter should yield nil")
	}
}

func TestQueryGetInts(t *testing.T) {
	req := queryRequest(t, "page=3&size=big")
	if got := req.QueryGetInt32("page"); got == nil || *got != 3 {
		t.Errorf("QueryGetInt32(page) = %v, want 3", got)
	}
	if got := req.QueryGetInt64("page"); got == nil || *got != 3 {
		t.Errorf("QueryGetInt64(page) = %v, want 3", got)
	}
	if req.QueryGetInt32("size") != nil {
		t.Error("non-numeric parameter should yield nil")
	}
	if req.QueryGetInt64("missing") != nil {
		t.Error("missing parameter should yield nil")
	}
}

func TestQueryGetUUID(t *testing.T) {
	req := queryRequest(t, "id=5f8c7a2e-95ab-4c0b-9e2d-1a6b3c4d5e6f&bad=not-a-uuid")
	got := req.QueryGetUUID("id")
	if got == nil || got.String() != "5f8c7a2e-95ab-4c0b-9e2d-1a6b3c4d5e6f" {
		t.Errorf("QueryGetUUID(id) = %v", got)
	}
	if req.QueryGetUUID("bad") != nil {
		t.Error("invalid UUID should yield nil")
	}
	if req.QueryGetUUID("missing") != nil {
		t.Error("missing parameter should yield nil")
	}
}

func TestQueryNoUrl(t *testing.T) {
	req := NewRequest(Get, nil)
	if len(req.QueryMap()) != 0 {
		t.Error("QueryMap() without a URL should be empty")
	}
	if req.Path() != "" {
		t.Error("Path() without a URL should be empty")
	}
}
