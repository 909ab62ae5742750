package webhooks

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func validPayload() *Payload {
	return &Payload{
		Event:       EventPostPublished,
		Data:        &PayloadData{Post: &PayloadPost{ID: "post-1"}},
		Publication: &PayloadPublication{ID: "pub-1"},
		Timestamp:   1714000000000,
	}
}

func Test_ParsePayload_RoundTrip(t *testing.T) {
	want := validPayload()
	raw, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := ParsePayload(raw)
	if err != nil {
		t.Fatalf("ParsePayload returned error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func Test_ParsePayload_StaticPageEvent(t *testing.T) {
	raw := []byte(`{
		"event": "STATIC_PAGE_EDITED",
		"data": {"staticPage": {"id": "page-9"}},
		"publication": {"id": "pub-1"},
		"timestamp": 1714000000000
	}`)

	got, err := ParsePayload(raw)
	if err != nil {
		t.Fatalf("ParsePayload returned error: %v", err)
	}
	if got.Data.StaticPage == nil || got.Data.StaticPage.ID != "page-9" {
		t.Errorf("unexpected data block: %+v", got.Data)
	}
	if got.Data.Post != nil {
		t.Error("post must be absent for a static page event")
	}
}

func Test_ParsePayload_InvalidJSON(t *testing.T) {
	_, err := ParsePayload([]byte(`{not json`))
	if !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("got %v, want ErrInvalidJSON", err)
	}
}

func Test_ParsePayload_UnrecognizedEvent(t *testing.T) {
	raw := []byte(`{
		"event": "POST_ARCHIVED",
		"data": {},
		"publication": {"id": "pub-1"},
		"timestamp": 1714000000000
	}`)

	_, err := ParsePayload(raw)
	var invalidEvent *InvalidEventError
	if !errors.As(err, &invalidEvent) {
		t.Fatalf("got %v, want *InvalidEventError", err)
	}
	if invalidEvent.Value != "POST_ARCHIVED" {
		t.Errorf("Value = %q, want the offending event", invalidEvent.Value)
	}
}

func Test_ParsePayload_MissingFields(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMissing []string
	}{
		{
			name:        "no event",
			body:        `{"data": {}, "publication": {"id": "p"}, "timestamp": 1}`,
			wantMissing: []string{"event"},
		},
		{
			name:        "no data",
			body:        `{"event": "POST_PUBLISHED", "publication": {"id": "p"}, "timestamp": 1}`,
			wantMissing: []string{"data"},
		},
		{
			name:        "no publication",
			body:        `{"event": "POST_PUBLISHED", "data": {}, "timestamp": 1}`,
			wantMissing: []string{"publication"},
		},
		{
			name:        "no timestamp",
			body:        `{"event": "POST_PUBLISHED", "data": {}, "publication": {"id": "p"}}`,
			wantMissing: []string{"timestamp"},
		},
		{
			name:        "empty object",
			body:        `{}`,
			wantMissing: []string{"event", "data", "publication", "timestamp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePayload([]byte(tt.body))
			var missing *MissingFieldsError
			if !errors.As(err, &missing) {
				t.Fatalf("got %v, want *MissingFieldsError", err)
			}
			if !reflect.DeepEqual(missing.Fields, tt.wantMissing) {
				t.Errorf("Fields = %v, want %v", missing.Fields, tt.wantMissing)
			}
			if !strings.Contains(err.Error(), tt.wantMissing[0]) {
				t.Errorf("Error() = %q should name the missing field", err.Error())
			}
		})
	}
}

func Test_ValidatePayload_NilPayload(t *testing.T) {
	var missing *MissingFieldsError
	if err := ValidatePayload(nil); !errors.As(err, &missing) {
		t.Errorf("got %v, want *MissingFieldsError", err)
	}
}

func Test_ValidatePayload_AlreadyParsed(t *testing.T) {
	if err := ValidatePayload(validPayload()); err != nil {
		t.Errorf("got %v, want nil", err)
	}
}
