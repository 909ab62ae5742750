package comments

import (
	"context"
	"errors"
	"testing"
)

type recordedCall struct {
	query     string
	variables map[string]any
}

type mockGraphQLClient struct {
	executeFunc func(ctx context.Context, query string, variables map[string]any) ([]byte, error)
	calls       []recordedCall
}

func (m *mockGraphQLClient) Execute(ctx context.Context, query string, variables map[string]any) ([]byte, error) {
	m.calls = append(m.calls, recordedCall{query: query, variables: variables})
	if m.executeFunc != nil {
		return m.executeFunc(ctx, query, variables)
	}
	return []byte(`{}`), nil
}

func Test_List_BlankPostID(t *testing.T) {
	client := &mockGraphQLClient{}
	mgr := NewManager(client)

	for _, id := range []string{"", "   "} {
		list, err := mgr.List(context.Background(), id, 10)
		if err != nil {
			t.Errorf("id %q: got %v, want nil", id, err)
		}
		if list == nil || len(list) != 0 {
			t.Errorf("id %q: comments = %v, want empty non-nil", id, list)
		}
	}
	if len(client.calls) != 0 {
		t.Errorf("blank post id must not reach the network, saw %d calls", len(client.calls))
	}
}

func Test_List_Success(t *testing.T) {
	client := &mockGraphQLClient{
		executeFunc: func(ctx context.Context, query string, variables map[string]any) ([]byte, error) {
			return []byte(`{
				"post": {
					"comments": {
						"edges": [
							{"node": {"id": "c-1", "totalReactions": 3, "content": {"text": "nice"}, "author": {"username": "ada"}}},
							{"node": {"id": "c-2", "content": {"text": "thanks"}}}
						]
					}
				}
			}`), nil
		},
	}
	mgr := NewManager(client)

	list, err := mgr.List(context.Background(), "post-1", 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 2 || list[0].TotalReactions != 3 || list[0].Author.Username != "ada" {
		t.Errorf("comments = %+v", list)
	}
	vars := client.calls[0].variables
	if vars["id"] != "post-1" || vars["first"] != 10 {
		t.Errorf("variables = %+v", vars)
	}
}

func Test_List_ClampsToFixedCeiling(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "over fixed ceiling", requested: 200, want: 50},
		{name: "at ceiling", requested: 50, want: 50},
		{name: "zero uses fixed default", requested: 0, want: 25},
		{name: "negative uses fixed default", requested: -1, want: 25},
		{name: "in range", requested: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockGraphQLClient{}
			mgr := NewManager(client)

			_, _ = mgr.List(context.Background(), "post-1", tt.requested)
			if got := client.calls[0].variables["first"]; got != tt.want {
				t.Errorf("first = %v, want %d", got, tt.want)
			}
		})
	}
}

func Test_List_FailureYieldsEmpty(t *testing.T) {
	client := &mockGraphQLClient{
		executeFunc: func(ctx context.Context, query string, variables map[string]any) ([]byte, error) {
			return nil, errors.New("boom")
		},
	}
	mgr := NewManager(client)

	list, err := mgr.List(context.Background(), "post-1", 10)
	if err != nil {
		t.Errorf("failures must not surface as errors, got %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("comments = %v, want empty non-nil", list)
	}
}
