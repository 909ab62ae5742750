package series

import (
	"context"
	"errors"
	"testing"

	"github.com/blognode/hashnode-mcp/internal/config"
)

var testPagination = config.PaginationConfig{DefaultPageSize: 10, MaxPageSize: 20}

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

func Test_List_Success(t *testing.T) {
	client := &mockGraphQLClient{
		executeFunc: func(ctx context.Context, query string, variables map[string]any) ([]byte, error) {
			return []byte(`{
				"publication": {
					"seriesList": {
						"edges": [
							{"node": {"id": "series-1", "name": "Go Basics", "slug": "go-basics"}},
							{"node": {"id": "series-2", "name": "Advanced Go", "slug": "advanced-go"}}
						]
					}
				}
			}`), nil
		},
	}
	mgr := NewManager(client, "blog.example.com", testPagination)

	list, err := mgr.List(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 2 || list[0].Slug != "go-basics" || list[1].Name != "Advanced Go" {
		t.Errorf("series = %+v", list)
	}
	if client.calls[0].variables["first"] != 10 {
		t.Errorf("variables = %+v", client.calls[0].variables)
	}
}

func Test_List_ClampsPageSize(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "over ceiling", requested: 100, want: 20},
		{name: "zero uses default", requested: 0, want: 10},
		{name: "negative uses default", requested: -1, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockGraphQLClient{}
			mgr := NewManager(client, "blog.example.com", testPagination)

			_, _ = mgr.List(context.Background(), "", tt.requested)
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
	mgr := NewManager(client, "blog.example.com", testPagination)

	list, err := mgr.List(context.Background(), "", 10)
	if err != nil {
		t.Errorf("failures must not surface as errors, got %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("series = %v, want empty non-nil", list)
	}
}

func Test_GetBySlug_BlankSlug(t *testing.T) {
	client := &mockGraphQLClient{}
	mgr := NewManager(client, "blog.example.com", testPagination)

	for _, slug := range []string{"", "   "} {
		s, err := mgr.GetBySlug(context.Background(), "", slug)
		if s != nil || err != nil {
			t.Errorf("slug %q: got %+v, %v; want nil, nil", slug, s, err)
		}
	}
	if len(client.calls) != 0 {
		t.Errorf("blank slug must not reach the network, saw %d calls", len(client.calls))
	}
}

func Test_GetBySlug_Success(t *testing.T) {
	client := &mockGraphQLClient{
		executeFunc: func(ctx context.Context, query string, variables map[string]any) ([]byte, error) {
			return []byte(`{
				"publication": {
					"series": {
						"id": "series-1",
						"name": "Go Basics",
						"slug": "go-basics",
						"description": {"text": "learn the language"}
					}
				}
			}`), nil
		},
	}
	mgr := NewManager(client, "blog.example.com", testPagination)

	s, err := mgr.GetBySlug(context.Background(), "", "go-basics")
	if err != nil {
		t.Fatalf("GetBySlug returned error: %v", err)
	}
	if s == nil || s.ID != "series-1" || s.Description.Text != "learn the language" {
		t.Errorf("series = %+v", s)
	}
	if client.calls[0].variables["slug"] != "go-basics" {
		t.Errorf("variables = %+v", client.calls[0].variables)
	}
}

func Test_GetBySlug_NotFound(t *testing.T) {
	client := &mockGraphQLClient{
		executeFunc: func(ctx context.Context, query string, variables map[string]any) ([]byte, error) {
			return []byte(`{"publication": {"series": null}}`), nil
		},
	}
	mgr := NewManager(client, "blog.example.com", testPagination)

	s, err := mgr.GetBySlug(context.Background(), "", "missing")
	if s != nil || err != nil {
		t.Errorf("got %+v, %v; want nil, nil", s, err)
	}
}

func Test_Posts_BlankSlug(t *testing.T) {
	client := &mockGraphQLClient{}
	mgr := NewManager(client, "blog.example.com", testPagination)

	list, err := mgr.Posts(context.Background(), "", "", 10)
	if err != nil {
		t.Errorf("got %v, want nil", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("posts = %v, want empty non-nil", list)
	}
	if len(client.calls) != 0 {
		t.Errorf("blank slug must not reach the network, saw %d calls", len(client.calls))
	}
}

func Test_Posts_Success(t *testing.T) {
	client := &mockGraphQLClient{
		executeFunc: func(ctx context.Context, query string, variables map[string]any) ([]byte, error) {
			return []byte(`{
				"publication": {
					"series": {
						"posts": {
							"edges": [
								{"node": {"id": "post-1", "title": "Part One", "slug": "part-one"}},
								{"node": {"id": "post-2", "title": "Part Two", "slug": "part-two"}}
							]
						}
					}
				}
			}`), nil
		},
	}
	mgr := NewManager(client, "blog.example.com", testPagination)

	list, err := mgr.Posts(context.Background(), "", "go-basics", 10)
	if err != nil {
		t.Fatalf("Posts returned error: %v", err)
	}
	if len(list) != 2 || list[0].Slug != "part-one" {
		t.Errorf("posts = %+v", list)
	}
	vars := client.calls[0].variables
	if vars["slug"] != "go-basics" || vars["first"] != 10 {
		t.Errorf("variables = %+v", vars)
	}
}

func Test_Posts_FailureYieldsEmpty(t *testing.T) {
	client := &mockGraphQLClient{
		executeFunc: func(ctx context.Context, query string, variables map[string]any) ([]byte, error) {
			return nil, errors.New("boom")
		},
	}
	mgr := NewManager(client, "blog.example.com", testPagination)

	list, err := mgr.Posts(context.Background(), "", "go-basics", 10)
	if err != nil {
		t.Errorf("failures must not surface as errors, got %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("posts = %v, want empty non-nil", list)
	}
}
