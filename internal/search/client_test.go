package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Search(t *testing.T) {
	var gotQuery, gotAccept, gotAuth, gotVersion string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("X-GitHub-Api-Version")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"total_count": 42,
			"items": [
				{
					"name": "model.py",
					"html_url": "https://github.com/owner/repo/blob/main/model.py",
					"repository": {"full_name": "owner/repo"}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	result, err := client.Search(context.Background(), "CNN extension:py")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotQuery != "CNN extension:py" {
		t.Errorf("q param = %q", gotQuery)
	}
	if gotAccept != "application/vnd.github+json" {
		t.Errorf("Accept header = %q", gotAccept)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization header = %q", gotAuth)
	}
	if gotVersion != "2022-11-28" {
		t.Errorf("X-GitHub-Api-Version header = %q", gotVersion)
	}

	if result.TotalCount != 42 {
		t.Errorf("TotalCount = %d, want 42", result.TotalCount)
	}
	if len(result.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(result.Items))
	}
	item := result.Items[0]
	if item.Name != "model.py" {
		t.Errorf("Item.Name = %q", item.Name)
	}
	if item.Repository.FullName != "owner/repo" {
		t.Errorf("Item.Repository.FullName = %q", item.Repository.FullName)
	}
	if item.HTMLURL != "https://github.com/owner/repo/blob/main/model.py" {
		t.Errorf("Item.HTMLURL = %q", item.HTMLURL)
	}
}

func TestClient_Search_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total_count": 0, "items": []}`))
	}))
	defer server.Close()

	result, err := newTestClient(server).Search(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if result.TotalCount != 0 || len(result.Items) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestClient_Search_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"rate limit exceeded"}`))
	}))
	defer server.Close()

	result, err := newTestClient(server).Search(context.Background(), "anything")
	if err == nil {
		t.Fatal("Search() expected error for HTTP 403")
	}
	if result != nil {
		t.Errorf("expected nil result on error, got %+v", result)
	}
}

func TestClient_Search_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed before use

	_, err := newTestClient(server).Search(context.Background(), "anything")
	if err == nil {
		t.Fatal("Search() expected error for unreachable server")
	}
}

func newTestClient(server *httptest.Server) *Client {
	return NewClient(server.URL, "test-token")
}
