package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kg-3rd/grand-adventure-hub/internal/mediaorder"
	"github.com/kg-3rd/grand-adventure-hub/internal/models"
)

// fakeAPI implements the media endpoint contract in miniature: a named set
// of objects plus an order array, bearer-gated.
type fakeAPI struct {
	mu      sync.Mutex
	objects map[string]struct{}
	order   []string
	failOn  string // upload of this fileName returns 500
}

func newFakeAPI(names ...string) *fakeAPI {
	objects := make(map[string]struct{}, len(names))
	for _, n := range names {
		objects[n] = struct{}{}
	}
	return &fakeAPI{objects: objects}
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "hunter22" {
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "tok-1"})
	})
	mux.HandleFunc("/api/v1/media", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			http.Error(w, "missing_token", http.StatusUnauthorized)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			names := make([]string, 0, len(f.objects))
			for n := range f.objects {
				names = append(names, n)
			}
			sort.Strings(names)
			items := make([]models.MediaObject, 0, len(names))
			for _, n := range names {
				items = append(items, models.MediaObject{Name: n, URL: "https://cdn.test/" + n, Kind: models.KindOf(n)})
			}
			_ = json.NewEncoder(w).Encode(Listing{Items: items, Order: f.order})
		case http.MethodPost:
			var req struct {
				Action   string   `json:"action"`
				Order    []string `json:"order"`
				FileName string   `json:"fileName"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			if req.Action == "saveOrder" {
				f.order = req.Order
				_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
				return
			}
			if req.FileName == f.failOn {
				http.Error(w, "store unavailable", http.StatusInternalServerError)
				return
			}
			path := "1700000000000-" + req.FileName
			f.objects[path] = struct{}{}
			_ = json.NewEncoder(w).Encode(UploadResult{Path: path, PublicURL: "https://cdn.test/" + path})
		case http.MethodDelete:
			var req struct{ Path string }
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			delete(f.objects, req.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
		default:
			http.Error(w, "method_not_allowed", http.StatusMethodNotAllowed)
		}
	})
	return mux
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	c := New(srv.URL)
	c.SetToken("tok-1")
	return c
}

func TestLogin_StoresToken(t *testing.T) {
	api := newFakeAPI()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	require.Error(t, c.Login(context.Background(), "owner@example.com", "wrong"))
	require.NoError(t, c.Login(context.Background(), "owner@example.com", "hunter22"))

	_, err := c.ListMedia(context.Background(), "gallery")
	assert.NoError(t, err)
}

func TestClient_UnauthorizedSurfacesBody(t *testing.T) {
	api := newFakeAPI()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	_, err := c.ListMedia(context.Background(), "gallery")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestBucketView_RefreshAppliesSavedOrder(t *testing.T) {
	api := newFakeAPI("a.jpg", "b.jpg", "c.jpg")
	api.order = []string{"c.jpg", "a.jpg"}
	view := NewBucketView(newTestClient(t, api), "gallery")

	require.NoError(t, view.Refresh(context.Background()))
	assert.Equal(t, StateReady, view.State())

	items := view.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "c.jpg", items[0].Name)
	assert.Equal(t, "a.jpg", items[1].Name)
	assert.Equal(t, "b.jpg", items[2].Name)
}

func TestBucketView_MoveAndSave(t *testing.T) {
	api := newFakeAPI("a.jpg", "b.jpg", "c.jpg")
	view := NewBucketView(newTestClient(t, api), "gallery")
	ctx := context.Background()
	require.NoError(t, view.Refresh(ctx))

	// Save without changes is refused.
	require.Error(t, view.SaveOrder(ctx))

	require.True(t, view.Move("c.jpg", -1))
	assert.True(t, view.Dirty())

	require.NoError(t, view.SaveOrder(ctx))
	assert.Equal(t, StateReady, view.State())
	assert.Equal(t, []string{"a.jpg", "c.jpg", "b.jpg"}, api.order)
}

func TestBucketView_MoveClampsAtBounds(t *testing.T) {
	api := newFakeAPI("a.jpg", "b.jpg")
	view := NewBucketView(newTestClient(t, api), "gallery")
	require.NoError(t, view.Refresh(context.Background()))

	assert.False(t, view.Move("a.jpg", -1), "first item cannot move up")
	assert.False(t, view.Move("b.jpg", +1), "last item cannot move down")
	assert.False(t, view.Move("missing.jpg", +1))
	assert.False(t, view.Dirty())
}

func TestBucketView_DeleteRefetches(t *testing.T) {
	api := newFakeAPI("a.jpg", "b.jpg")
	view := NewBucketView(newTestClient(t, api), "gallery")
	ctx := context.Background()
	require.NoError(t, view.Refresh(ctx))

	require.NoError(t, view.Delete(ctx, "a.jpg"))
	items := view.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b.jpg", items[0].Name)
}

func TestUploadBatch_PerItemOutcomes(t *testing.T) {
	api := newFakeAPI()
	api.failOn = "bad.jpg"
	c := newTestClient(t, api)

	files := []File{
		{Name: "one.jpg", Data: []byte("x")},
		{Name: "bad.jpg", Data: []byte("y")},
		{Name: "two.jpg", Data: []byte("z")},
	}
	outcomes := c.UploadBatch(context.Background(), "gallery", files, 2)
	require.Len(t, outcomes, 3)

	assert.NoError(t, outcomes[0].Err)
	assert.True(t, strings.HasSuffix(outcomes[0].Path, "-one.jpg"))
	assert.Error(t, outcomes[1].Err)
	assert.NoError(t, outcomes[2].Err)

	// The failed file did not block the others.
	assert.Len(t, api.objects, 2)
}

func TestUploadBatch_SequentialWhenConcurrencyOne(t *testing.T) {
	api := newFakeAPI()
	c := newTestClient(t, api)

	outcomes := c.UploadBatch(context.Background(), "gallery", []File{
		{Name: "a.jpg", Data: []byte("x")},
		{Name: "b.jpg", Data: []byte("y")},
	}, 0)
	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.NoError(t, o.Err)
	}
}

func TestUploadAndRefresh_NewFilesAppearInView(t *testing.T) {
	api := newFakeAPI("a.jpg")
	view := NewBucketView(newTestClient(t, api), "gallery")
	ctx := context.Background()
	require.NoError(t, view.Refresh(ctx))

	outcomes, err := view.UploadAndRefresh(ctx, []File{{Name: "b.jpg", Data: []byte("x")}}, 1)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.NoError(t, outcomes[0].Err)

	assert.Equal(t, StateReady, view.State())
	assert.Len(t, view.Items(), 2)
}

func TestOrderAppliedLocallyMatchesServerContract(t *testing.T) {
	// The view sorts with the same routine the server uses for its public
	// listing, so both sides agree on display order.
	items := []models.MediaObject{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	got := mediaorder.Sort(items, []string{"b"})
	assert.Equal(t, "b", got[0].Name)
}
