package store

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/configs"
)

func newTestStore(url string) Client {
	return NewClient(configs.StoreConfig{BaseURL: url, APIKey: "test-key", TimeoutSecs: 5})
}

func TestRecentDetections(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/detections", r.URL.Path)
		assert.Equal(t, "eq.true", r.URL.Query().Get("acknowledged"))
		assert.Equal(t, "time.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id":"d-1","location":"Boulders Beach","acknowledged":true}]`))
	}))
	defer srv.Close()

	dets, err := newTestStore(srv.URL).RecentDetections(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, dets, 1)
	assert.Equal(t, "d-1", dets[0].ID)
	assert.True(t, dets[0].Acknowledged)
}

func TestUnacknowledgedDetections(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.false", r.URL.Query().Get("acknowledged"))
		assert.Equal(t, "time.desc", r.URL.Query().Get("order"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	dets, err := newTestStore(srv.URL).UnacknowledgedDetections(context.Background())
	require.NoError(t, err)
	assert.Empty(t, dets)
}

func TestInsertDetection(t *testing.T) {
	t.Run("strips id and forces unacknowledged", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
			body, _ := io.ReadAll(r.Body)
			assert.NotContains(t, string(body), `"id"`)
			assert.Contains(t, string(body), `"acknowledged":false`)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[{"id":"d-9","location":"South Fence","acknowledged":false}]`))
		}))
		defer srv.Close()

		det, err := newTestStore(srv.URL).InsertDetection(context.Background(), Detection{
			ID:           "caller-set",
			Location:     "South Fence",
			Acknowledged: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "d-9", det.ID)
	})

	t.Run("empty representation is an error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		_, err := newTestStore(srv.URL).InsertDetection(context.Background(), Detection{})
		assert.NotNil(t, err)
	})
}

func TestAcknowledge(t *testing.T) {
	t.Run("one by id", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "eq.d-1", r.URL.Query().Get("id"))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"acknowledged": true}`, string(body))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		err := newTestStore(srv.URL).AcknowledgeDetection(context.Background(), "d-1")
		assert.NoError(t, err)
	})

	t.Run("all filters on open records", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "eq.false", r.URL.Query().Get("acknowledged"))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		err := newTestStore(srv.URL).AcknowledgeAll(context.Background())
		assert.NoError(t, err)
	})
}

func TestPerimeters(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/perimeters", r.URL.Path)
		assert.Equal(t, "zone.asc", r.URL.Query().Get("order"))
		w.Write([]byte(`[{"id":"p-1","zone":"North Fence","status":true}]`))
	}))
	defer srv.Close()

	zones, err := newTestStore(srv.URL).Perimeters(context.Background())
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, "North Fence", zones[0].Zone)
}

func TestUpdatePerimeterStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.North Fence", r.URL.Query().Get("zone"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"status": false}`, string(body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestStore(srv.URL).UpdatePerimeterStatus(context.Background(), "North Fence", false)
	assert.NoError(t, err)
}

func TestProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/profiles", r.URL.Path)
			assert.Equal(t, "eq.u-1", r.URL.Query().Get("id"))
			w.Write([]byte(`[{"id":"u-1","role":"admin"}]`))
		}))
		defer srv.Close()

		p, err := newTestStore(srv.URL).Profile(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, p.Role)
	})

	t.Run("missing maps to no rows", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		_, err := newTestStore(srv.URL).Profile(context.Background(), "u-1")
		assert.True(t, IsNoRows(err))
	})
}

func TestUpdateProfileRole(t *testing.T) {
	t.Run("empty role is rejected locally", func(t *testing.T) {
		t.Parallel()
		err := newTestStore("http://unused").UpdateProfileRole(context.Background(), "u-1", "")
		assert.Equal(t, ErrEmptyPatch, err)
	})

	t.Run("patches by id", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "eq.u-1", r.URL.Query().Get("id"))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"role": "field_agent"}`, string(body))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		err := newTestStore(srv.URL).UpdateProfileRole(context.Background(), "u-1", RoleFieldAgent)
		assert.NoError(t, err)
	})
}

func TestErrorMapping(t *testing.T) {
	t.Run("structured error body", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"code":"PGRST116","message":"no rows returned"}`))
		}))
		defer srv.Close()

		_, err := newTestStore(srv.URL).RecentDetections(context.Background(), 5)
		require.NotNil(t, err)
		assert.True(t, IsNoRows(err))

		var apiErr Err
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "no rows returned", apiErr.Message)
	})

	t.Run("expired token reads as auth error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"JWT expired"}`))
		}))
		defer srv.Close()

		_, err := newTestStore(srv.URL).Perimeters(context.Background())
		require.NotNil(t, err)
		assert.True(t, IsAuthErr(err))
	})

	t.Run("unstructured body is kept verbatim", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		}))
		defer srv.Close()

		_, err := newTestStore(srv.URL).Perimeters(context.Background())
		var apiErr Err
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "upstream down", apiErr.Message)
		assert.False(t, IsAuthErr(err))
	})
}
