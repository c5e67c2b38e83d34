package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/heartmarshall/roleplay-admin/internal/adapter/catalog"
	"github.com/heartmarshall/roleplay-admin/internal/notify"
	"github.com/heartmarshall/roleplay-admin/internal/service/admin"
	"github.com/heartmarshall/roleplay-admin/internal/service/composer"
)

const activitiesRoot = "/api/v2/whiteboard-activities/"

// fakeCatalog is an in-memory whiteboard-activities backend.
type fakeCatalog struct {
	mu          sync.Mutex
	collections map[string][]map[string]any
	activities  []map[string]any
	nextID      int
	failWrites  bool
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{collections: map[string][]map[string]any{
		"languages": {
			{"_id": "lang-en", "language": "English"},
			{"_id": "lang-es", "language": "Spanish"},
			{"_id": "lang-def", "language": "DEFAULT"},
		},
		"skills": {
			{"_id": "sk-speak", "value": "Speaking"},
			{"_id": "sk-listen", "value": "Listening"},
		},
		"sub-skills": {
			{"_id": "ss-1", "value": "Small talk", "skill": "sk-speak", "language": "lang-en"},
			{"_id": "ss-2", "value": "Note taking", "skill": "sk-listen"},
		},
		"grammar-types": {
			{"_id": "gr-past", "value": "Past tense", "language": "lang-en"},
			{"_id": "gr-any", "value": "Word order", "language": "lang-def"},
		},
		"sub-grammar-types": {
			{"_id": "sg-1", "value": "Irregular verbs", "grammar": "gr-past", "language": "lang-en"},
		},
		"vocabularies": {
			{"_id": "vo-food", "value": "Food"},
		},
		"sub-vocabularies": {
			{"_id": "sv-1", "value": "Bread", "vocabularyId": "vo-food"},
		},
	}}
}

func (f *fakeCatalog) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, activitiesRoot), "/")
	parts := strings.Split(path, "/")

	f.mu.Lock()
	defer f.mu.Unlock()

	if parts[0] == "activities" {
		f.serveActivities(w, r, parts[1:])
		return
	}

	switch {
	case r.Method == http.MethodGet && len(parts) == 1:
		writeJSON(w, http.StatusOK, f.collections[parts[0]])
	case r.Method == http.MethodPost && len(parts) == 1:
		if f.failWrites {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		rec := decodeBody(r)
		f.nextID++
		rec["_id"] = fmt.Sprintf("new-%d", f.nextID)
		f.collections[parts[0]] = append(f.collections[parts[0]], rec)
		writeJSON(w, http.StatusCreated, rec)
	case r.Method == http.MethodPatch && len(parts) == 2:
		if f.failWrites {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		for _, rec := range f.collections[parts[0]] {
			if rec["_id"] == parts[1] {
				for k, v := range decodeBody(r) {
					rec[k] = v
				}
			}
		}
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodDelete && len(parts) == 2:
		if f.failWrites {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		kept := f.collections[parts[0]][:0]
		for _, rec := range f.collections[parts[0]] {
			if rec["_id"] != parts[1] {
				kept = append(kept, rec)
			}
		}
		f.collections[parts[0]] = kept
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeCatalog) serveActivities(w http.ResponseWriter, r *http.Request, rest []string) {
	switch {
	case r.Method == http.MethodPost && len(rest) == 0:
		if f.failWrites {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		f.activities = append(f.activities, decodeBody(r))
		w.WriteHeader(http.StatusCreated)
	case r.Method == http.MethodGet && len(rest) == 2 && rest[0] == "roleplays":
		language := r.URL.Query().Get("language")
		for i := len(f.activities) - 1; i >= 0; i-- {
			a := f.activities[i]
			if a["rolePlayId"] == rest[1] && (language == "" || a["language"] == language) {
				writeJSON(w, http.StatusOK, a)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeCatalog) savedActivities() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any{}, f.activities...)
}

func (f *fakeCatalog) setFailWrites(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWrites = fail
}

func decodeBody(r *http.Request) map[string]any {
	rec := map[string]any{}
	data, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(data, &rec)
	return rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testDeps wires real services against a fakeCatalog served over HTTP.
type testDeps struct {
	backend  *fakeCatalog
	client   *catalog.Client
	queue    *notify.Queue
	console  *admin.Service
	registry *composer.Registry
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	backend := newFakeCatalog()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	log := discardLogger()
	client := catalog.NewClientWithHTTP(srv.URL, srv.Client(), log)
	queue := notify.NewQueue(0, log)
	t.Cleanup(queue.Close)

	console := admin.NewService(log, client, catalog.NewLoader(client, log), queue, admin.NewScrollLock(func(bool) {}))
	registry := composer.NewRegistry(func(roleplayID string) *composer.Composer {
		return composer.New(log, roleplayID, client, catalog.NewLoader(client, log), queue)
	})

	return &testDeps{backend: backend, client: client, queue: queue, console: console, registry: registry}
}
