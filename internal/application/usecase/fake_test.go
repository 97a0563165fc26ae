package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/application/session"
	infrasession "github.com/jhoicas/ekraf-client/internal/infrastructure/session"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/rest"
)

// fakeAPI Requester en memoria: responde según "METHOD /path" y registra cada llamada.
type fakeAPI struct {
	mu       sync.Mutex
	routes   map[string]func(ports.Request) (string, error)
	requests []ports.Request
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{routes: map[string]func(ports.Request) (string, error){}}
}

func (f *fakeAPI) on(method, path, body string) {
	f.routes[method+" "+path] = func(ports.Request) (string, error) { return body, nil }
}

func (f *fakeAPI) fail(method, path string, err error) {
	f.routes[method+" "+path] = func(ports.Request) (string, error) { return "", err }
}

func (f *fakeAPI) Do(_ context.Context, req ports.Request, out any) error {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	h, ok := f.routes[req.Method+" "+req.Path]
	f.mu.Unlock()
	if !ok {
		panic("ruta no configurada: " + req.Method + " " + req.Path)
	}
	body, err := h(req)
	if err != nil {
		return err
	}
	if out == nil || body == "" {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}

func (f *fakeAPI) calls() []ports.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ports.Request(nil), f.requests...)
}

// wire es un cliente real (rest.Client + sesión en memoria) contra un httptest.Server.
type wire struct {
	srv     *httptest.Server
	api     *rest.Client
	session *session.Manager
	store   *infrasession.MemoryStore
}

func newWire(t *testing.T, h http.HandlerFunc) *wire {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	store := infrasession.NewMemoryStore()
	sess := session.NewManager(store, nil)
	return &wire{
		srv:     srv,
		api:     rest.NewClient(rest.Config{BaseURL: srv.URL}, sess, nil, nil),
		session: sess,
		store:   store,
	}
}
