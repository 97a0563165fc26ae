package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/domain"
)

// call ejecuta una petición y normaliza el fallo con la acción dada.
// Ningún error crudo del transporte sale de este paquete.
func call(ctx context.Context, api ports.Requester, req ports.Request, out any, action string) error {
	return domain.Normalize(api.Do(ctx, req, out), action)
}

// fetchData ejecuta req y desenvuelve {data} del Envelope.
func fetchData[T any](ctx context.Context, api ports.Requester, req ports.Request, action string) (T, error) {
	var env dto.Envelope[T]
	if err := call(ctx, api, req, &env, action); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

// fetchMessage ejecuta req y devuelve el {message} de la respuesta.
func fetchMessage(ctx context.Context, api ports.Requester, req ports.Request, action string) (*dto.Message, error) {
	var msg dto.Message
	if err := call(ctx, api, req, &msg, action); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ── Constructores de Request ────────────────────────────────────────────────

func get(op, path string, query url.Values) ports.Request {
	return ports.Request{Op: op, Method: http.MethodGet, Path: path, Query: query}
}

func post(op, path string, body any) ports.Request {
	return ports.Request{Op: op, Method: http.MethodPost, Path: path, Body: body}
}

func put(op, path string, body any) ports.Request {
	return ports.Request{Op: op, Method: http.MethodPut, Path: path, Body: body}
}

func del(op, path string) ports.Request {
	return ports.Request{Op: op, Method: http.MethodDelete, Path: path}
}

func pathID(prefix string, id int64) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}
