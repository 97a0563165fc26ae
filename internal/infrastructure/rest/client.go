package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/domain"
	"github.com/jhoicas/ekraf-client/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa Requester.
var _ ports.Requester = (*Client)(nil)

// maxBody límite de lectura de cualquier respuesta del API.
const maxBody = 4 << 20

// Config parámetros del cliente REST.
type Config struct {
	BaseURL    string       // "https://ekraf.asepharyana.tech/api"
	HTTPClient *http.Client // nil = http.Client sin timeout (un solo intento, sin reintentos)
}

// Client es el núcleo de peticiones: una llamada HTTP por Do, sin reintentos ni backoff.
// Adjunta el token bearer cuando la sesión tiene uno y devuelve siempre *domain.APIError al fallar.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  ports.TokenSource
	log     *logger.Logger
	metrics *Metrics
}

// NewClient construye el cliente. tokens y metrics pueden ser nil.
func NewClient(cfg Config, tokens ports.TokenSource, log *logger.Logger, metrics *Metrics) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    hc,
		tokens:  tokens,
		log:     log.Named("rest"),
		metrics: metrics,
	}
}

// ── Cuerpo de error del API ─────────────────────────────────────────────────

type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   json.RawMessage `json:"error"`
}

// text devuelve el primer mensaje legible del cuerpo de error.
func (b errorBody) text() string {
	if m := rawText(b.Message); m != "" {
		return m
	}
	return rawText(b.Error)
}

// rawText acepta un string o una lista de strings (errores de validación por campo).
func rawText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return ""
	}
	parts := make([]string, 0, len(list))
	for _, item := range list {
		if item = strings.TrimSpace(item); item != "" {
			parts = append(parts, item)
		}
	}
	return strings.Join(parts, "; ")
}

// ── Implementación del puerto ───────────────────────────────────────────────

// Do ejecuta req y decodifica la respuesta 2xx en out.
func (c *Client) Do(ctx context.Context, req ports.Request, out any) error {
	start := time.Now()
	requestID := uuid.NewString()

	httpReq, err := c.build(ctx, req, requestID)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.metrics.observe(req.Op, req.Method, 0, time.Since(start))
		cause := err
		if ctx.Err() != nil {
			cause = fmt.Errorf("timeout o cancelación: %w", ctx.Err())
		}
		c.log.Warn().Str("op", req.Op).Str("request_id", requestID).Err(cause).
			Str("kind", string(domain.KindUnreachable)).Msg("API inalcanzable")
		return domain.Unreachable(cause)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	elapsed := time.Since(start)
	c.metrics.observe(req.Op, req.Method, resp.StatusCode, elapsed)
	c.log.Debug().
		Str("op", req.Op).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Str("request_id", requestID).
		Msg("API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := domain.Rejected(resp.StatusCode, rejectionMessage(resp, raw))
		c.log.Warn().Str("op", req.Op).Int("status", resp.StatusCode).
			Str("kind", string(apiErr.Kind)).Str("request_id", requestID).Msg(apiErr.Message)
		return apiErr
	}
	if readErr != nil {
		if ctx.Err() != nil {
			return domain.Unreachable(fmt.Errorf("timeout o cancelación: %w", ctx.Err()))
		}
		return domain.Malformed("", fmt.Errorf("leer respuesta: %w", readErr))
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn().Str("op", req.Op).Str("request_id", requestID).Err(err).
			Str("kind", string(domain.KindMalformed)).Msg("respuesta no es el JSON esperado")
		return domain.Malformed("", fmt.Errorf("deserializar respuesta de %s: %w", req.Path, err))
	}
	return nil
}

func (c *Client) build(ctx context.Context, req ports.Request, requestID string) (*http.Request, error) {
	url := c.baseURL + req.Path
	if len(req.Query) > 0 {
		url += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("serializar cuerpo de %s: %w", req.Path, err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("crear HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		tok, err := c.tokens.Token(ctx)
		if err == nil && tok != "" {
			httpReq.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return httpReq, nil
}

// rejectionMessage: mensaje del cuerpo estructurado; si no, el texto del status HTTP.
// "" queda para domain.Normalize, que lo reemplaza por "Gagal <acción>".
func rejectionMessage(resp *http.Response, raw []byte) string {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		if m := eb.text(); m != "" {
			return m
		}
	}
	if t := http.StatusText(resp.StatusCode); t != "" {
		return t
	}
	// Status no estándar: "599 Network Connect Timeout" -> parte textual del status line.
	if _, text, ok := strings.Cut(resp.Status, " "); ok && strings.TrimSpace(text) != "" {
		return strings.TrimSpace(text)
	}
	return ""
}
