package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/domain"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
	"github.com/jhoicas/ekraf-client/pkg/logger"
)

// Mensajes del host de imágenes.
const (
	MsgUploadMalformed = "Respons server tidak valid setelah upload."
	MsgUploadFailed    = "Gagal mengunggah gambar ke server."
)

const maxUploadResponse = 1 << 20

var _ ports.ImageUploader = (*RyzenCDN)(nil)

// RyzenCDN sube imágenes como multipart/form-data a un endpoint independiente del API.
type RyzenCDN struct {
	endpoint string
	http     *http.Client
	log      *logger.Logger
}

// NewRyzenCDN crea el adaptador. httpClient nil usa http.DefaultClient.
func NewRyzenCDN(endpoint string, httpClient *http.Client, log *logger.Logger) *RyzenCDN {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RyzenCDN{endpoint: endpoint, http: httpClient, log: log.Named("uploader.ryzencdn")}
}

// Upload envía una sola parte "file" con el nombre y tipo MIME del asset y devuelve la URL alojada.
func (u *RyzenCDN) Upload(ctx context.Context, asset entity.Asset) (string, error) {
	f, err := Stage(asset)
	if err != nil {
		return "", err
	}
	defer f.Close()

	body, contentType, err := multipartBody(asset, f)
	if err != nil {
		return "", domain.Staging(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, body)
	if err != nil {
		return "", fmt.Errorf("construir request de upload: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := u.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		u.log.Warn().Err(err).Str("file", asset.FileName).Msg("upload sin respuesta")
		return "", domain.Unreachable(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxUploadResponse))
	if err != nil {
		return "", domain.Unreachable(fmt.Errorf("leer respuesta de upload: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := uploadRejection(resp.StatusCode, raw)
		u.log.Warn().Int("status", resp.StatusCode).Str("file", asset.FileName).Msg("upload rechazado")
		return "", domain.Rejected(resp.StatusCode, msg)
	}

	var out dto.UploadResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", domain.Malformed(MsgUploadMalformed, err)
	}
	if strings.TrimSpace(out.URL) == "" {
		return "", domain.Malformed(MsgUploadMalformed, errors.New("respuesta sin url"))
	}
	u.log.Debug().Str("file", asset.FileName).Str("url", out.URL).Msg("imagen subida")
	return out.URL, nil
}

func multipartBody(asset entity.Asset, r io.Reader) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, asset.FileName))
	h.Set("Content-Type", asset.Type)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("crear parte file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", fmt.Errorf("copiar %s: %w", asset.FileName, err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("cerrar multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// uploadRejection mensaje del servidor, si no el texto del status, si no el mensaje fijo.
func uploadRejection(status int, raw []byte) string {
	var body dto.ErrorResponse
	if json.Unmarshal(raw, &body) == nil {
		if m := strings.TrimSpace(body.Message); m != "" {
			return m
		}
		if m := strings.TrimSpace(body.Error); m != "" {
			return m
		}
	}
	if t := http.StatusText(status); t != "" {
		return t
	}
	return MsgUploadFailed
}
