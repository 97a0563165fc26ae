package http

import (
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
)

const maxUploadSize = 5 << 20

type uploadedFile struct {
	contentType string
	body        []byte
}

// UploadHandler imita el host de imágenes: multipart con una parte "file" → {url}.
type UploadHandler struct {
	mu    sync.RWMutex
	files map[string]uploadedFile
}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{files: map[string]uploadedFile{}}
}

// Upload POST /upload.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Field file wajib diisi")
	}
	if fh.Size > maxUploadSize {
		return fail(c, fiber.StatusRequestEntityTooLarge, "File terlalu besar")
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return fail(c, fiber.StatusUnsupportedMediaType, "File harus berupa gambar")
	}
	f, err := fh.Open()
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "File tidak dapat dibaca")
	}
	defer f.Close()
	body, err := io.ReadAll(f)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "File tidak dapat dibaca")
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	h.mu.Lock()
	h.files[name] = uploadedFile{contentType: contentType, body: body}
	h.mu.Unlock()
	return c.JSON(dto.UploadResponse{URL: c.BaseURL() + "/uploads/" + name})
}

// Serve GET /uploads/:name.
func (h *UploadHandler) Serve(c *fiber.Ctx) error {
	h.mu.RLock()
	f, ok := h.files[c.Params("name")]
	h.mu.RUnlock()
	if !ok {
		return fail(c, fiber.StatusNotFound, "File tidak ditemukan")
	}
	c.Set(fiber.HeaderContentType, f.contentType)
	return c.Send(f.body)
}
