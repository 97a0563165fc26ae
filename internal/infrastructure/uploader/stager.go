// Package uploader contiene los adaptadores de subida de imágenes (ports.ImageUploader).
// Todos pasan primero por Stage, que convierte el URI del asset en un archivo local legible.
package uploader

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/jhoicas/ekraf-client/internal/domain"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

// ErrUnsupportedURI el URI no apunta a un archivo local (content://, http://, ...).
var ErrUnsupportedURI = errors.New("esquema de URI no soportado para subida")

// Stage abre el archivo local al que apunta asset.URI (file:// o ruta simple).
// Cualquier otro esquema, o un archivo ilegible, devuelve un error de tipo staging.
// El llamador cierra el archivo.
func Stage(asset entity.Asset) (*os.File, error) {
	path, err := localPath(asset.URI)
	if err != nil {
		return nil, domain.Staging(err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.Staging(fmt.Errorf("abrir %s: %w", path, err))
	}
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		_ = f.Close()
		if err == nil {
			err = fmt.Errorf("%s es un directorio", path)
		}
		return nil, domain.Staging(err)
	}
	return f, nil
}

func localPath(uri string) (string, error) {
	if uri == "" {
		return "", fmt.Errorf("URI vacío: %w", ErrUnsupportedURI)
	}
	if !strings.Contains(uri, "://") {
		return uri, nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("URI inválido %q: %w", uri, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("%q: %w", u.Scheme, ErrUnsupportedURI)
	}
	if u.Path == "" {
		return "", fmt.Errorf("URI sin ruta %q: %w", uri, ErrUnsupportedURI)
	}
	return u.Path, nil
}
