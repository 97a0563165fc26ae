package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ekraf-client/internal/domain"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/devstore"
	apphttp "github.com/jhoicas/ekraf-client/internal/interfaces/http"
	"github.com/jhoicas/ekraf-client/pkg/config"
	"github.com/jhoicas/ekraf-client/pkg/logger"
)

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	store, err := devstore.New(devstore.WithBcryptCost(bcrypt.MinCost))
	require.NoError(t, err)
	srv := httptest.NewServer(adaptor.FiberApp(apphttp.NewApp(apphttp.RouterDeps{
		Store: store,
		JWT:   config.JWTConfig{Secret: "cli-test", Expiration: 5, Issuer: "cli-test"},
	})))
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		API:      config.APIConfig{BaseURL: srv.URL},
		Session:  config.SessionConfig{Driver: config.SessionDriverMemory},
		Uploader: config.UploaderConfig{Driver: config.UploaderDriverRyzenCDN, URL: srv.URL + "/upload"},
		Metrics:  config.MetricsConfig{Namespace: "ekraf_cli_test"},
	}
	out := &bytes.Buffer{}
	a, err := newApp(context.Background(), cfg, logger.Nop(), out)
	require.NoError(t, err)
	t.Cleanup(a.close)
	return a, out
}

// runJSON ejecuta args y decodifica la salida en v.
func runJSON(t *testing.T, a *app, out *bytes.Buffer, v any, args ...string) {
	t.Helper()
	out.Reset()
	require.NoError(t, a.run(context.Background(), args))
	require.NoError(t, json.Unmarshal(out.Bytes(), v), out.String())
}

func TestCLI_FlujoCompleto(t *testing.T) {
	a, out := newTestApp(t)

	var me entity.User
	runJSON(t, a, out, &me, "login", "-u", devstore.DemoUsername, "-p", devstore.DemoPassword)
	assert.Equal(t, devstore.DemoUsername, me.Username)

	runJSON(t, a, out, &me, "whoami")
	assert.Equal(t, "Batik Dewani", me.BusinessName)

	var page struct {
		Data        []entity.Product `json:"data"`
		CurrentPage int              `json:"currentPage"`
		TotalPages  int              `json:"totalPages"`
	}
	runJSON(t, a, out, &page, "products", "-q", "kawung")
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Batik Cap Kawung", page.Data[0].Name)

	img := filepath.Join(t.TempDir(), "tenun.png")
	require.NoError(t, os.WriteFile(img, []byte("\x89PNG"), 0o600))
	var created entity.Product
	runJSON(t, a, out, &created, "create-product", "-name", "Tenun Ikat", "-price", "275000", "-stock", "4", "-file", img)
	assert.True(t, strings.HasSuffix(created.Image, ".png"), created.Image)
	assert.Equal(t, entity.ProductStatusPending, created.Status)

	var link entity.OnlineStoreLink
	runJSON(t, a, out, &link, "add-link", strconv.FormatInt(created.ID, 10), "-platform", "Shopee", "-url", "https://shopee.co.id/x")
	assert.Equal(t, "Shopee", link.PlatformName)

	var statuses []entity.ProductStatus
	runJSON(t, a, out, &statuses, "statuses")
	assert.Contains(t, statuses, entity.ProductStatusPending)

	pdfPath := filepath.Join(t.TempDir(), "katalog.pdf")
	var res map[string]any
	runJSON(t, a, out, &res, "catalog", "-o", pdfPath)
	raw, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	err = a.run(context.Background(), []string{"stats"})
	assert.ErrorIs(t, err, domain.ErrRejected)

	var m map[string]string
	runJSON(t, a, out, &m, "logout")
	assert.Error(t, a.run(context.Background(), []string{"whoami"}))
}

func TestCLI_ErroresDeUso(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	assert.ErrorIs(t, a.run(ctx, nil), errUsage)
	assert.EqualError(t, a.run(ctx, []string{"nope"}), `comando desconocido "nope"`)
	assert.ErrorIs(t, a.run(ctx, []string{"product", "abc"}), errUsage)
	assert.ErrorIs(t, a.run(ctx, []string{"login", "-level", "root"}), errUsage)
	assert.ErrorIs(t, a.run(ctx, []string{"create-product", "-price", "mahal"}), errUsage)
}

func TestCLI_UploadSinTipoConocido(t *testing.T) {
	a, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "foto.sinext")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	err := a.run(context.Background(), []string{"upload", path})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLocalAsset(t *testing.T) {
	as := localAsset("/tmp/batik.JPG", "")
	assert.Equal(t, "file:///tmp/batik.JPG", as.URI)
	assert.Equal(t, "batik.JPG", as.FileName)
	assert.Equal(t, "image/jpeg", as.Type)
	assert.Equal(t, "image/webp", localAsset("/tmp/x.jpg", "image/webp").Type)
}
