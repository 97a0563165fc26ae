// Command ekraf es el CLI del marketplace Ekraf: sesión, productos, taxonomías, subida de
// imágenes, estadísticas y exportación del catálogo en PDF.
//
// La salida va a stdout en JSON; los logs y los errores van a stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/ekraf-client/internal/application/ports"
	"github.com/jhoicas/ekraf-client/internal/application/session"
	"github.com/jhoicas/ekraf-client/internal/application/usecase"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/pdf"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/ekraf-client/internal/infrastructure/redis"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/rest"
	infrasession "github.com/jhoicas/ekraf-client/internal/infrastructure/session"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/uploader"
	"github.com/jhoicas/ekraf-client/pkg/config"
	"github.com/jhoicas/ekraf-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, log, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	err = a.run(ctx, os.Args[1:])
	a.dumpMetrics()
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app agrupa los casos de uso cableados contra la configuración.
type app struct {
	cfg *config.Config
	log *logger.Logger
	out io.Writer
	reg *prometheus.Registry

	session    *session.Manager
	auth       *usecase.AuthUseCase
	users      *usecase.UserUseCase
	products   *usecase.ProductUseCase
	articles   *usecase.ArticleUseCase
	categories *usecase.BusinessCategoryUseCase
	subsectors *usecase.SubsectorUseCase
	master     *usecase.MasterDataUseCase
	stats      *usecase.StatisticsUseCase
	uploads    *usecase.UploaderUseCase
	catalog    *usecase.CatalogUseCase

	closers []func()
}

func newApp(ctx context.Context, cfg *config.Config, log *logger.Logger, out io.Writer) (*app, error) {
	a := &app{cfg: cfg, log: log, out: out, reg: prometheus.NewRegistry()}

	store, err := a.sessionStore(ctx)
	if err != nil {
		a.close()
		return nil, err
	}
	img, err := a.imageUploader()
	if err != nil {
		a.close()
		return nil, err
	}

	a.session = session.NewManager(store, log.Str("session_driver", cfg.Session.Driver))
	api := rest.NewClient(rest.Config{BaseURL: cfg.API.BaseURL}, a.session, log.Str("base_url", cfg.API.BaseURL),
		rest.NewMetrics(a.reg, cfg.Metrics.Namespace))

	a.auth = usecase.NewAuthUseCase(api, a.session)
	a.users = usecase.NewUserUseCase(api)
	a.products = usecase.NewProductUseCase(api)
	a.articles = usecase.NewArticleUseCase(api)
	a.categories = usecase.NewBusinessCategoryUseCase(api)
	a.subsectors = usecase.NewSubsectorUseCase(api)
	a.master = usecase.NewMasterDataUseCase(api, log)
	a.stats = usecase.NewStatisticsUseCase(api)
	a.uploads = usecase.NewUploaderUseCase(img)
	a.catalog = usecase.NewCatalogUseCase(a.users, pdf.NewMarotoPDFGenerator())
	return a, nil
}

// sessionStore abre el almacén según SESSION_DRIVER.
func (a *app) sessionStore(ctx context.Context) (ports.SessionStore, error) {
	switch a.cfg.Session.Driver {
	case config.SessionDriverMemory:
		return infrasession.NewMemoryStore(), nil
	case config.SessionDriverFile:
		return infrasession.NewFileStore(a.cfg.Session.File), nil
	case config.SessionDriverRedis:
		rdb, err := infraredis.NewClient(ctx, a.cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("sesión redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		return infraredis.NewSessionStore(rdb, a.cfg.Redis.Prefix), nil
	case config.SessionDriverPostgres:
		pool, err := postgres.NewPool(ctx, a.cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("sesión postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		st := postgres.NewSessionStore(pool)
		if err := st.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("sesión postgres: %w", err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("SESSION_DRIVER desconocido %q", a.cfg.Session.Driver)
	}
}

// imageUploader elige el host de imágenes según UPLOADER_DRIVER.
func (a *app) imageUploader() (ports.ImageUploader, error) {
	switch a.cfg.Uploader.Driver {
	case config.UploaderDriverCloudinary:
		up, err := uploader.NewCloudinaryUploader(a.cfg.Uploader.CloudinaryURL, a.cfg.Uploader.CloudinaryFolder, a.log)
		if err != nil {
			return nil, fmt.Errorf("uploader cloudinary: %w", err)
		}
		return up, nil
	default:
		return uploader.NewRyzenCDN(a.cfg.Uploader.URL, nil, a.log), nil
	}
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// dumpMetrics deja en el log (nivel debug) los contadores de peticiones de esta ejecución.
func (a *app) dumpMetrics() {
	families, err := a.reg.Gather()
	if err != nil {
		a.log.Warn().Err(err).Msg("recolectar métricas")
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			ev := a.log.Debug().Str("metric", mf.GetName())
			for _, lp := range m.GetLabel() {
				ev = ev.Str(lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				ev = ev.Float64("value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				ev = ev.Uint64("count", m.GetHistogram().GetSampleCount()).
					Float64("sum", m.GetHistogram().GetSampleSum())
			}
			ev.Msg("métrica")
		}
	}
}
