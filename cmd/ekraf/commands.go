package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/domain"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

// errUsage argumentos inválidos; run ya imprimió la ayuda.
var errUsage = errors.New("uso incorrecto")

// command subcomando del CLI.
type command struct {
	usage string
	run   func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"login":           {"login [-level umkm] -u <usuario|email> -p <password>", cmdLogin},
	"logout":          {"logout", cmdLogout},
	"whoami":          {"whoami", cmdWhoami},
	"register":        {"register -name -username -email -password [-gender] [-phone] [-business] [-status] [-category]", cmdRegister},
	"verify-email":    {"verify-email <token>", cmdVerifyEmail},
	"forgot-password": {"forgot-password <email>", cmdForgotPassword},
	"reset-password":  {"reset-password <token> <password>", cmdResetPassword},
	"products":        {"products [-q] [-page] [-limit] [-kategori] [-subsector]", cmdProducts},
	"product":         {"product <id>", cmdProduct},
	"create-product":  {"create-product -name -price -stock (-image <url> | -file <ruta>) [-desc] [-phone] [-category] [-subsector]", cmdCreateProduct},
	"delete-product":  {"delete-product <id>", cmdDeleteProduct},
	"add-link":        {"add-link <producto> -platform <nombre> -url <url>", cmdAddLink},
	"articles":        {"articles [-page] [-limit]", cmdArticles},
	"master-data":     {"master-data", cmdMasterData},
	"statuses":        {"statuses", cmdStatuses},
	"upload":          {"upload [-type image/jpeg] <ruta>", cmdUpload},
	"stats":           {"stats", cmdStats},
	"catalog":         {"catalog [-user <id>] [-o catalogo.pdf]", cmdCatalog},
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage(os.Stderr)
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		a.usage(os.Stderr)
		return fmt.Errorf("comando desconocido %q", args[0])
	}
	a.log.Debug().Str("cmd", args[0]).Msg("ejecutando")
	return cmd.run(ctx, a, args[1:])
}

func (a *app) usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "uso: ekraf <comando> [opciones]")
	for _, n := range names {
		fmt.Fprintln(w, "  "+commands[n].usage)
	}
}

// print escribe v como JSON indentado en stdout.
func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

// argID lee el id posicional i de fs.
func argID(fs *flag.FlagSet, i int) (int64, error) {
	if fs.NArg() <= i {
		return 0, fmt.Errorf("%s: falta el id: %w", fs.Name(), errUsage)
	}
	id, err := strconv.ParseInt(fs.Arg(i), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s: id inválido %q: %w", fs.Name(), fs.Arg(i), errUsage)
	}
	return id, nil
}

// ── Sesión ──────────────────────────────────────────────────────────────────

func cmdLogin(ctx context.Context, a *app, args []string) error {
	fs := newFlags("login")
	level := fs.String("level", entity.LevelUMKM, "superadmin | admin | umkm")
	user := fs.String("u", "", "usuario o email")
	pass := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !entity.ValidLevel(*level) {
		return fmt.Errorf("login: level inválido %q: %w", *level, errUsage)
	}
	s, err := a.auth.Login(ctx, *level, dto.LoginRequest{UsernameOrEmail: *user, Password: *pass})
	if err != nil {
		return err
	}
	return a.print(s.User)
}

func cmdLogout(ctx context.Context, a *app, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	return a.print(dto.Message{Message: "Sesi dihapus"})
}

func cmdWhoami(ctx context.Context, a *app, _ []string) error {
	if !a.session.IsAuthenticated(ctx) {
		return errors.New("Belum login")
	}
	u, err := a.users.Profile(ctx)
	if err != nil {
		return err
	}
	return a.print(u)
}

func cmdRegister(ctx context.Context, a *app, args []string) error {
	fs := newFlags("register")
	var in dto.RegisterUMKMRequest
	fs.StringVar(&in.Name, "name", "", "nombre")
	fs.StringVar(&in.Username, "username", "", "usuario")
	fs.StringVar(&in.Email, "email", "", "email")
	fs.StringVar(&in.Password, "password", "", "password")
	fs.StringVar(&in.Gender, "gender", entity.GenderFemale, "Laki-laki | Perempuan")
	fs.StringVar(&in.PhoneNumber, "phone", "", "teléfono")
	fs.StringVar(&in.BusinessName, "business", "", "nombre del negocio")
	fs.StringVar(&in.BusinessStatus, "status", entity.BusinessStatusNew, "BARU | SUDAH_LAMA")
	fs.Int64Var(&in.BusinessCategoryID, "category", 1, "id de la categoría de negocio")
	if err := fs.Parse(args); err != nil {
		return err
	}
	resp, err := a.auth.RegisterUMKM(ctx, in)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func cmdVerifyEmail(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("verify-email <token>: %w", errUsage)
	}
	m, err := a.auth.VerifyEmail(ctx, args[0])
	if err != nil {
		return err
	}
	return a.print(m)
}

func cmdForgotPassword(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("forgot-password <email>: %w", errUsage)
	}
	m, err := a.auth.ForgotPassword(ctx, args[0])
	if err != nil {
		return err
	}
	return a.print(m)
}

func cmdResetPassword(ctx context.Context, a *app, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("reset-password <token> <password>: %w", errUsage)
	}
	m, err := a.auth.ResetPassword(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return a.print(m)
}

// ── Productos ───────────────────────────────────────────────────────────────

func cmdProducts(ctx context.Context, a *app, args []string) error {
	fs := newFlags("products")
	var f dto.ProductFilter
	fs.StringVar(&f.Q, "q", "", "búsqueda")
	fs.IntVar(&f.Page, "page", 1, "página")
	fs.IntVar(&f.Limit, "limit", 10, "tamaño de página")
	fs.Int64Var(&f.Kategori, "kategori", 0, "id de categoría")
	fs.Int64Var(&f.Subsector, "subsector", 0, "id de subsector")
	if err := fs.Parse(args); err != nil {
		return err
	}
	page, err := a.products.List(ctx, f)
	if err != nil {
		return err
	}
	return a.print(page)
}

func cmdProduct(ctx context.Context, a *app, args []string) error {
	fs := newFlags("product")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := argID(fs, 0)
	if err != nil {
		return err
	}
	p, err := a.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return a.print(p)
}

func cmdCreateProduct(ctx context.Context, a *app, args []string) error {
	fs := newFlags("create-product")
	var in dto.CreateProductRequest
	price := fs.String("price", "0", "precio en rupias")
	file := fs.String("file", "", "imagen local a subir antes del alta")
	fs.StringVar(&in.Name, "name", "", "nombre")
	fs.IntVar(&in.Stock, "stock", 0, "stock")
	fs.StringVar(&in.Image, "image", "", "URL de la imagen ya subida")
	fs.StringVar(&in.Description, "desc", "", "descripción")
	fs.StringVar(&in.PhoneNumber, "phone", "", "teléfono de contacto")
	fs.StringVar(&in.OwnerName, "owner", "", "nombre del propietario")
	fs.Int64Var(&in.BusinessCategoryID, "category", 0, "id de categoría")
	fs.Int64Var(&in.SubSectorID, "subsector", 0, "id de subsector")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, err := decimal.NewFromString(*price)
	if err != nil {
		return fmt.Errorf("create-product: precio inválido %q: %w", *price, errUsage)
	}
	in.Price = p
	if *file != "" {
		url, err := a.uploads.UploadImage(ctx, localAsset(*file, ""))
		if err != nil {
			return err
		}
		in.Image = url
	}
	created, err := a.products.Create(ctx, in)
	if err != nil {
		return err
	}
	return a.print(created)
}

func cmdDeleteProduct(ctx context.Context, a *app, args []string) error {
	fs := newFlags("delete-product")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := argID(fs, 0)
	if err != nil {
		return err
	}
	m, err := a.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	return a.print(m)
}

func cmdAddLink(ctx context.Context, a *app, args []string) error {
	fs := newFlags("add-link")
	var in dto.OnlineStoreLinkRequest
	fs.StringVar(&in.PlatformName, "platform", "", "plataforma (Tokopedia, Shopee...)")
	fs.StringVar(&in.URL, "url", "", "URL de la tienda")
	if len(args) == 0 {
		return fmt.Errorf("add-link <producto>: %w", errUsage)
	}
	// el id va primero: flag corta el parseo en el primer posicional
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("add-link: id inválido %q: %w", args[0], errUsage)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	l, err := a.products.CreateOnlineStoreLink(ctx, id, in)
	if err != nil {
		return err
	}
	return a.print(l)
}

// ── Contenido y taxonomías ──────────────────────────────────────────────────

func cmdArticles(ctx context.Context, a *app, args []string) error {
	fs := newFlags("articles")
	var pr dto.PageRequest
	fs.IntVar(&pr.Page, "page", 1, "página")
	fs.IntVar(&pr.Limit, "limit", 10, "tamaño de página")
	if err := fs.Parse(args); err != nil {
		return err
	}
	page, err := a.articles.List(ctx, pr)
	if err != nil {
		return err
	}
	return a.print(page)
}

func cmdMasterData(ctx context.Context, a *app, _ []string) error {
	md, err := a.master.GetAll(ctx)
	if err != nil {
		return err
	}
	return a.print(md)
}

func cmdStatuses(ctx context.Context, a *app, _ []string) error {
	return a.print(a.master.ProductStatuses(ctx))
}

func cmdStats(ctx context.Context, a *app, _ []string) error {
	st, err := a.stats.Get(ctx)
	if err != nil {
		return err
	}
	return a.print(st)
}

// ── Imágenes y catálogo ─────────────────────────────────────────────────────

// localAsset arma el handle de un archivo local; sin tipo explícito se deduce de la extensión.
func localAsset(path, contentType string) entity.Asset {
	if contentType == "" {
		contentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return entity.Asset{URI: "file://" + filepath.ToSlash(path), FileName: filepath.Base(path), Type: contentType}
}

func cmdUpload(ctx context.Context, a *app, args []string) error {
	fs := newFlags("upload")
	contentType := fs.String("type", "", "tipo MIME (por defecto según la extensión)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("upload <ruta>: %w", errUsage)
	}
	url, err := a.uploads.UploadImage(ctx, localAsset(fs.Arg(0), *contentType))
	if err != nil {
		return err
	}
	return a.print(dto.UploadResponse{URL: url})
}

func cmdCatalog(ctx context.Context, a *app, args []string) error {
	fs := newFlags("catalog")
	userID := fs.Int64("user", 0, "id de la UMKM (por defecto, la sesión actual)")
	out := fs.String("o", "catalogo.pdf", "archivo de salida")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID == 0 {
		me, err := a.users.Profile(ctx)
		if err != nil {
			return err
		}
		*userID = me.ID
	}
	pdf, err := a.catalog.Export(ctx, *userID)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, pdf, 0o644); err != nil {
		return domain.Normalize(fmt.Errorf("catalog: escribir %s: %w", *out, err), "menyimpan katalog")
	}
	return a.print(map[string]any{"file": *out, "bytes": len(pdf)})
}
