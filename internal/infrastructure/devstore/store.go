// Package devstore es el almacén en memoria del servidor de desarrollo: usuarios con contraseña
// bcrypt, productos, artículos y taxonomías sembradas. Seguro para uso concurrente.
package devstore

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/domain/entity"
)

var (
	ErrNotFound           = errors.New("no encontrado")
	ErrDuplicate          = errors.New("registro duplicado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidToken       = errors.New("token inválido")
)

// Usuarios sembrados: la UMKM demo y un admin.
const (
	DemoUsername  = "dewani"
	DemoPassword  = "dewani123"
	AdminUsername = "admin"
	AdminPassword = "admin123"
)

type userRecord struct {
	user entity.User
	hash []byte
}

// Store datos del servidor de desarrollo.
type Store struct {
	mu          sync.RWMutex
	nextID      int64
	users       map[int64]*userRecord
	products    map[int64]*entity.Product
	articles    map[int64]*entity.Article
	categories  map[int64]*entity.BusinessCategory
	subsectors  map[int64]*entity.SubSector
	levels      []entity.Level
	verifyToken map[string]int64 // token → user id
	resetToken  map[string]int64
	bcryptCost  int
}

// Option configura el Store.
type Option func(*Store)

// WithBcryptCost cambia el costo de bcrypt (tests: bcrypt.MinCost).
func WithBcryptCost(cost int) Option { return func(s *Store) { s.bcryptCost = cost } }

// New crea el almacén con taxonomías, un admin, la UMKM demo y dos productos.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		users:       map[int64]*userRecord{},
		products:    map[int64]*entity.Product{},
		articles:    map[int64]*entity.Article{},
		categories:  map[int64]*entity.BusinessCategory{},
		subsectors:  map[int64]*entity.SubSector{},
		verifyToken: map[string]int64{},
		resetToken:  map[string]int64{},
		bcryptCost:  bcrypt.DefaultCost,
	}
	for _, o := range opts {
		o(s)
	}
	if err := s.seed(); err != nil {
		return nil, fmt.Errorf("devstore: seed: %w", err)
	}
	return s, nil
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// ── Seed ──────────────────────────────────────────────────────────────────────

func (s *Store) seed() error {
	s.levels = []entity.Level{
		{ID: 1, Name: entity.LevelSuperadmin},
		{ID: 2, Name: entity.LevelAdmin},
		{ID: 3, Name: entity.LevelUMKM},
	}
	s.nextID = 10
	for _, title := range []string{"Kriya", "Kuliner", "Fashion", "Musik"} {
		id := s.id()
		s.subsectors[id] = &entity.SubSector{ID: id, Title: title, Slug: slug(title)}
	}
	kriya := s.subsectorByTitle("Kriya")
	kuliner := s.subsectorByTitle("Kuliner")
	for _, c := range []entity.BusinessCategory{
		{Name: "Batik", SubSectorID: kriya},
		{Name: "Makanan Olahan", SubSectorID: kuliner},
	} {
		c.ID = s.id()
		cp := c
		s.categories[c.ID] = &cp
	}
	batik := s.categoryByName("Batik")

	now := time.Now()
	admin, err := s.addUser(entity.User{
		Name: "Admin Ekraf", Username: AdminUsername, Email: "admin@ekraf.local", LevelID: 2, VerifiedAt: &now,
	}, AdminPassword)
	if err != nil {
		return err
	}
	demo, err := s.addUser(entity.User{
		Name: "Dewani", Username: DemoUsername, Email: "dewani@ekraf.local", PhoneNumber: "081234567890",
		Gender: entity.GenderFemale, BusinessName: "Batik Dewani", BusinessStatus: entity.BusinessStatusExisting,
		LevelID: 3, BusinessCategoryID: batik, VerifiedAt: &now,
	}, DemoPassword)
	if err != nil {
		return err
	}

	for _, p := range []entity.Product{
		{Name: "Batik Tulis Parang", Price: decimal.NewFromInt(350000), Stock: 5, Status: entity.ProductStatusApproved},
		{Name: "Batik Cap Kawung", Price: decimal.NewFromInt(150000), Stock: 12, Status: entity.ProductStatusPending},
	} {
		p.ID = s.id()
		p.UserID = demo
		p.OwnerName = "Dewani"
		p.Description = p.Name + " dari Batik Dewani"
		p.Image = "https://cdn.ekraf.local/" + slug(p.Name) + ".jpg"
		p.PhoneNumber = "081234567890"
		p.BusinessCategoryID = batik
		p.SubSectorID = kriya
		cp := p
		s.products[p.ID] = &cp
	}

	aid := s.id()
	s.articles[aid] = &entity.Article{
		ID: aid, Title: "Selamat datang di Ekraf", Slug: "selamat-datang-di-ekraf", Content: "...",
		IsFeatured: true, AuthorID: admin, CreatedAt: &now,
	}
	return nil
}

func (s *Store) subsectorByTitle(title string) int64 {
	for id, ss := range s.subsectors {
		if ss.Title == title {
			return id
		}
	}
	return 0
}

func (s *Store) categoryByName(name string) int64 {
	for id, c := range s.categories {
		if c.Name == name {
			return id
		}
	}
	return 0
}

func (s *Store) addUser(u entity.User, password string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	u.ID = s.id()
	s.users[u.ID] = &userRecord{user: u, hash: hash}
	return u.ID, nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// Authenticate valida credenciales para el nivel pedido. El usuario debe tener el email verificado.
func (s *Store) Authenticate(level, usernameOrEmail, password string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.users {
		if !strings.EqualFold(r.user.Username, usernameOrEmail) && !strings.EqualFold(r.user.Email, usernameOrEmail) {
			continue
		}
		if bcrypt.CompareHashAndPassword(r.hash, []byte(password)) != nil || s.levelName(r.user.LevelID) != level {
			return nil, ErrInvalidCredentials
		}
		if r.user.VerifiedAt == nil {
			return nil, fmt.Errorf("email belum diverifikasi: %w", ErrInvalidCredentials)
		}
		u := s.view(r.user)
		return &u, nil
	}
	return nil, ErrInvalidCredentials
}

// RegisterUMKM crea una UMKM sin verificar y devuelve el token de verificación.
func (s *Store) RegisterUMKM(in dto.RegisterUMKMRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.users {
		if strings.EqualFold(r.user.Username, in.Username) || strings.EqualFold(r.user.Email, in.Email) {
			return "", ErrDuplicate
		}
	}
	id, err := s.addUser(entity.User{
		Name: in.Name, Username: in.Username, Email: in.Email, PhoneNumber: in.PhoneNumber, Gender: in.Gender,
		BusinessName: in.BusinessName, BusinessStatus: in.BusinessStatus, BusinessCategoryID: in.BusinessCategoryID,
		LevelID: 3,
	}, in.Password)
	if err != nil {
		return "", err
	}
	token := uuid.NewString()
	s.verifyToken[token] = id
	return token, nil
}

// VerifyEmail marca el email como verificado.
func (s *Store) VerifyEmail(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.verifyToken[token]
	if !ok {
		return ErrInvalidToken
	}
	delete(s.verifyToken, token)
	now := time.Now()
	s.users[id].user.VerifiedAt = &now
	return nil
}

// ForgotPassword emite un token de reset; un email desconocido devuelve "" sin error.
func (s *Store) ForgotPassword(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, r := range s.users {
		if strings.EqualFold(r.user.Email, email) {
			token := uuid.NewString()
			s.resetToken[token] = id
			return token
		}
	}
	return ""
}

// ResetPassword fija una nueva contraseña con un token emitido por ForgotPassword.
func (s *Store) ResetPassword(token, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.resetToken[token]
	if !ok {
		return ErrInvalidToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	delete(s.resetToken, token)
	s.users[id].hash = hash
	return nil
}

// User devuelve un usuario con sus vistas embebidas.
func (s *Store) User(id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u := s.view(r.user)
	return &u, nil
}

// Users lista todos los usuarios ordenados por id.
func (s *Store) Users() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.User, 0, len(s.users))
	for _, r := range s.users {
		out = append(out, s.view(r.user))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateUser aplica los campos no nil.
func (s *Store) UpdateUser(id int64, in dto.UpdateUserRequest) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u := &r.user
	setString(&u.Name, in.Name)
	setString(&u.Username, in.Username)
	setString(&u.Email, in.Email)
	setString(&u.PhoneNumber, in.PhoneNumber)
	setString(&u.Gender, in.Gender)
	setString(&u.BusinessName, in.BusinessName)
	setString(&u.BusinessStatus, in.BusinessStatus)
	if in.BusinessCategoryID != nil {
		u.BusinessCategoryID = *in.BusinessCategoryID
	}
	if in.LevelID != nil {
		u.LevelID = *in.LevelID
	}
	v := s.view(*u)
	return &v, nil
}

// DeleteUser borra el usuario y sus productos.
func (s *Store) DeleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	for pid, p := range s.products {
		if p.UserID == id {
			delete(s.products, pid)
		}
	}
	return nil
}

// LevelName nombre del nivel del usuario.
func (s *Store) LevelName(levelID int64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.levelName(levelID)
}

func (s *Store) levelName(levelID int64) string {
	for _, l := range s.levels {
		if l.ID == levelID {
			return l.Name
		}
	}
	return ""
}

// view completa las vistas embebidas (nivel y categoría). Requiere el lock tomado.
func (s *Store) view(u entity.User) entity.User {
	for _, l := range s.levels {
		if l.ID == u.LevelID {
			l := l
			u.Level = &l
		}
	}
	if c, ok := s.categories[u.BusinessCategoryID]; ok {
		cp := *c
		u.BusinessCategory = &cp
	}
	return u
}

// ── Productos ─────────────────────────────────────────────────────────────────

// Products filtra y pagina el catálogo (q sobre nombre y descripción).
func (s *Store) Products(f dto.ProductFilter) dto.Page[entity.Product] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q := strings.ToLower(strings.TrimSpace(f.Q))
	var matched []entity.Product
	for _, p := range s.products {
		if q != "" && !strings.Contains(strings.ToLower(p.Name+" "+p.Description), q) {
			continue
		}
		if f.Kategori > 0 && p.BusinessCategoryID != f.Kategori {
			continue
		}
		if f.Subsector > 0 && p.SubSectorID != f.Subsector {
			continue
		}
		matched = append(matched, s.productView(*p))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	pr := dto.PageRequest{Page: f.Page, Limit: f.Limit}
	pr.DefaultPage()
	start := (pr.Page - 1) * pr.Limit
	end := start + pr.Limit
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}
	return dto.Page[entity.Product]{
		Data:        append([]entity.Product{}, matched[start:end]...),
		CurrentPage: pr.Page,
		TotalPages:  pr.TotalPages(len(matched)),
		Total:       len(matched),
	}
}

// ProductStatuses estados distintos presentes en el catálogo, en orden canónico.
func (s *Store) ProductStatuses() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := map[entity.ProductStatus]bool{}
	for _, p := range s.products {
		seen[p.Status] = true
	}
	var out []string
	for _, st := range entity.ProductStatuses() {
		if seen[st] {
			out = append(out, string(st))
		}
	}
	return out
}

// Product devuelve un producto con su dueño embebido.
func (s *Store) Product(id int64) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	v := s.productView(*p)
	return &v, nil
}

// UserProducts productos de un usuario.
func (s *Store) UserProducts(userID int64) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.users[userID]; !ok {
		return nil, ErrNotFound
	}
	out := []entity.Product{}
	for _, p := range s.products {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// CreateProduct crea un producto pendiente de aprobación.
func (s *Store) CreateProduct(ownerID int64, in dto.CreateProductRequest) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner, ok := s.users[ownerID]
	if !ok {
		return nil, ErrNotFound
	}
	p := entity.Product{
		ID: s.id(), Name: in.Name, OwnerName: in.OwnerName, Description: in.Description, Price: in.Price,
		Stock: in.Stock, Image: in.Image, PhoneNumber: in.PhoneNumber, Status: entity.ProductStatusPending,
		BusinessCategoryID: in.BusinessCategoryID, SubSectorID: in.SubSectorID, UserID: ownerID,
	}
	if p.OwnerName == "" {
		p.OwnerName = owner.user.Name
	}
	s.products[p.ID] = &p
	v := s.productView(p)
	return &v, nil
}

// UpdateProduct aplica los campos no nil.
func (s *Store) UpdateProduct(id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	setString(&p.Name, in.Name)
	setString(&p.OwnerName, in.OwnerName)
	setString(&p.Description, in.Description)
	setString(&p.Image, in.Image)
	setString(&p.PhoneNumber, in.PhoneNumber)
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.BusinessCategoryID != nil {
		p.BusinessCategoryID = *in.BusinessCategoryID
	}
	if in.SubSectorID != nil {
		p.SubSectorID = *in.SubSectorID
	}
	v := s.productView(*p)
	return &v, nil
}

// DeleteProduct borra un producto.
func (s *Store) DeleteProduct(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

// AddLink agrega un link de tienda online.
func (s *Store) AddLink(productID int64, in dto.OnlineStoreLinkRequest) (*entity.OnlineStoreLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return nil, ErrNotFound
	}
	l := entity.OnlineStoreLink{ID: s.id(), ProductID: productID, PlatformName: in.PlatformName, URL: in.URL}
	p.OnlineStoreLinks = append(p.OnlineStoreLinks, l)
	return &l, nil
}

// UpdateLink modifica un link existente.
func (s *Store) UpdateLink(productID, linkID int64, in dto.UpdateOnlineStoreLinkRequest) (*entity.OnlineStoreLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return nil, ErrNotFound
	}
	for i := range p.OnlineStoreLinks {
		l := &p.OnlineStoreLinks[i]
		if l.ID != linkID {
			continue
		}
		setString(&l.PlatformName, in.PlatformName)
		setString(&l.URL, in.URL)
		out := *l
		return &out, nil
	}
	return nil, ErrNotFound
}

func (s *Store) productView(p entity.Product) entity.Product {
	if r, ok := s.users[p.UserID]; ok {
		u := r.user
		p.User = &u
	}
	p.OnlineStoreLinks = append([]entity.OnlineStoreLink(nil), p.OnlineStoreLinks...)
	return p
}

// ── Artículos ─────────────────────────────────────────────────────────────────

// Articles página de artículos, más recientes primero.
func (s *Store) Articles(pr dto.PageRequest) dto.Page[entity.Article] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]entity.Article, 0, len(s.articles))
	for _, a := range s.articles {
		all = append(all, s.articleView(*a))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	pr.DefaultPage()
	start := (pr.Page - 1) * pr.Limit
	if start > len(all) {
		start = len(all)
	}
	end := start + pr.Limit
	if end > len(all) {
		end = len(all)
	}
	return dto.Page[entity.Article]{
		Data: all[start:end], CurrentPage: pr.Page, TotalPages: pr.TotalPages(len(all)), Total: len(all),
	}
}

// Article devuelve un artículo con su autor.
func (s *Store) Article(id int64) (*entity.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.articles[id]
	if !ok {
		return nil, ErrNotFound
	}
	v := s.articleView(*a)
	return &v, nil
}

// UserArticles artículos escritos por un usuario.
func (s *Store) UserArticles(userID int64) ([]entity.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.users[userID]; !ok {
		return nil, ErrNotFound
	}
	out := []entity.Article{}
	for _, a := range s.articles {
		if a.AuthorID == userID {
			out = append(out, s.articleView(*a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// CreateArticle publica un artículo.
func (s *Store) CreateArticle(authorID int64, in dto.CreateArticleRequest) *entity.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	a := entity.Article{
		ID: s.id(), Title: in.Title, Slug: slug(in.Title), Thumbnail: in.Thumbnail, Content: in.Content,
		IsFeatured: in.IsFeatured, ArticleCategoryID: in.ArticleCategoryID, AuthorID: authorID, CreatedAt: &now,
	}
	s.articles[a.ID] = &a
	v := s.articleView(a)
	return &v
}

// UpdateArticle aplica los campos no nil.
func (s *Store) UpdateArticle(id int64, in dto.UpdateArticleRequest) (*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.articles[id]
	if !ok {
		return nil, ErrNotFound
	}
	if in.Title != nil {
		a.Title = *in.Title
		a.Slug = slug(*in.Title)
	}
	setString(&a.Thumbnail, in.Thumbnail)
	setString(&a.Content, in.Content)
	setString(&a.ArticleCategoryID, in.ArticleCategoryID)
	if in.IsFeatured != nil {
		a.IsFeatured = *in.IsFeatured
	}
	v := s.articleView(*a)
	return &v, nil
}

// DeleteArticle borra un artículo.
func (s *Store) DeleteArticle(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.articles[id]; !ok {
		return ErrNotFound
	}
	delete(s.articles, id)
	return nil
}

func (s *Store) articleView(a entity.Article) entity.Article {
	if r, ok := s.users[a.AuthorID]; ok {
		a.Author = &entity.ArticleAuthor{Name: r.user.Name, Email: r.user.Email}
	}
	return a
}

// ── Taxonomías ────────────────────────────────────────────────────────────────

// Levels niveles de usuario.
func (s *Store) Levels() []entity.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Level(nil), s.levels...)
}

// Categories categorías de negocio ordenadas por id.
func (s *Store) Categories() []entity.BusinessCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.BusinessCategory, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Category(id int64) (*entity.BusinessCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *Store) CreateCategory(in dto.BusinessCategoryRequest) (*entity.BusinessCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if strings.EqualFold(c.Name, in.Name) {
			return nil, ErrDuplicate
		}
	}
	c := entity.BusinessCategory{ID: s.id(), Name: in.Name, Image: in.Image, SubSectorID: in.SubSectorID, Description: in.Description}
	s.categories[c.ID] = &c
	cp := c
	return &cp, nil
}

func (s *Store) UpdateCategory(id int64, in dto.UpdateBusinessCategoryRequest) (*entity.BusinessCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	setString(&c.Name, in.Name)
	setString(&c.Image, in.Image)
	setString(&c.Description, in.Description)
	if in.SubSectorID != nil {
		c.SubSectorID = *in.SubSectorID
	}
	cp := *c
	return &cp, nil
}

func (s *Store) DeleteCategory(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

// Subsectors subsectores ordenados por id.
func (s *Store) Subsectors() []entity.SubSector {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.SubSector, 0, len(s.subsectors))
	for _, ss := range s.subsectors {
		out = append(out, *ss)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Subsector(id int64) (*entity.SubSector, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ss, ok := s.subsectors[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *ss
	return &cp, nil
}

func (s *Store) CreateSubsector(title string) (*entity.SubSector, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ss := range s.subsectors {
		if strings.EqualFold(ss.Title, title) {
			return nil, ErrDuplicate
		}
	}
	ss := entity.SubSector{ID: s.id(), Title: title, Slug: slug(title)}
	s.subsectors[ss.ID] = &ss
	cp := ss
	return &cp, nil
}

func (s *Store) UpdateSubsector(id int64, title string) (*entity.SubSector, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ss, ok := s.subsectors[id]
	if !ok {
		return nil, ErrNotFound
	}
	ss.Title, ss.Slug = title, slug(title)
	cp := *ss
	return &cp, nil
}

func (s *Store) DeleteSubsector(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subsectors[id]; !ok {
		return ErrNotFound
	}
	delete(s.subsectors, id)
	return nil
}

// ── Estadísticas ──────────────────────────────────────────────────────────────

// Statistics contadores del tablero.
func (s *Store) Statistics() entity.Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := entity.Statistics{
		TotalUsers:       len(s.users),
		TotalProducts:    len(s.products),
		TotalArticles:    len(s.articles),
		UsersByLevel:     map[string]int{},
		ProductsByStatus: map[string]int{},
	}
	for _, r := range s.users {
		st.UsersByLevel[s.levelName(r.user.LevelID)]++
	}
	for _, p := range s.products {
		st.ProductsByStatus[string(p.Status)]++
	}
	return st
}

// ── helpers ───────────────────────────────────────────────────────────────────

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
