package usecase

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"

	"laptek/internal/adapter/repository"
	"laptek/internal/domain/entity"
	domainrepo "laptek/internal/domain/repository"
	"laptek/internal/infrastructure/catalog"
	"laptek/internal/infrastructure/statestore"
	"laptek/pkg/errors"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	products []*entity.Product
	searches int
	events   chan entity.ProductEvent
}

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = "new-" + p.Name
	}
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *fakeProductRepo) List(ctx context.Context, q domainrepo.ProductQuery) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q.NamePrefix != "" {
		r.searches++
	}
	return matchProducts(r.products, q), nil
}

// matchProducts applies a ProductQuery the way the Firestore repository does.
func matchProducts(products []*entity.Product, q domainrepo.ProductQuery) []*entity.Product {
	out := []*entity.Product{}
	for _, p := range products {
		if q.Status != "" && p.Status != q.Status {
			continue
		}
		if q.NamePrefix != "" && !strings.HasPrefix(p.Name, q.NamePrefix) {
			continue
		}
		out = append(out, p)
	}
	if q.NamePrefix != "" {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

func (r *fakeProductRepo) Watch(ctx context.Context) (<-chan entity.ProductEvent, error) {
	return r.events, nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders []*entity.Order
	err    error
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *entity.Order) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID == "" {
		o.ID = "order-" + string(rune('a'+len(r.orders)))
	}
	r.orders = append(r.orders, o)
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	o, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeInvoiceRepo struct {
	invoices  map[string]*entity.Invoice
	conflicts int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*entity.Invoice)}
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if r.conflicts > 0 {
		r.conflicts--
		return errors.New("CONFLICT", "Invoice already exists", 409, nil)
	}
	copied := *inv
	r.invoices[inv.ID] = &copied
	return nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, errors.NotFound("Invoice", nil)
	}
	copied := *inv
	return &copied, nil
}

func (r *fakeInvoiceRepo) List(ctx context.Context, invoiceType string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if invoiceType == "" || inv.Type == invoiceType {
			copied := *inv
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(ctx context.Context, id, status string) error {
	inv, ok := r.invoices[id]
	if !ok {
		return errors.NotFound("Invoice", nil)
	}
	inv.Status = status
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return u, nil
}

func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, id, role string) error {
	u, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	u.Role = role
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	return c, nil
}

func (r *fakeCategoryRepo) Upsert(ctx context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

type fakeMarketplaceRepo struct {
	settings map[string]*entity.MarketplaceSettings
}

func (r *fakeMarketplaceRepo) List(ctx context.Context) ([]*entity.MarketplaceSettings, error) {
	var out []*entity.MarketplaceSettings
	for _, s := range r.settings {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeMarketplaceRepo) GetByID(ctx context.Context, id string) (*entity.MarketplaceSettings, error) {
	s, ok := r.settings[id]
	if !ok {
		return nil, errors.NotFound("Marketplace", nil)
	}
	return s, nil
}

func (r *fakeMarketplaceRepo) Upsert(ctx context.Context, s *entity.MarketplaceSettings) error {
	r.settings[s.ID] = s
	return nil
}

type fakeUploader struct {
	contentType string
}

func (u *fakeUploader) UploadProductImage(ctx context.Context, file io.Reader, contentType string) (string, error) {
	u.contentType = contentType
	return "https://storage.googleapis.com/laptek/products/test.png", nil
}

type fakeClaims struct {
	admin map[string]bool
}

func (c *fakeClaims) SetAdminClaim(ctx context.Context, uid string, admin bool) error {
	c.admin[uid] = admin
	return nil
}

type recordingPublisher struct {
	events []entity.ProductEvent
}

func (p *recordingPublisher) Publish(event entity.ProductEvent) error {
	p.events = append(p.events, event)
	return nil
}

func mustStore() *catalog.Store {
	store, err := catalog.Load("")
	if err != nil {
		panic(err)
	}
	return store
}

func memoryCarts() domainrepo.StateRepositoryFactory[entity.CartState] {
	return repository.NewJSONStateRepositoryFactory[entity.CartState](statestore.NewMemoryStore())
}

func memoryWishlists() domainrepo.StateRepositoryFactory[entity.WishlistState] {
	return repository.NewJSONStateRepositoryFactory[entity.WishlistState](statestore.NewMemoryStore())
}

func storefrontProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "1", Name: `MacBook Pro 16" M3 Max`, Category: "laptops", Brand: "Apple", Price: 3499, Status: entity.ProductStatusActive},
		{ID: "2", Name: "Dell XPS 13 Plus", Category: "laptops", Brand: "Dell", Price: 999, Status: entity.ProductStatusActive},
		{ID: "3", Name: "iPhone 15 Pro Max", Category: "phones", Brand: "Apple", Price: 1199, Status: entity.ProductStatusActive},
		{ID: "4", Name: "Sony WH-1000XM5", Category: "accessories", Brand: "Sony", Price: 348, Status: entity.ProductStatusActive},
		{ID: "5", Name: "Gaming Desktop RTX 4090", Category: "desktops", Brand: "Alienware", Price: 4500, Status: entity.ProductStatusActive},
		{ID: "6", Name: "Samsung Galaxy S24 Ultra", Category: "phones", Brand: "Samsung", Price: 1299, Status: entity.ProductStatusActive},
		{ID: "7", Name: `iPad Pro 12.9"`, Category: "tablets", Brand: "Apple", Price: 1000, Status: entity.ProductStatusActive},
		{ID: "8", Name: "MacBook Air draft", Category: "laptops", Brand: "Apple", Price: 999, Status: entity.ProductStatusDraft},
	}
}
