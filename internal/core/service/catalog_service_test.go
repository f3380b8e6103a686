package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/inventory-console/inventory-api/internal/core/domain"
	"github.com/inventory-console/inventory-api/internal/core/ports"
)

var (
	admin   = &domain.Identity{Username: "admin", Role: domain.RoleAdmin}
	manager = &domain.Identity{Username: "manager", Role: domain.RoleManager}
)

func newCatalogService(repo *stubCatalog, assets *stubAssets) *CatalogService {
	return NewCatalogService(repo, assets, NewTokenGuard("secret"), zerolog.Nop())
}

func upload(name string) *ports.Upload {
	return &ports.Upload{Filename: name, Content: strings.NewReader("img")}
}

func penFields() ports.ProductFields {
	return ports.ProductFields{Name: "Pen", Category: "Office", Price: "1.5", Stock: "10"}
}

func TestCatalogService_Create_Success(t *testing.T) {
	repo := &stubCatalog{}
	assets := &stubAssets{}
	svc := newCatalogService(repo, assets)

	p, err := svc.Create(context.Background(), admin, penFields(), upload("pen.png"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !regexp.MustCompile(`^pen-\d+$`).MatchString(p.ID) {
		t.Fatalf("unexpected id: %s", p.ID)
	}
	if p.Price != 1.5 || p.Stock != 10 || p.Image != assets.stored[0] {
		t.Fatalf("unexpected product: %+v", p)
	}
	if len(repo.products) != 1 || repo.products[0].ID != p.ID {
		t.Fatalf("product not persisted: %+v", repo.products)
	}
}

func TestCatalogService_Create_SlugsName(t *testing.T) {
	svc := newCatalogService(&stubCatalog{}, &stubAssets{})
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	fields := penFields()
	fields.Name = "  Blue   Gel Pen "
	p, err := svc.Create(context.Background(), admin, fields, upload("pen.png"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.ID != "blue-gel-pen-1700000000000" || p.Name != "Blue   Gel Pen" {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestCatalogService_Create_ManagerForbidden(t *testing.T) {
	repo := &stubCatalog{}
	assets := &stubAssets{}
	svc := newCatalogService(repo, assets)

	if _, err := svc.Create(context.Background(), manager, penFields(), upload("pen.png")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.products) != 0 || len(assets.stored) != 0 {
		t.Fatalf("forbidden create must not write")
	}
}

func TestCatalogService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ports.ProductFields)
		image  *ports.Upload
	}{
		{"missing name", func(f *ports.ProductFields) { f.Name = " " }, upload("a.png")},
		{"missing category", func(f *ports.ProductFields) { f.Category = "" }, upload("a.png")},
		{"negative price", func(f *ports.ProductFields) { f.Price = "-1" }, upload("a.png")},
		{"non-numeric price", func(f *ports.ProductFields) { f.Price = "abc" }, upload("a.png")},
		{"negative stock", func(f *ports.ProductFields) { f.Stock = "-3" }, upload("a.png")},
		{"fractional stock", func(f *ports.ProductFields) { f.Stock = "2.5" }, upload("a.png")},
		{"missing image", func(*ports.ProductFields) {}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubCatalog{}
			assets := &stubAssets{}
			svc := newCatalogService(repo, assets)

			fields := penFields()
			tt.mutate(&fields)
			_, err := svc.Create(context.Background(), admin, fields, tt.image)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if len(repo.products) != 0 || len(assets.stored) != 0 {
				t.Fatalf("invalid create must not write")
			}
		})
	}
}

func TestCatalogService_Create_WriteFailureRemovesImage(t *testing.T) {
	repo := &stubCatalog{failWrite: true}
	assets := &stubAssets{}
	svc := newCatalogService(repo, assets)

	if _, err := svc.Create(context.Background(), admin, penFields(), upload("pen.png")); !errors.Is(err, errWriteFailed) {
		t.Fatalf("expected write failure, got %v", err)
	}
	if len(assets.deleted) != 1 || assets.deleted[0] != assets.stored[0] {
		t.Fatalf("expected orphaned image to be removed, deleted=%v", assets.deleted)
	}
}

func TestCatalogService_Update_KeepsImage(t *testing.T) {
	repo := &stubCatalog{products: []domain.Product{
		{ID: "pen-1", Name: "Pen", Category: "Office", Price: 1, Stock: 1, Image: "/uploads/old.png"},
	}}
	assets := &stubAssets{}
	svc := newCatalogService(repo, assets)

	fields := ports.ProductFields{Name: "Pen XL", Category: "Office", Price: "2", Stock: "4"}
	p, err := svc.Update(context.Background(), admin, "pen-1", fields, nil)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if p.ID != "pen-1" || p.Name != "Pen XL" || p.Stock != 4 || p.Image != "/uploads/old.png" {
		t.Fatalf("unexpected product: %+v", p)
	}
	if len(assets.deleted) != 0 {
		t.Fatalf("no asset should be deleted, got %v", assets.deleted)
	}
}

func TestCatalogService_Update_ReplacesImage(t *testing.T) {
	repo := &stubCatalog{products: []domain.Product{
		{ID: "pen-1", Name: "Pen", Category: "Office", Price: 1, Stock: 1, Image: "/uploads/old.png"},
	}}
	assets := &stubAssets{deleteErr: errors.New("permission denied")}
	svc := newCatalogService(repo, assets)

	p, err := svc.Update(context.Background(), admin, "pen-1", penFields(), upload("new.png"))
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if p.Image != assets.stored[0] {
		t.Fatalf("expected new image, got %s", p.Image)
	}
	if len(assets.deleted) != 1 || assets.deleted[0] != "/uploads/old.png" {
		t.Fatalf("expected old image removal attempt, got %v", assets.deleted)
	}
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	repo := &stubCatalog{}
	assets := &stubAssets{}
	svc := newCatalogService(repo, assets)

	fields := penFields()
	fields.Price = "invalid"
	if _, err := svc.Update(context.Background(), admin, "missing", fields, upload("x.png")); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if len(assets.stored) != 0 {
		t.Fatalf("unknown product must not store an image")
	}
}

func TestCatalogService_Update_InvalidFieldsLeaveRecord(t *testing.T) {
	original := domain.Product{ID: "pen-1", Name: "Pen", Category: "Office", Price: 1, Stock: 1, Image: "/uploads/old.png"}
	repo := &stubCatalog{products: []domain.Product{original}}
	svc := newCatalogService(repo, &stubAssets{})

	fields := penFields()
	fields.Stock = "-1"
	if _, err := svc.Update(context.Background(), admin, "pen-1", fields, nil); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if repo.products[0] != original || repo.writes != 0 {
		t.Fatalf("record changed on invalid update: %+v", repo.products[0])
	}
}

func TestCatalogService_Update_WriteFailureRemovesNewImage(t *testing.T) {
	repo := &stubCatalog{
		products:  []domain.Product{{ID: "pen-1", Name: "Pen", Category: "Office", Image: "/uploads/old.png"}},
		failWrite: true,
	}
	assets := &stubAssets{}
	svc := newCatalogService(repo, assets)

	if _, err := svc.Update(context.Background(), admin, "pen-1", penFields(), upload("new.png")); !errors.Is(err, errWriteFailed) {
		t.Fatalf("expected write failure, got %v", err)
	}
	if len(assets.deleted) != 1 || assets.deleted[0] != assets.stored[0] {
		t.Fatalf("expected new image removal only, got %v", assets.deleted)
	}
}

func TestCatalogService_Delete(t *testing.T) {
	repo := &stubCatalog{products: []domain.Product{
		{ID: "a", Image: "/uploads/a.png"},
		{ID: "b", Image: "/uploads/b.png"},
	}}
	assets := &stubAssets{}
	svc := newCatalogService(repo, assets)

	if err := svc.Delete(context.Background(), admin, "a"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.products) != 1 || repo.products[0].ID != "b" {
		t.Fatalf("unexpected catalog: %+v", repo.products)
	}
	if len(assets.deleted) != 1 || assets.deleted[0] != "/uploads/a.png" {
		t.Fatalf("expected image removal, got %v", assets.deleted)
	}

	if err := svc.Delete(context.Background(), admin, "a"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on second delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), manager, "b"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for manager, got %v", err)
	}
}

func TestCatalogService_Delete_AssetFailureIgnored(t *testing.T) {
	repo := &stubCatalog{products: []domain.Product{{ID: "a", Image: "/uploads/gone.png"}}}
	assets := &stubAssets{deleteErr: errors.New("no such file")}
	svc := newCatalogService(repo, assets)

	if err := svc.Delete(context.Background(), admin, "a"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.products) != 0 {
		t.Fatalf("record not removed: %+v", repo.products)
	}
	if len(assets.deleted) != 1 || assets.deleted[0] != "/uploads/gone.png" {
		t.Fatalf("expected one removal attempt, got %v", assets.deleted)
	}
}

func TestCatalogService_List_EmptyIsNotNil(t *testing.T) {
	svc := newCatalogService(&stubCatalog{}, &stubAssets{})

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", products)
	}
}
