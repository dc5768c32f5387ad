// Package catalog holds the storefront reference data: producers, products
// and the producer order book. Everything lives in an in-memory SQLite
// database seeded once at startup; the only mutation allowed afterwards is
// the producer-side order status transition.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/feirafresca/storefront/internal/models"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	db *gorm.DB
}

// Open creates the in-memory database, runs the migrations and loads the
// seed data. Each call gets its own private database.
func Open(ctx context.Context) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}

	// A :memory: DSN gives every pooled connection its own database, so the
	// pool must stay at a single connection.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("catalog db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.WithContext(ctx).AutoMigrate(
		&models.Producer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.CartItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate catalog db: %w", err)
	}

	s := &Store{db: db}
	if err := s.seed(ctx); err != nil {
		return nil, fmt.Errorf("seed catalog db: %w", err)
	}
	return s, nil
}

func (s *Store) seed(ctx context.Context) error {
	tx := s.db.WithContext(ctx)
	if err := tx.Create(&seedProducers).Error; err != nil {
		return err
	}
	if err := tx.Create(&seedProducts).Error; err != nil {
		return err
	}
	for _, o := range seedOrders {
		// Copy the items so gorm writes generated keys into the copy, not
		// into the shared seed slice.
		order := o
		order.Items = append([]models.OrderItem(nil), o.Items...)
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
	}
	return nil
}

// DB exposes the shared in-memory handle so the cart and order services
// operate on the same database.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Product(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

type ProductFilter struct {
	Category   string
	ProducerID string
	Offset     int
	Limit      int
}

// Products lists catalog products in id order. Category "Todas" (or empty)
// matches everything, mirroring the storefront filter.
func (s *Store) Products(ctx context.Context, f ProductFilter) (int64, []models.Product, error) {
	q := s.db.WithContext(ctx).Model(&models.Product{})
	if f.Category != "" && f.Category != "Todas" {
		q = q.Where("category = ?", f.Category)
	}
	if f.ProducerID != "" {
		q = q.Where("producer_id = ?", f.ProducerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Product
	q = q.Order("id ASC")
	if f.Limit > 0 {
		q = q.Offset(f.Offset).Limit(f.Limit)
	}
	if err := q.Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

// Related returns up to three other products in the same category.
func (s *Store) Related(ctx context.Context, p *models.Product) ([]models.Product, error) {
	var items []models.Product
	err := s.db.WithContext(ctx).
		Where("category = ? AND id <> ?", p.Category, p.ID).
		Order("id ASC").
		Limit(3).
		Find(&items).Error
	return items, err
}

func (s *Store) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	err := s.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("id ASC").
		Limit(4).
		Find(&items).Error
	return items, err
}

func (s *Store) FeaturedProducers(ctx context.Context) ([]models.Producer, error) {
	var items []models.Producer
	err := s.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("id ASC").
		Limit(2).
		Find(&items).Error
	return items, err
}

func (s *Store) Producer(ctx context.Context, id string) (*models.Producer, error) {
	var p models.Producer
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("producer %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) Producers(ctx context.Context) ([]models.Producer, error) {
	var items []models.Producer
	err := s.db.WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, err
}

// ProductsByID resolves a set of product ids in one query. Missing ids are
// simply absent from the result map.
func (s *Store) ProductsByID(ctx context.Context, ids []string) (map[string]models.Product, error) {
	if len(ids) == 0 {
		return map[string]models.Product{}, nil
	}
	var items []models.Product
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.Product, len(items))
	for _, p := range items {
		byID[p.ID] = p
	}
	return byID, nil
}

// SearchLike is the fallback product search used when Elasticsearch is not
// configured.
func (s *Store) SearchLike(ctx context.Context, query string, offset, limit int) (int64, []models.Product, error) {
	pattern := "%" + query + "%"
	q := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("name LIKE ? OR description LIKE ?", pattern, pattern)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Product
	if err := q.Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}
