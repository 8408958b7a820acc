package countries

import (
	"context"
	"errors"
	"fmt"

	"country-pulse/feature/countries/models"

	"gorm.io/gorm"
)

// Sort keys accepted by List.
const (
	SortGDPDesc        = "gdp_desc"
	SortGDPAsc         = "gdp_asc"
	SortPopulationDesc = "population_desc"
	SortPopulationAsc  = "population_asc"
	SortNameAsc        = "name_asc"
	SortNameDesc       = "name_desc"
)

// Null GDP values sort last regardless of direction.
var sortOrders = map[string]string{
	SortGDPDesc:        "estimated_gdp IS NULL, estimated_gdp DESC",
	SortGDPAsc:         "estimated_gdp IS NULL, estimated_gdp ASC",
	SortPopulationDesc: "population DESC",
	SortPopulationAsc:  "population ASC",
	SortNameAsc:        "name ASC",
	SortNameDesc:       "name DESC",
}

// ListFilter narrows and orders the List result set. Empty fields are
// ignored; Sort must be one of the Sort* keys or empty.
type ListFilter struct {
	Region   string
	Currency string
	Sort     string
}

// Store is the keyed record store behind the reconcile engine and the query
// facade.
type Store interface {
	FindByNormalizedName(ctx context.Context, name string) (*models.Country, error)
	Upsert(ctx context.Context, c *models.Country) error
	DeleteByName(ctx context.Context, name string) error
	List(ctx context.Context, f ListFilter) ([]models.Country, error)
	TopByGDP(ctx context.Context, limit int) ([]models.Country, error)
	ReadRefreshMetadata(ctx context.Context) (*models.RefreshMetadata, error)
	WriteRefreshMetadata(ctx context.Context, meta *models.RefreshMetadata) error
	// Transaction runs fn against a transactional view of the store and
	// commits iff fn returns nil.
	Transaction(ctx context.Context, fn func(Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a GORM-backed Store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// AutoMigrate creates or updates the tables backing the store.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Country{}, &models.RefreshMetadata{})
}

func (s *gormStore) FindByNormalizedName(ctx context.Context, name string) (*models.Country, error) {
	var c models.Country
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = ?", NormalizeName(name)).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up country: %w", err)
	}
	return &c, nil
}

// Upsert writes the full record. Updates replace every field, including
// nil-ing out values absent from the new fetch; nothing is merged.
func (s *gormStore) Upsert(ctx context.Context, c *models.Country) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Country{}).
		Where("id = ?", c.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check country existence: %w", err)
	}

	if count > 0 {
		err := s.db.WithContext(ctx).Model(&models.Country{}).
			Where("id = ?", c.ID).
			Select("*").Updates(c).Error
		if err != nil {
			return fmt.Errorf("failed to update country: %w", err)
		}
		return nil
	}

	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("failed to insert country: %w", err)
	}
	return nil
}

func (s *gormStore) DeleteByName(ctx context.Context, name string) error {
	res := s.db.WithContext(ctx).
		Where("LOWER(name) = ?", NormalizeName(name)).
		Delete(&models.Country{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete country: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) List(ctx context.Context, f ListFilter) ([]models.Country, error) {
	q := s.db.WithContext(ctx).Model(&models.Country{})

	if f.Region != "" {
		q = q.Where("LOWER(region) = LOWER(?)", f.Region)
	}
	if f.Currency != "" {
		q = q.Where("UPPER(currency_code) = UPPER(?)", f.Currency)
	}
	if f.Sort != "" {
		order, ok := sortOrders[f.Sort]
		if !ok {
			return nil, ErrInvalidSort
		}
		q = q.Order(order)
	}

	var out []models.Country
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return out, nil
}

func (s *gormStore) TopByGDP(ctx context.Context, limit int) ([]models.Country, error) {
	var out []models.Country
	err := s.db.WithContext(ctx).
		Where("estimated_gdp IS NOT NULL").
		Order("estimated_gdp DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load top countries: %w", err)
	}
	return out, nil
}

// ReadRefreshMetadata returns the singleton metadata row, or a zero-valued
// one before the first refresh.
func (s *gormStore) ReadRefreshMetadata(ctx context.Context) (*models.RefreshMetadata, error) {
	var meta models.RefreshMetadata
	err := s.db.WithContext(ctx).First(&meta).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.RefreshMetadata{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read refresh metadata: %w", err)
	}
	return &meta, nil
}

func (s *gormStore) WriteRefreshMetadata(ctx context.Context, meta *models.RefreshMetadata) error {
	meta.ID = 1

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.RefreshMetadata{}).
		Where("id = ?", meta.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check refresh metadata: %w", err)
	}

	if count > 0 {
		err := s.db.WithContext(ctx).Model(&models.RefreshMetadata{}).
			Where("id = ?", meta.ID).
			Select("*").Updates(meta).Error
		if err != nil {
			return fmt.Errorf("failed to update refresh metadata: %w", err)
		}
		return nil
	}

	if err := s.db.WithContext(ctx).Create(meta).Error; err != nil {
		return fmt.Errorf("failed to write refresh metadata: %w", err)
	}
	return nil
}

func (s *gormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
