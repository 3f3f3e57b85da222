package menu

import (
	"cafe-menu-backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	// ListFilter narrows a category listing. Active is a tri-state so the
	// archive view can ask for inactive items and tests can ask for all.
	ListFilter struct {
		Active *bool
		Group  string
	}

	MenuRepository interface {
		Create(ctx context.Context, item *entities.MenuItem) error
		GetByID(ctx context.Context, category string, id uint) (*entities.MenuItem, error)
		List(ctx context.Context, category string, filter ListFilter) ([]*entities.MenuItem, error)
		Update(ctx context.Context, item *entities.MenuItem) error
		UpdateSortOrder(ctx context.Context, category string, id uint, position int) error
		SetActive(ctx context.Context, category string, id uint, active bool) error
		Delete(ctx context.Context, category string, id uint) error
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) GetByID(ctx context.Context, category string, id uint) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).
		Where("category = ? AND id = ?", category, id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) List(ctx context.Context, category string, filter ListFilter) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem

	query := r.db.WithContext(ctx).Where("category = ?", category)
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.Group != "" {
		query = query.Where("\"group\" = ?", filter.Group)
	}

	// Name breaks ties between equal sort orders so the sequence is
	// deterministic even before the first reorder.
	if err := query.Order("sort_order asc, name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) Update(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuRepository) UpdateSortOrder(ctx context.Context, category string, id uint, position int) error {
	return r.db.WithContext(ctx).Model(&entities.MenuItem{}).
		Where("category = ? AND id = ?", category, id).
		Update("sort_order", position).Error
}

func (r *menuRepository) SetActive(ctx context.Context, category string, id uint, active bool) error {
	return r.db.WithContext(ctx).Model(&entities.MenuItem{}).
		Where("category = ? AND id = ?", category, id).
		Update("is_active", active).Error
}

func (r *menuRepository) Delete(ctx context.Context, category string, id uint) error {
	return r.db.WithContext(ctx).
		Where("category = ? AND id = ?", category, id).
		Delete(&entities.MenuItem{}).Error
}
