package category

import (
	"context"
	"cookbook/domain"
	"cookbook/entities"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	CategoryRepository interface {
		CreateCategory(ctx context.Context, name string) error
		DeleteCategory(ctx context.Context, categoryID uint) error
		UpdateCategory(ctx context.Context, categoryID uint, name string) error
		GetCategoriesByIDs(ctx context.Context, categoryIDs []uint) ([]*entities.Category, error)
		GetAllCategories(ctx context.Context) ([]*entities.Category, error)
	}

	categoryRepository struct {
		db  *gorm.DB
		log *zap.Logger
	}
)

func NewCategoryRepository(db *gorm.DB, log *zap.Logger) CategoryRepository {
	return &categoryRepository{db: db, log: log}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrEmptyCategoryName
	}

	if err := r.db.WithContext(ctx).Create(&entities.Category{CategoryName: name}).Error; err != nil {
		r.log.Error("error creating category", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}

// DeleteCategory reports a deletion of zero rows as a distinct not-found
// failure so callers can surface a specific message.
func (r *categoryRepository) DeleteCategory(ctx context.Context, categoryID uint) error {
	result := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&entities.Category{})
	if result.Error != nil {
		r.log.Error("error deleting category", zap.Uint("category_id", categoryID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, categoryID uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrEmptyCategoryName
	}

	result := r.db.WithContext(ctx).Model(&entities.Category{}).
		Where("category_id = ?", categoryID).
		Update("category_name", name)
	if result.Error != nil {
		r.log.Error("error updating category", zap.Uint("category_id", categoryID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// GetCategoriesByIDs returns the categories that exist; ids with no matching
// row are silently skipped.
func (r *categoryRepository) GetCategoriesByIDs(ctx context.Context, categoryIDs []uint) ([]*entities.Category, error) {
	categories := make([]*entities.Category, 0, len(categoryIDs))
	if len(categoryIDs) == 0 {
		return categories, nil
	}

	if err := r.db.WithContext(ctx).Where("category_id IN ?", categoryIDs).Find(&categories).Error; err != nil {
		r.log.Error("error retrieving categories by ids", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetAllCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		r.log.Error("error retrieving all categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}
