package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// gormRepository holds the CRUD primitives shared by every entity table.
type gormRepository[T any] struct {
	db     *gorm.DB
	entity string
}

func (r *gormRepository[T]) all() ([]T, error) {
	var records []T
	if err := r.db.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get all %s records: %w", r.entity, err)
	}
	return records, nil
}

func (r *gormRepository[T]) byID(id uint) (*T, error) {
	var record T
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s with ID %d: %w", r.entity, id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s by ID %d: %w", r.entity, id, err)
	}
	return &record, nil
}

func (r *gormRepository[T]) create(record *T) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", r.entity, translateError(err))
	}
	return nil
}

// update writes every column of record, including zero values, to the row with the given ID.
func (r *gormRepository[T]) update(id uint, record *T) error {
	res := r.db.Model(new(T)).Where("id = ?", id).Select("*").Omit("id").Updates(record)
	if res.Error != nil {
		return fmt.Errorf("failed to update %s: %w", r.entity, translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s with ID %d not found for update: %w", r.entity, id, ErrNotFound)
	}
	return nil
}

func (r *gormRepository[T]) delete(id uint) error {
	res := r.db.Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", r.entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s with ID %d not found for deletion: %w", r.entity, id, ErrNotFound)
	}
	return nil
}
