package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 泛型基础 DAO，每个实体 DAO 内嵌一份
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

// FindByWhere 按条件查单条，不存在返回 nil
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAllByWhere 按条件查多条
func (r *Repo[T]) FindAllByWhere(ctx context.Context, where string, args ...any) ([]*T, error) {
	var items []*T
	err := r.Db.WithContext(ctx).Where(where, args...).Find(&items).Error
	return items, err
}

// IsExist 按条件判断是否存在
func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	var item T
	err := r.Db.WithContext(ctx).Model(&item).Where(where, args...).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count 按条件计数
func (r *Repo[T]) Count(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	var item T
	err := r.Db.WithContext(ctx).Model(&item).Where(where, args...).Count(&count).Error
	return count, err
}
