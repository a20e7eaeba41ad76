package db

import (
	"context"
	"errors"

	"bonrecords/kv"
	"bonrecords/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepo keeps the session storage in the bonrecords_kv table.
type KVRepo struct{ DB *gorm.DB }

var _ kv.Store = (*KVRepo)(nil)

func NewKVRepo(db *gorm.DB) *KVRepo { return &KVRepo{DB: db} }

func (r *KVRepo) Get(ctx context.Context, key string) (string, error) {
	var e models.KVEntry
	err := r.DB.WithContext(ctx).First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return e.Value, nil
}

// Set upserts so concurrent writers end with the last value written.
func (r *KVRepo) Set(ctx context.Context, key, value string) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&models.KVEntry{Key: key, Value: value}).Error
}

func (r *KVRepo) Delete(ctx context.Context, key string) error {
	return r.DB.WithContext(ctx).Where("key = ?", key).Delete(&models.KVEntry{}).Error
}

func (r *KVRepo) Close() error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
