package models

import "time"

const KVTable = "bonrecords_kv"

// KVEntry is one key/value pair of the session storage when it is kept in Postgres.
type KVEntry struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string { return KVTable }
