package models

import (
	"time"

	"gorm.io/datatypes"
)

// StateSlice stores one named, independently persisted portion of engine state.
type StateSlice struct {
	Key       string         `gorm:"column:slice_key;size:64;primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (StateSlice) TableName() string {
	return "state_slices"
}
