package db

import (
	"time"

	"gorm.io/datatypes"
)

// StateEntry is one row of the key-value snapshot the scorekeeper writes
// after every mutation. Known keys: players, roundCount, gameInProgress
// and the three rule-value keys.
type StateEntry struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}
