package contract

import (
	"context"

	"gorm.io/datatypes"
)

type SettingRepository interface {
	// Get returns nil when the key has never been written.
	Get(ctx context.Context, key string) (datatypes.JSON, error)
	Set(ctx context.Context, key string, value datatypes.JSON) error
}
