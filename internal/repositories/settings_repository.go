package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/henriquedps/uzzestore/internal/utils"
)

// SettingsRepository reads the back-office key/value store. Payment payee
// identity and the store's WhatsApp number live here so they can be changed
// without a deploy.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
}

const (
	SettingPixKey          = "pix_key"
	SettingPixMerchantName = "pix_merchant_name"
	SettingPixMerchantCity = "pix_merchant_city"
	SettingWhatsAppNumber  = "whatsapp_number"
)

type settingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepo(db *sql.DB) SettingsRepository {
	return &settingsRepository{DB: db}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT value FROM settings WHERE key = $1
	`

	var value string

	err := r.DB.QueryRowContext(dbCtx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSettingNotFound
		}

		return "", fmt.Errorf("querying database: %w", err)
	}

	return value, nil
}
