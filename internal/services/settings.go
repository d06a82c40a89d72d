package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/henriquedps/uzzestore/internal/api/middleware"
	"github.com/henriquedps/uzzestore/internal/cache"
	"github.com/henriquedps/uzzestore/internal/config"
	repository "github.com/henriquedps/uzzestore/internal/repositories"
)

const settingCacheTTL = 5 * time.Minute

// PixPayee is the payee identity stamped onto payment payloads.
type PixPayee struct {
	Key          string
	MerchantName string
	MerchantCity string
}

// SettingsService resolves store settings from the back-office key/value
// store, with a short redis cache in front and config values as the
// fallback for keys the store owner never customized.
type SettingsService interface {
	PixPayee(ctx context.Context) PixPayee
	StoreWhatsAppNumber(ctx context.Context) string
}

type settingsService struct {
	repo  repository.SettingsRepository
	cache cache.Cache
	cfg   *config.Config
}

func NewSettingsService(repo repository.SettingsRepository, c cache.Cache, cfg *config.Config) SettingsService {
	return &settingsService{repo: repo, cache: c, cfg: cfg}
}

func (s *settingsService) PixPayee(ctx context.Context) PixPayee {
	return PixPayee{
		Key:          s.lookup(ctx, repository.SettingPixKey, s.cfg.Pix.Key),
		MerchantName: s.lookup(ctx, repository.SettingPixMerchantName, s.cfg.Pix.MerchantName),
		MerchantCity: s.lookup(ctx, repository.SettingPixMerchantCity, s.cfg.Pix.MerchantCity),
	}
}

func (s *settingsService) StoreWhatsAppNumber(ctx context.Context) string {
	return s.lookup(ctx, repository.SettingWhatsAppNumber, s.cfg.WhatsApp.StoreNumber)
}

// lookup never fails the caller: cache and storage problems fall through
// to the configured default and are only logged.
func (s *settingsService) lookup(ctx context.Context, key, fallback string) string {

	logger := middleware.LoggerFromContext(ctx)
	cacheKey := cache.Key(cache.SettingKeyPrefix, key)

	var cached string

	if s.cache != nil {
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return cached
		}
	}

	value, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrSettingNotFound) {
			logger.Warn("Failed to read setting, using fallback",
				slog.String("setting", key), slog.String("error", err.Error()))
		}

		return fallback
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, value, settingCacheTTL); err != nil {
			logger.Debug("Failed to cache setting", slog.String("setting", key), slog.String("error", err.Error()))
		}
	}

	return value
}
