package slotconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BookingSlotsService/internal/domain"
	bookingProductRepo "github.com/m04kA/SMC-BookingSlotsService/internal/infra/storage/bookingproduct"
	"github.com/m04kA/SMC-BookingSlotsService/internal/service/slotconfig/models"
	"github.com/m04kA/SMC-BookingSlotsService/pkg/events"
)

// Service сервис для работы с шаблонами слотов продукта
type Service struct {
	repo      SlotConfigRepository
	cache     CacheInvalidator
	publisher EventPublisher
	logger    Logger
}

// NewService создает новый экземпляр сервиса настроек слотов
// cache и publisher могут быть nil, если Redis или NATS выключены
func NewService(
	repo SlotConfigRepository,
	cache CacheInvalidator,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// Get получает настройки слотов продукта
// Публичный метод - доступен всем
func (s *Service) Get(ctx context.Context, productID int64) (*models.SlotConfigResponse, error) {
	s.logger.Info("Get: fetching slot config for product=%d", productID)

	product, err := s.getBookingProduct(ctx, "Get", productID)
	if err != nil {
		return nil, err
	}

	config, err := s.repo.GetTableSlotConfig(ctx, product.ID)
	if err != nil {
		switch {
		case errors.Is(err, bookingProductRepo.ErrTableSlotNotFound):
			s.logger.Warn("Get: slot config not found for product=%d", productID)
			return nil, ErrSlotConfigNotFound
		case errors.Is(err, bookingProductRepo.ErrMalformedSlots):
			// отдаём то, что удалось прочитать, шаблоны будут пустыми
			s.logger.Warn("Get: malformed slots for product=%d: %v", productID, err)
		default:
			s.logger.Error("Get: repository error for product=%d: %v", productID, err)
			return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Get: successfully fetched slot config id=%d", config.ID)
	return models.FromDomainConfig(productID, config), nil
}

// Update обновляет настройки слотов продукта
// Доступно только администраторам (проверяется middleware)
// Поддерживает частичное обновление - обновляются только указанные поля.
// Если настроек ещё нет, они создаются.
func (s *Service) Update(ctx context.Context, req *models.UpdateSlotConfigRequest) (*models.SlotConfigResponse, error) {
	if req == nil || req.ProductID <= 0 {
		return nil, fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}

	s.logger.Info("Update: updating slot config for product=%d by %q", req.ProductID, req.UpdatedBy)

	// 1. Получаем настройки бронирования продукта
	product, err := s.getBookingProduct(ctx, "Update", req.ProductID)
	if err != nil {
		return nil, err
	}

	// 2. Получаем текущие настройки слотов (или начинаем с пустых)
	config, err := s.repo.GetTableSlotConfig(ctx, product.ID)
	if err != nil {
		switch {
		case errors.Is(err, bookingProductRepo.ErrTableSlotNotFound):
			s.logger.Info("Update: creating slot config for product=%d", req.ProductID)
			config = &domain.TableSlotConfig{BookingProductID: product.ID}
		case errors.Is(err, bookingProductRepo.ErrMalformedSlots):
			s.logger.Warn("Update: overwriting malformed slots for product=%d", req.ProductID)
		default:
			s.logger.Error("Update: repository error for product=%d: %v", req.ProductID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	// 3. Применяем обновления к копии и валидируем
	updated := *config
	req.ApplyToConfig(&updated)

	if err := validateConfigData(&updated); err != nil {
		s.logger.Warn("Update: validation failed for product=%d: %v", req.ProductID, err)
		return nil, err
	}

	updated.Slots, err = normalizeTemplates(updated.Slots)
	if err != nil {
		s.logger.Warn("Update: validation failed for product=%d: %v", req.ProductID, err)
		return nil, err
	}

	// 4. Сохраняем
	saved, err := s.repo.UpsertTableSlotConfig(ctx, &updated)
	if err != nil {
		s.logger.Error("Update: repository error for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 5. Сбрасываем кэш и уведомляем подписчиков; ошибки не прерывают обновление
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, req.ProductID, product.ID); err != nil {
			s.logger.Warn("Update: failed to invalidate cache for product=%d: %v", req.ProductID, err)
		}
	}

	if s.publisher != nil {
		event := events.SlotConfigUpdatedEvent{
			ProductID:        req.ProductID,
			BookingProductID: product.ID,
			UpdatedBy:        req.UpdatedBy,
			UpdatedAt:        saved.UpdatedAt,
		}
		if err := s.publisher.Publish(ctx, events.SubjectSlotConfigUpdated, event); err != nil {
			s.logger.Warn("Update: failed to publish event for product=%d: %v", req.ProductID, err)
		}
	}

	s.logger.Info("Update: successfully updated slot config id=%d for product=%d", saved.ID, req.ProductID)
	return models.FromDomainConfig(req.ProductID, saved), nil
}

func (s *Service) getBookingProduct(ctx context.Context, op string, productID int64) (*domain.BookingProduct, error) {
	product, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, bookingProductRepo.ErrBookingProductNotFound) {
			s.logger.Warn("%s: booking product for product=%d not found", op, productID)
			return nil, ErrBookingProductNotFound
		}
		s.logger.Error("%s: repository error for product=%d: %v", op, productID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return product, nil
}
