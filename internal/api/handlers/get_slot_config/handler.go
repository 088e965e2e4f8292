package get_slot_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingSlotsService/internal/api/handlers"
	"github.com/m04kA/SMC-BookingSlotsService/internal/service/slotconfig"
)

const (
	msgInvalidProductID       = "некорректный ID продукта"
	msgBookingProductNotFound = "продукт не поддерживает бронирование"
	msgNotFound               = "настройки слотов не найдены"
)

type Handler struct {
	service SlotConfigService
	logger  Logger
}

func NewHandler(service SlotConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/products/{productId}/slot-config
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil || productID <= 0 {
		h.logger.Warn("GET /products/{id}/slot-config - Invalid product ID: %q", mux.Vars(r)["productId"])
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	result, err := h.service.Get(r.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, slotconfig.ErrBookingProductNotFound):
			h.logger.Warn("GET /products/{id}/slot-config - Booking product not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgBookingProductNotFound)

		case errors.Is(err, slotconfig.ErrSlotConfigNotFound):
			h.logger.Warn("GET /products/{id}/slot-config - Slot config not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /products/{id}/slot-config - Failed to get config: product_id=%d, error=%v",
				productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /products/{id}/slot-config - Config retrieved successfully: product_id=%d, config_id=%d",
		productID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
