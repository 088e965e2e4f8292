package update_slot_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingSlotsService/internal/api/handlers"
	"github.com/m04kA/SMC-BookingSlotsService/internal/api/middleware"
	"github.com/m04kA/SMC-BookingSlotsService/internal/service/slotconfig"
)

const (
	msgInvalidProductID       = "некорректный ID продукта"
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgBookingProductNotFound = "продукт не поддерживает бронирование"
	msgInvalidData            = "некорректные данные настроек слотов"
	msgMissingSubject         = "требуется авторизация"
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

// Handle PUT /api/v1/products/{productId}/slot-config
// Только для администраторов (middleware.Auth)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.GetSubject(r.Context())
	if !ok {
		h.logger.Warn("PUT /products/{id}/slot-config - Missing subject in context")
		handlers.RespondUnauthorized(w, msgMissingSubject)
		return
	}

	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil || productID <= 0 {
		h.logger.Warn("PUT /products/{id}/slot-config - Invalid product ID: %q", mux.Vars(r)["productId"])
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	var req UpdateSlotConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /products/{id}/slot-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(productID, subject))
	if err != nil {
		switch {
		case errors.Is(err, slotconfig.ErrBookingProductNotFound):
			h.logger.Warn("PUT /products/{id}/slot-config - Booking product not found: product_id=%d", productID)
			handlers.RespondNotFound(w, msgBookingProductNotFound)

		case errors.Is(err, slotconfig.ErrInvalidInput):
			h.logger.Warn("PUT /products/{id}/slot-config - Invalid data: product_id=%d, error=%v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /products/{id}/slot-config - Failed to update config: product_id=%d, error=%v",
				productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /products/{id}/slot-config - Config updated successfully: product_id=%d, config_id=%d, by=%s",
		productID, result.ID, subject)
	handlers.RespondJSON(w, http.StatusOK, result)
}
