package get_booking_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingSlotsService/internal/api/handlers"
	getBookingSlots "github.com/m04kA/SMC-BookingSlotsService/internal/usecase/get_booking_slots"
)

const (
	msgInvalidProductID = "некорректный ID продукта"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetBookingSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/products/{productId}/booking-slots
// Query params: date (optional, YYYY-MM-DD, по умолчанию сегодня)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil || productID <= 0 {
		h.logger.Warn("GET /products/{id}/booking-slots - Invalid product ID: %q", mux.Vars(r)["productId"])
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(productID, r.URL.Query().Get("date"), h.useCase.Location())
	if err != nil {
		h.logger.Warn("GET /products/{id}/booking-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, getBookingSlots.ErrInvalidInput) {
			h.logger.Warn("GET /products/{id}/booking-slots - Invalid input: product_id=%d, error=%v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidProductID)
			return
		}

		h.logger.Error("GET /products/{id}/booking-slots - Failed to get slots: product_id=%d, error=%v", productID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /products/{id}/booking-slots - Slots retrieved successfully: product_id=%d, slots_count=%d",
		productID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
