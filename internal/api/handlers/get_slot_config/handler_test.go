package get_slot_config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BookingSlotsService/internal/service/slotconfig"
	"github.com/m04kA/SMC-BookingSlotsService/internal/service/slotconfig/models"
)

type fakeService struct {
	resp *models.SlotConfigResponse
	err  error
}

func (f *fakeService) Get(_ context.Context, _ int64) (*models.SlotConfigResponse, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		svc        *fakeService
		wantStatus int
	}{
		{
			name:   "found",
			target: "/api/v1/products/42/slot-config",
			svc: &fakeService{resp: &models.SlotConfigResponse{
				ID: 3, ProductID: 42, DurationMinutes: 30, SameSlotAllDays: true,
				Slots: []models.TimeRange{{From: "09:00", To: "11:00"}},
			}},
			wantStatus: http.StatusOK,
		},
		{name: "bad id", target: "/api/v1/products/0/slot-config", svc: &fakeService{}, wantStatus: http.StatusBadRequest},
		{
			name: "not bookable", target: "/api/v1/products/42/slot-config",
			svc: &fakeService{err: slotconfig.ErrBookingProductNotFound}, wantStatus: http.StatusNotFound,
		},
		{
			name: "no config", target: "/api/v1/products/42/slot-config",
			svc: &fakeService{err: slotconfig.ErrSlotConfigNotFound}, wantStatus: http.StatusNotFound,
		},
		{
			name: "internal", target: "/api/v1/products/42/slot-config",
			svc: &fakeService{err: slotconfig.ErrInternal}, wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/api/v1/products/{productId}/slot-config", NewHandler(tt.svc, nopLogger{}).Handle)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"slots":[{"from":"09:00","to":"11:00"}]`)
			}
		})
	}
}
