package update_slot_config

import (
	"context"

	"github.com/m04kA/SMC-BookingSlotsService/internal/service/slotconfig/models"
)

type SlotConfigService interface {
	Update(ctx context.Context, req *models.UpdateSlotConfigRequest) (*models.SlotConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
