package get_dashboard

import (
	"context"

	getDashboard "github.com/m04kA/SMC-PetHotelService/internal/usecase/get_dashboard"
)

type GetDashboardUseCase interface {
	Execute(ctx context.Context, req *getDashboard.Request) (*getDashboard.Response, error)
}

type AccessChecker interface {
	IsAdmin(userID int64) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
