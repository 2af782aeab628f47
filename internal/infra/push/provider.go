package push

import (
	"context"
	"log/slog"

	"beacon/config"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider type values accepted in push.provider.
const (
	ProviderOneSignal = "onesignal"
	ProviderFCM       = "fcm"
)

// unconfiguredService reports every dispatch as an error outcome. The alert
// flow still persists the record, so history survives a missing provider.
type unconfiguredService struct {
	logger *slog.Logger
}

func (s *unconfiguredService) Dispatch(_ context.Context, req *service.DispatchRequest) *service.DispatchOutcome {
	s.logger.Warn("Push provider not configured, dropping dispatch",
		slog.Int("aliases", len(req.Aliases)),
	)

	return &service.DispatchOutcome{
		Status:       service.DispatchStatusError,
		ErrorMessage: "push provider not configured",
	}
}

// Params holds dependencies for the push service, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService creates a PushService based on configuration.
func NewPushService(params Params) (service.PushService, error) {
	cfg := params.Config.Push
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Push provider not configured, dispatches will report error outcomes")

		return &unconfiguredService{logger: logger}, nil
	}

	switch cfg.Provider {
	case ProviderOneSignal:
		if cfg.AppID == "" || cfg.APIKey == "" {
			logger.Warn("OneSignal credentials missing, dispatches will report error outcomes")

			return &unconfiguredService{logger: logger}, nil
		}
		logger.Info("Using OneSignal push provider")

		return NewOneSignalService(cfg.AppID, cfg.APIKey, cfg.Endpoint, cfg.Timeout, logger), nil

	case ProviderFCM:
		if cfg.CredentialsPath == "" {
			return nil, errors.New("credentials path is required for fcm provider")
		}
		logger.Info("Using FCM push provider")

		return NewFCMService(params.Ctx, cfg.CredentialsPath, logger)

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}
