package ovhapi

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/RemyAtOVH/imabot/pkg/config"
	"github.com/RemyAtOVH/imabot/pkg/logger"
)

// Module provides the OVHcloud API client.
var Module = fx.Module("ovhapi",
	fx.Provide(ProvideClient),
)

// ProvideClient builds the signed client from the loaded configuration.
func ProvideClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	client, err := NewFromConfig(cfg.OVH)
	if err != nil {
		log.Error("Failed to create OVH client", zap.Error(err))
		return nil, err
	}

	log.Info("OVH client ready", zap.String("endpoint", cfg.OVH.Endpoint))
	return client, nil
}
