package discord

import (
	"context"

	"go.uber.org/fx"

	"github.com/RemyAtOVH/imabot/pkg/commands"
	"github.com/RemyAtOVH/imabot/pkg/config"
	"github.com/RemyAtOVH/imabot/pkg/logger"
)

// Module provides the Discord channel and ties it to the app lifecycle.
var Module = fx.Module("discord",
	fx.Provide(ProvideChannel),
	fx.Invoke(func(*Channel) {}),
)

// ProvideChannel builds the channel and hooks it into the lifecycle.
func ProvideChannel(
	lc fx.Lifecycle,
	log *logger.Logger,
	cfg *config.Config,
	registry *commands.Registry,
	dispatcher *commands.Dispatcher,
	suggester *commands.Suggester,
	flows *commands.FlowManager,
) (*Channel, error) {
	channel, err := NewChannel(log, cfg.Discord, registry, dispatcher, suggester, flows)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return channel.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return channel.Stop(ctx)
		},
	})
	return channel, nil
}
