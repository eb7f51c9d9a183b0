// Package discord connects the command surface to Discord: it registers
// the slash commands, turns interactions into invocations and renders
// envelopes as embeds.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/RemyAtOVH/imabot/pkg/commands"
	"github.com/RemyAtOVH/imabot/pkg/config"
	"github.com/RemyAtOVH/imabot/pkg/logger"
)

// Channel is the Discord front of the bot.
type Channel struct {
	log        *logger.Logger
	config     config.DiscordConfig
	registry   *commands.Registry
	dispatcher *commands.Dispatcher
	suggester  *commands.Suggester
	flows      *commands.FlowManager
	session    *discordgo.Session
}

// NewChannel creates the Discord channel.
func NewChannel(
	log *logger.Logger,
	cfg config.DiscordConfig,
	registry *commands.Registry,
	dispatcher *commands.Dispatcher,
	suggester *commands.Suggester,
	flows *commands.FlowManager,
) (*Channel, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}

	return &Channel{
		log:        log,
		config:     cfg,
		registry:   registry,
		dispatcher: dispatcher,
		suggester:  suggester,
		flows:      flows,
		session:    session,
	}, nil
}

// Start opens the gateway connection and syncs the slash commands.
func (c *Channel) Start(ctx context.Context) error {
	c.log.Info("Starting Discord channel")

	c.session.AddHandler(c.handleInteraction)
	c.session.Identify.Intents = discordgo.IntentsGuilds

	if err := c.session.Open(); err != nil {
		return fmt.Errorf("opening discord connection: %w", err)
	}

	botUser, err := c.session.User("@me")
	if err != nil {
		c.log.Warn("Failed to get bot user", zap.Error(err))
	} else {
		c.log.Info("Discord bot connected",
			zap.String("username", botUser.Username),
			zap.String("user_id", botUser.ID))
	}

	if err := c.syncApplicationCommands(); err != nil {
		return fmt.Errorf("registering application commands: %w", err)
	}
	return nil
}

// Stop closes the gateway connection.
func (c *Channel) Stop(ctx context.Context) error {
	c.log.Info("Stopping Discord channel")
	if c.session != nil {
		if err := c.session.Close(); err != nil {
			return fmt.Errorf("closing discord session: %w", err)
		}
	}
	return nil
}

// syncApplicationCommands pushes the registry as guild slash commands.
// Guild-scoped commands propagate immediately, unlike global ones.
func (c *Channel) syncApplicationCommands() error {
	appID := c.session.State.User.ID
	specs := applicationCommands(c.registry)

	if _, err := c.session.ApplicationCommandBulkOverwrite(appID, c.config.GuildID, specs); err != nil {
		return err
	}

	c.log.Info("Application commands synced",
		zap.Int("count", len(specs)),
		zap.String("guild_id", c.config.GuildID))
	return nil
}
