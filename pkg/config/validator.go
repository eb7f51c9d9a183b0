package config

import (
	"fmt"
	"strings"
)

// Validate checks that the configuration is complete enough to start.
// Credentials are never defaulted, so their absence is a startup error
// rather than a later API failure.
func Validate(cfg *Config) error {
	var missing []string

	if strings.TrimSpace(cfg.Discord.Token) == "" {
		missing = append(missing, "discord.token (DISCORD_TOKEN)")
	}
	if strings.TrimSpace(cfg.OVH.ApplicationKey) == "" {
		missing = append(missing, "ovh.application_key (OVH_APPLICATION_KEY)")
	}
	if strings.TrimSpace(cfg.OVH.ApplicationSecret) == "" {
		missing = append(missing, "ovh.application_secret (OVH_APPLICATION_SECRET)")
	}
	if strings.TrimSpace(cfg.OVH.ConsumerKey) == "" {
		missing = append(missing, "ovh.consumer_key (OVH_CONSUMER_KEY)")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}

	if cfg.Discord.GroupGeneral == "" || cfg.Discord.GroupPCI == "" ||
		cfg.Discord.GroupPCC == "" || cfg.Discord.GroupAnsible == "" {
		return fmt.Errorf("command group names cannot be empty")
	}

	return nil
}
