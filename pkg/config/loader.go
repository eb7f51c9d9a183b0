package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigPathEnv overrides the config file location.
const ConfigPathEnv = "IMABOT_CONFIG_FILE"

// Loader handles configuration loading with Viper.
type Loader struct {
	viper *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".imabot"))
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("IMABOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Historical environment variable names, kept working so existing
	// deployments need no changes.
	aliases := map[string]string{
		"discord.token":               "DISCORD_TOKEN",
		"discord.guild_id":            "DISCORD_GUILD",
		"discord.group_general":       "DISCORD_GROUP_GENERAL",
		"discord.group_public_cloud":  "DISCORD_GROUP_PCI",
		"discord.group_private_cloud": "DISCORD_GROUP_PCC",
		"discord.group_ansible":       "DISCORD_GROUP_ANSIBLE",
		"roles.tech_read":             "DISCORD_ROLE_TECH_RO",
		"roles.tech_write":            "DISCORD_ROLE_TECH_RW",
		"roles.accounting":            "DISCORD_ROLE_ACCOUNTING",
		"ovh.endpoint":                "OVH_ENDPOINT",
		"ovh.application_key":         "OVH_APPLICATION_KEY",
		"ovh.application_secret":      "OVH_APPLICATION_SECRET",
		"ovh.consumer_key":            "OVH_CONSUMER_KEY",
		"ansible.hosts_file":          "ANSIBLE_HOSTS_FILE",
		"ansible.playbook_folder":     "ANSIBLE_PLAYBOOK_FOLDER",
		"ansible.sshkey_folder":       "ANSIBLE_SSHKEY_FOLDER",
	}
	for key, env := range aliases {
		_ = v.BindEnv(key, env, "IMABOT_"+strings.ToUpper(strings.NewReplacer(".", "_").Replace(key)))
	}

	// Viper only merges environment values into Unmarshal for keys it
	// knows about, so register every key with its default first.
	defaults := DefaultConfig()
	v.SetDefault("discord.token", defaults.Discord.Token)
	v.SetDefault("discord.guild_id", defaults.Discord.GuildID)
	v.SetDefault("discord.group_general", defaults.Discord.GroupGeneral)
	v.SetDefault("discord.group_public_cloud", defaults.Discord.GroupPCI)
	v.SetDefault("discord.group_private_cloud", defaults.Discord.GroupPCC)
	v.SetDefault("discord.group_ansible", defaults.Discord.GroupAnsible)
	v.SetDefault("roles.tech_read", defaults.Roles.TechRead)
	v.SetDefault("roles.tech_write", defaults.Roles.TechWrite)
	v.SetDefault("roles.accounting", defaults.Roles.Accounting)
	v.SetDefault("ovh.endpoint", defaults.OVH.Endpoint)
	v.SetDefault("ovh.application_key", defaults.OVH.ApplicationKey)
	v.SetDefault("ovh.application_secret", defaults.OVH.ApplicationSecret)
	v.SetDefault("ovh.consumer_key", defaults.OVH.ConsumerKey)
	v.SetDefault("ansible.hosts_file", defaults.Ansible.HostsFile)
	v.SetDefault("ansible.playbook_folder", defaults.Ansible.PlaybookFolder)
	v.SetDefault("ansible.sshkey_folder", defaults.Ansible.SSHKeyFolder)
	v.SetDefault("ansible.remote_user", defaults.Ansible.RemoteUser)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.output_path", defaults.Log.OutputPath)
	v.SetDefault("log.development", defaults.Log.Development)

	return &Loader{viper: v}
}

// Load loads the configuration from file and environment variables.
// If configPath is empty, default paths are searched; a missing config
// file is not an error since everything can come from the environment.
func (l *Loader) Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if strings.TrimSpace(configPath) == "" {
		configPath = strings.TrimSpace(os.Getenv(ConfigPathEnv))
	}
	if configPath != "" {
		l.viper.SetConfigFile(configPath)
	}

	if err := l.viper.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if configPath != "" {
			return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
		}
	}

	if err := l.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// GetConfigPath returns the path of the loaded config file.
func (l *Loader) GetConfigPath() string {
	return l.viper.ConfigFileUsed()
}
