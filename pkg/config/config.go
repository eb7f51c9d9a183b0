// Package config provides configuration management for imabot.
// It uses Viper for flexible configuration loading with support for
// multiple formats (JSON, YAML), environment variables and defaults.
package config

// Config represents the complete imabot configuration.
type Config struct {
	Discord DiscordConfig `mapstructure:"discord" json:"discord"`
	Roles   RolesConfig   `mapstructure:"roles" json:"roles"`
	OVH     OVHConfig     `mapstructure:"ovh" json:"ovh"`
	Ansible AnsibleConfig `mapstructure:"ansible" json:"ansible"`
	Cloud   CloudConfig   `mapstructure:"cloud" json:"cloud"`
	Log     LogConfig     `mapstructure:"log" json:"log"`
}

// DiscordConfig holds the bot token and the slash-command group names.
type DiscordConfig struct {
	Token        string `mapstructure:"token" json:"token"`
	GuildID      string `mapstructure:"guild_id" json:"guild_id"`
	GroupGeneral string `mapstructure:"group_general" json:"group_general"`
	GroupPCI     string `mapstructure:"group_public_cloud" json:"group_public_cloud"`
	GroupPCC     string `mapstructure:"group_private_cloud" json:"group_private_cloud"`
	GroupAnsible string `mapstructure:"group_ansible" json:"group_ansible"`
}

// RolesConfig maps the permission tiers to Discord role names.
type RolesConfig struct {
	// TechRead is the baseline tier for read-only operations.
	TechRead string `mapstructure:"tech_read" json:"tech_read"`
	// TechWrite is the elevated tier required for create/delete/write actions.
	TechWrite string `mapstructure:"tech_write" json:"tech_write"`
	// Accounting is required for billing and voucher operations.
	Accounting string `mapstructure:"accounting" json:"accounting"`
}

// OVHConfig holds OVHcloud API credentials.
// Generate them at https://api.ovh.com/createToken/ and pass them as
// environment variables, never hardcoded.
type OVHConfig struct {
	Endpoint          string `mapstructure:"endpoint" json:"endpoint"`
	ApplicationKey    string `mapstructure:"application_key" json:"application_key"`
	ApplicationSecret string `mapstructure:"application_secret" json:"application_secret"`
	ConsumerKey       string `mapstructure:"consumer_key" json:"consumer_key"`
}

// AnsibleConfig holds the inventory and playbook locations.
type AnsibleConfig struct {
	HostsFile      string `mapstructure:"hosts_file" json:"hosts_file"`
	PlaybookFolder string `mapstructure:"playbook_folder" json:"playbook_folder"`
	SSHKeyFolder   string `mapstructure:"sshkey_folder" json:"sshkey_folder"`
	RemoteUser     string `mapstructure:"remote_user" json:"remote_user"`
}

// CloudConfig carries the static lookup tables used by the instance
// creation flow: region -> display label -> OpenStack platform ID.
type CloudConfig struct {
	Regions []RegionOption               `mapstructure:"regions" json:"regions"`
	Images  map[string]map[string]string `mapstructure:"images" json:"images"`
	Flavors map[string]map[string]string `mapstructure:"flavors" json:"flavors"`
}

// RegionOption is one selectable OpenStack region.
type RegionOption struct {
	Label string `mapstructure:"label" json:"label"`
	Value string `mapstructure:"value" json:"value"`
}

// LogConfig controls the logger output.
type LogConfig struct {
	Level       string `mapstructure:"level" json:"level"`
	OutputPath  string `mapstructure:"output_path" json:"output_path"`
	Development bool   `mapstructure:"development" json:"development"`
}

// DefaultConfig returns a new Config with default values.
// Defaults match the bot's historical environment variables.
func DefaultConfig() *Config {
	return &Config{
		Discord: DiscordConfig{
			GroupGeneral: "iamabot",
			GroupPCI:     "public-cloud",
			GroupPCC:     "hosted-private-cloud",
			GroupAnsible: "ansible",
		},
		Roles: RolesConfig{
			TechRead:   "Tech",
			TechWrite:  "Tech Lead",
			Accounting: "Accounting",
		},
		OVH: OVHConfig{
			Endpoint: "ovh-eu",
		},
		Ansible: AnsibleConfig{
			HostsFile:      "/code/ansible/hosts",
			PlaybookFolder: "/code/ansible/playbooks",
			SSHKeyFolder:   "/code/ansible/ssh",
			RemoteUser:     "ansible",
		},
		Cloud: CloudConfig{
			Regions: []RegionOption{
				{Label: "🇫🇷 Gravelines (GRA9)", Value: "GRA9"},
				{Label: "🇵🇱 Warsaw (WAW1)", Value: "WAW1"},
				{Label: "🇬🇧 London (UK1)", Value: "UK1"},
				{Label: "🇨🇦 Beauharnois (BHS1)", Value: "BHS1"},
			},
			Images: map[string]map[string]string{
				"GRA9": {
					"Debian 11":    "f56870f7-7d8f-4262-893a-c58ddd2ca0df",
					"Ubuntu 22.10": "4d15695b-9af7-43ea-9d09-5540f25f9c53",
					"Fedora 36":    "9e8a8f94-dcfa-4e2f-8a6c-2d93ccac176d",
				},
				"WAW1": {
					"Debian 11":    "e83106dd-dde9-4356-8dfe-b5f3d4bc1386",
					"Ubuntu 22.10": "f8825418-ff0c-4a22-8ac0-a6a879b0119b",
					"Fedora 36":    "e69b0819-3247-43cc-80d8-59ae60a614cc",
				},
				"UK1": {
					"Debian 11":    "afae43cc-199d-4a19-bd0d-aaca3b816ac5",
					"Ubuntu 22.10": "fed14415-118b-4657-8769-9ae5a8e6a433",
					"Fedora 36":    "9252dc97-ba02-437d-ab20-3a6dcca1cdc0",
				},
				"BHS1": {
					"Debian 11":    "918079fa-d0f1-4b5e-ab68-7b45eb497b6c",
					"Ubuntu 22.10": "878de164-dc98-4a92-bf4f-7c9cbe9f83bc",
					"Fedora 36":    "9af65bf8-019a-4240-b1b7-19a34254ec74",
				},
			},
			Flavors: map[string]map[string]string{
				"GRA9": {
					"d2-2": "fbb7940b-4268-437c-85f8-8c27fcef0dcd",
					"d2-4": "5085760f-f370-42af-a09a-907b0056ba05",
					"d2-8": "da08411a-14f4-4ce1-842d-ca159a68d834",
				},
				"WAW1": {
					"d2-2": "774a7187-eeb2-4639-92e7-546351cb3eca",
					"d2-4": "743811f0-fc7a-4720-af44-18136493d5a2",
					"d2-8": "9775ffcc-f05f-49f5-9507-a9708cb6f03e",
				},
				"UK1": {
					"d2-2": "d0c3bdf8-c3f7-4e66-8c17-6b21cf4d0a50",
					"d2-4": "3f54312e-984c-45fe-9883-6a4767fff81c",
					"d2-8": "861f84d1-9109-48b0-97e3-9e0d31320013",
				},
				"BHS1": {
					"d2-2": "95ae12e7-e4b4-4710-9c40-7ab207349a0a",
					"d2-4": "93e8b309-aa9c-4666-8edd-d28c96492d15",
					"d2-8": "2f4d65be-f405-4d28-962c-a233e1a02cba",
				},
			},
		},
		Log: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
