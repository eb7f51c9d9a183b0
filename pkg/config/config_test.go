package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_CloudTablesAreComplete(t *testing.T) {
	cfg := DefaultConfig()

	require.Len(t, cfg.Cloud.Regions, 4)
	for _, region := range cfg.Cloud.Regions {
		images, ok := cfg.Cloud.Images[region.Value]
		require.True(t, ok, "region %s has no image table", region.Value)
		assert.Len(t, images, 3, "region %s image table", region.Value)

		flavors, ok := cfg.Cloud.Flavors[region.Value]
		require.True(t, ok, "region %s has no flavor table", region.Value)
		assert.Len(t, flavors, 3, "region %s flavor table", region.Value)

		for label, id := range images {
			assert.NotEmpty(t, id, "image %s in %s", label, region.Value)
		}
		for label, id := range flavors {
			assert.NotEmpty(t, id, "flavor %s in %s", label, region.Value)
		}
	}
}

func TestLoader_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "tok-123")
	t.Setenv("DISCORD_ROLE_TECH_RW", "Platform Lead")
	t.Setenv("ANSIBLE_HOSTS_FILE", "/srv/ansible/hosts")

	cfg, err := NewLoader().Load("")
	require.NoError(t, err)

	assert.Equal(t, "tok-123", cfg.Discord.Token)
	assert.Equal(t, "Platform Lead", cfg.Roles.TechWrite)
	assert.Equal(t, "/srv/ansible/hosts", cfg.Ansible.HostsFile)
	// untouched keys keep their defaults
	assert.Equal(t, "iamabot", cfg.Discord.GroupGeneral)
	assert.Equal(t, "ovh-eu", cfg.OVH.Endpoint)
}

func TestLoader_ReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
discord:
  token: file-token
roles:
  accounting: Finance
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.Discord.Token)
	assert.Equal(t, "Finance", cfg.Roles.Accounting)
	assert.Equal(t, "Tech", cfg.Roles.TechRead)
}

func TestLoader_ExplicitMissingFileFails(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.Discord.Token = "tok"
	valid.OVH.ApplicationKey = "ak"
	valid.OVH.ApplicationSecret = "as"
	valid.OVH.ConsumerKey = "ck"
	require.NoError(t, Validate(valid))

	missingToken := DefaultConfig()
	missingToken.OVH = valid.OVH
	err := Validate(missingToken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")

	missingCreds := DefaultConfig()
	missingCreds.Discord.Token = "tok"
	err = Validate(missingCreds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OVH_APPLICATION_KEY")

	emptyGroup := DefaultConfig()
	emptyGroup.Discord.Token = "tok"
	emptyGroup.OVH = valid.OVH
	emptyGroup.Discord.GroupAnsible = ""
	assert.Error(t, Validate(emptyGroup))
}
