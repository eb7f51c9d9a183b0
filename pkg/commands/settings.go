package commands

import (
	"context"
	"fmt"

	"github.com/RemyAtOVH/imabot/pkg/render"
	"github.com/RemyAtOVH/imabot/pkg/version"
)

func (d *Deps) accountCommand() *Command {
	return &Command{
		Name:        "account",
		Description: "The OVHcloud account behind the bot",
		Actions: []*Action{
			{
				Name:        "show",
				Description: "Show the authenticated account",
				Role:        d.Config.Roles.TechRead,
				Handler:     d.accountShow,
			},
		},
	}
}

func (d *Deps) settingsCommand() *Command {
	return &Command{
		Name:        "settings",
		Description: "Bot configuration",
		Actions: []*Action{
			{
				Name:        "show",
				Description: "Show the active configuration",
				Role:        d.Config.Roles.TechRead,
				Handler:     d.settingsShow,
			},
		},
	}
}

func (d *Deps) accountShow(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	account, err := d.API.Me(ctx)
	if err != nil {
		return nil, err
	}
	return render.Info("Account " + account.Nichandle).
		WithDescription(render.JSONBlock(account)), nil
}

func (d *Deps) settingsShow(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	cfg := d.Config

	auth := "OK"
	if account, err := d.API.Me(ctx); err != nil {
		auth = fmt.Sprintf("KO [%v]", err)
	} else {
		auth = "OK (" + account.Nichandle + ")"
	}

	return render.Info("Bot settings").
		WithInlineField("Read role", "@"+cfg.Roles.TechRead).
		WithInlineField("Write role", "@"+cfg.Roles.TechWrite).
		WithInlineField("Accounting role", "@"+cfg.Roles.Accounting).
		WithField("OVH endpoint", cfg.OVH.Endpoint).
		WithInlineField("Application key", credential(cfg.OVH.ApplicationKey)).
		WithInlineField("Application secret", credential(cfg.OVH.ApplicationSecret)).
		WithInlineField("Consumer key", credential(cfg.OVH.ConsumerKey)).
		WithField("Authentication", auth).
		WithField("Inventory", cfg.Ansible.HostsFile).
		WithField("Playbook folder", cfg.Ansible.PlaybookFolder).
		WithField("Remote user", cfg.Ansible.RemoteUser).
		WithFooter(fmt.Sprintf("Version %s", version.GetFullVersion())), nil
}

// credential reports presence without ever echoing the secret.
func credential(value string) string {
	if value == "" {
		return "missing"
	}
	return "set"
}
