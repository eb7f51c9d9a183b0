// Package ansible manages the ansible inventory and shells out to the
// ansible CLI tools. The bot is the only writer of the hosts file; every
// rewrite goes through an atomic temp-file + rename.
package ansible

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/ini.v1"

	"github.com/RemyAtOVH/imabot/pkg/fileutil"
)

// loadOpts parses ansible hosts files, where bare "host" lines are
// boolean keys rather than key=value pairs.
var loadOpts = ini.LoadOptions{
	AllowBooleanKeys: true,
}

// Inventory edits an ansible hosts file in INI format.
type Inventory struct {
	path string
}

// NewInventory creates an Inventory over the given hosts file.
func NewInventory(path string) *Inventory {
	return &Inventory{path: path}
}

// Path returns the hosts file location.
func (inv *Inventory) Path() string {
	return inv.path
}

func (inv *Inventory) load() (*ini.File, error) {
	if _, err := os.Stat(inv.path); os.IsNotExist(err) {
		return ini.Empty(loadOpts), nil
	}
	cfg, err := ini.LoadSources(loadOpts, inv.path)
	if err != nil {
		return nil, fmt.Errorf("loading inventory %s: %w", inv.path, err)
	}
	return cfg, nil
}

func (inv *Inventory) save(cfg *ini.File) error {
	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return fmt.Errorf("serializing inventory: %w", err)
	}
	if err := fileutil.WriteFileAtomic(inv.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing inventory %s: %w", inv.path, err)
	}
	return nil
}

// Assign adds host to group, creating the group if needed. Assigning a
// host already in the group is an error so callers can report it.
func (inv *Inventory) Assign(host, group string) error {
	cfg, err := inv.load()
	if err != nil {
		return err
	}

	sec := cfg.Section(group)
	if sec.HasKey(host) {
		return fmt.Errorf("host %s is already in group %s", host, group)
	}
	if _, err := sec.NewBooleanKey(host); err != nil {
		return fmt.Errorf("adding host %s to group %s: %w", host, group, err)
	}

	return inv.save(cfg)
}

// Remove deletes host from group. The group section is dropped when its
// last host is removed, so assign followed by remove restores the file.
func (inv *Inventory) Remove(host, group string) error {
	cfg, err := inv.load()
	if err != nil {
		return err
	}

	sec, err := cfg.GetSection(group)
	if err != nil {
		return fmt.Errorf("group %s does not exist", group)
	}
	if !sec.HasKey(host) {
		return fmt.Errorf("host %s is not in group %s", host, group)
	}
	sec.DeleteKey(host)
	if len(sec.KeyStrings()) == 0 {
		cfg.DeleteSection(group)
	}

	return inv.save(cfg)
}

// Groups returns the group names, sorted, without the implicit default
// section.
func (inv *Inventory) Groups() ([]string, error) {
	cfg, err := inv.load()
	if err != nil {
		return nil, err
	}

	var groups []string
	for _, name := range cfg.SectionStrings() {
		if name == ini.DefaultSection {
			continue
		}
		groups = append(groups, name)
	}
	sort.Strings(groups)
	return groups, nil
}

// Hosts returns the hosts of one group, sorted.
func (inv *Inventory) Hosts(group string) ([]string, error) {
	cfg, err := inv.load()
	if err != nil {
		return nil, err
	}
	sec, err := cfg.GetSection(group)
	if err != nil {
		return nil, fmt.Errorf("group %s does not exist", group)
	}
	hosts := sec.KeyStrings()
	sort.Strings(hosts)
	return hosts, nil
}
