// Package ovhapi wraps the OVHcloud control plane behind typed records.
// Every response is decoded once at this boundary so handlers work with
// structs instead of raw JSON maps.
package ovhapi

import (
	"context"
	"fmt"

	"github.com/RemyAtOVH/imabot/pkg/config"
)

// Client exposes the control-plane operations the bot relies on.
type Client struct {
	t Transport
}

// New creates a Client on top of a Transport.
func New(t Transport) *Client {
	return &Client{t: t}
}

// NewFromConfig creates a Client with the signed go-ovh transport.
func NewFromConfig(cfg config.OVHConfig) (*Client, error) {
	t, err := NewTransport(cfg)
	if err != nil {
		return nil, err
	}
	return New(t), nil
}

// Me returns the authenticated account.
func (c *Client) Me(ctx context.Context) (*Account, error) {
	var out Account
	if err := c.t.Get(ctx, "/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

//
// Public Cloud
//

// ProjectIDs lists all Public Cloud project IDs.
func (c *Client) ProjectIDs(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.t.Get(ctx, "/cloud/project", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Project fetches one project.
func (c *Client) Project(ctx context.Context, projectID string) (*Project, error) {
	var out Project
	if err := c.t.Get(ctx, "/cloud/project/"+projectID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Instances lists the instances of a project.
func (c *Client) Instances(ctx context.Context, projectID string) ([]Instance, error) {
	var out []Instance
	if err := c.t.Get(ctx, fmt.Sprintf("/cloud/project/%s/instance", projectID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Instance fetches one instance.
func (c *Client) Instance(ctx context.Context, projectID, instanceID string) (*Instance, error) {
	var out Instance
	if err := c.t.Get(ctx, fmt.Sprintf("/cloud/project/%s/instance/%s", projectID, instanceID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInstance deletes one instance.
func (c *Client) DeleteInstance(ctx context.Context, projectID, instanceID string) error {
	return c.t.Delete(ctx, fmt.Sprintf("/cloud/project/%s/instance/%s", projectID, instanceID))
}

// CreateInstance creates an instance and returns its initial state.
func (c *Client) CreateInstance(ctx context.Context, projectID string, req InstanceCreation) (*Instance, error) {
	var out Instance
	if err := c.t.Post(ctx, fmt.Sprintf("/cloud/project/%s/instance", projectID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SSHKeys lists the SSH keys of a project.
func (c *Client) SSHKeys(ctx context.Context, projectID string) ([]SSHKey, error) {
	var out []SSHKey
	if err := c.t.Get(ctx, fmt.Sprintf("/cloud/project/%s/sshkey", projectID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CloudUsers lists the OpenStack users of a project.
func (c *Client) CloudUsers(ctx context.Context, projectID string) ([]CloudUser, error) {
	var out []CloudUser
	if err := c.t.Get(ctx, fmt.Sprintf("/cloud/project/%s/user", projectID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CloudUser fetches one OpenStack user.
func (c *Client) CloudUser(ctx context.Context, projectID string, userID int64) (*CloudUser, error) {
	var out CloudUser
	if err := c.t.Get(ctx, fmt.Sprintf("/cloud/project/%s/user/%d", projectID, userID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCloudUser deletes one OpenStack user.
func (c *Client) DeleteCloudUser(ctx context.Context, projectID string, userID int64) error {
	return c.t.Delete(ctx, fmt.Sprintf("/cloud/project/%s/user/%d", projectID, userID))
}

// CreditIDs lists the credit/voucher IDs of a project.
func (c *Client) CreditIDs(ctx context.Context, projectID string) ([]int64, error) {
	var out []int64
	if err := c.t.Get(ctx, fmt.Sprintf("/cloud/project/%s/credit", projectID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Credit fetches one credit/voucher record.
func (c *Client) Credit(ctx context.Context, projectID string, creditID int64) (*Credit, error) {
	var out Credit
	if err := c.t.Get(ctx, fmt.Sprintf("/cloud/project/%s/credit/%d", projectID, creditID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

//
// Billing
//

// DebtIDs lists the debt IDs of the account.
func (c *Client) DebtIDs(ctx context.Context) ([]int64, error) {
	var out []int64
	if err := c.t.Get(ctx, "/me/debtAccount/debt", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Debt fetches one debt record.
func (c *Client) Debt(ctx context.Context, debtID int64) (*Debt, error) {
	var out Debt
	if err := c.t.Get(ctx, fmt.Sprintf("/me/debtAccount/debt/%d", debtID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OrderDetailIDs lists the detail IDs of an order.
func (c *Client) OrderDetailIDs(ctx context.Context, orderID int64) ([]int64, error) {
	var out []int64
	if err := c.t.Get(ctx, fmt.Sprintf("/me/order/%d/details", orderID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrderDetail fetches one order detail line.
func (c *Client) OrderDetail(ctx context.Context, orderID, detailID int64) (*OrderDetail, error) {
	var out OrderDetail
	if err := c.t.Get(ctx, fmt.Sprintf("/me/order/%d/details/%d", orderID, detailID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

//
// Hosted Private Cloud
//

// DedicatedCloudNames lists the Hosted Private Cloud service names.
func (c *Client) DedicatedCloudNames(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.t.Get(ctx, "/dedicatedCloud", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DedicatedCloud fetches one Hosted Private Cloud service.
func (c *Client) DedicatedCloud(ctx context.Context, serviceName string) (*DedicatedCloud, error) {
	var out DedicatedCloud
	if err := c.t.Get(ctx, "/dedicatedCloud/"+serviceName, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DatacenterIDs lists the datacenter IDs of a service.
func (c *Client) DatacenterIDs(ctx context.Context, serviceName string) ([]int64, error) {
	var out []int64
	if err := c.t.Get(ctx, fmt.Sprintf("/dedicatedCloud/%s/datacenter", serviceName), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FilerIDs lists the filer IDs of a datacenter.
func (c *Client) FilerIDs(ctx context.Context, serviceName string, datacenterID int64) ([]int64, error) {
	var out []int64
	if err := c.t.Get(ctx, fmt.Sprintf("/dedicatedCloud/%s/datacenter/%d/filer", serviceName, datacenterID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Filer fetches one filer.
func (c *Client) Filer(ctx context.Context, serviceName string, datacenterID, filerID int64) (*Filer, error) {
	var out Filer
	if err := c.t.Get(ctx, fmt.Sprintf("/dedicatedCloud/%s/datacenter/%d/filer/%d", serviceName, datacenterID, filerID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HPCUserIDs lists the user IDs of a service.
func (c *Client) HPCUserIDs(ctx context.Context, serviceName string) ([]int64, error) {
	var out []int64
	if err := c.t.Get(ctx, fmt.Sprintf("/dedicatedCloud/%s/user", serviceName), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// HPCUser fetches one Hosted Private Cloud user.
func (c *Client) HPCUser(ctx context.Context, serviceName string, userID int64) (*HPCUser, error) {
	var out HPCUser
	if err := c.t.Get(ctx, fmt.Sprintf("/dedicatedCloud/%s/user/%d", serviceName, userID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VMIDs lists the VM IDs of a datacenter.
func (c *Client) VMIDs(ctx context.Context, serviceName string, datacenterID int64) ([]int64, error) {
	var out []int64
	if err := c.t.Get(ctx, fmt.Sprintf("/dedicatedCloud/%s/datacenter/%d/vm", serviceName, datacenterID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// VM fetches one virtual machine.
func (c *Client) VM(ctx context.Context, serviceName string, datacenterID, vmID int64) (*VM, error) {
	var out VM
	if err := c.t.Get(ctx, fmt.Sprintf("/dedicatedCloud/%s/datacenter/%d/vm/%d", serviceName, datacenterID, vmID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
