package ovhapi

import "time"

// Account is the authenticated OVHcloud account (GET /me).
type Account struct {
	Nichandle string `json:"nichandle"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Project is a Public Cloud (OpenStack) project.
type Project struct {
	ID          string `json:"project_id"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// ProjectStatusSuspended marks projects whose sub-resources can no
// longer be queried.
const ProjectStatusSuspended = "suspended"

// Suspended reports whether the project rejects sub-resource queries.
func (p *Project) Suspended() bool {
	return p.Status == ProjectStatusSuspended
}

// Flavor describes an instance flavor.
type Flavor struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	OSType string `json:"osType"`
}

// Instance is a Public Cloud instance.
type Instance struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Region   string `json:"region"`
	PlanCode string `json:"planCode"`
	Flavor   Flavor `json:"flavor"`
}

// InstanceCreation is the request body for instance creation.
type InstanceCreation struct {
	FlavorID       string `json:"flavorId"`
	ImageID        string `json:"imageId"`
	MonthlyBilling bool   `json:"monthlyBilling"`
	Name           string `json:"name"`
	Region         string `json:"region"`
	SSHKeyID       string `json:"sshKeyId"`
}

// SSHKey is a Public Cloud project SSH key.
type SSHKey struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CloudUser is a Public Cloud (OpenStack) user.
type CloudUser struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
}

// Credit is a Public Cloud voucher/credit record.
type Credit struct {
	ID              int64       `json:"id"`
	Voucher         string      `json:"voucher"`
	Description     string      `json:"description"`
	AvailableCredit PriceAmount `json:"available_credit"`
	TotalCredit     PriceAmount `json:"total_credit"`
	UsedCredit      PriceAmount `json:"used_credit"`
}

// PriceAmount is a money amount with its display form.
type PriceAmount struct {
	CurrencyCode string  `json:"currencyCode,omitempty"`
	Text         string  `json:"text"`
	Value        float64 `json:"value,omitempty"`
}

// Debt is a billing debt record (GET /me/debtAccount/debt/{id}).
type Debt struct {
	ID      int64     `json:"debtId"`
	OrderID int64     `json:"orderId"`
	Status  string    `json:"status"`
	Date    time.Time `json:"date"`
}

// DebtStatusUnpaid is the status used by the unpaid-only billing filter.
const DebtStatusUnpaid = "UNPAID"

// OrderDetail is one line of an order (GET /me/order/{id}/details/{id}).
type OrderDetail struct {
	ID          int64       `json:"orderDetailId"`
	Domain      string      `json:"domain"`
	Description string      `json:"description"`
	DetailType  string      `json:"detailType"`
	Quantity    int64       `json:"quantity,omitempty"`
	TotalPrice  PriceAmount `json:"totalPrice"`
	UnitPrice   PriceAmount `json:"unitPrice,omitempty"`
}

// DedicatedCloud is a Hosted Private Cloud (VMware) service.
type DedicatedCloud struct {
	ServiceName string                `json:"serviceName"`
	Description string                `json:"description"`
	Location    string                `json:"location"`
	State       string                `json:"state"`
	Version     DedicatedCloudVersion `json:"version"`
}

// DedicatedCloudVersion is the vSphere version of a service.
type DedicatedCloudVersion struct {
	Major string `json:"major"`
	Minor string `json:"minor"`
}

// DedicatedCloudStateDelivered is the only state in which a Hosted
// Private Cloud service accepts queries against its sub-resources.
const DedicatedCloudStateDelivered = "delivered"

// Queryable reports whether sub-resource queries are possible.
func (d *DedicatedCloud) Queryable() bool {
	return d.State == DedicatedCloudStateDelivered
}

// Filer is a Hosted Private Cloud datastore.
type Filer struct {
	FilerID           int64     `json:"filerId"`
	Name              string    `json:"name"`
	SpaceProvisionned float64   `json:"spaceProvisionned"`
	SpaceUsed         float64   `json:"spaceUsed"`
	SpaceFree         float64   `json:"spaceFree"`
	Size              FilerSize `json:"size"`
	State             string    `json:"state,omitempty"`
}

// FilerSize is the capacity of a filer.
type FilerSize struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// HPCUser is a Hosted Private Cloud user.
type HPCUser struct {
	UserID               int64  `json:"userId"`
	Login                string `json:"login"`
	ActivationState      string `json:"activationState"`
	State                string `json:"state"`
	CanManageNetwork     bool   `json:"canManageNetwork"`
	CanManageIPFailOvers bool   `json:"canManageIpFailOvers"`
	NSXRight             bool   `json:"nsxRight"`
	EncryptionRight      bool   `json:"encryptionRight"`
}

// VM is a virtual machine hosted on a Hosted Private Cloud datacenter.
type VM struct {
	ID          int64  `json:"vmId"`
	Name        string `json:"name"`
	ClusterName string `json:"clusterName"`
	HostName    string `json:"hostName"`
	CPUNum      int64  `json:"cpuNum"`
	MemoryMax   int64  `json:"memoryMax"`
	PowerState  string `json:"powerState"`
}
