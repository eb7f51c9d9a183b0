package ovhapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ovh/go-ovh/ovh"

	"github.com/RemyAtOVH/imabot/pkg/config"
)

// Transport abstracts signed HTTP calls to the OVHcloud control plane.
// It decodes JSON responses into out when out is non-nil. Tests inject
// a fake; production uses the go-ovh client.
type Transport interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string) error
}

type ovhTransport struct {
	client *ovh.Client
}

// NewTransport creates a Transport backed by the go-ovh signed client.
func NewTransport(cfg config.OVHConfig) (Transport, error) {
	client, err := ovh.NewClient(
		cfg.Endpoint,
		cfg.ApplicationKey,
		cfg.ApplicationSecret,
		cfg.ConsumerKey,
	)
	if err != nil {
		return nil, fmt.Errorf("creating ovh client: %w", err)
	}
	return &ovhTransport{client: client}, nil
}

func (t *ovhTransport) Get(ctx context.Context, path string, out any) error {
	if err := t.client.GetWithContext(ctx, path, out); err != nil {
		return wrapError(http.MethodGet, path, err)
	}
	return nil
}

func (t *ovhTransport) Post(ctx context.Context, path string, body any, out any) error {
	if err := t.client.PostWithContext(ctx, path, body, out); err != nil {
		return wrapError(http.MethodPost, path, err)
	}
	return nil
}

func (t *ovhTransport) Delete(ctx context.Context, path string) error {
	if err := t.client.DeleteWithContext(ctx, path, nil); err != nil {
		return wrapError(http.MethodDelete, path, err)
	}
	return nil
}

// wrapError converts a go-ovh error into a kinded *Error.
func wrapError(method, path string, err error) error {
	kind := KindNetwork

	var apiErr *ovh.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = KindAuth
		case http.StatusNotFound:
			kind = KindNotFound
		default:
			kind = KindRemote
		}
	}

	return &Error{Kind: kind, Method: method, Path: path, Err: err}
}
