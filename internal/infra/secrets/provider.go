// internal/infra/secrets/provider.go
package secrets

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// Provider reads secret payloads (service account JSON etc.) from Secret
// Manager.
type Provider struct {
	sm        *secretmanager.Client
	projectID string
}

func NewProvider(ctx context.Context, projectID string) (*Provider, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, errors.New("secrets: projectID is empty")
	}
	sm, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &Provider{sm: sm, projectID: projectID}, nil
}

// Access returns the payload of one secret version ("latest" when version
// is empty).
func (p *Provider) Access(ctx context.Context, secretID, version string) ([]byte, error) {
	if p == nil || p.sm == nil {
		return nil, errors.New("secrets: provider not configured")
	}
	secretID = strings.TrimSpace(secretID)
	if secretID == "" {
		return nil, errors.New("secrets: secretID is empty")
	}
	if strings.TrimSpace(version) == "" {
		version = "latest"
	}

	name := "projects/" + p.projectID + "/secrets/" + secretID + "/versions/" + version
	resp, err := p.sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return nil, errors.New("secrets: AccessSecretVersion failed (" + name + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return nil, errors.New("secrets: empty payload (" + name + ")")
	}
	return resp.Payload.Data, nil
}

func (p *Provider) Close() error {
	if p == nil || p.sm == nil {
		return nil
	}
	return p.sm.Close()
}
