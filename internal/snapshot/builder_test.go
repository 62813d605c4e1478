package snapshot

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfdash.dev/tfdash/internal/awscli"
)

type mockRunner struct {
	runFunc func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result
}

func (m *mockRunner) Run(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
	return m.runFunc(ctx, service, action, extraArgs...)
}

func TestBuild_AllBackendsDown(t *testing.T) {
	mock := &mockRunner{
		runFunc: func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
			return awscli.Unavailable()
		},
	}

	snap := NewBuilder(mock, ModeLocalStack).Build(context.Background())
	assert.Equal(t, ModeLocalStack, snap.Mode)
	assert.Empty(t, snap.Buckets)
	assert.Empty(t, snap.Tables)
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.KeyPairs)
	assert.Empty(t, snap.Instances)
	assert.Empty(t, snap.SecurityGroups)
}

func TestBuild_PartialOutageDegradesSectionsIndividually(t *testing.T) {
	mock := &mockRunner{
		runFunc: func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
			switch action {
			case "list-buckets":
				return awscli.OK(json.RawMessage(`{"Buckets": [{"Name": "state"}]}`))
			case "get-bucket-versioning":
				return awscli.OK(json.RawMessage(`{"Status": "Enabled"}`))
			default:
				// Every other service is down.
				return awscli.Unavailable()
			}
		},
	}

	snap := NewBuilder(mock, ModeRealAWS).Build(context.Background())
	require.Len(t, snap.Buckets, 1)
	assert.Equal(t, "state", snap.Buckets[0].Name)
	assert.Empty(t, snap.Tables)
	assert.Empty(t, snap.Instances)
}
