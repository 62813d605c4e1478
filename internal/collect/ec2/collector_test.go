package ec2

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

func TestCollectKeyPairs(t *testing.T) {
	mock := &mockRunner{
		runFunc: func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
			return awscli.OK(json.RawMessage(`{
				"KeyPairs": [
					{"KeyName": "deployer", "KeyFingerprint": "3f:1a:52:7e:9c:0b:44:de:ad:be:ef:00:11:22:33:44:55:66:77:88", "KeyType": "ed25519"},
					{"KeyName": "legacy", "KeyFingerprint": "aa:bb"}
				]
			}`))
		},
	}

	keys := NewCollector(mock).CollectKeyPairs(context.Background())
	require.Len(t, keys, 2)
	assert.Equal(t, "deployer", keys[0].Name)
	assert.Equal(t, "ed25519", keys[0].Type)
	// Full fingerprint survives; the renderer truncates for display.
	assert.Equal(t, "3f:1a:52:7e:9c:0b:44:de:ad:be:ef:00:11:22:33:44:55:66:77:88", keys[0].Fingerprint)
	assert.Equal(t, "rsa", keys[1].Type)
}

func TestCollectKeyPairs_Unavailable(t *testing.T) {
	mock := &mockRunner{
		runFunc: func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
			return awscli.Unavailable()
		},
	}

	assert.Empty(t, NewCollector(mock).CollectKeyPairs(context.Background()))
}

func TestCollectInstances(t *testing.T) {
	mock := &mockRunner{
		runFunc: func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
			return awscli.OK(json.RawMessage(`{
				"Reservations": [
					{
						"Instances": [{
							"InstanceId": "i-0abc123",
							"InstanceType": "t2.micro",
							"PublicIpAddress": "54.1.2.3",
							"PrivateIpAddress": "10.0.1.5",
							"KeyName": "deployer",
							"State": {"Name": "running"},
							"Tags": [
								{"Key": "Env", "Value": "prod"},
								{"Key": "Name", "Value": "web-1"}
							]
						}]
					},
					{
						"Instances": [{
							"InstanceId": "i-0def456",
							"InstanceType": "t3.small",
							"State": {"Name": "stopped"}
						}]
					}
				]
			}`))
		},
	}

	instances := NewCollector(mock).CollectInstances(context.Background())
	require.Len(t, instances, 2)

	assert.Equal(t, "web-1", instances[0].Name)
	assert.Equal(t, "i-0abc123", instances[0].ID)
	assert.Equal(t, "running", instances[0].State)
	assert.Equal(t, "54.1.2.3", instances[0].PublicIP)
	assert.Equal(t, "10.0.1.5", instances[0].PrivateIP)

	assert.Equal(t, "(unnamed)", instances[1].Name)
	assert.Equal(t, "", instances[1].PublicIP)
}

func TestCollectInstances_FirstNameTagWins(t *testing.T) {
	mock := &mockRunner{
		runFunc: func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
			return awscli.OK(json.RawMessage(`{
				"Reservations": [{
					"Instances": [{
						"InstanceId": "i-1",
						"State": {"Name": "running"},
						"Tags": [
							{"Key": "Name", "Value": "first"},
							{"Key": "Name", "Value": "second"}
						]
					}]
				}]
			}`))
		},
	}

	instances := NewCollector(mock).CollectInstances(context.Background())
	require.Len(t, instances, 1)
	assert.Equal(t, "first", instances[0].Name)
}

func TestCollectInstances_Unavailable(t *testing.T) {
	mock := &mockRunner{
		runFunc: func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
			return awscli.Unavailable()
		},
	}

	assert.Empty(t, NewCollector(mock).CollectInstances(context.Background()))
}

func TestCollectInstances_MissingStateIsUnknown(t *testing.T) {
	mock := &mockRunner{
		runFunc: func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
			return awscli.OK(json.RawMessage(`{"Reservations": [{"Instances": [{"InstanceId": "i-1"}]}]}`))
		},
	}

	instances := NewCollector(mock).CollectInstances(context.Background())
	require.Len(t, instances, 1)
	assert.Equal(t, "unknown", instances[0].State)
}
