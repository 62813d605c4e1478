package vpc

import (
	"context"
	"encoding/json"
	"testing"

	"tfdash.dev/tfdash/internal/awscli"
)

type mockRunner struct {
	runFunc func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result
}

func (m *mockRunner) Run(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
	return m.runFunc(ctx, service, action, extraArgs...)
}

func TestCollect(t *testing.T) {
	mock := &mockRunner{
		runFunc: func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
			return awscli.OK(json.RawMessage(`{
				"SecurityGroups": [
					{
						"GroupId": "sg-000",
						"GroupName": "default",
						"Description": "default VPC security group",
						"IpPermissions": [{"FromPort": 443, "IpRanges": [{"CidrIp": "0.0.0.0/0"}]}]
					},
					{
						"GroupId": "sg-111",
						"GroupName": "web-sg",
						"Description": "Allow SSH",
						"IpPermissions": [
							{"FromPort": 22, "IpRanges": [{"CidrIp": "10.0.0.0/16"}, {"CidrIp": "192.168.0.0/24"}]},
							{"IpRanges": [{"CidrIp": "0.0.0.0/0"}]},
							{"FromPort": 8080}
						]
					}
				]
			}`))
		},
	}

	groups := NewCollector(mock).Collect(context.Background())
	if len(groups) != 1 {
		t.Fatalf("expected default group to be dropped, got %d groups", len(groups))
	}

	sg := groups[0]
	if sg.ID != "sg-111" || sg.Name != "web-sg" {
		t.Errorf("group = %+v", sg)
	}
	if len(sg.IngressRules) != 3 {
		t.Fatalf("expected 3 rule summaries, got %d", len(sg.IngressRules))
	}
	// First CIDR only.
	if sg.IngressRules[0] != "22 from 10.0.0.0/16" {
		t.Errorf("IngressRules[0] = %q, want %q", sg.IngressRules[0], "22 from 10.0.0.0/16")
	}
	// Missing FromPort renders as "all".
	if sg.IngressRules[1] != "all from 0.0.0.0/0" {
		t.Errorf("IngressRules[1] = %q, want %q", sg.IngressRules[1], "all from 0.0.0.0/0")
	}
	// Missing CIDR renders as "any".
	if sg.IngressRules[2] != "8080 from any" {
		t.Errorf("IngressRules[2] = %q, want %q", sg.IngressRules[2], "8080 from any")
	}
}

func TestCollect_Unavailable(t *testing.T) {
	mock := &mockRunner{
		runFunc: func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
			return awscli.Unavailable()
		},
	}

	if groups := NewCollector(mock).Collect(context.Background()); len(groups) != 0 {
		t.Fatalf("expected empty result, got %d groups", len(groups))
	}
}

func TestCollect_DefaultDroppedRegardlessOfRules(t *testing.T) {
	mock := &mockRunner{
		runFunc: func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
			return awscli.OK(json.RawMessage(`{
				"SecurityGroups": [{
					"GroupId": "sg-d",
					"GroupName": "default",
					"IpPermissions": [{"FromPort": 22, "IpRanges": [{"CidrIp": "10.0.0.0/8"}]}]
				}]
			}`))
		},
	}

	if groups := NewCollector(mock).Collect(context.Background()); len(groups) != 0 {
		t.Fatalf("default group must be excluded, got %d groups", len(groups))
	}
}
