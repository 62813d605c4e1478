package s3

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
			switch action {
			case "list-buckets":
				return awscli.OK(json.RawMessage(`{
					"Buckets": [
						{"Name": "terraform-state", "CreationDate": "2026-01-10T08:00:00+00:00"},
						{"Name": "assets", "CreationDate": "2026-02-01T12:30:00+00:00"}
					]
				}`))
			case "get-bucket-versioning":
				if len(extraArgs) == 2 && extraArgs[1] == "terraform-state" {
					return awscli.OK(json.RawMessage(`{"Status": "Enabled"}`))
				}
				// Versioning never enabled: the service returns an empty document.
				return awscli.OK(nil)
			}
			t.Fatalf("unexpected action %q", action)
			return awscli.Unavailable()
		},
	}

	buckets := NewCollector(mock).Collect(context.Background())
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Name != "terraform-state" {
		t.Errorf("Name = %s, want terraform-state", buckets[0].Name)
	}
	if buckets[0].Versioning != "Enabled" {
		t.Errorf("Versioning = %s, want Enabled", buckets[0].Versioning)
	}
	if buckets[0].Created != "2026-01-10T08:00:00+00:00" {
		t.Errorf("Created = %s, want raw CreationDate", buckets[0].Created)
	}
	if buckets[1].Versioning != "Disabled" {
		t.Errorf("Versioning = %s, want Disabled for empty versioning document", buckets[1].Versioning)
	}
}

func TestCollect_ListUnavailable(t *testing.T) {
	mock := &mockRunner{
		runFunc: func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
			return awscli.Unavailable()
		},
	}

	buckets := NewCollector(mock).Collect(context.Background())
	if len(buckets) != 0 {
		t.Fatalf("expected empty result, got %d buckets", len(buckets))
	}
}

func TestCollect_VersioningUnavailableIsUnknown(t *testing.T) {
	mock := &mockRunner{
		runFunc: func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
			if action == "list-buckets" {
				return awscli.OK(json.RawMessage(`{"Buckets": [{"Name": "state", "CreationDate": ""}]}`))
			}
			return awscli.Unavailable()
		},
	}

	buckets := NewCollector(mock).Collect(context.Background())
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	if buckets[0].Versioning != "Unknown" {
		t.Errorf("Versioning = %s, want Unknown when the sub-query fails", buckets[0].Versioning)
	}
}

func TestCollect_SuspendedPassesThrough(t *testing.T) {
	mock := &mockRunner{
		runFunc: func(ctx context.Context, service, action string, extraArgs ...string) awscli.Result {
			if action == "list-buckets" {
				return awscli.OK(json.RawMessage(`{"Buckets": [{"Name": "state"}]}`))
			}
			return awscli.OK(json.RawMessage(`{"Status": "Suspended"}`))
		},
	}

	buckets := NewCollector(mock).Collect(context.Background())
	if buckets[0].Versioning != "Suspended" {
		t.Errorf("Versioning = %s, want Suspended", buckets[0].Versioning)
	}
}
