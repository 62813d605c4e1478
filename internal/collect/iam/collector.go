package iam

import (
	"context"

	"tfdash.dev/tfdash/internal/awscli"
)

type Collector struct {
	runner awscli.Runner
}

func NewCollector(runner awscli.Runner) *Collector {
	return &Collector{runner: runner}
}

// Collect lists users and resolves each user's access keys and attached
// policies with one sub-query apiece. A failed sub-query leaves the
// corresponding list empty; the user is still included.
func (c *Collector) Collect(ctx context.Context) []User {
	var list struct {
		Users []struct {
			UserName   string
			Arn        string
			CreateDate string
		}
	}
	if err := c.runner.Run(ctx, "iam", "list-users").Decode(&list); err != nil {
		return nil
	}

	users := make([]User, 0, len(list.Users))
	for _, u := range list.Users {
		users = append(users, User{
			Name:       u.UserName,
			ARN:        u.Arn,
			Created:    u.CreateDate,
			AccessKeys: c.accessKeys(ctx, u.UserName),
			Policies:   c.attachedPolicies(ctx, u.UserName),
		})
	}
	return users
}

func (c *Collector) accessKeys(ctx context.Context, userName string) []AccessKey {
	var data struct {
		AccessKeyMetadata []struct {
			AccessKeyId string
			Status      string
		}
	}
	res := c.runner.Run(ctx, "iam", "list-access-keys", "--user-name", userName)
	if err := res.Decode(&data); err != nil {
		return nil
	}

	keys := make([]AccessKey, 0, len(data.AccessKeyMetadata))
	for _, k := range data.AccessKeyMetadata {
		status := k.Status
		if status == "" {
			status = "Unknown"
		}
		keys = append(keys, AccessKey{ID: k.AccessKeyId, Status: status})
	}
	return keys
}

func (c *Collector) attachedPolicies(ctx context.Context, userName string) []string {
	var data struct {
		AttachedPolicies []struct {
			PolicyName string
		}
	}
	res := c.runner.Run(ctx, "iam", "list-attached-user-policies", "--user-name", userName)
	if err := res.Decode(&data); err != nil {
		return nil
	}

	names := make([]string, 0, len(data.AttachedPolicies))
	for _, p := range data.AttachedPolicies {
		names = append(names, p.PolicyName)
	}
	return names
}
