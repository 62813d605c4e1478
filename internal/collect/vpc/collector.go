package vpc

import (
	"context"
	"fmt"
	"strconv"

	"tfdash.dev/tfdash/internal/awscli"
)

type Collector struct {
	runner awscli.Runner
}

func NewCollector(runner awscli.Runner) *Collector {
	return &Collector{runner: runner}
}

// Collect lists security groups, dropping the group literally named
// "default". Each ingress permission is summarized as "<port> from <cidr>"
// with "all" for a missing FromPort and "any" for a missing CIDR; only the
// first CIDR range of a permission is shown.
func (c *Collector) Collect(ctx context.Context) []SecurityGroup {
	var list struct {
		SecurityGroups []struct {
			GroupId       string
			GroupName     string
			Description   string
			IpPermissions []struct {
				FromPort *int
				IpRanges []struct {
					CidrIp string
				}
			}
		}
	}
	if err := c.runner.Run(ctx, "ec2", "describe-security-groups").Decode(&list); err != nil {
		return nil
	}

	var groups []SecurityGroup
	for _, sg := range list.SecurityGroups {
		if sg.GroupName == "default" {
			continue
		}

		rules := make([]string, 0, len(sg.IpPermissions))
		for _, rule := range sg.IpPermissions {
			port := "all"
			if rule.FromPort != nil {
				port = strconv.Itoa(*rule.FromPort)
			}
			cidr := ""
			if len(rule.IpRanges) > 0 {
				cidr = rule.IpRanges[0].CidrIp
			}
			if cidr == "" {
				cidr = "any"
			}
			rules = append(rules, fmt.Sprintf("%s from %s", port, cidr))
		}

		groups = append(groups, SecurityGroup{
			ID:           sg.GroupId,
			Name:         sg.GroupName,
			Description:  sg.Description,
			IngressRules: rules,
		})
	}
	return groups
}
