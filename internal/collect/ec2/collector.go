package ec2

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

// CollectKeyPairs lists SSH key pairs. Fails open to an empty result.
func (c *Collector) CollectKeyPairs(ctx context.Context) []KeyPair {
	var list struct {
		KeyPairs []struct {
			KeyName        string
			KeyFingerprint string
			KeyType        string
		}
	}
	if err := c.runner.Run(ctx, "ec2", "describe-key-pairs").Decode(&list); err != nil {
		return nil
	}

	keys := make([]KeyPair, 0, len(list.KeyPairs))
	for _, k := range list.KeyPairs {
		typ := k.KeyType
		if typ == "" {
			typ = "rsa"
		}
		keys = append(keys, KeyPair{
			Name:        k.KeyName,
			Fingerprint: k.KeyFingerprint,
			Type:        typ,
		})
	}
	return keys
}

// CollectInstances lists instances across all reservations. The display
// name is the first tag keyed "Name"; without one the instance renders as
// "(unnamed)".
func (c *Collector) CollectInstances(ctx context.Context) []Instance {
	var list struct {
		Reservations []struct {
			Instances []struct {
				InstanceId       string
				InstanceType     string
				PublicIpAddress  string
				PrivateIpAddress string
				KeyName          string
				State            struct {
					Name string
				}
				Tags []struct {
					Key   string
					Value string
				}
			}
		}
	}
	if err := c.runner.Run(ctx, "ec2", "describe-instances").Decode(&list); err != nil {
		return nil
	}

	var instances []Instance
	for _, reservation := range list.Reservations {
		for _, inst := range reservation.Instances {
			name := ""
			for _, tag := range inst.Tags {
				if tag.Key == "Name" {
					name = tag.Value
					break
				}
			}
			if name == "" {
				name = "(unnamed)"
			}

			state := inst.State.Name
			if state == "" {
				state = "unknown"
			}

			instances = append(instances, Instance{
				ID:        inst.InstanceId,
				Name:      name,
				Type:      inst.InstanceType,
				State:     state,
				PublicIP:  inst.PublicIpAddress,
				PrivateIP: inst.PrivateIpAddress,
				KeyName:   inst.KeyName,
			})
		}
	}
	return instances
}
