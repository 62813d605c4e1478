package s3

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

// Collect lists buckets and resolves each bucket's versioning status with
// one sub-query per bucket. An unavailable list call fails open to an empty
// result; an unavailable versioning sub-query marks that bucket "Unknown",
// while "Disabled" is the service's own default when Status is omitted.
func (c *Collector) Collect(ctx context.Context) []Bucket {
	var list struct {
		Buckets []struct {
			Name         string
			CreationDate string
		}
	}
	if err := c.runner.Run(ctx, "s3api", "list-buckets").Decode(&list); err != nil {
		return nil
	}

	buckets := make([]Bucket, 0, len(list.Buckets))
	for _, b := range list.Buckets {
		status := "Unknown"
		res := c.runner.Run(ctx, "s3api", "get-bucket-versioning", "--bucket", b.Name)
		if res.Available() {
			var v struct{ Status string }
			if err := res.Decode(&v); err == nil {
				status = v.Status
				if status == "" {
					status = "Disabled"
				}
			}
		}

		buckets = append(buckets, Bucket{
			Name:       b.Name,
			Created:    b.CreationDate,
			Versioning: status,
		})
	}
	return buckets
}
