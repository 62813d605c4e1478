package snapshot

import (
	"context"

	"tfdash.dev/tfdash/internal/awscli"
	"tfdash.dev/tfdash/internal/collect/dynamodb"
	"tfdash.dev/tfdash/internal/collect/ec2"
	"tfdash.dev/tfdash/internal/collect/iam"
	"tfdash.dev/tfdash/internal/collect/s3"
	"tfdash.dev/tfdash/internal/collect/vpc"
)

// Builder assembles snapshots by invoking all six collectors in sequence.
// Collector order only affects display order; every collector fails open
// on its own, so a partial backend outage degrades sections individually.
type Builder struct {
	mode Mode
	s3   *s3.Collector
	ddb  *dynamodb.Collector
	iam  *iam.Collector
	ec2  *ec2.Collector
	vpc  *vpc.Collector
}

func NewBuilder(runner awscli.Runner, mode Mode) *Builder {
	return &Builder{
		mode: mode,
		s3:   s3.NewCollector(runner),
		ddb:  dynamodb.NewCollector(runner),
		iam:  iam.NewCollector(runner),
		ec2:  ec2.NewCollector(runner),
		vpc:  vpc.NewCollector(runner),
	}
}

func (b *Builder) Build(ctx context.Context) Snapshot {
	return Snapshot{
		Mode:           b.mode,
		Buckets:        b.s3.Collect(ctx),
		Tables:         b.ddb.Collect(ctx),
		Users:          b.iam.Collect(ctx),
		KeyPairs:       b.ec2.CollectKeyPairs(ctx),
		Instances:      b.ec2.CollectInstances(ctx),
		SecurityGroups: b.vpc.Collect(ctx),
	}
}
