package snapshot

import (
	"tfdash.dev/tfdash/internal/collect/dynamodb"
	"tfdash.dev/tfdash/internal/collect/ec2"
	"tfdash.dev/tfdash/internal/collect/iam"
	"tfdash.dev/tfdash/internal/collect/s3"
	"tfdash.dev/tfdash/internal/collect/vpc"
)

// Mode identifies which backend the snapshot was taken against.
type Mode string

const (
	ModeLocalStack Mode = "LocalStack"
	ModeRealAWS    Mode = "Real AWS"
)

// Snapshot is the complete set of normalized resource views for one render
// cycle. It is built fresh per request and never cached.
type Snapshot struct {
	Mode           Mode
	Buckets        []s3.Bucket
	Tables         []dynamodb.Table
	Users          []iam.User
	KeyPairs       []ec2.KeyPair
	Instances      []ec2.Instance
	SecurityGroups []vpc.SecurityGroup
}
