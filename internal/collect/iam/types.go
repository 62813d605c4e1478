package iam

// User is the renderer-ready view of one IAM user.
type User struct {
	Name       string
	ARN        string
	Created    string // raw CreateDate string from the CLI
	AccessKeys []AccessKey
	Policies   []string // attached policy names, full list; display truncation is the renderer's job
}

type AccessKey struct {
	ID     string
	Status string // Active, Inactive, or Unknown
}
