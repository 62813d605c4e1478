package s3

// Bucket is the renderer-ready view of one S3 bucket.
type Bucket struct {
	Name       string
	Created    string // raw CreationDate string from the CLI
	Versioning string // Enabled, Suspended, Disabled, or Unknown
}
