package ec2

// KeyPair is the renderer-ready view of one EC2 key pair. Fingerprint is
// kept in full; display truncation happens at render time.
type KeyPair struct {
	Name        string
	Fingerprint string
	Type        string // defaults to "rsa" when the service omits KeyType
}

// Instance is the renderer-ready view of one EC2 instance.
type Instance struct {
	ID        string
	Name      string // first "Name" tag value, or "(unnamed)"
	Type      string
	State     string
	PublicIP  string // empty when not assigned
	PrivateIP string
	KeyName   string
}
