package vpc

// SecurityGroup is the renderer-ready view of one security group. The
// VPC's implicit "default" group never appears here.
type SecurityGroup struct {
	ID           string
	Name         string
	Description  string
	IngressRules []string // "<port> from <cidr>" summaries, list order preserved
}
