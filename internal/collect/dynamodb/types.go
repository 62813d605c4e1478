package dynamodb

// Table is the renderer-ready view of one DynamoDB table.
type Table struct {
	Name      string
	HashKey   string // empty when the schema has no HASH key
	Status    string
	ItemCount int64
}
