package dynamodb

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

// Collect lists tables and describes each one for its key schema, status,
// and item count. Tables whose describe call fails are skipped; the list
// call alone carries nothing worth rendering.
func (c *Collector) Collect(ctx context.Context) []Table {
	var list struct {
		TableNames []string
	}
	if err := c.runner.Run(ctx, "dynamodb", "list-tables").Decode(&list); err != nil {
		return nil
	}

	tables := make([]Table, 0, len(list.TableNames))
	for _, name := range list.TableNames {
		var desc struct {
			Table *struct {
				TableStatus string
				ItemCount   int64
				KeySchema   []struct {
					AttributeName string
					KeyType       string
				}
			}
		}
		res := c.runner.Run(ctx, "dynamodb", "describe-table", "--table-name", name)
		if err := res.Decode(&desc); err != nil || desc.Table == nil {
			continue
		}

		// A valid schema holds at most one HASH key; first match wins.
		hashKey := ""
		for _, attr := range desc.Table.KeySchema {
			if attr.KeyType == "HASH" {
				hashKey = attr.AttributeName
				break
			}
		}

		status := desc.Table.TableStatus
		if status == "" {
			status = "UNKNOWN"
		}

		tables = append(tables, Table{
			Name:      name,
			HashKey:   hashKey,
			Status:    status,
			ItemCount: desc.Table.ItemCount,
		})
	}
	return tables
}
