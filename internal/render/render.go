// Package render turns a resource snapshot into the dashboard HTML page.
// Rendering is a pure function of the snapshot: identical snapshots produce
// byte-identical documents.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"tfdash.dev/tfdash/internal/snapshot"
)

var funcs = template.FuncMap{
	"lower": strings.ToLower,

	// keyID shortens an access key ID for display.
	"keyID": func(id string) string {
		return truncate(id, 16) + "..."
	},

	// fingerprint shortens a key fingerprint for display.
	"fingerprint": func(fp string) string {
		return truncate(fp, 40) + "..."
	},

	// policyList shows at most the first three attached policy names.
	"policyList": func(policies []string) string {
		if len(policies) == 0 {
			return "None"
		}
		if len(policies) > 3 {
			policies = policies[:3]
		}
		return strings.Join(policies, ", ")
	},

	// ruleLines joins up to three ingress-rule summaries with line breaks.
	"ruleLines": func(rules []string) template.HTML {
		if len(rules) == 0 {
			return "No inbound rules"
		}
		if len(rules) > 3 {
			rules = rules[:3]
		}
		escaped := make([]string, len(rules))
		for i, r := range rules {
			escaped[i] = template.HTMLEscapeString(r)
		}
		return template.HTML(strings.Join(escaped, "<br>"))
	},
}

var page = template.Must(template.New("dashboard").Funcs(funcs).Parse(pageTemplate))

type pageData struct {
	snapshot.Snapshot
	RealAWS     bool
	ShowDiagram bool

	// Pre-padded diagram cells. The fixed widths keep the monospace
	// diagram's box edges aligned.
	DiagramBucket   string
	DiagramTable    string
	DiagramInstance string
}

// Page renders the full dashboard document for one snapshot.
func Page(snap snapshot.Snapshot) ([]byte, error) {
	data := pageData{
		Snapshot:    snap,
		RealAWS:     snap.Mode == snapshot.ModeRealAWS,
		ShowDiagram: len(snap.Buckets) > 0 || len(snap.Tables) > 0 || len(snap.Instances) > 0,
	}

	bucket := "terraform-state-bucket"
	if len(snap.Buckets) > 0 {
		bucket = truncate(snap.Buckets[0].Name, 30)
	}
	table := "terraform-locks"
	if len(snap.Tables) > 0 {
		table = truncate(snap.Tables[0].Name, 25)
	}
	instance := "EC2: (not created yet)"
	if len(snap.Instances) > 0 {
		instance = "EC2: " + truncate(snap.Instances[0].Name, 20)
	}
	data.DiagramBucket = fmt.Sprintf("%-30s", bucket)
	data.DiagramTable = fmt.Sprintf("%-25s", table)
	data.DiagramInstance = fmt.Sprintf("%-20s", instance)

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering dashboard: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
