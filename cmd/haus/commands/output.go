package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// printer writes human output; rows are aligned in columns.
type printer struct {
	tw *tabwriter.Writer
}

func (p *printer) row(cols ...string) {
	fmt.Fprintln(p.tw, strings.Join(cols, "\t"))
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.tw, format+"\n", args...)
}

// render writes v as JSON or YAML, or calls table for the human format.
func (c *cli) render(v any, table func(*printer)) error {
	switch c.output {
	case formatJSON:
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(c.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		p := &printer{tw: tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)}
		table(p)
		return p.tw.Flush()
	}
}
