package emit

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp/v3"
	"gopkg.in/yaml.v3"
)

// DumpFormat selects how a tree is rendered for inspection.
type DumpFormat string

const (
	DumpYAML   DumpFormat = "yaml"
	DumpPretty DumpFormat = "pp"
)

// ParseDumpFormat validates a format name.
func ParseDumpFormat(name string) (DumpFormat, error) {
	switch f := DumpFormat(name); f {
	case DumpYAML, DumpPretty:
		return f, nil
	default:
		return "", fmt.Errorf("unknown dump format %q (want %q or %q)", name, DumpYAML, DumpPretty)
	}
}

// Dump renders doc in format f.
func Dump(w io.Writer, doc *Node, f DumpFormat) error {
	switch f {
	case DumpYAML:
		return DumpYAMLTo(w, doc)
	case DumpPretty:
		return DumpPrettyTo(w, doc)
	default:
		return fmt.Errorf("unknown dump format %q", f)
	}
}

// DumpYAMLTo writes the tree as YAML.
func DumpYAMLTo(w io.Writer, doc *Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("dumping tree as yaml: %w", err)
	}
	return enc.Close()
}

// DumpPrettyTo writes the tree with the pp pretty printer, without colors.
func DumpPrettyTo(w io.Writer, doc *Node) error {
	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(false)
	_, err := printer.Println(doc)
	return err
}
