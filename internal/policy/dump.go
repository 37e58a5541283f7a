package policy

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type ruleDoc struct {
	Method   string   `yaml:"method"`
	Patterns []string `yaml:"patterns"`
	Decision string   `yaml:"decision"`
	DevOnly  bool     `yaml:"dev_only,omitempty"`
}

type tableDoc struct {
	Default string    `yaml:"default"`
	Rules   []ruleDoc `yaml:"rules"`
}

// Dump writes rules as YAML in declaration order.
func Dump(w io.Writer, rules []Rule) error {
	doc := tableDoc{Default: Authenticated.String()}
	for _, r := range rules {
		method := r.Method
		if method == "" || method == AnyMethod {
			method = "ANY"
		}
		doc.Rules = append(doc.Rules, ruleDoc{
			Method:   method,
			Patterns: r.Patterns,
			Decision: r.Decision.String(),
			DevOnly:  r.DevOnly,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode policy table: %w", err)
	}
	return enc.Close()
}
