package policy

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/gobwas/glob"
)

// Decision is the classification a rule assigns to a request.
type Decision int

const (
	// Authenticated requires a resolved identity. It is the zero value so that
	// anything unclassified fails closed.
	Authenticated Decision = iota
	// Public admits the request without an identity.
	Public
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	switch d {
	case Public:
		return "PUBLIC"
	case Authenticated:
		return "AUTHENTICATED"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// AnyMethod matches every HTTP method.
const AnyMethod = "*"

// Rule classifies requests whose method and path match.
//
// Patterns use '/'-separated segments: '*' matches within one segment and a trailing
// "/**" matches zero or more further segments.
type Rule struct {
	Method   string
	Patterns []string
	Decision Decision
	// DevOnly rules are skipped unless development routes are enabled.
	DevOnly bool
}

// Options control table compilation.
type Options struct {
	DevRoutesEnabled bool
}

// ErrEmptyPattern is returned when a rule has no usable pattern.
var ErrEmptyPattern = errors.New("policy rule has an empty pattern")

type compiledRule struct {
	index    int
	rule     Rule
	matchers []glob.Glob
}

// Table is a compiled, immutable route policy table. It is safe for concurrent use.
type Table struct {
	rules []compiledRule
}

// Match describes which rule decided a request.
type Match struct {
	// Index is the rule's position in the declared list, or -1 for the default.
	Index    int
	Decision Decision
}

// Compile validates and compiles rules in order. Rules marked DevOnly are dropped
// unless opts.DevRoutesEnabled is set.
func Compile(rules []Rule, opts Options) (*Table, error) {
	t := &Table{rules: make([]compiledRule, 0, len(rules))}
	for i, r := range rules {
		if r.DevOnly && !opts.DevRoutesEnabled {
			continue
		}
		if len(r.Patterns) == 0 {
			return nil, fmt.Errorf("rule %d: %w", i, ErrEmptyPattern)
		}
		cr := compiledRule{index: i, rule: r}
		for _, p := range r.Patterns {
			g, err := compilePattern(p)
			if err != nil {
				return nil, fmt.Errorf("rule %d pattern %q: %w", i, p, err)
			}
			cr.matchers = append(cr.matchers, g)
		}
		t.rules = append(t.rules, cr)
	}
	return t, nil
}

// MustCompile is like Compile but panics on error. Intended for static tables.
func MustCompile(rules []Rule, opts Options) *Table {
	t, err := Compile(rules, opts)
	if err != nil {
		panic(err)
	}
	return t
}

// Decide returns the decision for a request.
func (t *Table) Decide(method, requestPath string) Decision {
	return t.Lookup(method, requestPath).Decision
}

// Lookup scans the table in order and reports the first matching rule.
// No match yields Authenticated with Index -1.
func (t *Table) Lookup(method, requestPath string) Match {
	p := normalizePath(requestPath)
	for _, cr := range t.rules {
		if !methodMatches(cr.rule.Method, method) {
			continue
		}
		for _, g := range cr.matchers {
			if g.Match(p) {
				return Match{Index: cr.index, Decision: cr.rule.Decision}
			}
		}
	}
	return Match{Index: -1, Decision: Authenticated}
}

// Len returns the number of active rules.
func (t *Table) Len() int {
	return len(t.rules)
}

func methodMatches(ruleMethod, method string) bool {
	if ruleMethod == "" || ruleMethod == AnyMethod {
		return true
	}
	return strings.EqualFold(ruleMethod, method)
}

// normalizePath cleans the path so dot segments cannot smuggle a request past
// a more specific rule.
func normalizePath(p string) string {
	if p == "" || p[0] != '/' {
		p = "/" + p
	}
	return path.Clean(p)
}

func compilePattern(p string) (glob.Glob, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return nil, ErrEmptyPattern
	}
	if !strings.HasPrefix(p, "/") {
		return nil, fmt.Errorf("pattern must start with '/'")
	}
	if p == "/**" {
		return glob.Compile(p, '/')
	}
	if prefix, ok := strings.CutSuffix(p, "/**"); ok {
		// "/x/**" also matches "/x" itself.
		return glob.Compile("{"+prefix+","+prefix+"/**}", '/')
	}
	return glob.Compile(p, '/')
}
