// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package patterns holds the compiled pattern registry: one rule per
// category, compiled once at startup and read-only afterwards. A registry
// may be shared by concurrent callers.
package patterns

import (
	"fmt"
	"regexp"

	"github.com/pdiddy/regex-extractor/pkg/types"
)

// caseInsensitive is prepended to every expression.
const caseInsensitive = "(?i)"

// Rule is a compiled matching rule for one category.
type Rule struct {
	Category types.Category
	// Expr is the expression as written, without the case-insensitive flag.
	Expr string
	// Groups is the number of capturing groups. Zero means the whole match
	// is the normalized value.
	Groups int
	re     *regexp.Regexp
}

// Regexp returns the compiled expression.
func (r Rule) Regexp() *regexp.Regexp {
	return r.re
}

// CompileError reports a rule that failed to compile or whose capturing
// groups do not match its declaration.
type CompileError struct {
	Category types.Category
	Err      error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compiling %s rule: %v", e.Category, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Options selects the rules a Registry compiles.
type Options struct {
	// Categories lists the enabled categories. Empty or containing "all"
	// enables every category. Order does not matter: the registry always
	// iterates in canonical order.
	Categories []string

	// CreditCardPolicy selects the credit card variant. Empty means issuer.
	CreditCardPolicy types.CreditCardPolicy
}

// Registry is an ordered, immutable set of compiled rules.
type Registry struct {
	rules  []*Rule
	byName map[types.Category]*Rule
	policy types.CreditCardPolicy
}

// New compiles the rules selected by opts. Any compilation failure is
// returned as a *CompileError; no partial registry is returned.
func New(opts Options) (*Registry, error) {
	policy := opts.CreditCardPolicy
	if policy == "" {
		policy = types.PolicyIssuer
	}
	if policy != types.PolicyIssuer && policy != types.PolicyLength {
		return nil, fmt.Errorf("unknown credit card policy %q (must be issuer or length)", policy)
	}

	enabled, err := enabledCategories(opts.Categories)
	if err != nil {
		return nil, err
	}

	var defs []definition
	for _, d := range definitions(policy) {
		if enabled[d.category] {
			defs = append(defs, d)
		}
	}

	reg, err := compile(defs)
	if err != nil {
		return nil, err
	}
	reg.policy = policy
	return reg, nil
}

// MustNew is like New but panics on error.
func MustNew(opts Options) *Registry {
	reg, err := New(opts)
	if err != nil {
		panic(err)
	}
	return reg
}

// Default returns a registry with every category and the issuer policy.
func Default() *Registry {
	return MustNew(Options{})
}

// enabledCategories resolves a category list into a set. Unknown names are
// an error.
func enabledCategories(names []string) (map[types.Category]bool, error) {
	enabled := make(map[types.Category]bool)
	if len(names) == 0 {
		names = []string{"all"}
	}
	for _, name := range names {
		if name == "all" {
			for _, c := range types.AllCategories {
				enabled[c] = true
			}
			continue
		}
		c, err := types.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		enabled[c] = true
	}
	return enabled, nil
}

// compile builds a registry from definitions, checking each declared group count.
func compile(defs []definition) (*Registry, error) {
	reg := &Registry{
		rules:  make([]*Rule, 0, len(defs)),
		byName: make(map[types.Category]*Rule, len(defs)),
	}
	for _, d := range defs {
		re, err := regexp.Compile(caseInsensitive + d.expr)
		if err != nil {
			return nil, &CompileError{Category: d.category, Err: err}
		}
		if got := re.NumSubexp(); got != d.groups {
			return nil, &CompileError{
				Category: d.category,
				Err:      fmt.Errorf("expression has %d capturing groups, rule declares %d", got, d.groups),
			}
		}
		rule := &Rule{Category: d.category, Expr: d.expr, Groups: d.groups, re: re}
		reg.rules = append(reg.rules, rule)
		reg.byName[d.category] = rule
	}
	return reg, nil
}

// Categories returns the registered categories in iteration order.
func (r *Registry) Categories() []types.Category {
	out := make([]types.Category, len(r.rules))
	for i, rule := range r.rules {
		out[i] = rule.Category
	}
	return out
}

// Rules returns copies of the rules in iteration order.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	for i, rule := range r.rules {
		out[i] = *rule
	}
	return out
}

// Rule returns a copy of the rule for c, if registered.
func (r *Registry) Rule(c types.Category) (Rule, bool) {
	rule, ok := r.byName[c]
	if !ok {
		return Rule{}, false
	}
	return *rule, true
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

// CreditCardPolicy returns the credit card variant the registry was built with.
func (r *Registry) CreditCardPolicy() types.CreditCardPolicy {
	return r.policy
}
