// Package conform implements verifiers of connection acceptance rules
// between diagram elements.
//
// Elements are referred to by kind name, e.g. actor or class. An
// empty name means the other end of the relation is not yet known.
package conform

import (
	"errors"
	"fmt"

	"github.com/gregoryv/umldraw/model"
)

// AcceptFunc returns true if an element of kind self accepts playing
// role as in a relation of type rt with an element of kind with.
type AcceptFunc func(self string, rt model.RelationType, as model.RelationEndType, with string) bool

// VerifyAcceptance verifies fn against the given rules. If no rules
// are given, RulesAccept is used.
func VerifyAcceptance(fn AcceptFunc, rules ...RuleAccept) error {
	var all []error
	if len(rules) == 0 {
		rules = RulesAccept
	}
	for _, rule := range rules {
		if err := rule.Verify(fn); err != nil {
			all = append(all, err)
		}
	}
	return errors.Join(all...)
}

var RulesAccept = []RuleAccept{
	// source end is checked before the target is chosen
	{true, "actor", model.Inheritance, model.Source, "class"},
	{true, "actor", model.Composition, model.Source, ""},
	{false, "actor", model.Inheritance, model.Target, "class"},
	{false, "actor", model.Inheritance, model.Target, "actor"},
	{true, "actor", model.Association, model.Target, "actor"},
	{true, "actor", model.Dependency, model.Target, "actor"},
	{false, "actor", model.Association, model.Target, "class"},
	{false, "actor", model.Association, model.Target, "component"},
	{false, "actor", model.Association, model.Target, ""},

	{true, "class", model.Inheritance, model.Source, "class"},
	{true, "class", model.Inheritance, model.Target, "class"},
	{true, "class", model.InterfaceRealization, model.Target, "class"},
	{true, "class", model.Association, model.Target, "component"},
	{true, "class", model.Association, model.Source, ""},
	{false, "class", model.Inheritance, model.Source, "actor"},
	{false, "class", model.Inheritance, model.Target, "component"},
	{false, "class", model.InterfaceRealization, model.Target, "component"},
	{false, "class", model.Association, model.Source, "actor"},
	{false, "class", model.Dependency, model.Target, "package"},

	{true, "component", model.Inheritance, model.Source, "actor"},
	{true, "component", model.Dependency, model.Target, "component"},
	{true, "component", model.Association, model.Target, "class"},
	{false, "component", model.Inheritance, model.Target, "component"},
	{false, "component", model.Association, model.Target, "actor"},
	{false, "component", model.Dependency, model.Target, "package"},

	{true, "package", model.Dependency, model.Target, "package"},
	{true, "package", model.Dependency, model.Source, "package"},
	{true, "package", model.Association, model.Source, ""},
	{false, "package", model.Association, model.Target, "package"},
	{false, "package", model.Dependency, model.Target, "class"},
	{false, "package", model.Inheritance, model.Source, "package"},
}

type RuleAccept struct {
	Exp      bool
	Self     string
	Relation model.RelationType
	As       model.RelationEndType
	With     string
}

func (r *RuleAccept) Verify(fn AcceptFunc) error {
	got := fn(r.Self, r.Relation, r.As, r.With)
	if r.Exp && !got {
		return fmt.Errorf("%s as %s should accept %s with %s", r.Self, r.As, r.Relation, r.with())
	}
	if !r.Exp && got {
		return fmt.Errorf("%s as %s should NOT accept %s with %s", r.Self, r.As, r.Relation, r.with())
	}
	return nil
}

func (r *RuleAccept) with() string {
	if r.With == "" {
		return "unknown"
	}
	return r.With
}

// ----------------------------------------

// ConnectFunc returns true if a relation of type rt may be created
// from an element of kind source to one of kind target.
type ConnectFunc func(rt model.RelationType, source, target string) bool

// VerifyConnect verifies fn against the given rules. If no rules are
// given, RulesConnect is used.
func VerifyConnect(fn ConnectFunc, rules ...RuleConnect) error {
	var all []error
	if len(rules) == 0 {
		rules = RulesConnect
	}
	for _, rule := range rules {
		if err := rule.Verify(fn); err != nil {
			all = append(all, err)
		}
	}
	return errors.Join(all...)
}

// RulesConnect require both ends to accept.
var RulesConnect = []RuleConnect{
	{true, model.Association, "actor", "actor"},
	{true, model.Inheritance, "class", "class"},
	{true, model.Association, "class", "component"},
	{true, model.Dependency, "component", "class"},
	{true, model.Dependency, "package", "package"},

	{false, model.Inheritance, "actor", "class"},
	{false, model.Inheritance, "actor", "actor"},
	{false, model.Association, "class", "actor"},
	{false, model.Association, "actor", "class"},
	{false, model.Inheritance, "component", "class"},
	{false, model.Dependency, "package", "class"},
	{false, model.Association, "package", "package"},
}

type RuleConnect struct {
	Exp      bool
	Relation model.RelationType
	Source   string
	Target   string
}

func (r *RuleConnect) Verify(fn ConnectFunc) error {
	got := fn(r.Relation, r.Source, r.Target)
	if r.Exp && !got {
		return fmt.Errorf("%s from %s to %s should be allowed", r.Relation, r.Source, r.Target)
	}
	if !r.Exp && got {
		return fmt.Errorf("%s from %s to %s should NOT be allowed", r.Relation, r.Source, r.Target)
	}
	return nil
}
