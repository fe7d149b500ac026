package conform

import (
	"testing"

	"github.com/gregoryv/umldraw/model"
)

func TestVerifyAcceptance_brokenPredicate(t *testing.T) {
	impl := func(string, model.RelationType, model.RelationEndType, string) bool {
		return false
	}
	if err := VerifyAcceptance(impl); err == nil {
		t.Error("should return error")
	}
	impl = func(string, model.RelationType, model.RelationEndType, string) bool {
		return true
	}
	if err := VerifyAcceptance(impl); err == nil {
		t.Error("should return error")
	}
}

func TestVerifyAcceptance_givenRules(t *testing.T) {
	impl := func(self string, _ model.RelationType, _ model.RelationEndType, with string) bool {
		return self == with
	}
	err := VerifyAcceptance(impl,
		RuleAccept{true, "actor", model.Association, model.Target, "actor"},
		RuleAccept{false, "actor", model.Association, model.Target, ""},
	)
	if err != nil {
		t.Error(err)
	}
}

func TestVerifyConnect_brokenPredicate(t *testing.T) {
	impl := func(model.RelationType, string, string) bool { return false }
	if err := VerifyConnect(impl); err == nil {
		t.Error("should return error")
	}
	impl = func(model.RelationType, string, string) bool { return true }
	if err := VerifyConnect(impl); err == nil {
		t.Error("should return error")
	}
}

func TestRuleAccept_Verify_message(t *testing.T) {
	r := RuleAccept{true, "actor", model.Inheritance, model.Source, ""}
	err := r.Verify(func(string, model.RelationType, model.RelationEndType, string) bool {
		return false
	})
	exp := "actor as source should accept inheritance with unknown"
	if err == nil || err.Error() != exp {
		t.Errorf("got %v, expected %s", err, exp)
	}
}
