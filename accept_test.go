package umldraw

import (
	"testing"

	"github.com/gregoryv/umldraw/conform"
	"github.com/gregoryv/umldraw/model"
)

func TestNode_AcceptsConnection(t *testing.T) {
	if err := conform.VerifyAcceptance(accepts); err != nil {
		t.Error(err)
	}
}

func TestDiagram_CanConnect(t *testing.T) {
	if err := conform.VerifyConnect(canConnect); err != nil {
		t.Error(err)
	}
}

func accepts(self string, rt model.RelationType, as model.RelationEndType, with string) bool {
	n := mustKind(self)
	if with == "" {
		return n.AcceptsConnection(rt, as, nil)
	}
	return n.AcceptsConnection(rt, as, mustKind(with))
}

func canConnect(rt model.RelationType, source, target string) bool {
	return NewDiagram().CanConnect(rt, mustKind(source), mustKind(target))
}

func mustKind(name string) Node {
	k, err := ParseKind(name)
	if err != nil {
		panic(err)
	}
	return DefaultPrototypes().MustNew(k)
}

func Benchmark_accepts(b *testing.B) {
	for i := 0; i < b.N; i++ {
		conform.VerifyAcceptance(accepts)
	}
}
