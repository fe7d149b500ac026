package qname

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gregoryv/golden"
)

func TestTree_Find(t *testing.T) {
	x := NewTree()
	n, found := x.Find("")
	if found || n != nil {
		t.Error("Find returned", n, found)
	}

	n, found = x.Find("no/such/name")
	if found || n != nil {
		t.Error("Find returned", n, found)
	}

	name := "Shop/Checkout/Customer"
	x.Add(name, 1)
	n, found = x.Find(name)
	if !found || n == nil {
		t.Fatal("Find returned", n, found)
	}
	if v := n.Name(); v != name {
		t.Error(v)
	}

	// intermediate levels hold no values
	if _, found := x.Find("Shop/Checkout"); found {
		t.Error("found level without values")
	}
}

func TestTree_Match(t *testing.T) {
	x := newTestTree()
	cases := map[string][]string{
		"Shop":              {"Shop"},
		"Shop/+":            {"Shop/Customer", "Shop/Order"},
		"Shop/#":            {"Shop", "Shop/Customer", "Shop/Order", "Shop/Order/Line"},
		"+/Order":           {"Shop/Order"},
		"#":                 {"Shop", "Shop/Customer", "Shop/Order", "Shop/Order/Line", "Clerk"},
		"Clerk":             {"Clerk"},
		"Shop/Order/+":      {"Shop/Order/Line"},
		"Shop/Nothing":      nil,
		"Shop/Customer/+":   nil,
		"":                  nil,
		"shop":              nil,
		"Shop/Order/Line/#": {"Shop/Order/Line"},
	}
	for pattern, exp := range cases {
		var result []*Node
		x.Match(&result, pattern)
		var got []string
		for _, n := range result {
			got = append(got, n.Name())
		}
		if !reflect.DeepEqual(got, exp) {
			t.Errorf("%q matched %v, expected %v", pattern, got, exp)
		}
	}
}

func TestTree_Names(t *testing.T) {
	x := newTestTree()
	golden.Assert(t, strings.Join(x.Names(), "\n")+"\n")
}

func TestTree_Add_sameName(t *testing.T) {
	x := NewTree()
	a := x.Add("Shop/Customer", "a")
	b := x.Add("Shop/Customer", "b")
	if a != b {
		t.Fatal("same name should give same node")
	}
	if len(a.Values) != 2 {
		t.Error(a.Values)
	}
}

func newTestTree() *Tree {
	x := NewTree()
	x.Add("Shop", 1)
	x.Add("Shop/Customer", 2)
	x.Add("Shop/Order", 3)
	x.Add("Shop/Order/Line", 4)
	x.Add("Clerk", 5)
	return x
}

func BenchmarkTree_Match(b *testing.B) {
	x := newTestTree()
	var result []*Node
	for i := 0; i < b.N; i++ {
		result = result[:0] // reset
		x.Match(&result, "Shop/#")
	}
}
