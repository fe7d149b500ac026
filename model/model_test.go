package model

import "testing"

func TestClass_Clone(t *testing.T) {
	c := NewClass("Order")
	c.AddAttribute("id: int")
	c.AddOperation("total(): float")

	x := c.Clone()
	x.SetName("Invoice")
	x.Attributes[0].SetName("no: string")
	x.AddOperation("pay()")

	if v := c.Name(); v != "Order" {
		t.Error("original renamed:", v)
	}
	if v := c.Attributes[0].Name(); v != "id: int" {
		t.Error("attribute shared:", v)
	}
	if len(c.Operations) != 1 {
		t.Error("operations shared", len(c.Operations))
	}
}

func TestClone_nil(t *testing.T) {
	var a *Actor
	if a.Clone() != nil {
		t.Error("nil actor clone")
	}
	var c *Class
	if c.Clone() != nil {
		t.Error("nil class clone")
	}
	var p *Package
	if p.Clone() != nil {
		t.Error("nil package clone")
	}
	var k *Component
	if k.Clone() != nil {
		t.Error("nil component clone")
	}
}

func TestActor_Clone(t *testing.T) {
	a := NewActor("Customer")
	b := a.Clone()
	b.SetName("Clerk")
	if a.Name() != "Customer" {
		t.Error(a.Name())
	}
}

func TestRelationType_String(t *testing.T) {
	for _, rt := range RelationTypes {
		if v := rt.String(); v == "" || v == "undefined" {
			t.Error(uint8(rt), v)
		}
	}
	if v := RelationType(99).String(); v != "RelationType(99)" {
		t.Error(v)
	}
	if Source.String() != "source" || Target.String() != "target" {
		t.Error(Source, Target)
	}
}
