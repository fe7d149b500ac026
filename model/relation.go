package model

import "fmt"

// RelationType is the kind of a relation between two elements.
type RelationType uint8

const (
	Undefined RelationType = iota
	Association
	Aggregation
	Composition
	Inheritance
	InterfaceRealization
	Dependency
)

// RelationTypes lists all defined relation types.
var RelationTypes = []RelationType{
	Association,
	Aggregation,
	Composition,
	Inheritance,
	InterfaceRealization,
	Dependency,
}

func (t RelationType) String() string {
	switch t {
	case Undefined:
		return "undefined"
	case Association:
		return "association"
	case Aggregation:
		return "aggregation"
	case Composition:
		return "composition"
	case Inheritance:
		return "inheritance"
	case InterfaceRealization:
		return "interface-realization"
	case Dependency:
		return "dependency"
	default:
		return fmt.Sprintf("RelationType(%d)", uint8(t))
	}
}

// RelationEndType tags one end of a relation.
type RelationEndType uint8

const (
	Source RelationEndType = iota
	Target
)

func (e RelationEndType) String() string {
	switch e {
	case Source:
		return "source"
	case Target:
		return "target"
	default:
		return fmt.Sprintf("RelationEndType(%d)", uint8(e))
	}
}
