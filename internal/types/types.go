// Package types defines the C− type system used by the semantic analyzer.
// The language has exactly three value types — Integer, Void (the absence
// of a value), and array-of-integer — plus function signatures for
// declared functions and the two built-ins.
package types

import (
	"fmt"
	"strings"
)

// Type is the interface implemented by all C− types.
type Type interface {
	// String returns the type name as it appears in diagnostics and the
	// symbol table dump.
	String() string

	// TypeKind returns the kind of the type as an uppercase tag.
	TypeKind() string

	// Equals checks structural equality with another type.
	Equals(other Type) bool
}

// BasicType represents one of the primitive C− types.
type BasicType struct {
	Name string
	Kind string
}

// Basic type singletons. Pointer identity is not significant; Equals
// compares kinds.
var (
	INTEGER = &BasicType{Name: "Integer", Kind: "INTEGER"}
	VOID    = &BasicType{Name: "Void", Kind: "VOID"}
)

func (bt *BasicType) String() string   { return bt.Name }
func (bt *BasicType) TypeKind() string { return bt.Kind }

func (bt *BasicType) Equals(other Type) bool {
	if o, ok := other.(*BasicType); ok {
		return bt.Kind == o.Kind
	}
	return false
}

// ArrayType represents a C− array type. The language only forms arrays of
// integers, but the element type is kept explicit so diagnostics can
// render it.
type ArrayType struct {
	ElementType Type
}

// NewIntegerArray returns the array-of-integer type.
func NewIntegerArray() *ArrayType {
	return &ArrayType{ElementType: INTEGER}
}

func (at *ArrayType) String() string   { return "Array" }
func (at *ArrayType) TypeKind() string { return "ARRAY" }

func (at *ArrayType) Equals(other Type) bool {
	if o, ok := other.(*ArrayType); ok {
		return at.ElementType.Equals(o.ElementType)
	}
	return false
}

// FunctionType represents a function signature.
type FunctionType struct {
	ReturnType Type
	Parameters []Type
}

func (ft *FunctionType) String() string {
	params := make([]string, len(ft.Parameters))
	for i, p := range ft.Parameters {
		params[i] = p.String()
	}
	ret := "Void"
	if ft.ReturnType != nil {
		ret = ft.ReturnType.String()
	}
	return fmt.Sprintf("function(%s): %s", strings.Join(params, ", "), ret)
}

func (ft *FunctionType) TypeKind() string { return "FUNCTION" }

func (ft *FunctionType) Equals(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok {
		return false
	}
	if len(ft.Parameters) != len(o.Parameters) {
		return false
	}
	for i, p := range ft.Parameters {
		if !p.Equals(o.Parameters[i]) {
			return false
		}
	}
	if ft.ReturnType == nil || o.ReturnType == nil {
		return ft.ReturnType == o.ReturnType
	}
	return ft.ReturnType.Equals(o.ReturnType)
}

// IsVoid reports whether t is the Void type. A nil type (an expression
// whose type was never established, typically after an earlier error)
// counts as Void so the checker's short-circuits suppress cascades.
func IsVoid(t Type) bool {
	if t == nil {
		return true
	}
	return t.TypeKind() == "VOID"
}

// IsInteger reports whether t is the Integer type.
func IsInteger(t Type) bool {
	return t != nil && t.TypeKind() == "INTEGER"
}

// IsArray reports whether t is an array type.
func IsArray(t Type) bool {
	return t != nil && t.TypeKind() == "ARRAY"
}
