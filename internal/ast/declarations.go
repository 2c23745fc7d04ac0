package ast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cwbudde/go-cminus/internal/token"
	"github.com/cwbudde/go-cminus/internal/types"
)

// FunctionDecl represents a C− function declaration.
// Examples:
//
//	int gcd(int a, int b) { ... }
//	void main(void) { ... }
type FunctionDecl struct {
	Type    types.Type // Declared return type, set by the analyzer
	Marker  *TypeMarker
	Body    *CompoundStatement
	Name    string
	Params  []*ParamDecl
	Token   token.Token // The IDENT token of the function name
}

func (fd *FunctionDecl) declarationNode()     {}
func (fd *FunctionDecl) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDecl) Pos() token.Position  { return fd.Token.Pos }

func (fd *FunctionDecl) String() string {
	var out bytes.Buffer

	if fd.Marker != nil {
		out.WriteString(fd.Marker.String())
		out.WriteString(" ")
	}
	out.WriteString(fd.Name)
	out.WriteString("(")

	if len(fd.Params) == 0 {
		out.WriteString("void")
	} else {
		params := make([]string, len(fd.Params))
		for i, p := range fd.Params {
			params[i] = p.String()
		}
		out.WriteString(strings.Join(params, ", "))
	}
	out.WriteString(") ")

	if fd.Body != nil {
		out.WriteString(fd.Body.String())
	}

	return out.String()
}

func (fd *FunctionDecl) GetType() types.Type    { return fd.Type }
func (fd *FunctionDecl) SetType(typ types.Type) { fd.Type = typ }

// Signature returns the function's type signature from its declared
// parameters and return type. It is valid once the analyzer has set the
// declaration and parameter types.
func (fd *FunctionDecl) Signature() *types.FunctionType {
	params := make([]types.Type, len(fd.Params))
	for i, p := range fd.Params {
		params[i] = p.Type
	}
	return &types.FunctionType{Parameters: params, ReturnType: fd.Type}
}

// VarDecl represents a C− variable declaration, either a scalar or an
// array with a constant size.
// Examples:
//
//	int x;
//	int a[10];
type VarDecl struct {
	Type    types.Type // Set by the analyzer: Integer, or Array for arrays
	Marker  *TypeMarker
	Name    string
	Size    int64 // Array element count; meaningful only when IsArray
	Token   token.Token
	IsArray bool
}

func (vd *VarDecl) declarationNode()     {}
func (vd *VarDecl) TokenLiteral() string { return vd.Token.Literal }
func (vd *VarDecl) Pos() token.Position  { return vd.Token.Pos }

func (vd *VarDecl) String() string {
	var out bytes.Buffer
	if vd.Marker != nil {
		out.WriteString(vd.Marker.String())
		out.WriteString(" ")
	}
	out.WriteString(vd.Name)
	if vd.IsArray {
		out.WriteString(fmt.Sprintf("[%d]", vd.Size))
	}
	out.WriteString(";")
	return out.String()
}

func (vd *VarDecl) GetType() types.Type    { return vd.Type }
func (vd *VarDecl) SetType(typ types.Type) { vd.Type = typ }

// ParamDecl represents a formal parameter of a function declaration.
// Examples:
//
//	int x
//	int a[]
type ParamDecl struct {
	Type    types.Type // Set by the analyzer: Integer, or Array for arrays
	Marker  *TypeMarker
	Name    string
	Token   token.Token
	IsArray bool
}

func (pd *ParamDecl) declarationNode()     {}
func (pd *ParamDecl) TokenLiteral() string { return pd.Token.Literal }
func (pd *ParamDecl) Pos() token.Position  { return pd.Token.Pos }

func (pd *ParamDecl) String() string {
	var out bytes.Buffer
	if pd.Marker != nil {
		out.WriteString(pd.Marker.String())
		out.WriteString(" ")
	}
	out.WriteString(pd.Name)
	if pd.IsArray {
		out.WriteString("[]")
	}
	return out.String()
}

func (pd *ParamDecl) GetType() types.Type    { return pd.Type }
func (pd *ParamDecl) SetType(typ types.Type) { pd.Type = typ }
