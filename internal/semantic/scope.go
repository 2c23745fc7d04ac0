package semantic

import (
	"errors"

	"github.com/cwbudde/go-cminus/internal/ast"
	"github.com/cwbudde/go-cminus/internal/types"
)

const (
	// tableSize is the width of each scope's bucket-chain hash table.
	tableSize = 211

	// hashShift is the power of two used as multiplier in the hash mixer.
	hashShift = 4

	// maxScopes bounds both the total number of scopes and the nesting
	// depth. Exceeding it is an implementation-limit failure, not a
	// diagnosable program error.
	maxScopes = 1000
)

// ErrScopeLimit is returned by BuildSymtab when a program needs more
// scopes, or deeper nesting, than the analyzer supports.
var ErrScopeLimit = errors.New("semantic: scope table overflow")

// hash mixes a name into a bucket-chain index.
func hash(key string) int {
	temp := 0
	for i := 0; i < len(key); i++ {
		temp = ((temp << hashShift) + int(key[i])) % tableSize
	}
	return temp
}

// Bucket is a symbol table entry binding a name within one scope to its
// declaring node, its storage index, and the source lines that mention it.
// The first line is always the declaration line; use lines are appended by
// AddLineNo and never reordered.
type Bucket struct {
	Decl   ast.Declaration
	Name   string
	Lines  []int
	MemLoc int
	next   *Bucket
}

// Type returns the declared type recorded on the bucket's declaring node.
// It is nil until pass 1 has annotated the declaration.
func (b *Bucket) Type() types.Type {
	if tn, ok := b.Decl.(ast.TypedNode); ok {
		return tn.GetType()
	}
	return nil
}

// Scope is a lexical naming environment. Scopes are created during pass 1,
// kept alive in the analyzer's registry for the whole analysis, and
// re-entered by id during pass 2.
type Scope struct {
	Parent       *Scope
	FunctionName string // Owning function; empty for the global scope
	buckets      [tableSize]*Bucket
	ID           int
	Level        int // Nesting depth at the moment of creation
}

// local returns the bucket for name in this scope only, or nil.
func (s *Scope) local(name string) *Bucket {
	for b := s.buckets[hash(name)]; b != nil; b = b.next {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Resolve looks name up in this scope and, failing that, in each ancestor
// up to the global scope. It returns nil when the name is not in scope.
func (s *Scope) Resolve(name string) *Bucket {
	for scope := s; scope != nil; scope = scope.Parent {
		if b := scope.local(name); b != nil {
			return b
		}
	}
	return nil
}

// Symbols returns the scope's buckets in dump order: hash slots in
// ascending order, chains front to back.
func (s *Scope) Symbols() []*Bucket {
	var out []*Bucket
	for i := 0; i < tableSize; i++ {
		for b := s.buckets[i]; b != nil; b = b.next {
			out = append(out, b)
		}
	}
	return out
}

// insert prepends a bucket for name unless the scope already has one, in
// which case the call is a no-op. Only the declaration line is recorded
// here; use lines are added exclusively through AddLineNo.
func (s *Scope) insert(name string, lineno, loc int, decl ast.Declaration) {
	if s.local(name) != nil {
		return
	}
	h := hash(name)
	s.buckets[h] = &Bucket{
		Name:   name,
		Decl:   decl,
		MemLoc: loc,
		Lines:  []int{lineno},
		next:   s.buckets[h],
	}
}

// createScope allocates a new scope under the current top of the stack and
// appends it to the registry.
func (a *Analyzer) createScope(functionName string) *Scope {
	if len(a.registry) >= maxScopes && a.limitErr == nil {
		a.limitErr = ErrScopeLimit
	}
	scope := &Scope{
		ID:           len(a.registry),
		FunctionName: functionName,
		Level:        len(a.stack),
		Parent:       a.topScope(),
	}
	a.registry = append(a.registry, scope)
	return scope
}

// pushScope makes scope the innermost one and starts its location counter
// at zero.
func (a *Analyzer) pushScope(scope *Scope) {
	if len(a.stack) >= maxScopes && a.limitErr == nil {
		a.limitErr = ErrScopeLimit
	}
	a.stack = append(a.stack, scope)
	a.locs = append(a.locs, 0)
}

// popScope discards the innermost scope from the stack. The scope itself
// persists in the registry.
func (a *Analyzer) popScope() {
	if len(a.stack) == 0 {
		return
	}
	a.stack = a.stack[:len(a.stack)-1]
	a.locs = a.locs[:len(a.locs)-1]
}

// topScope returns the innermost active scope, or nil when the stack is
// empty.
func (a *Analyzer) topScope() *Scope {
	if len(a.stack) == 0 {
		return nil
	}
	return a.stack[len(a.stack)-1]
}

// addLoc claims the next free memory location in the innermost scope.
func (a *Analyzer) addLoc() int {
	loc := a.locs[len(a.locs)-1]
	a.locs[len(a.locs)-1]++
	return loc
}
