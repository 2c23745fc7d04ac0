package astjson

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/cwbudde/go-cminus/internal/semantic"
)

// EncodeResult serializes an analysis outcome: the diagnostics in emission
// order and every scope with its symbols, for consumption by downstream
// tooling (editors, graders, code generators).
func EncodeResult(a *semantic.Analyzer) ([]byte, error) {
	out := []byte(`{"ok":true,"errors":[],"scopes":[]}`)
	var err error

	if a.Failed() {
		if out, err = sjson.SetBytes(out, "ok", false); err != nil {
			return nil, err
		}
	}

	for i, diag := range a.SemanticErrors() {
		base := fmt.Sprintf("errors.%d", i)
		if out, err = sjson.SetBytes(out, base+".class", string(diag.Class)); err != nil {
			return nil, err
		}
		if out, err = sjson.SetBytes(out, base+".line", diag.Line); err != nil {
			return nil, err
		}
		if out, err = sjson.SetBytes(out, base+".message", diag.Message); err != nil {
			return nil, err
		}
	}

	for i, scope := range a.Scopes() {
		base := fmt.Sprintf("scopes.%d", i)
		if out, err = sjson.SetBytes(out, base+".id", scope.ID); err != nil {
			return nil, err
		}
		if out, err = sjson.SetBytes(out, base+".level", scope.Level); err != nil {
			return nil, err
		}
		if out, err = sjson.SetBytes(out, base+".function", scope.FunctionName); err != nil {
			return nil, err
		}
		if out, err = sjson.SetBytes(out, base+".symbols", []any{}); err != nil {
			return nil, err
		}
		for j, sym := range scope.Symbols() {
			symBase := fmt.Sprintf("%s.symbols.%d", base, j)
			if out, err = sjson.SetBytes(out, symBase+".name", sym.Name); err != nil {
				return nil, err
			}
			typ := "Void"
			if t := sym.Type(); t != nil {
				typ = t.String()
			}
			if out, err = sjson.SetBytes(out, symBase+".type", typ); err != nil {
				return nil, err
			}
			if out, err = sjson.SetBytes(out, symBase+".memloc", sym.MemLoc); err != nil {
				return nil, err
			}
			if out, err = sjson.SetBytes(out, symBase+".lines", sym.Lines); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
