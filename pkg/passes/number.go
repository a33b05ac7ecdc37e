package passes

import (
	"github.com/Sumatoshi-tech/arkast/pkg/ast"
)

// SeqKey is the metadata key Number stores pre-order positions under.
const SeqKey = "seq"

// Number records the pre-order position of every node as metadata under
// SeqKey. The tree itself is not changed.
func Number() ast.Pass {
	return ast.PassFunc(NameNumber, ast.PhaseParsed, func(v *ast.Visitor, n ast.Node) (ast.Node, error) {
		err := v.Session().SetMetadata(n, SeqKey, v.Visits()-1)
		if err != nil {
			return nil, err
		}

		return v.VisitEachChild(n)
	})
}
