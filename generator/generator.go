package generator

import (
	"github.com/banyudu/tsterser-sub002/ast"
	"github.com/banyudu/tsterser-sub002/output"
)

// Generate prints node as readable code, indented by four spaces.
func Generate(node ast.Node) string {
	opts := output.DefaultOptions()
	opts.Beautify = true
	out, _ := GenerateWithOptions(node, opts)
	return out
}

// Minify prints node as compact code.
func Minify(node ast.Node) string {
	out, _ := GenerateWithOptions(node, output.DefaultOptions())
	return out
}

// GenerateWithOptions prints node and returns the source mappings recorded
// along the way. Mappings carry source lines and columns when opts.Source
// holds the original text.
func GenerateWithOptions(node ast.Node, opts output.Options) (string, []output.Mapping) {
	if node == nil {
		return "", nil
	}
	s := output.New(opts)
	ast.NewPrinter(s).PrintNode(node)
	s.Finish()
	return s.String(), s.Mappings()
}
