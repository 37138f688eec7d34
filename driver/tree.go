package driver

import (
	"fmt"
	"io"

	"github.com/nihei9/vgf/pwd"
)

// PrintTree renders a parse tree with the same box-drawing layout the
// teacher's own driver package uses for its CST/AST dumps, walking
// pwd.Tree's three variants instead of a compiled grammar's named nodes.
func PrintTree(w io.Writer, t pwd.Tree[string]) {
	printTree(w, t, "", "")
}

func printTree(w io.Writer, t pwd.Tree[string], ruledLine string, childPrefix string) {
	switch n := t.(type) {
	case pwd.Empty[string]:
		fmt.Fprintf(w, "%vε\n", ruledLine)
	case pwd.Leaf[string]:
		fmt.Fprintf(w, "%v%#v\n", ruledLine, n.Value)
	case pwd.Branch[string]:
		fmt.Fprintf(w, "%v·\n", ruledLine)
		printTree(w, n.Left, childPrefix+"├─ ", childPrefix+"│  ")
		printTree(w, n.Right, childPrefix+"└─ ", childPrefix+"   ")
	default:
		fmt.Fprintf(w, "%v<unknown tree node %T>\n", ruledLine, t)
	}
}
