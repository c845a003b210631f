package regex

import (
	"fmt"
	"io"
	"strings"
)

// Precedence levels used when rendering nodes as source text.
const (
	precUnion = iota
	precConcat
	precPostfix
	precAtom
)

func (Empty) String() string {
	return "[]"
}

func (EmptyString) String() string {
	return "()"
}

func (n *Literal) String() string {
	return escapeSymbol(n.Symbol)
}

func (n *Concat) String() string {
	return render(n.Left, precConcat) + render(n.Right, precConcat)
}

func (n *Union) String() string {
	return render(n.Left, precUnion) + "|" + render(n.Right, precUnion)
}

func (n *Star) String() string {
	return render(n.Inner, precAtom) + "*"
}

func (n *Plus) String() string {
	return render(n.Inner, precAtom) + "+"
}

func (n *Optional) String() string {
	return render(n.Inner, precAtom) + "?"
}

func (n *CharClass) String() string {
	var b strings.Builder
	b.WriteString("[")
	if n.Negated {
		b.WriteString("^")
	}
	syms := n.Symbols
	for i := 0; i < len(syms); {
		j := i
		for j+1 < len(syms) && syms[j+1] == syms[j]+1 {
			j++
		}
		switch {
		case j-i >= 2:
			fmt.Fprintf(&b, "%v-%v", escapeBExpSymbol(syms[i]), escapeBExpSymbol(syms[j]))
		case j-i == 1:
			fmt.Fprintf(&b, "%v%v", escapeBExpSymbol(syms[i]), escapeBExpSymbol(syms[j]))
		default:
			b.WriteString(escapeBExpSymbol(syms[i]))
		}
		i = j + 1
	}
	b.WriteString("]")
	return b.String()
}

func precedence(n Node) int {
	switch n.(type) {
	case *Union:
		return precUnion
	case *Concat:
		return precConcat
	case *Star, *Plus, *Optional:
		return precPostfix
	default:
		return precAtom
	}
}

func render(n Node, min int) string {
	if precedence(n) < min {
		return "(" + n.String() + ")"
	}
	return n.String()
}

func escapeSymbol(sym rune) string {
	switch sym {
	case '(', ')', '|', '*', '+', '?', '[', ']', '\\':
		return "\\" + string(sym)
	}
	return string(sym)
}

func escapeBExpSymbol(sym rune) string {
	switch sym {
	case ']', '^', '-', '\\':
		return "\\" + string(sym)
	}
	return string(sym)
}

// PrintTree writes the tree rooted at n to w using ruled lines.
func PrintTree(w io.Writer, n Node) {
	printTree(w, n, "", "")
}

func printTree(w io.Writer, n Node, ruledLine string, childRuledLinePrefix string) {
	if n == nil {
		return
	}
	var children []Node
	switch m := n.(type) {
	case Empty:
		fmt.Fprintf(w, "%vempty\n", ruledLine)
	case EmptyString:
		fmt.Fprintf(w, "%vempty string\n", ruledLine)
	case *Literal:
		fmt.Fprintf(w, "%vliteral: %q\n", ruledLine, m.Symbol)
	case *CharClass:
		fmt.Fprintf(w, "%vclass: %v\n", ruledLine, m)
	case *Concat:
		fmt.Fprintf(w, "%vconcat\n", ruledLine)
		children = []Node{m.Left, m.Right}
	case *Union:
		fmt.Fprintf(w, "%vunion\n", ruledLine)
		children = []Node{m.Left, m.Right}
	case *Star:
		fmt.Fprintf(w, "%vstar (>= 0 times)\n", ruledLine)
		children = []Node{m.Inner}
	case *Plus:
		fmt.Fprintf(w, "%vplus (>= 1 times)\n", ruledLine)
		children = []Node{m.Inner}
	case *Optional:
		fmt.Fprintf(w, "%voptional (0 or 1 times)\n", ruledLine)
		children = []Node{m.Inner}
	default:
		panic(fmt.Errorf("unknown node type: %T", n))
	}
	num := len(children)
	for i, child := range children {
		line := "└─ "
		if num > 1 && i < num-1 {
			line = "├─ "
		}
		prefix := "│  "
		if i >= num-1 {
			prefix = "   "
		}
		printTree(w, child, childRuledLinePrefix+line, childRuledLinePrefix+prefix)
	}
}
