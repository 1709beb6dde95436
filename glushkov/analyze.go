package glushkov

import "github.com/coregx/kernel/ast"

// analyzer computes nullable/first/last/follow over a RegexAst and
// assigns each Char node a position in traversal order. The AST is a
// tree, not the cyclic automaton graph the rest of this package builds
// from it, so ordinary recursion is appropriate here (bounded by pattern
// nesting depth).
type analyzer struct {
	positions []byte // position -> letter, in assignment order
	follow    map[int]map[int]bool
}

func (a *analyzer) newPosition(letter byte) int {
	id := len(a.positions)
	a.positions = append(a.positions, letter)
	return id
}

func (a *analyzer) addFollow(from int, to []int) {
	if len(to) == 0 {
		return
	}
	set := a.follow[from]
	if set == nil {
		set = map[int]bool{}
		a.follow[from] = set
	}
	for _, t := range to {
		set[t] = true
	}
}

// analyze returns (nullable, first, last) for n, assigning positions and
// recording follow links as a side effect.
func (a *analyzer) analyze(n *ast.Node) (nullable bool, first, last []int) {
	switch n.Kind {
	case ast.Char:
		id := a.newPosition(n.Letter)
		return false, []int{id}, []int{id}

	case ast.Concat:
		return a.analyzeConcat(n.Children)

	case ast.Alternation:
		return a.analyzeAlternation(n.Children)

	case ast.Star:
		child := n.Children[0]
		_, childFirst, childLast := a.analyze(child)
		for _, p := range childLast {
			a.addFollow(p, childFirst)
		}
		return true, childFirst, childLast

	default:
		panic("glushkov: unreachable AST kind")
	}
}

type childInfo struct {
	nullable    bool
	first, last []int
}

func (a *analyzer) analyzeConcat(children []*ast.Node) (nullable bool, first, last []int) {
	if len(children) == 0 {
		return true, nil, nil
	}

	infos := make([]childInfo, len(children))
	nullable = true
	for i, ch := range children {
		n, f, l := a.analyze(ch)
		infos[i] = childInfo{nullable: n, first: f, last: l}
		if !n {
			nullable = false
		}
	}

	for _, info := range infos {
		first = append(first, info.first...)
		if !info.nullable {
			break
		}
	}
	for i := len(infos) - 1; i >= 0; i-- {
		last = append(last, infos[i].last...)
		if !infos[i].nullable {
			break
		}
	}

	for i := range infos {
		j := i + 1
		for j < len(infos) {
			for _, p := range infos[i].last {
				a.addFollow(p, infos[j].first)
			}
			if !infos[j].nullable {
				break
			}
			j++
		}
	}

	return nullable, first, last
}

func (a *analyzer) analyzeAlternation(children []*ast.Node) (nullable bool, first, last []int) {
	for _, ch := range children {
		n, f, l := a.analyze(ch)
		if n {
			nullable = true
		}
		first = append(first, f...)
		last = append(last, l...)
	}
	return nullable, first, last
}
