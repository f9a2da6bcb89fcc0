// Package menu models the console's hierarchical menu structure and derives
// the flat route-access list the guard evaluates against.
//
// The tree is fetched from the backend scoped to the calling user; this
// package performs no authorization of its own.
package menu

// Type discriminates navigable entries from grouping and action entries.
// The wire values match the backend's menuType field.
type Type uint8

const (
	// TypeDirectory groups child menus and usually carries no path of its own.
	TypeDirectory Type = 0
	// TypeMenu is a navigable page entry.
	TypeMenu Type = 1
	// TypeButton is an in-page action; it never contributes a navigable path.
	TypeButton Type = 2
)

// Node is a single entry of the menu tree returned by the backend.
type Node struct {
	ID       int64  `json:"id"`
	ParentID int64  `json:"parentId"`
	Name     string `json:"menuName"`
	Path     string `json:"path,omitempty"`
	Type     Type   `json:"menuType"`
	Icon     string `json:"icon,omitempty"`
	OrderNum int    `json:"orderNum,omitempty"`
	Perms    string `json:"perms,omitempty"`
	Status   int    `json:"status"`
	Children []Node `json:"children,omitempty"`
}

// FlattenPaths walks the tree pre-order and collects the path of every node
// that has one and is not a button. A directory without a path contributes
// nothing itself but its descendants are still visited.
//
// The walk uses an explicit stack, so tree depth is bounded by memory rather
// than goroutine stack size.
func FlattenPaths(nodes []Node) []string {
	if len(nodes) == 0 {
		return nil
	}

	type frame struct {
		nodes []Node
		idx   int
	}

	paths := make([]string, 0, len(nodes))
	stack := []frame{{nodes: nodes}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx >= len(top.nodes) {
			stack = stack[:len(stack)-1]
			continue
		}

		n := &top.nodes[top.idx]
		top.idx++

		if n.Path != "" && n.Type != TypeButton {
			paths = append(paths, n.Path)
		}
		if len(n.Children) > 0 {
			stack = append(stack, frame{nodes: n.Children})
		}
	}

	return paths
}
