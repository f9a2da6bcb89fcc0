package menu

import (
	"reflect"
	"testing"
)

func sampleTree() []Node {
	return []Node{
		{
			ID: 1, Name: "System", Type: TypeDirectory,
			Children: []Node{
				{ID: 11, Name: "Users", Path: "/system/user", Type: TypeMenu,
					Children: []Node{
						{ID: 111, Name: "Add User", Perms: "user:add", Type: TypeButton},
						{ID: 112, Name: "Export", Path: "/system/user/export", Type: TypeButton},
					},
				},
				{ID: 12, Name: "Roles", Path: "/system/role", Type: TypeMenu},
			},
		},
		{ID: 2, Name: "Notion", Path: "/notion", Type: TypeDirectory,
			Children: []Node{
				{ID: 21, Name: "Workspace", Path: "/notion/workspace", Type: TypeMenu},
			},
		},
	}
}

func TestFlattenPathsPreOrder(t *testing.T) {
	got := FlattenPaths(sampleTree())
	want := []string{"/system/user", "/system/role", "/notion", "/notion/workspace"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFlattenPathsSkipsButtonsEvenWithPath(t *testing.T) {
	for _, p := range FlattenPaths(sampleTree()) {
		if p == "/system/user/export" {
			t.Fatalf("button path leaked into access routes: %v", p)
		}
	}
}

func TestFlattenPathsPathlessDirectoryStillVisitsChildren(t *testing.T) {
	tree := []Node{
		{Name: "Top", Type: TypeDirectory,
			Children: []Node{
				{Name: "Deep", Type: TypeDirectory,
					Children: []Node{
						{Name: "Leaf", Path: "/deep/leaf", Type: TypeMenu},
					},
				},
			},
		},
	}
	got := FlattenPaths(tree)
	if len(got) != 1 || got[0] != "/deep/leaf" {
		t.Fatalf("expected [/deep/leaf], got %v", got)
	}
}

func TestFlattenPathsIdempotent(t *testing.T) {
	tree := sampleTree()
	first := FlattenPaths(tree)
	second := FlattenPaths(tree)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("flattening not idempotent: %v vs %v", first, second)
	}
}

func TestFlattenPathsEmptyAndNil(t *testing.T) {
	if got := FlattenPaths(nil); got != nil {
		t.Fatalf("expected nil for nil input, got %v", got)
	}
	if got := FlattenPaths([]Node{}); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestFlattenPathsDeepChain(t *testing.T) {
	// Much deeper than any real admin menu; the explicit stack must not care.
	const depth = 10000
	leaf := Node{Name: "leaf", Path: "/leaf", Type: TypeMenu}
	root := leaf
	for i := 0; i < depth; i++ {
		root = Node{Name: "dir", Type: TypeDirectory, Children: []Node{root}}
	}
	got := FlattenPaths([]Node{root})
	if len(got) != 1 || got[0] != "/leaf" {
		t.Fatalf("expected [/leaf], got %d paths", len(got))
	}
}

func TestFlattenPathsSoundness(t *testing.T) {
	tree := sampleTree()
	allowed := map[string]bool{}
	var collect func(nodes []Node)
	collect = func(nodes []Node) {
		for _, n := range nodes {
			if n.Path != "" && n.Type != TypeButton {
				allowed[n.Path] = true
			}
			collect(n.Children)
		}
	}
	collect(tree)

	for _, p := range FlattenPaths(tree) {
		if !allowed[p] {
			t.Fatalf("flattened path %q does not correspond to a non-button node", p)
		}
	}
}
