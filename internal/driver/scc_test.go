package driver

import "testing"

func TestSCCsTopologicalOrdersDependenciesFirst(t *testing.T) {
	g := newCallGraph()
	// f calls g, g calls nothing: g must come before f.
	g.addNode("f")
	g.addNode("g")
	g.addEdge("f", "g")

	sccs := g.sccsTopological()
	if len(sccs) != 2 {
		t.Fatalf("expected 2 singleton SCCs, got %v", sccs)
	}
	if sccs[0][0] != "g" || sccs[1][0] != "f" {
		t.Fatalf("expected [g] before [f], got %v", sccs)
	}
}

func TestSCCsGroupsMutualRecursion(t *testing.T) {
	g := newCallGraph()
	g.addEdge("even?", "odd?")
	g.addEdge("odd?", "even?")

	sccs := g.sccsTopological()
	if len(sccs) != 1 || len(sccs[0]) != 2 {
		t.Fatalf("expected one 2-member SCC, got %v", sccs)
	}
}

func TestSCCsIndependentDefinitionsEachOwnGroup(t *testing.T) {
	g := newCallGraph()
	g.addNode("a")
	g.addNode("b")
	g.addNode("c")

	sccs := g.sccsTopological()
	if len(sccs) != 3 {
		t.Fatalf("expected 3 singleton SCCs, got %v", sccs)
	}
}
