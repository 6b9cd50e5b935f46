// Package onto builds the compartment tree from a large ontology DAG of
// cellular components linked by a "surrounded_by" relation, reducing it
// to the minimal tree spanning the compartments actually present in one
// reaction.
//
// The master DAG is represented as a gonum directed graph: an edge
// child -> parent means "child is surrounded by parent". Path
// enumeration towards the DAG's root, used to pick for each accession
// the path richest in other present accessions, walks that graph's
// adjacency via gonum's graph.Directed interface.
package onto

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/reactome-tools/reaction-layout/pkg/model"
)

// Node is one compartment vertex of the master ontology DAG.
type Node struct {
	Accession string
	Name      string
}

// DAG is the master "surrounded_by" graph over all known compartments.
// The zero value is not usable; use NewDAG.
type DAG struct {
	g      *simple.DirectedGraph
	byAcc  map[string]int64
	byID   map[int64]Node
	nextID int64
}

// NewDAG creates an empty master ontology DAG.
func NewDAG() *DAG {
	return &DAG{
		g:     simple.NewDirectedGraph(),
		byAcc: make(map[string]int64),
		byID:  make(map[int64]Node),
	}
}

// AddNode registers a compartment. Re-adding an existing accession is a
// no-op.
func (d *DAG) AddNode(n Node) {
	if _, ok := d.byAcc[n.Accession]; ok {
		return
	}
	id := d.nextID
	d.nextID++
	d.byAcc[n.Accession] = id
	d.byID[id] = n
	d.g.AddNode(simple.Node(id))
}

// AddSurroundedBy records that child is surrounded by parent. Both
// accessions must already be registered via AddNode.
func (d *DAG) AddSurroundedBy(child, parent string) {
	cid, ok1 := d.byAcc[child]
	pid, ok2 := d.byAcc[parent]
	if !ok1 || !ok2 {
		return
	}
	d.g.SetEdge(d.g.NewEdge(simple.Node(cid), simple.Node(pid)))
}

// Has reports whether an accession is known to the DAG.
func (d *DAG) Has(accession string) bool {
	_, ok := d.byAcc[accession]
	return ok
}

// Tree is the reduced compartment tree produced by Build: a subset of
// the master DAG's nodes with a single root and parent/child edges
// chosen to prefer paths shared by other present compartments.
type Tree struct {
	Nodes    map[string]Node
	Parent   map[string]string   // accession -> parent accession (absent for root)
	Children map[string][]string // accession -> child accessions, insertion order
	Root     string
}

func newTree() *Tree {
	return &Tree{
		Nodes:    make(map[string]Node),
		Parent:   make(map[string]string),
		Children: make(map[string][]string),
	}
}

func (t *Tree) addNode(n Node) {
	if _, ok := t.Nodes[n.Accession]; !ok {
		t.Nodes[n.Accession] = n
	}
}

func (t *Tree) link(child, parent string) {
	if existing, ok := t.Parent[child]; ok {
		if existing == parent {
			return
		}
		// Already linked to a different parent from another selected
		// path; the first link wins, later merges are no-ops. This can
		// only happen for the shared upper portion of two paths, where
		// both agree on the same suffix, so in practice existing == parent.
		return
	}
	t.Parent[child] = parent
	t.Children[parent] = append(t.Children[parent], child)
}

// Build reduces the master DAG to the minimal tree spanning accessions.
// It never fails: an empty accession set yields a single synthetic
// extracellular node, and accessions absent from the DAG are silently
// dropped.
func Build(d *DAG, accessions []string) *Tree {
	present := make([]string, 0, len(accessions))
	seen := make(map[string]bool)
	for _, a := range accessions {
		if !d.Has(a) || seen[a] {
			continue
		}
		seen[a] = true
		present = append(present, a)
	}
	sort.Strings(present) // deterministic tie-breaking downstream

	if len(present) == 0 {
		t := newTree()
		root := Node{Accession: model.ExtracellularAccession, Name: "extracellular region"}
		t.addNode(root)
		t.Root = root.Accession
		return t
	}

	presentSet := make(map[string]bool, len(present))
	for _, a := range present {
		presentSet[a] = true
	}

	t := newTree()
	for _, a := range present {
		id := d.byAcc[a]
		path := bestPath(d, id, presentSet)
		for i, nid := range path {
			t.addNode(d.byID[nid])
			if i > 0 {
				t.link(d.byID[path[i-1]].Accession, d.byID[nid].Accession)
			}
		}
	}

	t.Root = findRoot(t, present[0])
	pruneUpperSingletons(t, presentSet)
	return t
}

// bestPath enumerates every directed path from start to a root (a node
// with no outgoing edge in the master DAG) and returns the one maximizing
// the count of other present accessions on it, breaking ties by shorter
// length.
func bestPath(d *DAG, start int64, present map[string]bool) []int64 {
	var best []int64
	bestScore := -1

	var walk func(id int64, path []int64, visited map[int64]bool)
	walk = func(id int64, path []int64, visited map[int64]bool) {
		path = append(path, id)
		succ := sortedSuccessors(d.g, id)
		if len(succ) == 0 {
			score := scorePath(d, path, present)
			if score > bestScore || (score == bestScore && len(path) < len(best)) {
				bestScore = score
				best = append([]int64(nil), path...)
			}
			return
		}
		for _, s := range succ {
			if visited[s] {
				continue // guards against a malformed cyclic DAG
			}
			visited[s] = true
			walk(s, path, visited)
			visited[s] = false
		}
	}
	walk(start, nil, map[int64]bool{start: true})
	if best == nil {
		best = []int64{start}
	}
	return best
}

func scorePath(d *DAG, path []int64, present map[string]bool) int {
	score := 0
	for _, id := range path {
		if present[d.byID[id].Accession] {
			score++
		}
	}
	return score - 1 // exclude the starting node itself
}

func sortedSuccessors(g *simple.DirectedGraph, id int64) []int64 {
	it := g.From(id)
	var out []int64
	for it.Next() {
		out = append(out, it.Node().ID())
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// findRoot walks the parent chain from any node to the top.
func findRoot(t *Tree, from string) string {
	cur := from
	for {
		p, ok := t.Parent[cur]
		if !ok {
			return cur
		}
		cur = p
	}
}

// pruneUpperSingletons removes upper compartments that add no
// information: while the root has exactly one child and is not itself a
// present accession, descend.
func pruneUpperSingletons(t *Tree, present map[string]bool) {
	for {
		children := t.Children[t.Root]
		if len(children) != 1 || present[t.Root] {
			return
		}
		newRoot := children[0]
		delete(t.Parent, newRoot)
		delete(t.Nodes, t.Root)
		delete(t.Children, t.Root)
		t.Root = newRoot
	}
}

// CompartmentTree builds the reduced tree for accessions against this
// DAG, satisfying any caller-defined ontology source interface shaped
// like func(accessions []string) *Tree.
func (d *DAG) CompartmentTree(accessions []string) *Tree {
	return Build(d, accessions)
}

// Depth returns the number of edges from the tree root to accession (the
// root has depth 0). Compartments that never made it into the tree
// report depth 0, matching the root, so they never get treated as
// deeply nested by a naive caller.
func (t *Tree) Depth(accession string) int {
	depth := 0
	cur := accession
	for {
		p, ok := t.Parent[cur]
		if !ok {
			return depth
		}
		depth++
		cur = p
	}
}

// IsDescendantOf reports whether accession lies strictly below ancestor
// in the tree.
func (t *Tree) IsDescendantOf(accession, ancestor string) bool {
	cur, ok := t.Parent[accession]
	for ok {
		if cur == ancestor {
			return true
		}
		cur, ok = t.Parent[cur]
	}
	return false
}

var _ graph.Directed = (*simple.DirectedGraph)(nil)
