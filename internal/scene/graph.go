// Package scene implements the transform hierarchy of the viewer: per-entity
// transform recipes stored in an arena-backed tree and evaluated every frame.
package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrUnknownParent = errors.New("scene: unknown parent node")
	ErrDuplicateName = errors.New("scene: duplicate node name")
)

// Node identifies a node in a Graph.
type Node int

// Nil represents the absence of a node. Nodes inserted with a Nil parent are roots.
const Nil Node = 0

type node struct {
	name   string
	parent Node
	recipe Recipe
	local  mgl32.Mat4
	world  mgl32.Mat4
}

// Graph is a tree of transform nodes kept in a flat slice.
//
// A parent always exists before any of its children are inserted, so slice
// order is a valid parent-before-child evaluation order and cycles cannot occur.
// The zero value is an empty graph ready for use.
type Graph struct {
	nodes  []node
	byName map[string]Node
}

// Insert adds a node with the given recipe under parent (Nil for a root).
func (g *Graph) Insert(name string, recipe Recipe, parent Node) (Node, error) {
	if parent != Nil && !g.valid(parent) {
		return Nil, fmt.Errorf("%w: %d", ErrUnknownParent, parent)
	}
	if name != "" {
		if _, ok := g.byName[name]; ok {
			return Nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}

	g.nodes = append(g.nodes, node{
		name:   name,
		parent: parent,
		recipe: recipe,
		local:  mgl32.Ident4(),
		world:  mgl32.Ident4(),
	})
	n := Node(len(g.nodes))

	if name != "" {
		if g.byName == nil {
			g.byName = make(map[string]Node)
		}
		g.byName[name] = n
	}
	return n, nil
}

// Evaluate recomputes every node's local and world matrix for the given scene
// angle. A child's world matrix is parentWorld * childLocal.
func (g *Graph) Evaluate(sceneAngle float32) {
	for i := range g.nodes {
		nd := &g.nodes[i]
		nd.local = nd.recipe.Local(sceneAngle)
		if nd.parent == Nil {
			nd.world = nd.local
			continue
		}
		nd.world = g.nodes[nd.parent-1].world.Mul4(nd.local)
	}
}

// World returns the model-to-world matrix computed by the last Evaluate.
func (g *Graph) World(n Node) mgl32.Mat4 {
	return g.nodes[n-1].world
}

// Local returns the parent-relative matrix computed by the last Evaluate.
func (g *Graph) Local(n Node) mgl32.Mat4 {
	return g.nodes[n-1].local
}

func (g *Graph) Parent(n Node) Node {
	return g.nodes[n-1].parent
}

func (g *Graph) Name(n Node) string {
	return g.nodes[n-1].name
}

func (g *Graph) Recipe(n Node) Recipe {
	return g.nodes[n-1].recipe
}

// SetRecipe replaces a node's recipe. It takes effect on the next Evaluate.
func (g *Graph) SetRecipe(n Node, r Recipe) {
	g.nodes[n-1].recipe = r
}

// Lookup returns the node with the given name.
func (g *Graph) Lookup(name string) (Node, bool) {
	n, ok := g.byName[name]
	return n, ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// ForEach calls f for each node, parents before children.
func (g *Graph) ForEach(f func(Node)) {
	for i := range g.nodes {
		f(Node(i + 1))
	}
}

func (g *Graph) valid(n Node) bool {
	return n > Nil && int(n) <= len(g.nodes)
}
