// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package graph

// Graph is a collection of uniquely keyed vertices, all sharing the same
// directed/undirected mode.
type Graph struct {
	nodes    map[string]*Vertex
	directed bool
}

// New returns an empty Graph. directed fixes the edge semantics of every
// vertex created through it.
func New(directed bool) *Graph {
	return &Graph{nodes: map[string]*Vertex{}, directed: directed}
}

// IsDirected reports the graph's directed/undirected mode.
func (g *Graph) IsDirected() bool { return g.directed }

// Exists reports whether key is present in the graph.
func (g *Graph) Exists(key string) bool {
	_, ok := g.nodes[key]
	return ok
}

// GetNode returns the vertex for key, or nil if absent.
func (g *Graph) GetNode(key string) *Vertex {
	return g.nodes[key]
}

// CreateNode adds a new vertex with the given key and data. It returns
// ErrDuplicateKey if key is already present.
func (g *Graph) CreateNode(key string, data any) (*Vertex, error) {
	if g.Exists(key) {
		return nil, ErrDuplicateKey
	}
	v := newVertex(key, data, g.directed)
	g.nodes[key] = v
	return v, nil
}

// ConnectNodes creates a one-way edge from a to b (from→to for a directed
// graph; a single shared edge for an undirected one). It returns
// ErrMissingKey if either vertex does not belong to this graph.
func (g *Graph) ConnectNodes(a, b *Vertex) error {
	if err := g.requireMember(a, b); err != nil {
		return err
	}
	return a.ConnectToNode(b, Outgoing)
}

// ConnectBothWays creates edges in both directions between a and b. On a
// directed graph this installs two distinct edges; on an undirected graph
// the second call will report ErrAlreadyConnected since both directions
// share one edge list.
func (g *Graph) ConnectBothWays(a, b *Vertex) error {
	if err := g.requireMember(a, b); err != nil {
		return err
	}
	if err := a.ConnectToNode(b, Outgoing); err != nil {
		return err
	}
	return b.ConnectToNode(a, Outgoing)
}

func (g *Graph) requireMember(vertices ...*Vertex) error {
	for _, v := range vertices {
		if v == nil || g.nodes[v.key] != v {
			return ErrMissingKey
		}
	}
	return nil
}

// RemoveNode deletes the vertex identified by vertexOrKey (a *Vertex or a
// string key) from the graph, disconnecting it from every neighbor first.
// It returns ErrMissingKey if the vertex is not present.
func (g *Graph) RemoveNode(vertexOrKey any) error {
	v, err := g.resolve(vertexOrKey)
	if err != nil {
		return err
	}

	for _, neighbor := range v.GetAllConnectedNodes(Outgoing) {
		if err := v.DisconnectNode(neighbor, true); err != nil && err != ErrMissingKey {
			return err
		}
	}
	if v.directed {
		for _, neighbor := range v.GetAllConnectedNodes(Incoming) {
			if err := v.DisconnectNode(neighbor, true); err != nil && err != ErrMissingKey {
				return err
			}
		}
	}

	delete(g.nodes, v.key)
	return nil
}

// GetAllNodes returns every vertex in the graph, in no particular order.
func (g *Graph) GetAllNodes() []*Vertex {
	nodes := make([]*Vertex, 0, len(g.nodes))
	for _, v := range g.nodes {
		nodes = append(nodes, v)
	}
	return nodes
}

func (g *Graph) resolve(vertexOrKey any) (*Vertex, error) {
	if v, ok := vertexOrKey.(*Vertex); ok {
		if !g.Exists(v.key) {
			return nil, ErrMissingKey
		}
		return v, nil
	}
	if key, ok := vertexOrKey.(string); ok {
		v, found := g.nodes[key]
		if !found {
			return nil, ErrMissingKey
		}
		return v, nil
	}
	return nil, ErrMissingKey
}
