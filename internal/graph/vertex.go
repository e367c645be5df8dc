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

// Direction selects which of a vertex's edge lists an operation targets.
type Direction int

const (
	Outgoing Direction = iota
	Incoming
)

// Edge connects two vertices, optionally carrying data. Multi-edges
// between the same ordered pair of vertices are forbidden by Vertex.AddLink.
type Edge struct {
	Start *Vertex
	End   *Vertex
	Data  any
}

// OtherSide returns the vertex on the opposite end of the edge from v. v
// must be one of the edge's endpoints.
func (e *Edge) OtherSide(v *Vertex) *Vertex {
	if v == e.Start {
		return e.End
	}
	if v == e.End {
		return e.Start
	}
	panic("graph: vertex is not an endpoint of this edge")
}

// Vertex is a node identified by a unique key. When directed, outgoing
// and incoming edges are tracked in separate lists; when undirected, both
// roles are served by a single underlying list — AddLink always appends
// to the outgoing field in that case, so any read through either
// direction observes the same slice.
type Vertex struct {
	key      string
	data     any
	directed bool
	outgoing []*Edge
	incoming []*Edge
}

func newVertex(key string, data any, directed bool) *Vertex {
	return &Vertex{key: key, data: data, directed: directed}
}

// Key returns the vertex's key.
func (v *Vertex) Key() string { return v.key }

// HasData reports whether the vertex carries non-nil data.
func (v *Vertex) HasData() bool { return v.data != nil }

// Data returns the vertex's bound data, or nil.
func (v *Vertex) Data() any { return v.data }

// SetData replaces the vertex's bound data.
func (v *Vertex) SetData(data any) { v.data = data }

// IsDirected reports whether the vertex belongs to a directed graph.
func (v *Vertex) IsDirected() bool { return v.directed }

// AddLink installs edge on this vertex in the given direction. For
// Outgoing, edge.Start must be v and edge.End must not already be
// connected outgoing; for Incoming, edge.End must be v and edge.Start
// must not already be connected incoming.
func (v *Vertex) AddLink(edge *Edge, direction Direction) error {
	if direction == Outgoing {
		if edge.Start != v {
			return ErrTypeMismatch
		}
		if v.isConnected(edge.End, Outgoing) {
			return ErrAlreadyConnected
		}
		v.outgoing = append(v.outgoing, edge)
		return nil
	}

	if edge.End != v {
		return ErrTypeMismatch
	}
	if v.isConnected(edge.Start, Incoming) {
		return ErrAlreadyConnected
	}
	if v.directed {
		v.incoming = append(v.incoming, edge)
	} else {
		v.outgoing = append(v.outgoing, edge)
	}
	return nil
}

// ConnectToNode builds an edge between v and other and installs it on
// both vertices: self→other for Outgoing, other→self for Incoming.
func (v *Vertex) ConnectToNode(other *Vertex, direction Direction) error {
	if direction == Outgoing {
		edge := &Edge{Start: v, End: other}
		if err := v.AddLink(edge, Outgoing); err != nil {
			return err
		}
		return other.AddLink(edge, Incoming)
	}

	edge := &Edge{Start: other, End: v}
	if err := v.AddLink(edge, Incoming); err != nil {
		return err
	}
	return other.AddLink(edge, Outgoing)
}

// GetNumberOfEdges returns the number of edges in the given direction.
// For an undirected vertex, direction is ignored.
func (v *Vertex) GetNumberOfEdges(direction Direction) int {
	return len(v.edgeList(direction))
}

// GetAllEdges returns the edge list for the given direction. For an
// undirected vertex, direction is ignored.
func (v *Vertex) GetAllEdges(direction Direction) []*Edge {
	return v.edgeList(direction)
}

// GetEdge returns the edge connecting v to other in the given direction,
// or nil if none exists.
func (v *Vertex) GetEdge(other *Vertex, direction Direction) *Edge {
	for _, edge := range v.edgeList(direction) {
		if edge.OtherSide(v) == other {
			return edge
		}
	}
	return nil
}

// GetAllConnectedNodes returns the vertices reachable via the edge list
// for the given direction. For an undirected vertex, direction is ignored.
func (v *Vertex) GetAllConnectedNodes(direction Direction) []*Vertex {
	edges := v.edgeList(direction)
	nodes := make([]*Vertex, 0, len(edges))
	for _, edge := range edges {
		nodes = append(nodes, edge.OtherSide(v))
	}
	return nodes
}

// DisconnectNode removes the edge connecting v to other (resolved by
// vertex pointer or by key string). When bothWays is true, it also
// disconnects the partner's side of the same edge, tolerating a
// missing-key error from that side so one-sided removal (e.g. during
// Graph.RemoveNode's own cleanup) doesn't fail.
func (v *Vertex) DisconnectNode(otherOrKey any, bothWays bool) error {
	other, err := v.resolvePartner(otherOrKey)
	if err != nil {
		return err
	}

	if idx := indexOfPartner(v.outgoing, v, other); idx != -1 {
		v.outgoing = removeAt(v.outgoing, idx)
	}
	if v.directed {
		if idx := indexOfPartner(v.incoming, v, other); idx != -1 {
			v.incoming = removeAt(v.incoming, idx)
		}
	}

	if bothWays {
		if err := other.DisconnectNode(v, false); err != nil && err != ErrMissingKey {
			return err
		}
	}
	return nil
}

func (v *Vertex) resolvePartner(otherOrKey any) (*Vertex, error) {
	if other, ok := otherOrKey.(*Vertex); ok {
		if !v.isConnected(other, Outgoing) && !v.isConnected(other, Incoming) {
			return nil, ErrMissingKey
		}
		return other, nil
	}

	key, ok := otherOrKey.(string)
	if !ok {
		return nil, ErrMissingKey
	}
	for _, node := range v.GetAllConnectedNodes(Outgoing) {
		if node.key == key {
			return node, nil
		}
	}
	for _, node := range v.GetAllConnectedNodes(Incoming) {
		if node.key == key {
			return node, nil
		}
	}
	return nil, ErrMissingKey
}

func (v *Vertex) isConnected(other *Vertex, direction Direction) bool {
	for _, node := range v.GetAllConnectedNodes(direction) {
		if node == other {
			return true
		}
	}
	return false
}

func (v *Vertex) edgeList(direction Direction) []*Edge {
	if !v.directed || direction == Outgoing {
		return v.outgoing
	}
	return v.incoming
}

func indexOfPartner(edges []*Edge, self, other *Vertex) int {
	for i, edge := range edges {
		if edge.OtherSide(self) == other {
			return i
		}
	}
	return -1
}

func removeAt(edges []*Edge, idx int) []*Edge {
	return append(edges[:idx], edges[idx+1:]...)
}
