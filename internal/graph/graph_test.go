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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNodeDuplicateKey(t *testing.T) {
	g := New(true)
	_, err := g.CreateNode("a", nil)
	require.NoError(t, err)

	_, err = g.CreateNode("a", nil)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestDirectedConnectIsOneWay(t *testing.T) {
	g := New(true)
	a, _ := g.CreateNode("a", nil)
	b, _ := g.CreateNode("b", nil)

	require.NoError(t, g.ConnectNodes(a, b))

	assert.Equal(t, 1, a.GetNumberOfEdges(Outgoing))
	assert.Equal(t, 0, a.GetNumberOfEdges(Incoming))
	assert.Equal(t, 0, b.GetNumberOfEdges(Outgoing))
	assert.Equal(t, 1, b.GetNumberOfEdges(Incoming))

	assert.Equal(t, []*Vertex{b}, a.GetAllConnectedNodes(Outgoing))
	assert.Equal(t, []*Vertex{a}, b.GetAllConnectedNodes(Incoming))
}

func TestDirectedConnectBothWays(t *testing.T) {
	g := New(true)
	a, _ := g.CreateNode("a", nil)
	b, _ := g.CreateNode("b", nil)

	require.NoError(t, g.ConnectBothWays(a, b))

	assert.Equal(t, 1, a.GetNumberOfEdges(Outgoing))
	assert.Equal(t, 1, a.GetNumberOfEdges(Incoming))
	assert.Equal(t, 1, b.GetNumberOfEdges(Outgoing))
	assert.Equal(t, 1, b.GetNumberOfEdges(Incoming))
}

func TestDuplicateConnectionIsRejected(t *testing.T) {
	g := New(true)
	a, _ := g.CreateNode("a", nil)
	b, _ := g.CreateNode("b", nil)

	require.NoError(t, g.ConnectNodes(a, b))
	err := g.ConnectNodes(a, b)
	assert.ErrorIs(t, err, ErrAlreadyConnected)
}

func TestUndirectedSharesSingleEdgeList(t *testing.T) {
	g := New(false)
	a, _ := g.CreateNode("a", nil)
	b, _ := g.CreateNode("b", nil)

	require.NoError(t, g.ConnectNodes(a, b))

	assert.Equal(t, 1, a.GetNumberOfEdges(Outgoing))
	assert.Equal(t, 1, a.GetNumberOfEdges(Incoming))
	assert.Equal(t, 1, b.GetNumberOfEdges(Outgoing))
	assert.Equal(t, 1, b.GetNumberOfEdges(Incoming))

	err := g.ConnectBothWays(a, b)
	assert.ErrorIs(t, err, ErrAlreadyConnected)
}

func TestRemoveNodeCleansUpAllEdges(t *testing.T) {
	g := New(true)
	a, _ := g.CreateNode("a", nil)
	b, _ := g.CreateNode("b", nil)
	c, _ := g.CreateNode("c", nil)

	require.NoError(t, g.ConnectNodes(a, b))
	require.NoError(t, g.ConnectNodes(c, a))

	require.NoError(t, g.RemoveNode(a))

	assert.False(t, g.Exists("a"))
	assert.Equal(t, 0, b.GetNumberOfEdges(Incoming))
	assert.Equal(t, 0, c.GetNumberOfEdges(Outgoing))
}

func TestRemoveNodeByKey(t *testing.T) {
	g := New(true)
	_, _ = g.CreateNode("a", nil)
	require.NoError(t, g.RemoveNode("a"))
	assert.False(t, g.Exists("a"))
}

func TestRemoveNodeMissingKey(t *testing.T) {
	g := New(true)
	err := g.RemoveNode("ghost")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestAddLinkWrongEndpointIsTypeMismatch(t *testing.T) {
	g := New(true)
	a, _ := g.CreateNode("a", nil)
	b, _ := g.CreateNode("b", nil)
	c, _ := g.CreateNode("c", nil)

	edge := &Edge{Start: b, End: c}
	err := a.AddLink(edge, Outgoing)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestGetEdgeReturnsInstalledEdge(t *testing.T) {
	g := New(true)
	a, _ := g.CreateNode("a", "doc-a")
	b, _ := g.CreateNode("b", "doc-b")
	require.NoError(t, g.ConnectNodes(a, b))

	edge := a.GetEdge(b, Outgoing)
	require.NotNil(t, edge)
	assert.Equal(t, a, edge.Start)
	assert.Equal(t, b, edge.End)
	assert.Nil(t, b.GetEdge(a, Outgoing))
	assert.NotNil(t, b.GetEdge(a, Incoming))
}

func TestVertexData(t *testing.T) {
	g := New(true)
	v, _ := g.CreateNode("a", nil)
	assert.False(t, v.HasData())

	v.SetData("payload")
	assert.True(t, v.HasData())
	assert.Equal(t, "payload", v.Data())
}
