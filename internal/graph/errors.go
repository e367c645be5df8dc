// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package graph implements a directed or undirected graph of keyed
// vertices and edges, used to model the outbound-link structure between
// indexed documents.
//
// # Ownership Model
//
// The graph owns its vertices via a key→vertex map. Vertices own their
// incident edges directly (outgoing/incoming lists), mirroring each
// other's endpoint references. There is no shared edge arena: removing a
// vertex walks its neighbors and disconnects each side explicitly.
//
// # Thread Safety
//
// Graph is built once during indexing by a single goroutine and is read
// -only afterward; it is not safe for concurrent mutation.
package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrDuplicateKey is returned by CreateNode when the key already
	// exists in the graph.
	ErrDuplicateKey = errors.New("graph: duplicate key")

	// ErrMissingKey is returned whenever an operation references a key
	// (or vertex) not present in the graph, or a partner not present in
	// a vertex's edge lists.
	ErrMissingKey = errors.New("graph: missing key")

	// ErrAlreadyConnected is returned when adding an edge that
	// duplicates an existing directed edge between the same ordered
	// pair of vertices.
	ErrAlreadyConnected = errors.New("graph: already connected")

	// ErrTypeMismatch is returned by AddLink when an edge's endpoint
	// does not match the vertex it is being installed on — the closest
	// runtime analog, in a statically typed API, to the dynamically
	// typed "must be a Vertex/Edge instance" checks of the source this
	// package is grounded on.
	ErrTypeMismatch = errors.New("graph: type mismatch")
)
