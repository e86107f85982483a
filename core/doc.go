// Package core provides a small, thread-safe in-memory Graph used as the
// topology source for structural node embeddings.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(bool)  one-way edges instead of mirrored ones
//	– WithWeighted()      permit non-zero, non-negative int64 weights
//	– WithLoops()         permit self-loops
//
// Core Methods:
//
//	AddVertex(id string) error
//	AddEdge(from, to string, weight int64) (edgeID string, err error)
//	HasVertex / HasEdge
//	Neighbors(id) ([]Neighbor, error)   // sorted by neighbor ID
//	NeighborIDs(id) ([]string, error)   // sorted
//	Degree(id) (int, error)
//	Vertices() []string                 // sorted
//	Edges() []*Edge                     // in insertion order
//
// Deterministic iteration is what lets anchor-distance embeddings be
// reproduced bit for bit from the same edge list.
package core
