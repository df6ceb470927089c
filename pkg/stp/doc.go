// Package stp reads Steiner Tree Problem instances in the STP text format.
//
// # Format
//
// The reader understands the subset of STP that the SGMWCS converter needs.
// Sections are located by scanning for a line containing the literal word
// "Section"; everything between two sections that the reader is not
// interested in (comments, END lines) is skipped:
//
//	33D32945 STP File, STP Format Version 1.0
//	Section Comment
//	Name "tiny"
//	END
//
//	Section Graph
//	Nodes 3
//	Edges 2
//	E 1 2 5
//	E 2 3 -4
//	END
//
//	Section Terminals
//	Terminals 1
//	T 2
//	END
//
//	Section Coordinates
//	DD 1 0 0
//	DD 2 1 1
//	DD 3 2 0
//	END
//
// Parsing is strict and order dependent: the counts declared in the graph and
// terminal sections decide exactly how many record lines are consumed, and the
// coordinate section must hold one line per node. Any deviation is reported
// as an INVALID_FORMAT error carrying the offending line number.
//
// # Graph model
//
// Edges are kept directed, exactly as written. The adjacency list is indexed
// by source node id with index 0 unused, so Adj[n] lists the arcs leaving
// node n in input order.
//
// # Range checks
//
// By default only edge sources are range checked, since an arc cannot be
// stored for a node the adjacency list does not have. [ReadOptions.Strict]
// extends the check to edge targets, terminal ids and coordinate ids.
package stp
