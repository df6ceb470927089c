// Package pkg provides the libraries behind stp2sgmwcs.
//
// # Overview
//
// stp2sgmwcs turns Steiner tree problems in the STP format into the three
// relations read by the SGMWCS solver. The pkg directory is organized as:
//
//  1. [stp] - STP parsing into an in-memory instance
//  2. [sgmwcs] - signal allocation and the edges/nodes/signals relations
//  3. [convert] - batch orchestration: glob expansion, caching, file output
//  4. [cache] - result caches (file, Redis, null)
//  5. [render] - DOT and SVG drawings of an instance and its signals
//
// Supporting packages: [errors] for coded errors, [observability] for
// conversion and cache hooks, [buildinfo] for version data.
//
// # Data Flow
//
//	STP file
//	   ↓
//	[stp] package (Instance: adjacency, terminals, coordinates)
//	   ↓
//	[sgmwcs] package (Result: records + signal table)
//	   ↓
//	edges_<name>, nodes_<name>, signals_<name>
//
// # Quick Start
//
//	in, err := stp.ReadFile("instance.stp", stp.ReadOptions{})
//	if err != nil {
//	    return err
//	}
//	res, err := sgmwcs.Translate(in, sgmwcs.Options{})
//	if err != nil {
//	    return err
//	}
//	return res.WriteFiles(".", "instance.stp")
//
// [stp]: github.com/matzehuels/stp2sgmwcs/pkg/stp
// [sgmwcs]: github.com/matzehuels/stp2sgmwcs/pkg/sgmwcs
// [convert]: github.com/matzehuels/stp2sgmwcs/pkg/convert
// [cache]: github.com/matzehuels/stp2sgmwcs/pkg/cache
// [render]: github.com/matzehuels/stp2sgmwcs/pkg/render
// [errors]: github.com/matzehuels/stp2sgmwcs/pkg/errors
// [observability]: github.com/matzehuels/stp2sgmwcs/pkg/observability
// [buildinfo]: github.com/matzehuels/stp2sgmwcs/pkg/buildinfo
package pkg
