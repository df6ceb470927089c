// Package sgmwcs translates STP instances into SGMWCS signal format.
//
// An SGMWCS solver reads three files: an edge list where every edge names the
// signal carrying its weight, a node list mapping nodes to signals, and a
// table of signal weights. A signal is a shared weight channel; it is counted
// once no matter how many edges or nodes reference it.
//
// # Allocation
//
// [Translate] walks nodes 1..N of the instance and, for each arc n1 -> n2
// with weight w:
//
//   - n2 not a terminal: a fresh signal S<k> is allocated with weight -w and
//     the record "n1 n2 S<k>" goes to the edges relation.
//   - n2 a terminal: the shared signal S<n2> gets weight w (the last arc into
//     a terminal wins) and "n1 S<n2>" goes to the nodes relation.
//
// A node without any arc into a terminal gets the record "n1 S0", where S0
// is the "no group" signal.
//
// Before the walk the table is seeded with S<t> for every terminal t in
// ascending order, then S0, all with weight 0. Fresh signals therefore never
// collide with a terminal's signal number.
//
// After the walk every signal with a strictly positive weight is replaced by
// the infinite weight, written as "inf" by default.
//
// # Example
//
//	in, _ := stp.ReadFile("tiny.stp", stp.ReadOptions{})
//	res, err := sgmwcs.Translate(in, sgmwcs.Options{})
//	if err != nil {
//	    return err
//	}
//	return res.WriteFiles("out", "tiny.stp")
package sgmwcs
