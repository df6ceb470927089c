// Package convert drives STP to SGMWCS conversions over files on disk.
//
// A [Runner] reads one STP file, translates it with package sgmwcs and
// writes edges_<name>, nodes_<name> and signals_<name>. Batches are
// processed strictly one file after another; the first failure stops the
// batch and is returned wrapped with the failing path.
//
// # Usage
//
//	runner := convert.NewRunner(cache.NewNullCache(), logger, convert.Options{})
//	reports, err := runner.ConvertGlob(ctx, "samples/*.stp")
//	if err != nil {
//	    return err
//	}
//	for _, r := range reports {
//	    fmt.Println(r.Input, "->", r.Outputs.Signals)
//	}
//
// # Caching
//
// The runner hashes the raw input bytes. When the configured cache holds an
// entry for the same content and options, the cached relations are written
// instead of translating again; translation is deterministic, so the files
// are byte-identical either way. [Options.Refresh] skips the lookup.
package convert
