// Package backend binds the problem zoo to a concrete array engine.
//
// Every vector field and problem factory in the zoo performs its array
// arithmetic through a [Registry], which resolves to one of two engines:
//
//   - dense: eager evaluation on plain float64 slices (gonum kernels)
//   - trace: deferred evaluation through a recorded expression graph
//
// A registry starts unselected. [Registry.Select] binds an engine exactly
// once; [Registry.ChangeTo] revises an existing selection. Array and
// random operations are always bound together as a pair, so arrays
// produced by one accessor interoperate with the other.
//
// # Example
//
//	reg := backend.NewRegistry()
//	if err := reg.Select("dense"); err != nil {
//	    log.Fatal(err)
//	}
//	np, _ := reg.Ops()
//	u0 := np.FromSlice([]float64{20, 20})
//
// # Thread Safety
//
// Registries are not internally locked. Select an engine before sharing a
// registry across goroutines; after that, all engine operations are pure
// and safe for concurrent use.
package backend
