// Package catalog keeps the runnable demos of the pattern catalogue in one registry.
//
// Each demo is a plain function that writes its output to an io.Writer. Names are
// registered explicitly (no init-time magic) and looked up by the CLI:
//
//	reg := catalog.Default()
//	_ = reg.Run("strategy", os.Stdout)
//
// Registration failures and lookups return small typed errors you can assert with
// errors.As; their Error methods avoid fmt so they stay cheap on failure paths.
package catalog
