// Package satcore holds no code of its own, only this doc and the
// cross-engine integration tests: dimacs, cdcl, dpll, dp, and report are independent packages sharing
// only the dimacs.Problem value, and internal/driver wires them to the
// CLI in cmd/satcore. This file exists so `go doc` has somewhere to point
// a reader at the module as a whole; see SPEC_FULL.md and DESIGN.md for
// the full design writeup.
package satcore
