// Package runner loads declarative problem cases from HCL, dispatches each to
// a registered solver, and reports the outcomes.
//
// What:
//
//	A case file holds one or more labelled blocks:
//
//	    case "coins-11" {
//	      solver = "coin-change"
//	      ints   = [1, 2, 5]
//	      target = 11
//	      expect = "3"
//	    }
//
//	Expressions may call range, concat, reverse, upper, lower, split, join,
//	length, sort, distinct, flatten and jsonencode.
//
// Why:
//
//	Exercising many solvers over many inputs without writing Go for each one.
//
// Execution:
//
//	Run executes cases on a bounded errgroup. Results keep input order.
//	A result is compared to expect by JSON rendering: "pass" or "fail";
//	a case without expect is "done"; a solver error is "error"; a case that
//	never started because the batch was cancelled is "skipped".
//
// Errors:
//
//   - ErrInvalidCase: a case violates its field constraints.
//   - ErrDuplicateCase: two cases share a name.
//   - ErrUnknownSolver: a case names a solver that is not registered.
//   - ErrMissingField: a solver needs a field the case does not set.
package runner
