// Package foresight projects a user's future cash balances and net worth
// from recorded financial facts. It is designed to be local-first and
// deterministic: every projection is a pure function of the recorded plan
// and an explicit starting month, so re-running it always yields the same
// numbers.
//
// The core functionalities include:
//   - Cashflow Projection: expanding recurring and scheduled cash items
//     month by month, carrying balances forward and reconciling every
//     balance change to its line items.
//   - Debt Amortization: splitting a level payment into interest and
//     principal under a time-varying reference rate, with lump-sum extra
//     payments applied directly to principal.
//   - Investment Growth: compounding an annual growth rate monthly and
//     posting scheduled contributions.
//   - Receivable Tracking: paying down money owed to the user through
//     scheduled repayments.
//   - Wealth Aggregation: merging all per-instrument series into a single
//     net-worth timeline.
//   - Data Persistence: encoding and decoding the plan to and from a
//     human-readable, version-controllable JSONL file.
//
// This package serves as the foundational logic for the `fsc` command-line
// tool; the engine itself performs no I/O.
package foresight
