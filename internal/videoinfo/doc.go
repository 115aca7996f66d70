// Package videoinfo resolves video metadata (title and duration) through a
// chain of best-effort providers. Provider failures are logged and the chain
// falls through to a placeholder, so metadata lookup never blocks a
// transcript request.
package videoinfo
