// Package policy holds the route policy table: an ordered list of rules that
// classify each (method, path) pair as PUBLIC or AUTHENTICATED.
//
// The table is data. It is evaluated by a single matcher in declaration order and
// the first matching rule decides. Paths that no rule matches require authentication.
package policy
