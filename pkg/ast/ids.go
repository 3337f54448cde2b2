package ast

import "sync/atomic"

var idCounter int64

// nextId hands out a process-wide dense Id. Real deployments have this
// assigned by the parser during tree construction; the construction DSL
// in dsl.go plays that role here since no parser lives in this repo.
func nextId() Id {
	return Id(atomic.AddInt64(&idCounter, 1))
}
