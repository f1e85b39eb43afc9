// Package report renders the outcome of a protocol run for humans. It
// reads only the coordinator's and participants' public accessors and
// carries no protocol semantics.
package report
