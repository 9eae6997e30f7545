// Package credential holds the stateless validation rules for emails and
// passwords. Everything here is a pure function over its input: no side
// effects, no errors, only returned outcomes.
package credential
