// Package ordernum generates the human-readable order references shown to
// customers.
package ordernum

import (
	"regexp"
	"time"
)

const (
	prefix      = "ORD-"
	stampLayout = "20060102150405"
)

var referencePattern = regexp.MustCompile(`^ORD-\d{14}$`)

// Generator produces references of the form ORD-YYYYMMDDHHMMSS.
//
// References have second resolution: two orders created within the same
// second receive the same reference.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a generator backed by the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock creates a generator that reads time from now.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Next returns the reference for the current instant.
func (g *Generator) Next() string {
	return Format(g.now())
}

// Format renders t as an order reference.
func Format(t time.Time) string {
	return prefix + t.Format(stampLayout)
}

// Valid reports whether ref is a well-formed order reference.
func Valid(ref string) bool {
	return referencePattern.MatchString(ref)
}
