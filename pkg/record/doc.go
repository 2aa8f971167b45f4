// Package record normalizes Route53 style resource record sets.
//
// A raw record set comes in one of several shapes: an alias pointing at
// another name, a list of plain resource values, and optionally a weight
// or latency region for routing policies. Normalize flattens these into
// a single Record shape so that graph construction never has to branch
// on field presence.
package record
