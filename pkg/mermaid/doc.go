// Package mermaid renders lineage graphs as Mermaid flowchart text.
//
// The output is line-oriented and deterministic: one declaration line per
// node (entities in stadium brackets, jobs in square brackets, each tagged
// with a style class), one line per edge (solid connectors for reads, dotted
// for writes), then two classDef lines. Double quotes inside labels are
// replaced with single quotes before emission so labels cannot escape their
// quoting.
//
// A MaxNodes option caps the number of declaration lines with a hard counted
// cutoff over stable iteration order, which keeps diagrams bounded on large
// graphs and keeps small-fixture output exactly assertable.
package mermaid
