// Package services implements the driving ports on top of the driven ones.
//
// The search orchestrator, text extractor and watch loop never touch the
// filesystem, processes or the terminal directly; everything goes through
// ports so tests can substitute in-memory fakes.
package services
