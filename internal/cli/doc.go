// Package cli implements the headless todo command line: list, add, rm
// and send over a disk-backed task store.
package cli
