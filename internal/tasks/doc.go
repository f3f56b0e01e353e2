package tasks

// Package tasks owns the in-memory task collection and keeps it in sync with
// the storage repository: every add and delete is written through before it
// returns. Listeners registered with SetUpdateCallback re-render after each
// change.
