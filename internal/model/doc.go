package model

// Package model defines the to-do domain types: a Task and the Collection
// that owns every task by id. Both serialize to the JSON blob kept in the
// local key-value store.
