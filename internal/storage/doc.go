package storage

// Package storage persists the task collection as a single JSON blob in a
// key-value backend. The GUI stores it in the fyne app preferences and the
// command line tool stores it on disk through diskv.
