package ui

// Package ui contains the Fyne-based user interface for the to-do list.
// RootUI binds the entry, the Add and Send buttons, and the task list to the
// task service; every change re-renders the list and button states from the
// service instead of patching widgets by hand.
