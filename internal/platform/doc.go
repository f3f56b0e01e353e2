package platform

// Package platform contains OS integration helpers: resolving the on-disk
// store location and creating directories.
