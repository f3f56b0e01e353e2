package submit

// Package submit posts the current task list to a remote endpoint as a JSON
// array. A send is a single attempt: transport errors and non-2xx replies
// are returned to the caller, never retried.
