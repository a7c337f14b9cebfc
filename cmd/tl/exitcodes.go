package main

// Exit codes for the CLI
const (
	ExitSuccess           = 0
	ExitGeneralError      = 1
	ExitServerUnreachable = 2
	ExitNotConfigured     = 3
	ExitNotFound          = 4
	ExitAuthFailed        = 5
)
