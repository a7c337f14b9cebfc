package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/tasklight/tasklight-go/internal/config"
	"github.com/tasklight/tasklight-go/pkg/tasklight"
)

const userAgent = "tasklight-cli"

var errMissingProject = fmt.Errorf("a project is required: pass --project")

// getClient creates a client from the resolved config and global flags
func getClient() (*tasklight.Client, error) {
	cfg, err := config.ResolveConfig(config.Overrides{
		ServerURL: flagURL,
		Token:     flagToken,
		LogLevel:  flagLogLevel,
	})
	if err != nil {
		return nil, err
	}

	opts := []tasklight.ClientOption{tasklight.WithUserAgent(userAgent)}
	if cfg.Token != "" {
		opts = append(opts, tasklight.WithToken(cfg.Token))
	}
	return tasklight.NewClient(cfg.ServerURL, opts...)
}

// parseID parses a numeric ID argument.
func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID %q: must be a positive number", what, arg)
	}
	return id, nil
}

// mapErrorToExitCode maps an error to the appropriate exit code
func mapErrorToExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if tasklight.IsTransportError(err) {
		return ExitServerUnreachable
	}
	if tasklight.IsAuthenticationError(err) {
		return ExitAuthFailed
	}
	if tasklight.StatusCode(err) == http.StatusNotFound {
		return ExitNotFound
	}
	if isConfigError(err) {
		return ExitNotConfigured
	}

	return ExitGeneralError
}

// isConfigError checks if the error came from config resolution
func isConfigError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "no server URL configured")
}

// handleError handles an error by printing it and exiting with the
// appropriate code
func handleError(err error) {
	if err == nil {
		return
	}

	printError(os.Stderr, err, jsonOutput)
	os.Exit(mapErrorToExitCode(err))
}
