package main

import (
	"errors"
	"testing"

	"github.com/tasklight/tasklight-go/pkg/tasklight"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    int64
		wantErr bool
	}{
		{name: "valid ID", arg: "42", want: 42},
		{name: "large ID", arg: "9007199254740993", want: 9007199254740993},
		{name: "zero", arg: "0", wantErr: true},
		{name: "negative", arg: "-5", wantErr: true},
		{name: "not a number", arg: "abc", wantErr: true},
		{name: "empty", arg: "", wantErr: true},
		{name: "float", arg: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseID(tt.arg, "task")
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseID(%q) expected error, got %d", tt.arg, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseID(%q) unexpected error: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("parseID(%q) = %d, expected %d", tt.arg, got, tt.want)
			}
		})
	}
}

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: ExitSuccess,
		},
		{
			name: "transport error",
			err: &tasklight.TransportError{
				Endpoint: "/tasks/all",
				Method:   "GET",
				Err:      errors.New("connection refused"),
			},
			expected: ExitServerUnreachable,
		},
		{
			name: "authentication error",
			err: &tasklight.AuthenticationError{
				APIError: tasklight.APIError{
					Message:    "invalid token",
					StatusCode: 401,
				},
			},
			expected: ExitAuthFailed,
		},
		{
			name: "assignee authentication error",
			err: &tasklight.AssigneeAuthenticationError{
				AuthenticationError: tasklight.AuthenticationError{
					APIError: tasklight.APIError{
						Message:    "forbidden",
						StatusCode: 403,
					},
				},
			},
			expected: ExitAuthFailed,
		},
		{
			name: "not found",
			err: &tasklight.APIError{
				Message:    "task not found",
				StatusCode: 404,
			},
			expected: ExitNotFound,
		},
		{
			name:     "missing configuration",
			err:      errors.New("no server URL configured: set TASKLIGHT_URL, pass --url, or add it to ~/.tasklight/config.toml"),
			expected: ExitNotConfigured,
		},
		{
			name: "server error",
			err: &tasklight.APIError{
				Message:    "internal error",
				StatusCode: 500,
			},
			expected: ExitGeneralError,
		},
		{
			name:     "generic error",
			err:      errors.New("something went wrong"),
			expected: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mapErrorToExitCode(tt.err)
			if result != tt.expected {
				t.Errorf("mapErrorToExitCode() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

func TestIsConfigError(t *testing.T) {
	if !isConfigError(errors.New("no server URL configured: set TASKLIGHT_URL")) {
		t.Error("config resolution error should be recognized")
	}
	if isConfigError(errors.New("connection refused")) {
		t.Error("unrelated error should not be a config error")
	}
	if isConfigError(nil) {
		t.Error("nil should not be a config error")
	}
}
