package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asgardex/asgardex-native/internal/capability"
	"github.com/asgardex/asgardex-native/internal/command"
	"github.com/asgardex/asgardex-native/internal/logging"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	profileName = ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestCommandNames(t *testing.T) {
	tests := []struct {
		profile  capability.TargetProfile
		expected []string
	}{
		{capability.ProfileDesktop, []string{command.ResolveDeviceType}},
		{capability.ProfileIOS, []string{command.ResolveDeviceType}},
		{capability.ProfileAndroid, []string{command.ResolveDeviceType, command.SaveKeystoreToDownloadsAndroid}},
		{capability.ProfileLegacyAndroid, []string{command.ResolveDeviceType}},
	}

	for _, tt := range tests {
		t.Run(tt.profile.Name(), func(t *testing.T) {
			names, err := commandNames(tt.profile)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestComposeCommand(t *testing.T) {
	out, err := run(t, "compose", "--profile", "android")
	require.NoError(t, err)
	assert.Equal(t, capability.Compose(capability.ProfileAndroid).Strings(), lines(out))
}

func TestComposeUnknownProfile(t *testing.T) {
	_, err := run(t, "compose", "--profile", "windows-phone")
	assert.Error(t, err)
}

func TestProfilesCommand(t *testing.T) {
	out, err := run(t, "profiles")
	require.NoError(t, err)
	assert.Equal(t, capability.ProfileNames(), lines(out))
}

func TestPrintSinks(t *testing.T) {
	var out bytes.Buffer
	printSinks(&out, logging.SelectSinks(logging.MapEnvironment{logging.EnvLogToWebview: "true"}))
	assert.Equal(t, []string{"stdout", "log-directory", "webview"}, lines(out.String()))
}
