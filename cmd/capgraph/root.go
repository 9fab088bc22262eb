package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asgardex/asgardex-native/internal/capability"
	"github.com/asgardex/asgardex-native/internal/command"
	"github.com/asgardex/asgardex-native/internal/export"
	"github.com/asgardex/asgardex-native/internal/logging"
)

var profileName string

// rootCmd prints what a build target would attach without starting the host.
var rootCmd = &cobra.Command{
	Use:           "capgraph",
	Short:         "Inspect integration and command composition per build profile",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the known build profiles",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range capability.ProfileNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Print the integrations attached for a profile, in attach order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := selectedProfile()
		if err != nil {
			return err
		}
		for _, id := range capability.Compose(profile).IDs() {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Print the commands a profile exposes to the application layer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := selectedProfile()
		if err != nil {
			return err
		}
		names, err := commandNames(profile)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var sinksCmd = &cobra.Command{
	Use:   "sinks",
	Short: "Print the log sinks selected from the current environment",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printSinks(cmd.OutOrStdout(), logging.SelectSinks(logging.OSEnvironment))
	},
}

func init() {
	for _, c := range []*cobra.Command{composeCmd, commandsCmd} {
		c.Flags().StringVarP(&profileName, "profile", "p", "",
			"build profile ("+strings.Join(capability.ProfileNames(), ", ")+"); defaults to this machine")
	}
	rootCmd.AddCommand(profilesCmd, composeCmd, commandsCmd, sinksCmd)
}

func selectedProfile() (capability.TargetProfile, error) {
	if profileName == "" {
		return capability.CurrentProfile(), nil
	}
	return capability.ParseProfile(profileName)
}

// commandNames registers the entitled commands against placeholder services,
// so the result matches what a running host would expose.
func commandNames(profile capability.TargetProfile) ([]string, error) {
	attached := capability.Compose(profile)
	cmds, err := command.Entitled(profile.Platform, attached, plannedServices{attached})
	if err != nil {
		return nil, err
	}
	surface, err := command.NewSurface(cmds...)
	if err != nil {
		return nil, err
	}
	if err := surface.Validate(attached); err != nil {
		return nil, err
	}
	return surface.Names(), nil
}

func printSinks(w io.Writer, sinks logging.SinkSet) {
	for _, s := range sinks.Sinks() {
		fmt.Fprintln(w, s)
	}
}

var errNotAttached = errors.New("integration not attached in inspection mode")

type plannedServices struct {
	attached capability.Set
}

func (s plannedServices) Service(id capability.ID) (any, bool) {
	if !s.attached.Contains(id) {
		return nil, false
	}
	if id == capability.AndroidFS {
		return unattachedStorage{}, true
	}
	return struct{}{}, true
}

type unattachedStorage struct{}

func (unattachedStorage) WriteNew(context.Context, export.PublicDir, string, string, []byte) error {
	return errNotAttached
}
