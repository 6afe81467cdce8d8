// Command reqkit builds and executes a single request from the command line.
//
//	reqkit call users --query page=1 --header X-Trace=abc
//	reqkit call users --method POST --data name=ada --client resty
//	reqkit version
//
// Base host, default version and auth token come from config.yml, .env and
// the environment (CLIENT_BASE_HOST, REQKIT_AUTH_TOKEN, ...).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/reqkit/version"
)

const serviceName = "reqkit"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "reqkit",
		Short:         "Build and execute typed HTTP requests",
		Version:       version.GetShortVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCallCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetVersionInfo().String())
		},
	}
}
