// Package commands implements the CampusGig CLI commands
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/campusgig/campusgig/internal/api/v1/routes"
	"github.com/campusgig/campusgig/pkg/api/v1/client"
)

// flag names
const (
	flagServerAddress = "server-address"
)

// environment variable names
const (
	envServerAddress = "CAMPUSGIG_SERVER_ADDRESS"
	envAuthToken     = "CAMPUSGIG_TOKEN"
)

var (
	// apiClient is the shared API client instance
	apiClient client.Client
	// serverAddress holds the target API server address. Flag parsing sets this.
	serverAddress string
)

// initClient initializes the API client
func initClient() error {
	opts := client.DefaultOptions()
	opts.BaseURL = serverAddress
	opts.AuthToken = os.Getenv(envAuthToken)

	var err error
	apiClient, err = client.NewClient(opts)
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s",
		routes.DefaultBaseURL, "Address of the CampusGig API server (env: CAMPUSGIG_SERVER_ADDRESS)")

	RootCmd.AddCommand(jobsCmd)
	RootCmd.AddCommand(usersCmd)
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "campusgig",
	Short: "CampusGig CLI - a command line interface for the CampusGig API",
	Long:  `CampusGig CLI is a command line tool for browsing jobs and users on a CampusGig server.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Flag > env var > default
		if !cmd.Flags().Changed(flagServerAddress) {
			if envAddr := os.Getenv(envServerAddress); envAddr != "" {
				serverAddress = envAddr
			}
		}

		if serverAddress == "" {
			return fmt.Errorf("server address cannot be empty")
		}
		return initClient()
	},
}
