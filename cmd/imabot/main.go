// Package main is the entry point for the imabot CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/RemyAtOVH/imabot/pkg/ansible"
	"github.com/RemyAtOVH/imabot/pkg/channels/discord"
	"github.com/RemyAtOVH/imabot/pkg/commands"
	"github.com/RemyAtOVH/imabot/pkg/config"
	"github.com/RemyAtOVH/imabot/pkg/logger"
	"github.com/RemyAtOVH/imabot/pkg/ovhapi"
	"github.com/RemyAtOVH/imabot/pkg/version"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "imabot",
	Short: "imabot - OVHcloud administration from Discord",
	Long: `imabot is a Discord bot for day-to-day OVHcloud administration:
Public Cloud projects and instances, Hosted Private Cloud services,
billing, and the ansible inventory, all through slash commands.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Connect to Discord and serve slash commands",
	Run:   runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.GetFullVersion())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	if configPath != "" {
		os.Setenv(config.ConfigPathEnv, configPath)
	}

	app := fx.New(
		config.Module,
		logger.Module,
		ovhapi.Module,
		ansible.Module,
		commands.Module,
		discord.Module,
	)

	app.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
