package main

import (
	"github.com/aretw0/doro/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a headless pet behind an HTTP API",
	Long: `Starts a headless pet and exposes it over HTTP: state inspection, pointer
events, manual transitions, config reload, an SSE stream of state changes and
Prometheus metrics. With --redis the configuration lives in Redis and changes
published there are applied live.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.ServeOptions{}
		opts.ConfigPath, _ = cmd.Flags().GetString("config")
		opts.AssetsDir, _ = cmd.Flags().GetString("assets")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.JSONLogs, _ = cmd.Flags().GetBool("json-logs")
		port, _ := cmd.Flags().GetString("port")
		opts.Addr = ":" + port
		opts.RedisAddr, _ = cmd.Flags().GetString("redis")
		opts.RedisPrefix, _ = cmd.Flags().GetString("redis-prefix")
		opts.NoStats, _ = cmd.Flags().GetBool("no-stats")
		return cli.Serve(opts)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for the configuration store (password from DORO_REDIS_PASSWORD)")
	serveCmd.Flags().String("redis-prefix", "", "Key prefix for the configuration in Redis")
	serveCmd.Flags().Bool("no-stats", false, "Do not sample host CPU, memory and network usage")
}
