package main

import (
	"os"

	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 200

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "planner",
		Short: "Floor plan editing and export engine",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings YAML file")

	rootCmd.AddCommand(exportCmd(&configPath))
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func exportCmd(configPath *string) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export [project-file]",
		Short: "Export a project to PNG, DXF, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0], *configPath, format, out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "png", "output format: png, dxf, project, vertices")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout if omitted)")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-file]",
		Short: "Validate a project file without exporting",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func serveCmd(configPath *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-file]",
		Short: "Start the local dev server around a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runServe(path, *configPath, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
