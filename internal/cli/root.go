package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "1.0.0"

var cfgFile string

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "portal",
		Short: "Kubernetes AI Platform Portal API",
		Long: `portal validates Kubernetes deployment requests and generates
Deployment/Service manifests for them with an AI model.

Commands:
  serve           run the HTTP API
  render-prompt   print the prompt a request would send, without calling the AI
  check-manifest  inspect a generated manifest bundle against a request`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "optional YAML config file (env vars and .env take precedence)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newRenderPromptCommand())
	root.AddCommand(newCheckManifestCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
