package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/domain"
	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/manifest"
)

// errDeviations makes the command exit non-zero when the bundle deviates.
var errDeviations = errors.New("manifest deviates from the request")

func newCheckManifestCommand() *cobra.Command {
	var req domain.DeploymentRequest

	cmd := &cobra.Command{
		Use:   "check-manifest FILE",
		Short: "Inspect a generated manifest bundle against a deployment request",
		Long: `check-manifest strips markdown fences from FILE ("-" reads stdin) and
reports every way the bundle differs from what the generator is asked for.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			warnings := manifest.Inspect(manifest.StripCodeFences(string(raw)), req)
			out := cmd.OutOrStdout()
			if len(warnings) == 0 {
				fmt.Fprintln(out, "ok: manifest matches the request")
				return nil
			}
			for _, w := range warnings {
				fmt.Fprintf(out, "- %s\n", w)
			}
			return errDeviations
		},
	}

	addRequestFlags(cmd, &req)
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return b, nil
}
