package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/domain"
	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/deployment/prompt"
)

func newRenderPromptCommand() *cobra.Command {
	var req domain.DeploymentRequest

	cmd := &cobra.Command{
		Use:       "render-prompt validate|generate",
		Short:     "Print the prompt a request would send to the AI provider",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(prompt.KindValidate), string(prompt.KindGenerateConfig)},
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := prompt.Render(prompt.Kind(args[0]), req)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	addRequestFlags(cmd, &req)
	return cmd
}
