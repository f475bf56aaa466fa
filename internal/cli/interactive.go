package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourname/ingest_lite/internal/app/terminalui"
)

func newInteractiveCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Upload files one after another from a prompt",
		Long: `Prompts for a content name and a file path, then uploads them.

Pressing Enter on an empty line keeps the current value, so a failed upload
can be retried unchanged. Type :q or send EOF to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := st.newForm(cmd.OutOrStdout())
			p := &terminalui.Prompt{
				In:    cmd.InOrStdin(),
				Out:   cmd.OutOrStdout(),
				Title: f.title,
				File:  f.file,
				Flow:  f.flow,
			}

			n, err := p.Run(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d material(s) uploaded\n", n)
			return err
		},
	}

	return cmd
}
