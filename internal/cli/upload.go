package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUploadCmd(st *state) *cobra.Command {
	var title string
	var file string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload one file under a content name",
		Example: `  # Upload a brochure to the backend from config.yaml
  ingest upload --title "Product brochure" --file ./brochure.pdf

  # Upload against a local stub
  ingest upload --base-url http://localhost:8080 -t notes -f notes.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := st.newForm(cmd.OutOrStdout())
			f.title.Set(title)
			if file != "" {
				if err := f.file.Select(file); err != nil {
					return fmt.Errorf("cannot use %s: %w", file, err)
				}
			}

			out := f.flow.Submit(cmd.Context())
			if !out.OK() {
				return out.Err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Content name")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the file to upload")

	return cmd
}
