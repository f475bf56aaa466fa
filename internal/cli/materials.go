package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yourname/ingest_lite/internal/models"
)

func newMaterialsCmd(st *state) *cobra.Command {
	var pageSize int
	var page int
	var sorts []string

	cmd := &cobra.Command{
		Use:   "materials",
		Short: "List ingested materials",
		Example: `  # Everything, in ingestion order
  ingest materials

  # Second page of ten, by name descending
  ingest materials --page-size 10 --page 1 --sort name:desc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseSorts(sorts)
			if err != nil {
				return err
			}

			items, err := st.client().ListMaterials(cmd.Context(), models.Pagination{
				PageSize: pageSize,
				PageNum:  page,
				Sorts:    parsed,
			})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME")
			for _, it := range items {
				fmt.Fprintf(tw, "%s\t%s\n", it.ID, it.Name)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", -1, "Page size (-1 for all)")
	cmd.Flags().IntVar(&page, "page", -1, "Zero-based page number")
	cmd.Flags().StringSliceVar(&sorts, "sort", nil, "Sort as field:direction, field is name or id")

	return cmd
}

// parseSorts разбирает значения вида name:asc; направление по умолчанию asc.
func parseSorts(values []string) (map[models.SortField]models.SortDirection, error) {
	if len(values) == 0 {
		return nil, nil
	}

	out := make(map[models.SortField]models.SortDirection, len(values))
	for _, v := range values {
		field, dir, _ := strings.Cut(strings.TrimSpace(v), ":")
		f := models.SortField(strings.ToLower(field))
		if f != models.SortByName && f != models.SortByID {
			return nil, fmt.Errorf("unknown sort field %q", field)
		}

		d := models.SortAsc
		if dir != "" {
			d = models.SortDirection(strings.ToLower(dir))
		}
		if d != models.SortAsc && d != models.SortDesc {
			return nil, fmt.Errorf("unknown sort direction %q", dir)
		}
		out[f] = d
	}

	return out, nil
}
