package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"hash-mapper/internal/diagnostic"
	"hash-mapper/internal/mapping"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a mapping file",
		Long: `Validate a mapping file without mapping any document.

Reports unknown mappers, filters and hooks (with suggestions), malformed
paths, inheritance cycles and rules shadowed by earlier ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mf, err := root.loadMapping()
			if err != nil {
				return err
			}

			diags := mapping.Validate(mf, mapping.NewRegistry())
			out := cmd.OutOrStdout()

			if len(diags.All()) == 0 {
				_, _ = fmt.Fprintf(out, "OK: %d mappers\n", len(mf.Mappers))
				return nil
			}

			_, _ = fmt.Fprint(out, renderDiagnostics(diags))

			if !diags.IsValid() {
				return fmt.Errorf("mapping has %d errors", len(diags.Errors))
			}

			if strict && len(diags.Warnings) > 0 {
				return fmt.Errorf("mapping has %d warnings", len(diags.Warnings))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")

	return cmd
}

func renderDiagnostics(diags *diagnostic.Diagnostics) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Severity", "Code", "Mapper", "Where", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, d := range diags.All() {
		msg := d.Message
		if len(d.Suggestions) > 0 {
			msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
		}

		table.Append([]string{d.Severity.String(), d.Code, d.Mapper, d.Path, msg})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d errors", len(diags.Errors)),
		fmt.Sprintf("%d warnings", len(diags.Warnings)),
		"", "", "",
	})

	table.Render()

	return tableBuffer.String()
}
