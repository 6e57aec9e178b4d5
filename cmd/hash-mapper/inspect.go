package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"hash-mapper/internal/mapping"
	"hash-mapper/mapper"
)

var hookKinds = []mapper.HookKind{
	mapper.BeforeNormalize,
	mapper.BeforeDenormalize,
	mapper.AfterNormalize,
	mapper.AfterDenormalize,
}

func newInspectCmd(root *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List mappers or the effective rules of one mapper",
		Long: `Without --name, list every mapper of the mapping file with its parent,
imports and number of effective rules and hooks.

With --name, list the effective rules of that mapper in execution order,
inherited and imported rules included.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := root.loadSet()
			if err != nil {
				return err
			}

			if name == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), renderMappers(set))
				return nil
			}

			picked, err := pickMapper(set, name)
			if err != nil {
				return err
			}

			m, _ := set.Get(picked)
			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderRules(m))

			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "mapper whose rules are listed")

	return cmd
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderMappers(set *mapping.Set) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Mapper", "Extends", "Imports", "Rules", "Hooks"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, name := range set.Names() {
		m, _ := set.Get(name)
		md, _ := set.Definition(name)

		hooks := 0
		for _, kind := range hookKinds {
			hooks += len(m.Hooks(kind))
		}

		table.Append([]string{
			name,
			md.Extends,
			strings.Join(md.Imports, ", "),
			strconv.Itoa(len(m.Rules())),
			strconv.Itoa(hooks),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(set.Names())), "", "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func renderRules(m *mapper.Mapper) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"#", "From", "To", "Filters", "Using", "Default"})

	for i, r := range m.Rules() {
		table.Append([]string{
			strconv.Itoa(i + 1),
			r.From().String(),
			r.To().String(),
			filterSides(r),
			delegateName(r.Delegate()),
			defaultText(r),
		})
	}

	table.Render()

	var hooks []string

	for _, kind := range hookKinds {
		if n := len(m.Hooks(kind)); n > 0 {
			hooks = append(hooks, fmt.Sprintf("%s=%d", kind, n))
		}
	}

	if len(hooks) > 0 {
		tableBuffer.WriteString("hooks: " + strings.Join(hooks, " ") + "\n")
	}

	return tableBuffer.String()
}

func filterSides(r *mapper.Rule) string {
	var sides []string
	if !r.From().Filter().IsIdentity() {
		sides = append(sides, "from")
	}

	if !r.To().Filter().IsIdentity() {
		sides = append(sides, "to")
	}

	return strings.Join(sides, ",")
}

func delegateName(d mapper.SubMapper) string {
	switch v := d.(type) {
	case nil:
		return ""
	case fmt.Stringer:
		return v.String()
	case interface{ Name() string }:
		return v.Name()
	default:
		return fmt.Sprintf("%T", d)
	}
}

func defaultText(r *mapper.Rule) string {
	v, ok := r.DefaultValue()
	if !ok {
		return ""
	}

	return fmt.Sprintf("%v", v)
}
