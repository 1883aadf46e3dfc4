package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/augmented-unreality/aurdeps/internal/catalog"
	"github.com/augmented-unreality/aurdeps/internal/console"
	"github.com/augmented-unreality/aurdeps/internal/messages"
	"github.com/augmented-unreality/aurdeps/internal/platform"
)

func newModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ModulesUse,
		Short: messages.ModulesShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool(flagQuiet)
			out := console.New(cmd.OutOrStdout(), quiet)
			target, err := resolveBuildPlatform(out, args)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderModules(target))
			return nil
		},
	}
}

// moduleRows lists the catalog entries installed for target as
// component, module, source file, destination files.
func moduleRows(target platform.Platform) [][]string {
	release := catalog.OpenCV
	var rows [][]string
	for _, module := range release.Modules {
		switch target {
		case platform.Windows:
			dll := release.WindowsDLL(module)
			rows = append(rows, []string{"opencv " + release.Version.String(), module, dll, dll})
		case platform.Linux:
			dest := strings.Join([]string{release.VersionedSharedObject(module), release.SharedObjectLink(module)}, ", ")
			rows = append(rows, []string{"opencv " + release.Version.String(), module, release.SharedObject(module), dest})
		default:
			rows = append(rows, []string{"opencv " + release.Version.String(), module, "-", messages.ModulesStatic})
		}
	}
	if target == platform.Windows {
		for _, lib := range catalog.GStreamerLibraries {
			rows = append(rows, []string{"gstreamer", strings.TrimSuffix(lib, ".dll"), lib, lib})
		}
	}
	return rows
}

func renderModules(target platform.Platform) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(fmt.Sprintf(messages.ModulesTitleFmt, target, target.Dir()))
	tw.AppendHeader(table.Row{
		messages.ModulesHeaderComponent,
		messages.ModulesHeaderModule,
		messages.ModulesHeaderSource,
		messages.ModulesHeaderDestination,
	})
	for _, row := range moduleRows(target) {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}
