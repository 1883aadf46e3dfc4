package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/augmented-unreality/aurdeps/internal/copier"
	"github.com/augmented-unreality/aurdeps/internal/doctor"
	"github.com/augmented-unreality/aurdeps/internal/messages"
	"github.com/augmented-unreality/aurdeps/internal/platform"
)

func newDoctorCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			paths, configPath, err := opts.resolvePaths()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, paths.Root)

			host, ok := platform.Host()
			if !ok {
				host = platform.All()[0]
			}

			var allResults []doctor.Result
			configResult, cfg := doctor.CheckConfig(configPath)
			allResults = append(allResults, configResult)
			allResults = append(allResults, doctor.CheckGenerator(cfg.OpenCV))
			allResults = append(allResults, doctor.CheckSources(paths))
			allResults = append(allResults, doctor.CheckCacheSettings(paths, host)...)
			allResults = append(allResults, doctor.CheckGStreamer(cfg.GStreamerRoot()))
			allResults = append(allResults, doctor.CheckBinaries(copier.RealSystem{}, paths, host))

			for _, r := range allResults {
				printResult(out, r)
			}

			if doctor.HasFailure(allResults) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		if line == "" {
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
