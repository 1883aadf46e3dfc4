package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/augmented-unreality/aurdeps/internal/copier"
	"github.com/augmented-unreality/aurdeps/internal/messages"
	"github.com/augmented-unreality/aurdeps/internal/verify"
)

// ErrBinariesMismatch is returned when a binaries directory differs from the catalog.
var ErrBinariesMismatch = errors.New(messages.VerifyMismatchErr)

func newVerifyCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.VerifyUse,
		Short: messages.VerifyShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			target, err := resolveBuildPlatform(s.out, args)
			if err != nil {
				return err
			}
			report, err := verify.Binaries(copier.RealSystem{}, s.paths, target)
			if err != nil {
				return err
			}
			if report.OK() {
				s.out.Success(messages.VerifyMatchFmt, report.Dir, len(report.Actual))
				return nil
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), report.Diff)
			s.out.Warn(messages.VerifyMissingFmt, len(report.Missing), len(report.Unexpected))
			return ErrBinariesMismatch
		},
	}
}
