package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/augmented-unreality/aurdeps/internal/config"
	"github.com/augmented-unreality/aurdeps/internal/lock"
	"github.com/augmented-unreality/aurdeps/internal/messages"
	"github.com/augmented-unreality/aurdeps/internal/opencv"
	"github.com/augmented-unreality/aurdeps/internal/platform"
)

const (
	flagBuildDir     = "build_dir"
	flagCopyIncludes = "copy_includes"
	flagCopyBinaries = "copy_binaries"
	flagIncludeFiles = "include_files"
)

var newOpenCVEngine = opencv.NewEngine

func newOpenCVCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.OpenCVUse,
		Short: messages.OpenCVShort,
	}
	cmd.AddCommand(
		newOpenCVBuildCmd(opts),
		newOpenCVCopyCmd(opts),
		newOpenCVInstallCmd(opts),
	)
	return cmd
}

func newOpenCVBuildCmd(opts *globalOptions) *cobra.Command {
	var buildDir string

	cmd := &cobra.Command{
		Use:   messages.OpenCVBuildUse,
		Short: messages.OpenCVBuildShort,
		Long:  fmt.Sprintf(messages.OpenCVBuildLongFmt, platform.BuildSet.Describe()),
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
			dir, err := config.ExpandPath(buildDir)
			if err != nil {
				return err
			}
			engine := newOpenCVEngine(s.paths, s.cfg.OpenCV, s.out, cmd.ErrOrStderr())
			_, err = engine.Build(cmd.Context(), target, dir)
			return err
		},
	}
	cmd.Flags().StringVar(&buildDir, flagBuildDir, ".", messages.OpenCVFlagBuildDir)
	return cmd
}

func newOpenCVCopyCmd(opts *globalOptions) *cobra.Command {
	var includes bool
	var binaries bool

	cmd := &cobra.Command{
		Use:   messages.OpenCVCopyUse,
		Short: messages.OpenCVCopyShort,
		Long:  fmt.Sprintf(messages.OpenCVCopyLongFmt, platform.BuildSet.Describe()),
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
			engine := newOpenCVEngine(s.paths, s.cfg.OpenCV, s.out, cmd.ErrOrStderr())
			return lock.With(s.paths.LockPath, func() error {
				_, err := engine.Copy(opencv.CurrentLayout(s.paths, target), opencv.CopyOptions{
					Includes: includes,
					Binaries: binaries,
				})
				return err
			})
		},
	}
	cmd.Flags().Var(newExplicitBool(true, &includes), flagCopyIncludes, messages.OpenCVFlagCopyIncludes)
	cmd.Flags().Var(newExplicitBool(true, &binaries), flagCopyBinaries, messages.OpenCVFlagCopyBinaries)
	return cmd
}

func newOpenCVInstallCmd(opts *globalOptions) *cobra.Command {
	var platformFlag string
	var includes bool
	var libs bool

	cmd := &cobra.Command{
		Use:        messages.OpenCVInstallUse,
		Short:      messages.OpenCVInstallShort,
		Deprecated: messages.OpenCVInstallDeprecated,
		Args:       cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			target, err := resolveInstallerPlatform(platformFlag)
			if err != nil {
				return err
			}
			engine := newOpenCVEngine(s.paths, s.cfg.OpenCV, s.out, cmd.ErrOrStderr())
			return lock.With(s.paths.LockPath, func() error {
				_, err := engine.Copy(opencv.LegacyLayout(s.paths, target), opencv.CopyOptions{
					Includes: includes,
					Binaries: libs,
				})
				return err
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&platformFlag, flagPlatform, "", fmt.Sprintf(messages.FlagPlatformFmt, platform.InstallerSet.Describe()))
	flags.Var(newExplicitBool(true, &includes), flagIncludeFiles, messages.OpenCVFlagIncludeFiles)
	flags.Var(newExplicitBool(true, &libs), flagLibs, messages.OpenCVFlagLibs)
	return cmd
}
