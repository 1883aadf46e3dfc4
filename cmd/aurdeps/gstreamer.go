package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/augmented-unreality/aurdeps/internal/config"
	"github.com/augmented-unreality/aurdeps/internal/gstreamer"
	"github.com/augmented-unreality/aurdeps/internal/lock"
	"github.com/augmented-unreality/aurdeps/internal/messages"
	"github.com/augmented-unreality/aurdeps/internal/platform"
)

const (
	flagPlatform      = "platform"
	flagLibs          = "libs"
	flagGStreamerRoot = "gstreamer_root"
)

func newGStreamerCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.GStreamerUse,
		Short: messages.GStreamerShort,
	}
	cmd.AddCommand(newGStreamerInstallCmd(opts))
	return cmd
}

func newGStreamerInstallCmd(opts *globalOptions) *cobra.Command {
	var platformFlag string
	var rootFlag string
	var libs bool

	cmd := &cobra.Command{
		Use:   messages.GStreamerInstallUse,
		Short: messages.GStreamerInstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			target, err := resolveInstallerPlatform(platformFlag)
			if err != nil {
				return err
			}
			gstRoot := s.cfg.GStreamerRoot()
			if cmd.Flags().Changed(flagGStreamerRoot) {
				gstRoot = rootFlag
			}
			gstRoot, err = config.ExpandPath(gstRoot)
			if err != nil {
				return err
			}

			return lock.With(s.paths.LockPath, func() error {
				_, err := gstreamer.NewInstaller(s.out).Install(gstreamer.Options{
					Platform: target,
					Root:     gstRoot,
					Dest:     s.paths.Binaries(target),
					Libs:     libs,
				})
				return err
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&platformFlag, flagPlatform, "", fmt.Sprintf(messages.FlagPlatformFmt, platform.InstallerSet.Describe()))
	flags.Var(newExplicitBool(true, &libs), flagLibs, messages.GStreamerFlagLibs)
	flags.StringVar(&rootFlag, flagGStreamerRoot, "", fmt.Sprintf(messages.GStreamerFlagRootFmt, config.EnvGStreamerRoot))
	return cmd
}
