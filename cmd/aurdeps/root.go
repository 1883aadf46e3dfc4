package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/augmented-unreality/aurdeps/internal/config"
	"github.com/augmented-unreality/aurdeps/internal/console"
	"github.com/augmented-unreality/aurdeps/internal/messages"
	"github.com/augmented-unreality/aurdeps/internal/platform"
	"github.com/augmented-unreality/aurdeps/internal/root"
)

const (
	flagPluginRoot = "plugin-root"
	flagConfig     = "config"
	flagQuiet      = "quiet"
	flagQuietShort = "q"
)

var getwd = os.Getwd

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	pluginRoot string
	configPath string
	quiet      bool
}

// session is the resolved plugin tree, config, and printer for one command run.
type session struct {
	paths      config.Paths
	configPath string
	cfg        config.Config
	out        *console.Printer
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolP("version", "v", false, messages.RootVersionFlag)
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.pluginRoot, flagPluginRoot, "", fmt.Sprintf(messages.RootFlagPluginRootFmt, config.EnvPluginRoot))
	flags.StringVar(&opts.configPath, flagConfig, "", messages.RootFlagConfig)
	flags.BoolVarP(&opts.quiet, flagQuiet, flagQuietShort, false, messages.RootFlagQuiet)

	cmd.AddCommand(
		newGStreamerCmd(opts),
		newOpenCVCmd(opts),
		newModulesCmd(),
		newVerifyCmd(opts),
		newDoctorCmd(opts),
	)
	return cmd
}

// resolvePluginRoot applies --plugin-root, then AURDEPS_PLUGIN_ROOT, then an upward
// search from the working directory.
func (o *globalOptions) resolvePluginRoot() (string, error) {
	if o.pluginRoot != "" {
		return config.ExpandPath(o.pluginRoot)
	}
	if value, ok := config.PluginRootFromEnv(); ok {
		return config.ExpandPath(value)
	}
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	pluginRoot, found, err := root.FindPluginRoot(cwd)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf(messages.RootNotFoundFmt, cwd)
	}
	return pluginRoot, nil
}

// resolvePaths returns the plugin layout and the config file path.
func (o *globalOptions) resolvePaths() (config.Paths, string, error) {
	pluginRoot, err := o.resolvePluginRoot()
	if err != nil {
		return config.Paths{}, "", err
	}
	paths := config.DefaultPaths(pluginRoot)
	configPath := paths.ConfigPath
	if o.configPath != "" {
		configPath, err = config.ExpandPath(o.configPath)
		if err != nil {
			return config.Paths{}, "", err
		}
	}
	return paths, configPath, nil
}

// resolve builds the session for cmd, loading the config file.
func (o *globalOptions) resolve(cmd *cobra.Command) (*session, error) {
	paths, configPath, err := o.resolvePaths()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return &session{
		paths:      paths,
		configPath: configPath,
		cfg:        cfg,
		out:        console.New(cmd.OutOrStdout(), o.quiet),
	}, nil
}

// resolveBuildPlatform picks the platform for build, copy, and verify. Without an
// argument the host is used; an unrecognized host falls back to the first platform key
// in sort order with a warning.
func resolveBuildPlatform(out *console.Printer, args []string) (platform.Platform, error) {
	value := ""
	if len(args) > 0 {
		value = args[0]
	}
	target, ok, err := platform.BuildSet.Resolve(value, platform.All()[0])
	if err != nil {
		return "", err
	}
	if !ok {
		out.Warn(messages.PlatformFallbackFmt, target)
	}
	return target, nil
}

// resolveInstallerPlatform picks the platform for the installers, defaulting to
// the host and then to Win64.
func resolveInstallerPlatform(value string) (platform.Platform, error) {
	target, _, err := platform.InstallerSet.Resolve(value, platform.Windows)
	return target, err
}
