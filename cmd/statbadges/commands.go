package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/statbadges/internal/version"
	"github.com/arthur-debert/statbadges/pkg/badges"
	"github.com/arthur-debert/statbadges/pkg/config"
	"github.com/arthur-debert/statbadges/pkg/generate"
	"github.com/arthur-debert/statbadges/pkg/logging"
	"github.com/arthur-debert/statbadges/pkg/report"
	"github.com/arthur-debert/statbadges/pkg/server"
	"github.com/arthur-debert/statbadges/pkg/stats"
	"github.com/arthur-debert/statbadges/pkg/store"
	"github.com/arthur-debert/statbadges/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	verbosity  int
	dryRun     bool
	configFile string
	storePath  string
	format     style.Format
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "statbadges",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(g.verbosity)
			g.format = style.DetectFormat(os.Stdout)
			style.Configure(g.format)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&g.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&g.storePath, "store", "", MsgFlagStore)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	generateCmd := newGenerateCmd(g)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(newImportCmd(g))
	rootCmd.AddCommand(newShowCmd(g))
	rootCmd.AddCommand(newHistoryCmd(g))
	rootCmd.AddCommand(newServeCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Without a command, run generate with its default flags
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf(MsgErrNoCommand, args[0])
		}
		return generateCmd.RunE(generateCmd, nil)
	}

	return rootCmd
}

// loadSettings resolves settings, applying every flag in flagKeys that was
// set on the command line as an override of its config key.
func (g *globals) loadSettings(cmd *cobra.Command, flagKeys map[string]string) (*config.Settings, error) {
	overrides := map[string]interface{}{}
	if g.storePath != "" {
		overrides["store.path"] = g.storePath
	}
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	return config.Load(config.LoadOptions{
		ConfigFile: g.configFile,
		Overrides:  overrides,
	})
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

func newGenerateCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   MsgGenerateShort,
		Example: MsgGenerateExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.generate")

			settings, err := g.loadSettings(cmd, map[string]string{
				"output":    "output.dir",
				"templates": "templates.dir",
				"snapshot":  "source.snapshot",
				"validate":  "output.validate",
			})
			if err != nil {
				return err
			}
			env, err := config.LoadEnvironment()
			if err != nil {
				return err
			}

			logger.Info().
				Str("config", settings.File).
				Str("output", settings.Output.Dir).
				Bool("dryRun", g.dryRun).
				Msg("Starting generate")

			ctx, cancel := signalContext(cmd)
			defer cancel()

			result, err := generate.Run(ctx, generate.Config{
				Options:   env.Options(),
				OutputDir: settings.Output.Dir,
				Templates: generate.Templates(settings.Templates.Dir),
				Validate:  settings.Output.Validate,
				DryRun:    g.dryRun,
			}, generate.FromSettings(settings.Source.Snapshot, settings.Store.Path))
			if err != nil {
				return err
			}

			rows := []style.BadgeFiles{
				{Badge: badges.Overview, Files: result.Overview.Files},
				{Badge: badges.Languages, Files: result.Languages.Files},
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.RenderGenerated(rows, result.DryRun))
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)
	cmd.Flags().String("templates", "", MsgFlagTemplates)
	cmd.Flags().String("snapshot", "", MsgFlagSnapshot)
	cmd.Flags().Bool("validate", true, MsgFlagValidate)

	return cmd
}

func newImportCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "import <snapshot-file>",
		Short:   MsgImportShort,
		Example: MsgImportExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := g.loadSettings(cmd, nil)
			if err != nil {
				return err
			}
			env, err := config.LoadEnvironment()
			if err != nil {
				return err
			}

			snap, err := stats.LoadSnapshot(args[0])
			if err != nil {
				return err
			}
			if snap.User == "" {
				snap.User = env.User
			}

			if g.dryRun {
				logger := logging.GetLogger("cmd.import")
				logger.Info().
					Str("user", snap.User).
					Str("store", settings.Store.Path).
					Msg("Would store snapshot")
				return nil
			}

			ctx := cmd.Context()
			st, err := store.Open(ctx, settings.Store.Path)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			id, err := st.Save(ctx, snap)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgSnapshotStored, id, snap.User)
			return nil
		},
	}
}

func newShowCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   MsgShowShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := g.loadSettings(cmd, map[string]string{
				"snapshot": "source.snapshot",
			})
			if err != nil {
				return err
			}
			env, err := config.LoadEnvironment()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			src, err := generate.FromSettings(settings.Source.Snapshot, settings.Store.Path)(ctx, env.Options())
			if err != nil {
				return err
			}

			md, err := report.Markdown(ctx, src)
			if err != nil {
				return err
			}

			width, _ := cmd.Flags().GetInt("width")
			fmt.Fprint(cmd.OutOrStdout(), report.Render(md, width, g.format == style.FormatTerminal))
			return nil
		},
	}

	cmd.Flags().String("snapshot", "", MsgFlagSnapshot)
	cmd.Flags().Int("width", 0, MsgFlagWidth)

	return cmd
}

func newHistoryCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history",
		Short:   MsgHistoryShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := g.loadSettings(cmd, nil)
			if err != nil {
				return err
			}

			user, _ := cmd.Flags().GetString("user")
			if user == "" {
				env, err := config.LoadEnvironment()
				if err != nil {
					return err
				}
				user = env.User
			}

			ctx := cmd.Context()
			st, err := store.Open(ctx, settings.Store.Path)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			entries, err := st.List(ctx, user)
			if err != nil {
				return err
			}

			rows := make([]style.SnapshotRow, len(entries))
			for i, e := range entries {
				rows[i] = style.SnapshotRow{ID: e.ID, User: e.User, TakenAt: e.TakenAt}
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.RenderSnapshots(rows))
			return nil
		},
	}

	cmd.Flags().String("user", "", MsgFlagUser)

	return cmd
}

func newServeCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   MsgServeShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := g.loadSettings(cmd, map[string]string{
				"output": "output.dir",
				"addr":   "server.addr",
			})
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd)
			defer cancel()

			fmt.Fprintf(cmd.OutOrStdout(), MsgServing, settings.Output.Dir, settings.Server.Addr)
			return server.New(settings.Output.Dir).Start(ctx, settings.Server.Addr)
		},
	}

	cmd.Flags().StringP("output", "o", "", MsgFlagOutput)
	cmd.Flags().String("addr", "", MsgFlagAddr)

	return cmd
}

func newConfigCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, _ := cmd.Flags().GetBool("resolved")
			if !resolved {
				fmt.Fprint(cmd.OutOrStdout(), config.GenerateDefault())
				return nil
			}

			settings, err := g.loadSettings(cmd, nil)
			if err != nil {
				return err
			}
			out, err := config.Encode(*settings)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().Bool("resolved", false, MsgFlagResolved)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "STATBADGES",
				Section: "1",
				Source:  "statbadges " + version.Version,
				Manual:  "statbadges manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
