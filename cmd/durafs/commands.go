package durafs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/durafs/internal/version"
	"github.com/arthur-debert/durafs/pkg/config"
	"github.com/arthur-debert/durafs/pkg/paths"
	"github.com/arthur-debert/durafs/pkg/store"
	"github.com/arthur-debert/durafs/pkg/ui/styles"
)

func newCopyCmd() *cobra.Command {
	var recursive bool
	var attempts int

	cmd := &cobra.Command{
		Use:   "copy <source> <target>",
		Short: MsgCopyShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := store.New()

			if recursive {
				// Ctrl-C aborts between files, never mid-file.
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()

				if err := s.CopyDir(ctx, args[0], args[1], attempts); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					styles.GetStyle("Success").Render("copied"),
					styles.GetStyle("FilePath").Render(args[1]))
				return nil
			}

			outcome, err := s.CopyFile(args[0], args[1], attempts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				styles.GetStyle("Outcome").Render(outcome.String()),
				styles.GetStyle("FilePath").Render(args[1]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Copy a directory tree")
	cmd.Flags().IntVar(&attempts, "attempts", store.DefaultCopyAttempts, "Attempts per file")
	return cmd
}

func newRmCmd() *cobra.Command {
	var dir, recursive, silent bool
	var attempts, delayMs int

	cmd := &cobra.Command{
		Use:   "rm <path>",
		Short: MsgRmShort,
		Long:  MsgRmLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			policy := cfg.DeletePolicy()
			if cmd.Flags().Changed("attempts") {
				policy.Attempts = attempts
			}
			if cmd.Flags().Changed("delay") {
				policy.Delay = time.Duration(delayMs) * time.Millisecond
			}
			policy.RaiseOnExhaustion = !silent

			s := store.New()
			if dir {
				err = s.DeleteDir(args[0], policy, recursive)
			} else {
				err = s.DeleteFile(args[0], policy)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				styles.GetStyle("Success").Render("deleted"),
				styles.GetStyle("FilePath").Render(args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dir, "dir", false, "Treat path as a directory")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "With --dir, delete the whole subtree")
	cmd.Flags().BoolVar(&silent, "silent", false, "Return quietly when all attempts fail")
	cmd.Flags().IntVar(&attempts, "attempts", 0, "Attempts before giving up")
	cmd.Flags().IntVar(&delayMs, "delay", 0, "Milliseconds between attempts")
	return cmd
}

func newReplaceCmd() *cobra.Command {
	var attempts int

	cmd := &cobra.Command{
		Use:   "replace <target> [source]",
		Short: MsgReplaceShort,
		Long:  MsgReplaceLong,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var content io.ReadSeeker
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer func() {
					_ = f.Close()
				}()
				content = f
			} else {
				// Digest comparison needs to re-read the content, so
				// stdin is buffered into a seekable reader.
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				content = bytes.NewReader(data)
			}

			outcome, err := store.New().Replace(args[0], content, attempts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				styles.GetStyle("Outcome").Render(outcome.String()),
				styles.GetStyle("FilePath").Render(args[0]))
			return nil
		},
	}

	cmd.Flags().IntVar(&attempts, "attempts", store.DefaultCopyAttempts, "Attempts before giving up")
	return cmd
}

func newSwapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap <original> <replacement>",
		Short: MsgSwapShort,
		Long:  MsgSwapLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.New().OverwriteAndDelete(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				styles.GetStyle("Success").Render("swapped"),
				styles.GetStyle("FilePath").Render(args[0]))
			return nil
		},
	}
}

func newMktempCmd() *cobra.Command {
	var dir bool
	var ext string

	cmd := &cobra.Command{
		Use:   "mktemp",
		Short: MsgMktempShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := store.New()

			var path string
			var err error
			if dir {
				path, err = s.TempDir()
			} else {
				path, err = s.TempFile(ext)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dir, "dir", "d", false, "Allocate a directory instead of a file")
	cmd.Flags().StringVar(&ext, "ext", "", "File extension for the temp file")
	return cmd
}

func newDfCmd() *cobra.Command {
	var required uint64

	cmd := &cobra.Command{
		Use:   "df <path>",
		Short: MsgDfShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			floor := required
			if floor < cfg.MinFreeBytes() {
				floor = cfg.MinFreeBytes()
			}
			if err := store.New().EnsureFreeSpace(args[0], floor); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s enough free space for %s\n",
				styles.GetStyle("Success").Render("ok"),
				styles.GetStyle("Muted").Render(paths.HumanSize(floor)))
			return nil
		},
	}

	cmd.Flags().Uint64Var(&required, "require", 0, "Required bytes beyond the configured floor")
	return cmd
}

func newLsCmd() *cobra.Command {
	var recursive, dirs bool
	var patterns []string

	cmd := &cobra.Command{
		Use:   "ls <dir>",
		Short: MsgLsShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := store.New()

			var entries []string
			var err error
			switch {
			case dirs && recursive:
				entries = s.DirsRecursive(args[0])
			case dirs:
				entries = s.Dirs(args[0])
			case recursive:
				entries, err = s.FilesRecursive(args[0], patterns...)
			default:
				entries, err = s.Files(args[0], patterns...)
			}
			if err != nil {
				return err
			}

			for _, entry := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), entry)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().BoolVar(&dirs, "dirs", false, "List directories instead of files")
	cmd.Flags().StringArrayVarP(&patterns, "pattern", "p", nil, "Glob pattern on base names (repeatable)")
	return cmd
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Generate()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "durafs %s (commit %s, built %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}
