package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/dj-lumiere/razorforge-lang-sub007/internal/config"
	"github.com/dj-lumiere/razorforge-lang-sub007/internal/source"
	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/lexer"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	var dialectFlag string
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-tokenize a file on every save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect, err := resolveDialect(cmd.Context(), dialectFlag)
			if err != nil {
				return err
			}
			return runWatch(cmd, args[0], dialect)
		},
	}
	cmd.Flags().StringVar(&dialectFlag, "dialect", "", "dialect for the watched file (b|i)")
	return cmd
}

func runWatch(cmd *cobra.Command, path string, dialect lexer.Dialect) error {
	logger := config.LoggerFromContext(cmd.Context())
	w := cmd.OutOrStdout()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	retokenize(w, logger, path, dialect)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	_, _ = fmt.Fprintf(w, "watching %s (Ctrl+C to stop)\n", path)

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, func() {
				retokenize(w, logger, path, dialect)
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

func retokenize(w io.Writer, logger *slog.Logger, path string, dialect lexer.Dialect) {
	src, err := source.Read(path)
	if err != nil {
		logger.Warn("failed to read file", "path", path, "error", err)
		return
	}
	toks, err := lexer.Tokenize(src, dialect)
	if err != nil {
		_, _ = fmt.Fprintf(w, "%s: error: %v\n", path, err)
		return
	}
	_, _ = fmt.Fprintf(w, "-- %s (%d tokens) --\n", path, len(toks))
	_ = renderTokensTable(w, toks)
	logger.Info("retokenized", "path", path, "tokens", len(toks))
}
