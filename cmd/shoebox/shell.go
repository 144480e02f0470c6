package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"shoebox/internal/logging"
	"shoebox/internal/operations"
)

const shellMenu = `
Shoebox photo catalog
  1) Find photo
  2) Update photo details
  3) List album photos
  4) Tag photo
  5) Exit
`

// runShell drives the interactive menu loop. One session at a time: a lock
// file in the catalog directory keeps two interactive sessions from racing
// each other's saves.
func runShell(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire session lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another shoebox session is already running (lock %s)", cfg.LockPath())
	}
	defer func() { _ = lock.Unlock() }()

	logger := ctx.ensureLogger().With(logging.String(logging.FieldSessionID, uuid.NewString()))
	logger = logging.NewComponentLogger(logger, "shell")
	logger.Info("interactive session started")
	defer logger.Info("interactive session ended")

	con := newStdConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	runner, err := ctx.runner()
	if err != nil {
		return err
	}

	for {
		con.Println(shellMenu)
		choice, err := con.Prompt("Select an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		done, err := dispatch(con, runner, logger, strings.TrimSpace(choice))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if done {
			con.Println("Goodbye!")
			return nil
		}
	}
}

// dispatch runs one menu selection. The boolean result reports that the user
// chose to exit.
func dispatch(con *stdConsole, runner *operations.Runner, logger *slog.Logger, choice string) (bool, error) {
	switch choice {
	case "1":
		return false, guard(con, logger, func() error {
			id, err := con.Prompt("Photo ID: ")
			if err != nil {
				return err
			}
			runner.FindPhoto(con, id)
			return nil
		})
	case "2":
		return false, guard(con, logger, func() error {
			id, err := con.Prompt("Photo ID: ")
			if err != nil {
				return err
			}
			return runner.UpdatePhoto(con, id)
		})
	case "3":
		return false, guard(con, logger, func() error {
			name, err := con.Prompt("Album name: ")
			if err != nil {
				return err
			}
			runner.ListAlbumPhotos(con, name)
			return nil
		})
	case "4":
		return false, guard(con, logger, func() error {
			id, err := con.Prompt("Photo ID: ")
			if err != nil {
				return err
			}
			tag, err := con.Prompt("Tag: ")
			if err != nil {
				return err
			}
			runner.TagPhoto(con, id, tag)
			return nil
		})
	case "5":
		return true, nil
	default:
		con.Println("Invalid selection")
		return false, nil
	}
}

// guard runs one operation under a recover barrier so an unexpected panic is
// reported and the menu continues instead of tearing the session down.
func guard(con *stdConsole, logger *slog.Logger, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("operation panicked", logging.Any("panic", r))
			con.Println(fmt.Sprintf("Unexpected error: %v", r))
			err = nil
		}
	}()
	return fn()
}
