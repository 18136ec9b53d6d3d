package main

import (
	"errors"
	"os"

	mdpage "github.com/alnah/go-mdpage"
	"github.com/alnah/go-mdpage/internal/config"
)

// Exit codes follow sysexits-inspired conventions.
const (
	ExitSuccess = 0 // rendered without errors
	ExitGeneral = 1 // rendering or unexpected failure
	ExitUsage   = 2 // bad flags, bad config, unknown theme
	ExitIO      = 3 // file system failure
)

// exitCodeFor maps an error to a process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrEmptyConfigName),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrFieldTooLong),
		errors.Is(err, mdpage.ErrUnknownTheme),
		errors.Is(err, mdpage.ErrInvalidDate),
		errors.Is(err, ErrInvalidWorkerCount),
		errors.Is(err, ErrBadPattern):
		return ExitUsage

	case errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission),
		errors.Is(err, ErrReadMarkdown),
		errors.Is(err, ErrWriteHTML),
		errors.Is(err, ErrWriteOutline),
		errors.Is(err, ErrNoInput),
		errors.Is(err, ErrInvalidExtension):
		return ExitIO
	}

	return ExitGeneral
}
