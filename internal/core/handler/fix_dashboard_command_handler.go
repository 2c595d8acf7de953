package handler

import (
	"fmt"
	"io"
	"unicode/utf8"

	"dashfix/internal/core/domain"
	"dashfix/internal/ports"

	"github.com/rs/zerolog"
)

type FixDashboardCommandHandler struct {
	fileSystem ports.FileSystem
	patch      domain.Patch
	logger     zerolog.Logger
}

func ProvideFixDashboardCommandHandler(
	fileSystem ports.FileSystem,
	patch domain.Patch,
	logger zerolog.Logger,
) FixDashboardCommandHandler {
	return FixDashboardCommandHandler{
		fileSystem: fileSystem,
		patch:      patch,
		logger:     logger,
	}
}

// Handle applies the patch to its target file and prints one status line to
// out. The file is written back whether or not the search text was found.
func (h *FixDashboardCommandHandler) Handle(out io.Writer) error {
	path := h.patch.TargetPath
	h.logger.Debug().Str("patch", h.patch.Name).Str("path", path).Msg("reading target file")

	content, err := h.fileSystem.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(content) {
		return fmt.Errorf("failed to read %s: %w", path, domain.ErrInvalidEncoding)
	}

	patched, found := h.patch.Apply(string(content))
	h.logger.Debug().Bool("found", found).Int("before", len(content)).Int("after", len(patched)).Msg("applied patch")

	fmt.Fprintln(out, h.patch.StatusMessage(found))

	if err := h.fileSystem.WriteFile(path, []byte(patched), ports.ReadAllWriteOwner); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	h.logger.Debug().Str("path", path).Msg("wrote target file")

	return nil
}
