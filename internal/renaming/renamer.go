package renaming

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"clipbatch/internal/fileutil"
	"clipbatch/internal/language"
	"clipbatch/internal/logging"
	"clipbatch/internal/naming"
	"clipbatch/internal/services"
)

// Metadata is what the external prober reports for one video.
type Metadata struct {
	Resolution      string // "WxH"
	DurationSeconds int
}

// Prober reads resolution and duration from a video file.
type Prober interface {
	Probe(ctx context.Context, path string) (Metadata, error)
}

// Options controls which files the rename mode considers.
type Options struct {
	VideoExtensions []string
	SkipMarkers     []string
	DefaultLanguage string
}

// Renamer drives the rename mode over one directory.
type Renamer struct {
	prober Prober
	opts   Options
	logger *slog.Logger
}

// New constructs a Renamer.
func New(prober Prober, opts Options, logger *slog.Logger) *Renamer {
	return &Renamer{
		prober: prober,
		opts:   opts,
		logger: logging.WithComponent(logger, "renamer"),
	}
}

// Summary aggregates one rename run.
type Summary struct {
	Renamed   int
	Skipped   int
	Errors    int
	Languages []string // folder names, sorted
}

// Run renames every eligible video directly in dir. The custom name is
// sanitized before use; an empty result or an empty directory aborts the
// mode with no filesystem mutation.
func (r *Renamer) Run(ctx context.Context, dir, customName string) (Summary, error) {
	customName = naming.SanitizeCustomName(customName)
	if customName == "" {
		return Summary{}, services.Wrap(services.ErrPrecondition, "rename", "validate input",
			"a custom name is required", nil)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Summary{}, services.Wrap(services.ErrPrecondition, "rename", "scan directory",
			"cannot read "+dir, err)
	}

	var videos []string
	for _, entry := range entries {
		if entry.IsDir() || !hasExtension(entry.Name(), r.opts.VideoExtensions) {
			continue
		}
		videos = append(videos, entry.Name())
	}
	if len(videos) == 0 {
		return Summary{}, services.Wrap(services.ErrPrecondition, "rename", "scan directory",
			"no video files found in "+dir, nil)
	}

	var summary Summary
	languages := make(map[string]struct{})
	for _, name := range videos {
		if r.hasSkipMarker(name) {
			summary.Skipped++
			r.logger.Info("skipping work-in-progress file", logging.String("file", name))
			continue
		}
		lang := language.Normalize(naming.ParseLanguage(name, r.opts.DefaultLanguage))
		languages[language.Folder(lang)] = struct{}{}

		if err := r.renameOne(ctx, dir, name, customName, lang); err != nil {
			summary.Errors++
			r.logger.Warn("file failed", logging.String("file", name), logging.Error(err))
			continue
		}
		summary.Renamed++
	}

	summary.Languages = make([]string, 0, len(languages))
	for folder := range languages {
		summary.Languages = append(summary.Languages, folder)
	}
	sort.Strings(summary.Languages)
	return summary, nil
}

func (r *Renamer) renameOne(ctx context.Context, dir, name, customName, lang string) error {
	path := filepath.Join(dir, name)

	meta, err := r.prober.Probe(ctx, path)
	if err != nil {
		return services.Wrap(services.ErrMetadata, "rename", "probe video",
			fmt.Sprintf("cannot read metadata for %s", name), err)
	}

	newName := naming.NewName(customName, meta.DurationSeconds, lang, meta.Resolution)
	newPath, err := naming.ResolvePath(filepath.Join(dir, newName))
	if err != nil {
		return services.Wrap(services.ErrTransient, "rename", "resolve name", newName, err)
	}
	if err := os.Rename(path, newPath); err != nil {
		return services.Wrap(services.ErrTransient, "rename", "rename file", name, err)
	}

	folder := filepath.Join(dir, language.Folder(lang))
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return services.Wrap(services.ErrTransient, "rename", "create language folder", folder, err)
	}
	target, err := naming.ResolvePath(filepath.Join(folder, filepath.Base(newPath)))
	if err != nil {
		return services.Wrap(services.ErrTransient, "rename", "resolve destination", folder, err)
	}
	if err := fileutil.MoveFile(newPath, target); err != nil {
		return services.Wrap(services.ErrTransient, "rename", "move to language folder", folder, err)
	}

	r.logger.Info("video filed",
		logging.String("from", name),
		logging.String("to", target),
	)
	return nil
}

func (r *Renamer) hasSkipMarker(name string) bool {
	upper := strings.ToUpper(name)
	for _, marker := range r.opts.SkipMarkers {
		if marker == "" {
			continue
		}
		if strings.Contains(upper, strings.ToUpper(marker)) {
			return true
		}
	}
	return false
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
