package merging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"clipbatch/internal/fileutil"
	"clipbatch/internal/logging"
	"clipbatch/internal/matching"
	"clipbatch/internal/services"
)

// Encoder is the external multiplexer collaborator.
type Encoder interface {
	ReplaceAudio(ctx context.Context, videoPath, audioPath, outputPath string) error
}

// Merger consumes merge pairs sequentially, one pair start-to-finish before
// the next begins.
type Merger struct {
	enc       Encoder
	backupDir string
	soundDir  string
	logger    *slog.Logger
}

// New constructs a Merger. backupDir and soundDir are bare folder names,
// not paths.
func New(enc Encoder, backupDir, soundDir string, logger *slog.Logger) *Merger {
	return &Merger{
		enc:       enc,
		backupDir: backupDir,
		soundDir:  soundDir,
		logger:    logging.WithComponent(logger, "merger"),
	}
}

// Summary aggregates one merge or mux run.
type Summary struct {
	Replaced  int
	Failed    int
	Backups   int
	OutputDir string
}

// Run processes every pair, swallowing per-pair failures so one bad pair
// never aborts the batch.
func (m *Merger) Run(ctx context.Context, pairs []matching.MergePair) Summary {
	var summary Summary
	for _, pair := range pairs {
		backedUp, err := m.Replace(ctx, pair)
		if err != nil {
			summary.Failed++
			m.logger.Warn("pair failed",
				logging.String("video", pair.Video.Path),
				logging.String("audio", pair.Audio.Path),
				logging.Error(err),
			)
			continue
		}
		summary.Replaced++
		if backedUp {
			summary.Backups++
		}
		m.logger.Info("audio replaced",
			logging.String("video", pair.Video.Path),
			logging.String("audio", pair.Audio.Path),
			logging.Bool("backup_created", backedUp),
		)
	}
	return summary
}

// Replace swaps the audio track of the pair's video, preserving the
// pre-replacement original exactly once. It reports whether a new backup
// was created.
func (m *Merger) Replace(ctx context.Context, pair matching.MergePair) (bool, error) {
	videoPath := pair.Video.Path
	videoDir := filepath.Dir(videoPath)
	tempPath := filepath.Join(videoDir, fmt.Sprintf(".clipbatch-%s.mp4", uuid.NewString()))

	if err := m.enc.ReplaceAudio(ctx, videoPath, pair.Audio.Path, tempPath); err != nil {
		_ = os.Remove(tempPath)
		return false, services.Wrap(services.ErrEncode, "merge", "replace audio",
			fmt.Sprintf("FFmpeg failed for %s", filepath.Base(videoPath)), err)
	}

	backupPath := m.BackupPath(videoPath)
	backupExists, err := fileutil.Exists(backupPath)
	if err != nil {
		_ = os.Remove(tempPath)
		return false, services.Wrap(services.ErrTransient, "merge", "check backup",
			fmt.Sprintf("cannot stat %s", backupPath), err)
	}

	if backupExists {
		// Original already preserved by an earlier run; the backup stays
		// untouched and the rename atomically replaces the current video.
		if err := os.Rename(tempPath, videoPath); err != nil {
			_ = os.Remove(tempPath)
			return false, services.Wrap(services.ErrTransient, "merge", "commit replacement",
				fmt.Sprintf("cannot seat new file at %s", videoPath), err)
		}
		return false, nil
	}

	// Generation-zero original: move it aside before seating the new file.
	if err := fileutil.MoveFile(videoPath, backupPath); err != nil {
		_ = os.Remove(tempPath)
		return false, services.Wrap(services.ErrTransient, "merge", "create backup",
			fmt.Sprintf("cannot back up %s", filepath.Base(videoPath)), err)
	}
	if err := os.Rename(tempPath, videoPath); err != nil {
		// The canonical path must never go missing: put the original back.
		if restoreErr := fileutil.MoveFile(backupPath, videoPath); restoreErr != nil {
			m.logger.Error("failed to restore original after commit failure",
				logging.String("video", videoPath),
				logging.String("backup", backupPath),
				logging.Error(restoreErr),
			)
		}
		_ = os.Remove(tempPath)
		return false, services.Wrap(services.ErrTransient, "merge", "commit replacement",
			fmt.Sprintf("cannot seat new file at %s", videoPath), err)
	}
	return true, nil
}

// BackupPath derives the backup location for a video:
// <grandparent>/<backupDir>/<parent-folder-name>/<filename>.
func (m *Merger) BackupPath(videoPath string) string {
	parent := filepath.Dir(videoPath)
	grandparent := filepath.Dir(parent)
	return filepath.Join(grandparent, m.backupDir, filepath.Base(parent), filepath.Base(videoPath))
}
