package merging

import (
	"context"
	"os"
	"path/filepath"

	"clipbatch/internal/logging"
	"clipbatch/internal/naming"
	"clipbatch/internal/services"
)

// MuxToFolder merges one audio track into each video, writing fresh copies
// into the sound folder next to the audio file. Sources are never mutated;
// name collisions in the output folder resolve with numeric suffixes.
func (m *Merger) MuxToFolder(ctx context.Context, audioPath string, videoPaths []string) (Summary, error) {
	soundDir := filepath.Join(filepath.Dir(audioPath), m.soundDir)
	if err := os.MkdirAll(soundDir, 0o755); err != nil {
		return Summary{}, services.Wrap(services.ErrTransient, "mux", "create output folder",
			"cannot create "+soundDir, err)
	}

	summary := Summary{OutputDir: soundDir}
	for _, videoPath := range videoPaths {
		outputPath, err := naming.ResolvePath(filepath.Join(soundDir, filepath.Base(videoPath)))
		if err != nil {
			summary.Failed++
			m.logger.Warn("mux skipped",
				logging.String("video", videoPath),
				logging.Error(err),
			)
			continue
		}
		if err := m.enc.ReplaceAudio(ctx, videoPath, audioPath, outputPath); err != nil {
			_ = os.Remove(outputPath)
			summary.Failed++
			m.logger.Warn("mux failed",
				logging.String("video", videoPath),
				logging.String("audio", audioPath),
				logging.Error(err),
			)
			continue
		}
		summary.Replaced++
		m.logger.Info("mux completed",
			logging.String("video", videoPath),
			logging.String("output", outputPath),
		)
	}
	return summary, nil
}
