package renaming

import (
	"context"
	"errors"

	"clipbatch/internal/media/ffprobe"
)

// FFprobeProber reads metadata through the external ffprobe binary.
type FFprobeProber struct {
	Binary string
}

// Probe implements Prober.
func (p FFprobeProber) Probe(ctx context.Context, path string) (Metadata, error) {
	result, err := ffprobe.Inspect(ctx, p.Binary, path)
	if err != nil {
		return Metadata{}, err
	}
	resolution, ok := result.Resolution()
	if !ok {
		return Metadata{}, errors.New("no video stream with known dimensions")
	}
	seconds, ok := result.DurationSeconds()
	if !ok {
		return Metadata{}, errors.New("container reports no duration")
	}
	return Metadata{Resolution: resolution, DurationSeconds: seconds}, nil
}
