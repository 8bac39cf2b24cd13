package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"clipbatch/internal/naming"
)

// Kind distinguishes the two media roles in a merge run.
type Kind string

const (
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
)

// MediaFile is one discovered file. Immutable during a run except for the
// eventual path change after a rename or move.
type MediaFile struct {
	Path     string
	Kind     Kind
	Marker   naming.Marker
	Language string // videos only
}

// Name returns the file's base name.
func (f MediaFile) Name() string {
	return filepath.Base(f.Path)
}

// Group buckets media files by duration marker. The sentinel naming.NoMarker
// is a valid key. Bucket contents preserve discovery order.
type Group map[naming.Marker][]MediaFile

// Total counts all files across buckets.
func (g Group) Total() int {
	total := 0
	for _, files := range g {
		total += len(files)
	}
	return total
}

// Markers returns the concrete (non-sentinel) markers, sorted by numeric
// duration for deterministic iteration.
func (g Group) Markers() []naming.Marker {
	markers := make([]naming.Marker, 0, len(g))
	for marker := range g {
		if marker.IsNone() {
			continue
		}
		markers = append(markers, marker)
	}
	sort.Slice(markers, func(i, j int) bool {
		return markerSeconds(markers[i]) < markerSeconds(markers[j])
	})
	return markers
}

// HasSentinel reports whether any file lacked a duration marker.
func (g Group) HasSentinel() bool {
	return len(g[naming.NoMarker]) > 0
}

func markerSeconds(m naming.Marker) int {
	value, err := strconv.Atoi(strings.TrimSuffix(string(m), "s"))
	if err != nil {
		return 0
	}
	return value
}

// Options controls which files discovery considers.
type Options struct {
	AudioExtensions []string
	VideoExtensions []string
	DefaultLanguage string
}

// Audio finds audio files directly in dir and groups them by marker.
func Audio(dir string, opts Options) (Group, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan audio in %s: %w", dir, err)
	}
	group := make(Group)
	for _, entry := range entries {
		if entry.IsDir() || !hasExtension(entry.Name(), opts.AudioExtensions) {
			continue
		}
		file := MediaFile{
			Path:   filepath.Join(dir, entry.Name()),
			Kind:   KindAudio,
			Marker: naming.ParseAudioDuration(entry.Name()),
		}
		group[file.Marker] = append(group[file.Marker], file)
	}
	return group, nil
}

// Videos finds video files in the immediate subfolders of dir and groups
// them by marker. Files sitting directly in dir are ignored; so is anything
// deeper than one level.
func Videos(dir string, opts Options) (Group, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan videos in %s: %w", dir, err)
	}
	group := make(Group)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		subdir := filepath.Join(dir, entry.Name())
		children, err := os.ReadDir(subdir)
		if err != nil {
			return nil, fmt.Errorf("scan videos in %s: %w", subdir, err)
		}
		for _, child := range children {
			if child.IsDir() || !hasExtension(child.Name(), opts.VideoExtensions) {
				continue
			}
			file := MediaFile{
				Path:     filepath.Join(subdir, child.Name()),
				Kind:     KindVideo,
				Marker:   naming.ParseVideoDuration(child.Name()),
				Language: naming.ParseLanguage(child.Name(), opts.DefaultLanguage),
			}
			group[file.Marker] = append(group[file.Marker], file)
		}
	}
	return group, nil
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
