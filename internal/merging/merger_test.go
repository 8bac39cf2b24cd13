package merging

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clipbatch/internal/logging"
	"clipbatch/internal/matching"
	"clipbatch/internal/scan"
)

// fakeEncoder writes payload to the output path, or fails without creating
// the file.
type fakeEncoder struct {
	payload []byte
	fail    bool
	calls   int
}

func (f *fakeEncoder) ReplaceAudio(_ context.Context, videoPath, audioPath, outputPath string) error {
	f.calls++
	if f.fail {
		return errors.New("exit status 1")
	}
	return os.WriteFile(outputPath, f.payload, 0o644)
}

func setupPair(t *testing.T) (string, matching.MergePair) {
	t.Helper()
	root := t.TempDir()
	videoDir := filepath.Join(root, "EN")
	if err := os.MkdirAll(videoDir, 0o755); err != nil {
		t.Fatal(err)
	}
	videoPath := filepath.Join(videoDir, "clip_30s_en_1920x1080.mp4")
	if err := os.WriteFile(videoPath, []byte("original video bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	audioPath := filepath.Join(root, "voice_30s.wav")
	if err := os.WriteFile(audioPath, []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	return root, matching.MergePair{
		Video: scan.MediaFile{Path: videoPath, Kind: scan.KindVideo, Marker: "30s", Language: "en"},
		Audio: scan.MediaFile{Path: audioPath, Kind: scan.KindAudio, Marker: "30s"},
	}
}

func listTempFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var temps []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".clipbatch-") {
			temps = append(temps, entry.Name())
		}
	}
	return temps
}

func TestReplaceCreatesBackupOnce(t *testing.T) {
	root, pair := setupPair(t)
	merger := New(&fakeEncoder{payload: []byte("merged v1")}, "backup", "sound", logging.NewNop())

	backedUp, err := merger.Replace(context.Background(), pair)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if !backedUp {
		t.Fatal("first replace must create a backup")
	}

	backupPath := filepath.Join(root, "backup", "EN", "clip_30s_en_1920x1080.mp4")
	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if string(data) != "original video bytes" {
		t.Fatalf("backup is not the generation-zero original: %q", data)
	}
	if got, _ := os.ReadFile(pair.Video.Path); string(got) != "merged v1" {
		t.Fatalf("video not replaced: %q", got)
	}
}

func TestReplaceNeverOverwritesBackup(t *testing.T) {
	root, pair := setupPair(t)
	merger := New(&fakeEncoder{payload: []byte("merged v1")}, "backup", "sound", logging.NewNop())

	if _, err := merger.Replace(context.Background(), pair); err != nil {
		t.Fatalf("first Replace: %v", err)
	}

	// Second run with different encoder output: backup must stay byte-for-byte
	// identical to the pre-first-run original.
	merger = New(&fakeEncoder{payload: []byte("merged v2")}, "backup", "sound", logging.NewNop())
	backedUp, err := merger.Replace(context.Background(), pair)
	if err != nil {
		t.Fatalf("second Replace: %v", err)
	}
	if backedUp {
		t.Fatal("second replace must not create another backup")
	}

	backupDir := filepath.Join(root, "backup", "EN")
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one backup file, got %d", len(entries))
	}
	data, _ := os.ReadFile(filepath.Join(backupDir, entries[0].Name()))
	if string(data) != "original video bytes" {
		t.Fatalf("backup mutated on re-run: %q", data)
	}
	if got, _ := os.ReadFile(pair.Video.Path); string(got) != "merged v2" {
		t.Fatalf("second replacement not seated: %q", got)
	}
}

func TestReplaceEncoderFailureLeavesVideoUntouched(t *testing.T) {
	root, pair := setupPair(t)
	merger := New(&fakeEncoder{fail: true}, "backup", "sound", logging.NewNop())

	if _, err := merger.Replace(context.Background(), pair); err == nil {
		t.Fatal("expected encoder failure to propagate")
	}

	if got, _ := os.ReadFile(pair.Video.Path); string(got) != "original video bytes" {
		t.Fatalf("video mutated on failure: %q", got)
	}
	if temps := listTempFiles(t, filepath.Dir(pair.Video.Path)); len(temps) != 0 {
		t.Fatalf("temp files left behind: %v", temps)
	}
	if _, err := os.Stat(filepath.Join(root, "backup")); !os.IsNotExist(err) {
		t.Fatal("failure must not create a backup tree")
	}
}

func TestRunCountsAndContinuesPastFailures(t *testing.T) {
	_, pair := setupPair(t)
	failing := matching.MergePair{
		Video: scan.MediaFile{Path: filepath.Join(filepath.Dir(pair.Video.Path), "missing.mp4"), Kind: scan.KindVideo},
		Audio: pair.Audio,
	}

	encoder := &fakeEncoder{payload: []byte("merged")}
	merger := New(&failFirstEncoder{inner: encoder}, "backup", "sound", logging.NewNop())
	summary := merger.Run(context.Background(), []matching.MergePair{failing, pair})
	if summary.Failed != 1 || summary.Replaced != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Backups != 1 {
		t.Fatalf("expected one new backup, got %d", summary.Backups)
	}
}

// failFirstEncoder fails its first invocation and delegates afterwards.
type failFirstEncoder struct {
	inner *fakeEncoder
	seen  int
}

func (f *failFirstEncoder) ReplaceAudio(ctx context.Context, videoPath, audioPath, outputPath string) error {
	f.seen++
	if f.seen == 1 {
		return errors.New("exit status 1")
	}
	return f.inner.ReplaceAudio(ctx, videoPath, audioPath, outputPath)
}

func TestBackupPathDerivation(t *testing.T) {
	merger := New(&fakeEncoder{}, "backup", "sound", logging.NewNop())
	got := merger.BackupPath(filepath.Join("work", "EN", "clip.mp4"))
	want := filepath.Join("work", "backup", "EN", "clip.mp4")
	if got != want {
		t.Fatalf("BackupPath = %q, want %q", got, want)
	}
}
