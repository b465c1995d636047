package formatter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hangok-indie/hangok/internal/models"
)

func testPlaylist() *models.Playlist {
	return &models.Playlist{
		Name: "liked",
		Songs: []models.Song{
			{Title: "바다 보러 갈래", Artist: "소수빈", Link: "https://youtu.be/aaaaaaaaaaa"},
			{Title: "호랑이", Artist: "허회경", Link: "https://example.com/no-video"},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(testPlaylist())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Title,Artist,Link,VideoID") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "바다 보러 갈래") {
			t.Errorf("CSV missing song title")
		}
		if !strings.Contains(output, "aaaaaaaaaaa") {
			t.Errorf("CSV missing extracted video ID")
		}

		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) != 3 {
			t.Errorf("expected header + 2 records, got %d lines", len(lines))
		}
		// second song has no parseable video ID
		if !strings.HasSuffix(lines[2], ",") {
			t.Errorf("expected empty VideoID column, got: %s", lines[2])
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(testPlaylist())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "# liked") {
			t.Errorf("Markdown missing title heading")
		}
		if !strings.Contains(output, "**Songs**: 2") {
			t.Errorf("Markdown missing song count")
		}
		if !strings.Contains(output, "1. 소수빈 - [바다 보러 갈래](https://youtu.be/aaaaaaaaaaa)") {
			t.Errorf("Markdown missing linked song entry, got: %s", output)
		}
		if !strings.Contains(output, "img.youtube.com/vi/aaaaaaaaaaa") {
			t.Errorf("Markdown missing cover thumbnail")
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(testPlaylist())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Playlist: liked") {
			t.Errorf("text missing playlist name")
		}
		if !strings.Contains(output, "2. 허회경 - 호랑이") {
			t.Errorf("text missing numbered song entry, got: %s", output)
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(testPlaylist())
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}

		var back models.Playlist
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("JSON output does not parse: %v", err)
		}
		if back.Name != "liked" || len(back.Songs) != 2 {
			t.Errorf("unexpected round trip: %+v", back)
		}
	})

	t.Run("empty playlist exports cleanly", func(t *testing.T) {
		empty := &models.Playlist{Name: "liked"}
		if data, err := ExportToCSV(empty); err != nil || len(data) == 0 {
			t.Errorf("CSV export of empty playlist failed: %v", err)
		}
		if data, err := ExportToMarkdown(empty); err != nil || strings.Contains(string(data), "Covers") {
			t.Errorf("empty playlist should not emit a covers section: %v", err)
		}
	})
}

func TestFileExports(t *testing.T) {
	t.Run("WriteCSVExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		got, err := WriteCSVExport(testPlaylist(), path)
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}
		if got != path {
			t.Errorf("expected path %s, got %s", path, got)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected file written: %v", err)
		}
	})

	t.Run("WriteMarkdownExport creates directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "export")
		result, err := WriteMarkdownExport(testPlaylist(), dir)
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}
		if result.Directory != dir {
			t.Errorf("expected directory %s, got %s", dir, result.Directory)
		}
		if _, err := os.Stat(filepath.Join(dir, "README.md")); err != nil {
			t.Errorf("expected README.md written: %v", err)
		}
	})

	t.Run("WriteTextExport defaults the filename", func(t *testing.T) {
		wd, _ := os.Getwd()
		os.Chdir(t.TempDir())
		defer os.Chdir(wd)

		got, err := WriteTextExport(testPlaylist(), "")
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if got != "liked_songs.txt" {
			t.Errorf("expected default filename, got %s", got)
		}
	})

	t.Run("WriteJSONExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "liked.json")
		if _, err := WriteJSONExport(testPlaylist(), path); err != nil {
			t.Fatalf("WriteJSONExport failed: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading export failed: %v", err)
		}
		if !json.Valid(data) {
			t.Error("expected valid JSON on disk")
		}
	})
}
