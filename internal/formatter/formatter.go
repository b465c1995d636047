// package formatter provides functions to export the liked-songs playlist to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/hangok-indie/hangok/internal/models"
	"github.com/hangok-indie/hangok/internal/shared"
	"github.com/hangok-indie/hangok/internal/slider"
)

// ExportToCSV converts a playlist to CSV format with columns: Title, Artist, Link, VideoID
func ExportToCSV(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Title", "Artist", "Link", "VideoID"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range playlist.Songs {
		videoID, _ := slider.VideoID(song.Link)
		record := []string{
			song.Title,
			song.Artist,
			song.Link,
			videoID,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a playlist to Markdown format with linked titles
// and thumbnail references for songs with a parseable video identifier.
func ExportToMarkdown(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", playlist.Name))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(playlist.Songs)))

	buf.WriteString("## Songs\n\n")
	for i, song := range playlist.Songs {
		buf.WriteString(fmt.Sprintf("%d. %s - [%s](%s)\n", i+1, song.Artist, song.Title, song.Link))
	}

	if thumbs := thumbnailLinks(playlist.Songs); len(thumbs) > 0 {
		buf.WriteString("\n## Covers\n\n")
		for _, thumb := range thumbs {
			buf.WriteString(fmt.Sprintf("![](%s)\n", thumb))
		}
	}

	return buf.Bytes(), nil
}

func thumbnailLinks(songs []models.Song) []string {
	var thumbs []string
	for _, song := range songs {
		if id, ok := slider.VideoID(song.Link); ok {
			thumbs = append(thumbs, slider.ThumbnailURL(id))
		}
	}
	return thumbs
}

// ExportToText converts a playlist to plain text format
func ExportToText(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", playlist.Name))
	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", len(playlist.Songs)))

	for i, song := range playlist.Songs {
		buf.WriteString(fmt.Sprintf("%d. %s - %s (%s)\n", i+1, song.Artist, song.Title, song.Link))
	}

	return buf.Bytes(), nil
}

// ExportToJSON generates a pretty-printed JSON representation of the playlist
func ExportToJSON(playlist *models.Playlist) ([]byte, error) {
	return shared.MarshalJSON(playlist, true)
}

// WriteCSVExport exports a playlist to a CSV file.
//
// Defaults to {name}_songs.csv as the filename.
func WriteCSVExport(playlist *models.Playlist, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s_songs.csv", playlist.Name)
	}

	csvData, err := ExportToCSV(playlist)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(filepath, csvData, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return filepath, nil
}

// MarkdownExportResult contains information about files created by WriteMarkdownExport
type MarkdownExportResult struct {
	Directory string
	Files     []string
}

// WriteMarkdownExport exports a playlist to Markdown format in a dedicated directory.
//
// Directory name defaults to the playlist name. Creates {dir}/README.md.
func WriteMarkdownExport(playlist *models.Playlist, outputDir string) (*MarkdownExportResult, error) {
	if outputDir == "" {
		outputDir = playlist.Name
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	mdData, err := ExportToMarkdown(playlist)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := fmt.Sprintf("%s/README.md", outputDir)
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return &MarkdownExportResult{
		Directory: outputDir,
		Files:     []string{mdFile},
	}, nil
}

// WriteTextExport exports a playlist to plain text format.
//
// Defaults to {name}_songs.txt as the filename.
func WriteTextExport(playlist *models.Playlist, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s_songs.txt", playlist.Name)
	}

	textData, err := ExportToText(playlist)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}

// WriteJSONExport exports a playlist to a JSON file.
//
// Defaults to {name}.json as the filename.
func WriteJSONExport(playlist *models.Playlist, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s.json", playlist.Name)
	}

	jsonData, err := ExportToJSON(playlist)
	if err != nil {
		return "", fmt.Errorf("failed to generate JSON: %w", err)
	}

	if err := os.WriteFile(filepath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON file: %w", err)
	}

	return filepath, nil
}
