package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/hangok-indie/hangok/internal/models"
	"github.com/hangok-indie/hangok/internal/slider"
)

var _ list.Item = songItem{}

// songItem wraps [models.Song] to implement [list.Item].
type songItem struct {
	song models.Song
}

func (i songItem) FilterValue() string { return i.song.Title }
func (i songItem) Title() string       { return i.song.Title }
func (i songItem) Description() string {
	if _, ok := slider.VideoID(i.song.Link); !ok {
		return i.song.Artist + " • no video"
	}
	return i.song.Artist
}

func newSongList(songs []models.Song, title string, width, height int) list.Model {
	items := make([]list.Item, len(songs))
	for i, song := range songs {
		items[i] = songItem{song: song}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetSize(width, height)
	return l
}
