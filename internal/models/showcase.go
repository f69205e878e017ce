package models

import "time"

// ShowcaseItem is one rendered kaleidoscope in the public gallery.
type ShowcaseItem struct {
	ID        string    `db:"id" json:"id"`
	Video     string    `db:"video" json:"video"`
	Gif       string    `db:"gif" json:"gif"`
	Thumbnail string    `db:"thumbnail" json:"thumbnail"`
	Ts        time.Time `db:"ts" json:"ts"`
}
