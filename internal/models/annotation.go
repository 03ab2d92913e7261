package models

import "time"

// Annotation is one dated curator note on an artwork. Notes accumulate;
// they are never edited or removed.
type Annotation struct {
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}
