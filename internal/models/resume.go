package models

// Resume is an uploaded résumé file. FileData carries the payload in a
// text-safe encoding and is omitted from list responses (omitempty on an
// empty string). Tombstone timestamps are never exposed on the wire.
type Resume struct {
	ID        string     `json:"id"`
	UserID    string     `json:"-"`
	Name      string     `json:"name"`
	FileName  string     `json:"fileName"`
	FileData  string     `json:"fileData,omitempty"`
	FileType  string     `json:"fileType"`
	CreatedAt Timestamp  `json:"createdAt"`
	UpdatedAt Timestamp  `json:"updatedAt"`
	DeletedAt *Timestamp `json:"-"`
}
