package storage

import "time"

// RSVP is one guest's confirmation form submission.
type RSVP struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Attending   bool      `json:"attending"`
	Allergies   *string   `json:"allergies"`
	SpecialMenu *string   `json:"special_menu"`
	Message     *string   `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewRSVP carries the fields of an incoming confirmation. Optional fields
// are nil when the guest left them blank.
type NewRSVP struct {
	Name        string
	Email       *string
	Phone       *string
	Attending   bool
	Allergies   *string
	SpecialMenu *string
	Message     *string
}

// MusicRequest is one song suggestion from the request board.
type MusicRequest struct {
	ID          string    `json:"id"`
	SongTitle   string    `json:"song_title"`
	Artist      string    `json:"artist"`
	RequestedBy string    `json:"requested_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// Photo is one gallery record. The image bytes live in external storage;
// only the path and public URL are kept here.
type Photo struct {
	ID          string    `json:"id"`
	StoragePath string    `json:"storage_path"`
	URL         string    `json:"url"`
	Caption     *string   `json:"caption"`
	UploadedBy  string    `json:"uploaded_by"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
}
