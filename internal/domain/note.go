package domain

// Note is a single message: who wrote it and what it says. Notes are
// immutable once delivered; community fan-out enqueues one copy per member.
type Note struct {
	Sender string `json:"sender"`
	Body   string `json:"body"`
}

func NewNote(sender, body string) Note {
	return Note{Sender: sender, Body: body}
}
