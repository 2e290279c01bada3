package message

// Message is append-only chat traffic between two users; there is no edit
// or delete. Sender identity is stamped by the store from the active
// session.
type Message struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"` // wall-clock "HH:MM"
}
