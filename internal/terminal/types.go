package terminal

// ChatRequest mirrors the POST /api/chat body.
type ChatRequest struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message"`
	Image          string `json:"image,omitempty"`
	Language       string `json:"language"`
}

type ChatReply struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversationId"`
	Language       string `json:"language"`
}

type Artwork struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Period      string `json:"period"`
	Year        string `json:"year"`
	Style       string `json:"style"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

type FeedbackRequest struct {
	Language       string `json:"language"`
	ConversationID string `json:"conversationId,omitempty"`
	WasHelpful     *bool  `json:"wasHelpful,omitempty"`
	FeedbackText   string `json:"feedbackText,omitempty"`
}

type statusReply struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type errorReply struct {
	Error string `json:"error"`
}
