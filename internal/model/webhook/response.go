package webhook

// MessageList is the chat-facing output shape: a header, either plain
// lines or label-to-link pairs, and a fallback shown when no results
// exist. Link labels carry a 1-based index, so the unordered map stays
// reconstructible.
type MessageList struct {
	Header   string            `json:"header"`
	Messages []string          `json:"messages,omitempty"`
	Links    map[string]string `json:"links,omitempty"`
	Fallback string            `json:"fallback"`
}

func (m MessageList) Empty() bool {
	return len(m.Messages) == 0 && len(m.Links) == 0
}
