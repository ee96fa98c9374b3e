package repository

// CreateMessageOptions holds parameters for inserting a conversation turn.
type CreateMessageOptions struct {
	UserID     string
	Role       string
	Content    string
	TokensUsed *int
	ModelUsed  *string
}

// ListMessagesOptions filters and orders conversation history.
type ListMessagesOptions struct {
	UserID     string
	Limit      int  // 0 = no limit
	Descending bool // default oldest first
}
