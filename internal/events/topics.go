package events

// Topic constants for domain events emitted by the terminal.
const (
	TopicCartCreated       = "cart.created"
	TopicCheckoutCompleted = "cart.checkout.completed"
)

// DefaultTopics returns the canonical list of emitted topics.
func DefaultTopics() []string {
	return []string{
		TopicCartCreated,
		TopicCheckoutCompleted,
	}
}
