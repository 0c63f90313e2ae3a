package broker

// Message is one stream entry handed to a consumer.
type Message interface {
	ID() string
	Body() string
	Ack() error
}
