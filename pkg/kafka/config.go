package kafka

// Config holds Kafka connection parameters.
type Config struct {
	Brokers []string

	// ClientID identifies this producer in broker logs.
	ClientID string
}
