package config

type Kafka struct {
	Addresses []string `env:"KAFKA_ADDRESSES" envSeparator:","`
	Group     string   `env:"KAFKA_GROUP" envDefault:"pharmapos"`
}

// Enabled reports whether a broker is configured. The MEMORY store driver
// runs without Kafka.
func (k Kafka) Enabled() bool {
	return len(k.Addresses) > 0
}
