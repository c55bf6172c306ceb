package config

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers"`
	Events     string   `yaml:"events-topic"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) EventsTopic() string {
	return s.Events
}
