package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const ActivityTopic = "booknest.activity"

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"BOOKNEST_KAFKA_ADDRS"`
	Topic string   `yaml:"topic" envconfig:"BOOKNEST_KAFKA_TOPIC"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func (c Config) TopicOrDefault() string {
	if c.Topic == "" {
		return ActivityTopic
	}
	return c.Topic
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
