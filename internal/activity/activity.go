package activity

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
)

type Type string

const (
	BookCreated  Type = "book.created"
	BookUpdated  Type = "book.updated"
	BookDeleted  Type = "book.deleted"
	BookBorrowed Type = "book.borrowed"
	BookReturned Type = "book.returned"
)

type Event struct {
	Type   Type      `json:"type"`
	UserID string    `json:"userId,omitempty"`
	BookID string    `json:"bookId,omitempty"`
	ISBN   string    `json:"isbn,omitempty"`
	Title  string    `json:"title,omitempty"`
	LoanID string    `json:"loanId,omitempty"`
	At     time.Time `json:"at"`
}

func ForBook(t Type, userID string, b model.Book) Event {
	return Event{Type: t, UserID: userID, BookID: b.ID, ISBN: b.ISBN, Title: b.Title}
}

// Publisher records what the user did. Publishing never fails the action
// that produced the event.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

type nop struct{}

func (nop) Publish(context.Context, Event) {}

func Nop() Publisher { return nop{} }

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *zap.Logger
	now      func() time.Time
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		log:      log.Named("activity"),
		now:      time.Now,
	}
}

func (p *kafkaPublisher) Publish(_ context.Context, e Event) {
	if e.At.IsZero() {
		e.At = p.now().UTC()
	}
	data, err := model.JSON.Marshal(e)
	if err != nil {
		p.log.Error("marshal event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(e.UserID),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		p.log.Warn("publish event", zap.String("type", string(e.Type)), zap.Error(err))
	}
}
