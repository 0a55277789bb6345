package simulator

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/restunugroho/demand-forecast/internal/models"
	"github.com/restunugroho/demand-forecast/internal/simulator/producers"
)

// OutputDestination streams serialized events to a side channel (Kafka or
// stdout) in addition to the parquet table the pipeline persists.
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct{}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))

	_, err := os.Stdout.Write([]byte(output))
	if err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}

	// Try to sync, but don't return an error if it fails
	_ = os.Stdout.Sync()

	return nil
}

func (c *ConsoleOutput) Close() error {
	return nil
}

// NewEventStream returns the configured streaming destination, or nil when
// streaming is disabled.
func NewEventStream(cfg *models.Config) (OutputDestination, error) {
	switch cfg.EventStream {
	case models.EventStreamNone, "":
		return nil, nil
	case models.EventStreamConsole:
		return &ConsoleOutput{}, nil
	case models.EventStreamKafka:
		producer, err := producers.NewSaramaProducer(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
		}
		return producer, nil
	default:
		return nil, fmt.Errorf("unknown event_stream: %q", cfg.EventStream)
	}
}

// StreamEvents publishes every event as a JSON message to the destination.
func StreamEvents(dest OutputDestination, topic string, events []models.OrderEvent) error {
	for _, ev := range events {
		msg, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("failed to serialize event %s: %w", ev.OrderID, err)
		}
		if err := dest.WriteMessage(topic, msg); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
	}
	return nil
}
