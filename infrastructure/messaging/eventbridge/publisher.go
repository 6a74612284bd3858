package eventbridge

import (
	"context"
	"encoding/json"

	"taskboard-backend/application/ports"
	"taskboard-backend/domain/events"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

// Client is the subset of the EventBridge API the publisher uses
type Client interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

var _ Client = (*eventbridge.Client)(nil)

// Publisher sends domain events to an EventBridge bus. The downstream
// notification writer consumes these and writes the NOTIFICATION# items the
// read path serves. With no bus configured the publisher drops events.
type Publisher struct {
	client       Client
	eventBusName string
	logger       *zap.Logger
}

// NewPublisher creates a new EventBridge publisher
func NewPublisher(client Client, eventBusName string, logger *zap.Logger) ports.EventPublisher {
	return &Publisher{
		client:       client,
		eventBusName: eventBusName,
		logger:       logger,
	}
}

// Publish sends a single event to EventBridge
func (p *Publisher) Publish(ctx context.Context, event events.DomainEvent) error {
	if p.eventBusName == "" {
		p.logger.Debug("Event bus not configured, dropping event",
			zap.String("eventType", event.GetEventType()),
		)
		return nil
	}

	detail, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event",
			zap.String("eventType", event.GetEventType()),
			zap.Error(err),
		)
		return err
	}

	input := &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(p.eventBusName),
				Source:       aws.String(events.Source),
				DetailType:   aws.String(event.GetEventType()),
				Detail:       aws.String(string(detail)),
				Time:         aws.Time(event.GetTimestamp()),
			},
		},
	}

	result, err := p.client.PutEvents(ctx, input)
	if err != nil {
		p.logger.Error("Failed to publish event",
			zap.String("eventType", event.GetEventType()),
			zap.Error(err),
		)
		return err
	}
	if result.FailedEntryCount > 0 {
		p.logger.Warn("Event entry rejected by EventBridge",
			zap.String("eventType", event.GetEventType()),
			zap.Int32("failedEntries", result.FailedEntryCount),
		)
	}

	p.logger.Debug("Event published",
		zap.String("eventType", event.GetEventType()),
		zap.String("aggregateID", event.GetAggregateID()),
	)
	return nil
}
