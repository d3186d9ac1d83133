// Package stream публикует события безопасности в Amazon Kinesis
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

// KinesisAPI - используемая часть клиента Kinesis
type KinesisAPI interface {
	PutRecord(ctx context.Context, params *kinesis.PutRecordInput, optFns ...func(*kinesis.Options)) (*kinesis.PutRecordOutput, error)
}

type securityRecord struct {
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	EventType string    `json:"event_type"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

type KinesisStreamer struct {
	client     KinesisAPI
	streamName string
}

func NewKinesisStreamer(client KinesisAPI, streamName string) *KinesisStreamer {
	return &KinesisStreamer{
		client:     client,
		streamName: streamName,
	}
}

// NewFromEnv создает клиента по стандартной цепочке настроек AWS
func NewFromEnv(ctx context.Context, streamName string) (*KinesisStreamer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewKinesisStreamer(kinesis.NewFromConfig(cfg), streamName), nil
}

// Stream отправляет событие. Ключ партиции - пользователь, чтобы события
// одного водителя шли по порядку.
func (s *KinesisStreamer) Stream(ctx context.Context, event *models.SecurityEvent) error {
	data, err := json.Marshal(securityRecord{
		EventID:   event.ID.String(),
		UserID:    event.UserID,
		EventType: event.Type,
		Latitude:  event.Latitude,
		Longitude: event.Longitude,
		Timestamp: event.CreatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal security event: %w", err)
	}

	partitionKey := event.UserID
	if partitionKey == "" {
		partitionKey = event.ID.String()
	}

	_, err = s.client.PutRecord(ctx, &kinesis.PutRecordInput{
		StreamName:   aws.String(s.streamName),
		Data:         data,
		PartitionKey: aws.String(partitionKey),
	})
	if err != nil {
		return fmt.Errorf("failed to put record to %s: %w", s.streamName, err)
	}
	return nil
}
