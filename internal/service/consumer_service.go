package service

import (
	"context"
	"encoding/json"
	"log"

	"activity-insights-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process mining topic: each message asks for
// a mining run, either for one user or for everyone with recent activity.
type consumerService struct {
	pubSub        *gochannel.GoChannel
	topicName     string
	miningService IMiningService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	miningService IMiningService,
) IConsumerService {
	return &consumerService{
		pubSub:        pubSub,
		topicName:     topicName,
		miningService: miningService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.MiningRequestMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal mining request: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if payload.UserId != nil {
		stored, err := cs.miningService.MinePatternsForUser(ctx, *payload.UserId)
		if err != nil {
			log.Printf("[ERROR] Mining for user %s failed: %v", payload.UserId, err)
			msg.Nack() // Nack for retriable errors
			return
		}
		log.Printf("[INFO] Mined %d patterns for user %s", stored, payload.UserId)
		msg.Ack()
		return
	}

	summary, err := cs.miningService.MineAllUsers(ctx)
	if err != nil {
		log.Printf("[ERROR] Mining batch failed: %v", err)
		msg.Nack()
		return
	}
	log.Printf("[INFO] Mining batch done: %d users, %d patterns", summary.UsersProcessed, summary.PatternsStored)
	msg.Ack()
}
