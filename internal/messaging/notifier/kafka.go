package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"room-service/internal/config"
	"room-service/internal/repository/model"
)

const topic = "room-service"

const (
	roomUpdateEventType      = "room_update"
	roleUpdateEventType      = "role_update"
	userRolesUpdateEventType = "user_roles_update"
)

type kafkaNotifier struct {
	logger *zap.SugaredLogger
	w      *kafka.Writer
}

func NewKafkaNotifier(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.KafkaConfig) Notifier {
	w := &kafka.Writer{
		Addr:        kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:       topic,
		Async:       true,
		Balancer:    &kafka.LeastBytes{},
		ErrorLogger: zap.NewStdLog(zap.L()),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down kafka writer")
		if err := w.Close(); err != nil {
			logger.Errorw("failed to close kafka writer", "error", err)
		}
	}()

	return &kafkaNotifier{
		logger: logger,
		w:      w,
	}
}

type roomUpdateEvent struct {
	Room       *model.Room `json:"room"`
	ChangeType ChangeType  `json:"changeType"`
}

type roleUpdateEvent struct {
	Role       *model.Role `json:"role"`
	ChangeType ChangeType  `json:"changeType"`
}

type userRolesUpdateEvent struct {
	RoomId     uuid.UUID  `json:"roomId"`
	UserId     uuid.UUID  `json:"userId"`
	RoleId     uuid.UUID  `json:"roleId"`
	ChangeType ChangeType `json:"changeType"`
}

func (k *kafkaNotifier) RoomUpdate(ctx context.Context, room *model.Room, changeType ChangeType) error {
	return k.publishMessage(ctx, roomUpdateEventType, roomUpdateEvent{Room: room, ChangeType: changeType})
}

func (k *kafkaNotifier) RoleUpdate(ctx context.Context, role *model.Role, changeType ChangeType) error {
	return k.publishMessage(ctx, roleUpdateEventType, roleUpdateEvent{Role: role, ChangeType: changeType})
}

func (k *kafkaNotifier) UserRolesUpdate(ctx context.Context, roomId uuid.UUID, userId uuid.UUID, roleId uuid.UUID, changeType ChangeType) error {
	return k.publishMessage(ctx, userRolesUpdateEventType, userRolesUpdateEvent{
		RoomId:     roomId,
		UserId:     userId,
		RoleId:     roleId,
		ChangeType: changeType,
	})
}

func (k *kafkaNotifier) publishMessage(ctx context.Context, eventType string, event interface{}) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := k.w.WriteMessages(ctx, kafka.Message{
		Value:   bytes,
		Headers: []kafka.Header{{Key: "X-Event-Type", Value: []byte(eventType)}},
	}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
