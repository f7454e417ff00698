package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"room-service/internal/config"
	"room-service/internal/repository/model"
	"room-service/internal/repository/registrytypes"
)

const (
	databaseName = "room-service"

	roomCollectionName     = "rooms"
	roleCollectionName     = "roles"
	userRoleCollectionName = "userRoles"
)

var (
	AlreadyHasRoleError  = errors.New("user already has role")
	DoesNotHaveRoleError = errors.New("user does not have role")
)

type mongoRepository struct {
	logger *zap.SugaredLogger

	client   *mongo.Client
	database *mongo.Database

	roomCollection     *mongo.Collection
	roleCollection     *mongo.Collection
	userRoleCollection *mongo.Collection
}

func NewMongoRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.MongoDBConfig) (Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetRegistry(createCodecRegistry()))
	if err != nil {
		return nil, err
	}

	database := client.Database(databaseName)
	m := &mongoRepository{
		logger: logger,

		client:   client,
		database: database,

		roomCollection:     database.Collection(roomCollectionName),
		roleCollection:     database.Collection(roleCollectionName),
		userRoleCollection: database.Collection(userRoleCollectionName),
	}

	if err := m.createIndexes(ctx); err != nil {
		return nil, err
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down mongodb connection")
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Errorw("failed to disconnect from mongodb", "error", err)
		}
	}()

	return m, nil
}

func (m *mongoRepository) createIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.roomCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "path", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = m.roleCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "roomId", Value: 1}, {Key: "position", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = m.userRoleCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "roomId", Value: 1}, {Key: "userId", Value: 1}, {Key: "roleId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "roomId", Value: 1}, {Key: "userId", Value: 1}},
		},
	})
	return err
}

func (m *mongoRepository) CreateRoom(ctx context.Context, room *model.Room, roles []*model.Role, owner *model.UserRole) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := m.roomCollection.InsertOne(sc, room); err != nil {
			return nil, err
		}

		docs := make([]interface{}, len(roles))
		for i, role := range roles {
			docs[i] = role
		}
		if _, err := m.roleCollection.InsertMany(sc, docs); err != nil {
			return nil, err
		}

		if owner != nil {
			if _, err := m.userRoleCollection.InsertOne(sc, owner); err != nil {
				return nil, err
			}
		}

		return nil, nil
	})
	return err
}

func (m *mongoRepository) GetRoom(ctx context.Context, roomId uuid.UUID) (*model.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room model.Room
	if err := m.roomCollection.FindOne(ctx, bson.M{"_id": roomId}).Decode(&room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (m *mongoRepository) GetRoomByPath(ctx context.Context, path string) (*model.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room model.Room
	if err := m.roomCollection.FindOne(ctx, bson.M{"path": path}).Decode(&room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (m *mongoRepository) ListRooms(ctx context.Context) ([]*model.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.roomCollection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var result []model.Room
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	rooms := make([]*model.Room, len(result))
	for i := range result {
		rooms[i] = &result[i]
	}
	return rooms, nil
}

func (m *mongoRepository) DeleteRoom(ctx context.Context, roomId uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		result, err := m.roomCollection.DeleteOne(sc, bson.M{"_id": roomId})
		if err != nil {
			return nil, err
		}
		if result.DeletedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}

		if _, err := m.roleCollection.DeleteMany(sc, bson.M{"roomId": roomId}); err != nil {
			return nil, err
		}
		if _, err := m.userRoleCollection.DeleteMany(sc, bson.M{"roomId": roomId}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

func (m *mongoRepository) GetRole(ctx context.Context, roleId uuid.UUID) (*model.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var role model.Role
	if err := m.roleCollection.FindOne(ctx, bson.M{"_id": roleId}).Decode(&role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (m *mongoRepository) CreateRole(ctx context.Context, role *model.Role) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.roleCollection.InsertOne(ctx, role)
	return err
}

func (m *mongoRepository) UpdateRole(ctx context.Context, newRole *model.Role) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result := m.roleCollection.FindOneAndReplace(ctx, bson.M{"_id": newRole.Id}, newRole)
	return result.Err()
}

func (m *mongoRepository) DeleteRole(ctx context.Context, roleId uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		result, err := m.roleCollection.DeleteOne(sc, bson.M{"_id": roleId})
		if err != nil {
			return nil, err
		}
		if result.DeletedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}

		if _, err := m.userRoleCollection.DeleteMany(sc, bson.M{"roleId": roleId}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

// rolesSort keeps the chain deterministic: position ascending, creation time
// as the tie-breaker. Order among equal positions is otherwise unspecified.
var rolesSort = bson.D{{Key: "position", Value: 1}, {Key: "createdAt", Value: 1}}

func (m *mongoRepository) ListRoomRoles(ctx context.Context, roomId uuid.UUID) ([]*model.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.roleCollection.Find(ctx, bson.M{"roomId": roomId}, options.Find().SetSort(rolesSort))
	if err != nil {
		return nil, err
	}

	return decodeRoles(ctx, cursor)
}

func (m *mongoRepository) ListGenericRoomRoles(ctx context.Context, roomId uuid.UUID, anonymous bool) ([]*model.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"roomId": roomId, "generic": true}
	if anonymous {
		filter["anonymous"] = true
	}

	cursor, err := m.roleCollection.Find(ctx, filter, options.Find().SetSort(rolesSort))
	if err != nil {
		return nil, err
	}

	return decodeRoles(ctx, cursor)
}

func (m *mongoRepository) ListUserRolesByRoom(ctx context.Context, userId uuid.UUID, roomId uuid.UUID) ([]*model.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.userRoleCollection.Find(ctx, bson.M{"roomId": roomId, "userId": userId})
	if err != nil {
		return nil, err
	}

	var assignments []model.UserRole
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return []*model.Role{}, nil
	}

	roleIds := make([]uuid.UUID, len(assignments))
	for i, assignment := range assignments {
		roleIds[i] = assignment.RoleId
	}

	roleCursor, err := m.roleCollection.Find(ctx, bson.M{"_id": bson.M{"$in": roleIds}}, options.Find().SetSort(rolesSort))
	if err != nil {
		return nil, err
	}

	return decodeRoles(ctx, roleCursor)
}

func (m *mongoRepository) ListApplicableRoles(ctx context.Context, userId *uuid.UUID, roomId uuid.UUID) ([]*model.Role, error) {
	if userId == nil {
		return m.ListGenericRoomRoles(ctx, roomId, true)
	}

	assigned, err := m.ListUserRolesByRoom(ctx, *userId, roomId)
	if err != nil {
		return nil, err
	}

	generic, err := m.ListGenericRoomRoles(ctx, roomId, false)
	if err != nil {
		return nil, err
	}

	return append(assigned, generic...), nil
}

func (m *mongoRepository) AddRoleToUser(ctx context.Context, roomId uuid.UUID, userId uuid.UUID, roleId uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := m.userRoleCollection.CountDocuments(ctx, bson.M{"roomId": roomId, "userId": userId, "roleId": roleId})
	if err != nil {
		return err
	}
	if count > 0 {
		return AlreadyHasRoleError
	}

	_, err = m.userRoleCollection.InsertOne(ctx, &model.UserRole{
		Id:        uuid.New(),
		RoomId:    roomId,
		UserId:    userId,
		RoleId:    roleId,
		CreatedAt: time.Now().UTC(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return AlreadyHasRoleError
	}
	return err
}

func (m *mongoRepository) RemoveRoleFromUser(ctx context.Context, roomId uuid.UUID, userId uuid.UUID, roleId uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.userRoleCollection.DeleteOne(ctx, bson.M{"roomId": roomId, "userId": userId, "roleId": roleId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return DoesNotHaveRoleError
	}
	return nil
}

func decodeRoles(ctx context.Context, cursor *mongo.Cursor) ([]*model.Role, error) {
	var result []model.Role
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	roles := make([]*model.Role, len(result))
	for i := range result {
		roles[i] = &result[i]
	}
	return roles, nil
}

func createCodecRegistry() *bsoncodec.Registry {
	return bson.NewRegistryBuilder().
		RegisterTypeEncoder(registrytypes.UUIDType, bsoncodec.ValueEncoderFunc(registrytypes.UuidEncodeValue)).
		RegisterTypeDecoder(registrytypes.UUIDType, bsoncodec.ValueDecoderFunc(registrytypes.UuidDecodeValue)).
		Build()
}
