package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wedshare/pkg/logger"
)

const (
	PhotoCollection = "photos"
	UserCollection  = "users"
)

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	logger.Info("connecting to document store", "db", cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			NilSliceAsEmpty: true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initPhotoCollection(db); err != nil {
		return nil, err
	}

	if err := initUserCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Database) collection(name string) *mongo.Collection {
	return db.Client.Database(db.DBName).Collection(name)
}

func collectionExists(ctx context.Context, db *Database, name string) (bool, error) {
	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return false, err
	}

	return len(collections) > 0, nil
}

func initPhotoCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	exists, err := collectionExists(ctx, db, PhotoCollection)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "filename", "location", "guest_name", "uploaded_at"},
			"properties": bson.M{
				"_id":      bson.M{"bsonType": "string"},
				"filename": bson.M{"bsonType": "string"},
				"location": bson.M{
					"bsonType": "object",
					"required": []string{"kind", "value"},
					"properties": bson.M{
						"kind":  bson.M{"enum": []string{"url", "inline"}},
						"value": bson.M{"bsonType": "string"},
					},
				},
				"description": bson.M{"bsonType": []string{"string", "null"}},
				"guest_name":  bson.M{"bsonType": "string"},
				"uploaded_at": bson.M{"bsonType": "date"},
			},
		},
	})

	if err := db.Client.Database(db.DBName).CreateCollection(ctx, PhotoCollection, collOpts); err != nil {
		return err
	}

	_, err = db.collection(PhotoCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "uploaded_at", Value: -1}},
	})

	return err
}

func initUserCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	exists, err := collectionExists(ctx, db, UserCollection)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	if err := db.Client.Database(db.DBName).CreateCollection(ctx, UserCollection); err != nil {
		return err
	}

	_, err = db.collection(UserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
