package app

import (
	"context"
	"time"

	"github.com/chaingallery/nft-bridge-node/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	lock "github.com/square/mongo-lock"
)

type Database interface {
	Connect() error
	SetupLockers() error
	SetupIndexes() error
	Disconnect() error
	InsertOne(collection string, data interface{}) error
	FindOne(collection string, filter interface{}, result interface{}) error
	FindMany(collection string, filter interface{}, result interface{}) error
	UpdateOne(collection string, filter interface{}, update interface{}) error
	UpsertOne(collection string, filter interface{}, update interface{}) error
	DeleteOne(collection string, filter interface{}) error
	CountDocuments(collection string, filter interface{}) (int64, error)

	XLock(resourceId string) (string, error)
	SLock(resourceId string) (string, error)
	Unlock(lockId string) error
}

// mongoDatabase is a wrapper around the mongo database
type mongoDatabase struct {
	db       *mongo.Database
	uri      string
	database string
	locker   *lock.Client
}

var (
	DB Database
)

// Connect connects to the database
func (d *mongoDatabase) Connect() error {
	log.Debug("[DB] Connecting to database")
	wcMajority := writeconcern.New(writeconcern.WMajority(), writeconcern.WTimeout(time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(d.uri).SetWriteConcern(wcMajority))
	if err != nil {
		return err
	}
	d.db = client.Database(d.database)

	log.Info("[DB] Connected to mongo database: ", d.database)
	return nil
}

// SetupLockers sets up the locker
func (d *mongoDatabase) SetupLockers() error {
	log.Debug("[DB] Setting up locker")
	var locker *lock.Client

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()

	locker = lock.NewClient(d.db.Collection(models.CollectionLocks))
	locker.CreateIndexes(ctx)
	d.locker = locker

	log.Info("[DB] Locker setup")
	return nil
}

// XLock locks a resource for exclusive access
func (d *mongoDatabase) XLock(resourceId string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()

	lockId := uuid.NewString()
	err := d.locker.XLock(ctx, resourceId, lockId, lock.LockDetails{})
	return lockId, err
}

// SLock locks a resource for shared access
func (d *mongoDatabase) SLock(resourceId string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()

	lockId := uuid.NewString()
	err := d.locker.SLock(ctx, resourceId, lockId, lock.LockDetails{}, -1)
	return lockId, err
}

// Unlock unlocks a resource
func (d *mongoDatabase) Unlock(lockId string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()

	_, err := d.locker.Unlock(ctx, lockId)
	return err
}

func (d *mongoDatabase) createIndex(collection string, keys bson.D, unique bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()
	_, err := d.db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(unique),
	})
	return err
}

// SetupIndexes sets up the indexes
func (d *mongoDatabase) SetupIndexes() error {
	log.Debug("[DB] Setting up indexes")

	// unique asset id plus a reverse lookup by contract and token
	log.Debug("[DB] Setting up indexes for assets")
	if err := d.createIndex(models.CollectionAssets, bson.D{{Key: "asset_id", Value: 1}}, true); err != nil {
		return err
	}
	if err := d.createIndex(models.CollectionAssets, bson.D{{Key: "origin_contract", Value: 1}, {Key: "token_id", Value: 1}}, false); err != nil {
		return err
	}

	log.Debug("[DB] Setting up indexes for bridge requests")
	if err := d.createIndex(models.CollectionBridgeRequests, bson.D{{Key: "request_id", Value: 1}}, true); err != nil {
		return err
	}
	if err := d.createIndex(models.CollectionBridgeRequests, bson.D{{Key: "owner", Value: 1}}, false); err != nil {
		return err
	}

	log.Debug("[DB] Setting up indexes for messages")
	if err := d.createIndex(models.CollectionMessages, bson.D{{Key: "message_hash", Value: 1}}, true); err != nil {
		return err
	}
	if err := d.createIndex(models.CollectionMessages, bson.D{{Key: "target_chain", Value: 1}, {Key: "processed", Value: 1}}, false); err != nil {
		return err
	}

	// insertion into the processed set is the idempotency guard
	log.Debug("[DB] Setting up indexes for processed messages")
	if err := d.createIndex(models.CollectionProcessedMessages, bson.D{{Key: "message_hash", Value: 1}}, true); err != nil {
		return err
	}

	log.Debug("[DB] Setting up indexes for failed messages")
	if err := d.createIndex(models.CollectionFailedMessages, bson.D{{Key: "src_relay_id", Value: 1}, {Key: "src_address", Value: 1}, {Key: "nonce", Value: 1}}, true); err != nil {
		return err
	}

	log.Debug("[DB] Setting up indexes for chain configs")
	if err := d.createIndex(models.CollectionChainConfigs, bson.D{{Key: "chain_type", Value: 1}}, true); err != nil {
		return err
	}

	// the chain type and relay chain id mapping is bidirectional
	log.Debug("[DB] Setting up indexes for supported chains")
	if err := d.createIndex(models.CollectionSupportedChains, bson.D{{Key: "chain_type", Value: 1}}, true); err != nil {
		return err
	}
	if err := d.createIndex(models.CollectionSupportedChains, bson.D{{Key: "relay_chain_id", Value: 1}}, true); err != nil {
		return err
	}

	log.Debug("[DB] Setting up indexes for trusted remotes")
	if err := d.createIndex(models.CollectionTrustedRemotes, bson.D{{Key: "relay_chain_id", Value: 1}}, true); err != nil {
		return err
	}

	log.Debug("[DB] Setting up indexes for authorized callers")
	if err := d.createIndex(models.CollectionAuthorizedCallers, bson.D{{Key: "address", Value: 1}}, true); err != nil {
		return err
	}

	log.Debug("[DB] Setting up indexes for bridge state")
	if err := d.createIndex(models.CollectionBridgeState, bson.D{{Key: "state_id", Value: 1}}, true); err != nil {
		return err
	}

	log.Debug("[DB] Setting up indexes for counters")
	if err := d.createIndex(models.CollectionAssetCounters, bson.D{{Key: "key", Value: 1}}, true); err != nil {
		return err
	}

	log.Debug("[DB] Setting up indexes for events")
	if err := d.createIndex(models.CollectionEvents, bson.D{{Key: "type", Value: 1}, {Key: "created_at", Value: 1}}, false); err != nil {
		return err
	}

	log.Debug("[DB] Setting up indexes for healthchecks")
	if err := d.createIndex(models.CollectionHealthChecks, bson.D{{Key: "instance_id", Value: 1}, {Key: "hostname", Value: 1}}, true); err != nil {
		return err
	}

	log.Info("[DB] Indexes setup")

	return nil
}

// Disconnect disconnects from the database
func (d *mongoDatabase) Disconnect() error {
	log.Debug("[DB] Disconnecting from database")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()
	err := d.db.Client().Disconnect(ctx)
	log.Info("[DB] Disconnected from database")
	return err
}

// method for insert single value in a collection
func (d *mongoDatabase) InsertOne(collection string, data interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()
	_, err := d.db.Collection(collection).InsertOne(ctx, data)
	return err
}

// method for find single value in a collection
func (d *mongoDatabase) FindOne(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()
	err := d.db.Collection(collection).FindOne(ctx, filter).Decode(result)
	return err
}

// method for find multiple values in a collection
func (d *mongoDatabase) FindMany(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()
	cursor, err := d.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return err
	}
	err = cursor.All(ctx, result)
	return err
}

// method for update single value in a collection
func (d *mongoDatabase) UpdateOne(collection string, filter interface{}, update interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()
	_, err := d.db.Collection(collection).UpdateOne(ctx, filter, update)
	return err
}

// method for upsert single value in a collection
func (d *mongoDatabase) UpsertOne(collection string, filter interface{}, update interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := d.db.Collection(collection).UpdateOne(ctx, filter, update, opts)
	return err
}

// method for delete single value in a collection
func (d *mongoDatabase) DeleteOne(collection string, filter interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()
	_, err := d.db.Collection(collection).DeleteOne(ctx, filter)
	return err
}

// method for count documents in a collection
func (d *mongoDatabase) CountDocuments(collection string, filter interface{}) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.MongoDB.TimeoutMillis)*time.Millisecond)
	defer cancel()
	return d.db.Collection(collection).CountDocuments(ctx, filter)
}

// InitDB creates a new database wrapper
func InitDB() {
	DB = &mongoDatabase{
		uri:      Config.MongoDB.URI,
		database: Config.MongoDB.Database,
	}

	err := DB.Connect()
	if err != nil {
		log.Fatal(err)
	}
	err = DB.SetupIndexes()
	if err != nil {
		log.Fatal(err)
	}
	err = DB.SetupLockers()
	if err != nil {
		log.Fatal(err)
	}
	log.Info("[DB] Database initialized")
}
