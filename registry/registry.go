package registry

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/common"
	"github.com/chaingallery/nft-bridge-node/models"
)

const (
	counterAssetsTotal  = "assets_total"
	counterMessageNonce = "message_nonce"
)

func chainCounterKey(chainType uint32) string {
	return fmt.Sprintf("assets_chain_%d", chainType)
}

// CustodyChecker reports the current custodian of a token. The registry only
// reads custody, moving custody belongs to the bridge engine.
type CustodyChecker interface {
	CustodianOf(contractAddr ethcommon.Address, tokenId *big.Int) (ethcommon.Address, error)
}

// BridgeRequestInput carries the fields of a new bridge request. The request
// id and the pending status are stamped by the registry.
type BridgeRequestInput struct {
	Owner          ethcommon.Address
	NftContract    ethcommon.Address
	TokenId        *big.Int
	TargetChain    uint32
	TargetContract ethcommon.Address
	Fee            *big.Int
	IsNft          bool
	AssetType      uint8
	AssetId        string
}

// Registry is the single source of truth for cross chain assets, queued
// messages and bridge requests. Every mutating operation threads the caller
// address and is gated by the authorization set.
type Registry interface {
	RegisterCrossChainAsset(caller ethcommon.Address, originContract ethcommon.Address, tokenId *big.Int, originChain uint32, targetChain uint32, targetContract ethcommon.Address, initialPrice *big.Int) (string, error)
	UpdateAssetSync(caller ethcommon.Address, assetId string, newPrice *big.Int, chainType uint32) error
	LockAsset(caller ethcommon.Address, owner ethcommon.Address, contractAddr ethcommon.Address, tokenId *big.Int, isNft bool, assetId string, chainType uint32) error
	UnlockAsset(caller ethcommon.Address, requestId string, owner ethcommon.Address, contractAddr ethcommon.Address, tokenId *big.Int, isNft bool, assetType uint8, assetId string, chainType uint32) error
	QueueCrossChainMessage(caller ethcommon.Address, messageType uint8, sourceChain uint32, targetChain uint32, payload []byte) (string, error)
	MarkMessageProcessed(caller ethcommon.Address, messageHash string) error
	RegisterBridgeRequest(caller ethcommon.Address, input BridgeRequestInput) (string, error)
	AuthorizeContract(caller ethcommon.Address, contractAddr ethcommon.Address, authorized bool) error

	GetCrossChainAsset(assetId string) (models.CrossChainAsset, error)
	GetAssetIdByContract(originContract ethcommon.Address, tokenId *big.Int) (string, error)
	GetChainMessageQueue(targetChain uint32) ([]models.QueuedMessage, error)
	GetPendingMessageCount(targetChain uint32) (int64, error)
	GetBridgeRequest(requestId string) (models.BridgeRequest, error)
	GetUserBridgeRequests(owner ethcommon.Address) ([]models.BridgeRequest, error)
	IsMessageProcessed(messageHash string) (bool, error)
}

type registry struct {
	configs ConfigStore
	custody CustodyChecker
}

func bigString(value *big.Int) string {
	if value == nil {
		return "0"
	}
	return value.String()
}

func (x *registry) requireOwner(caller ethcommon.Address) error {
	if !strings.EqualFold(caller.Hex(), app.Config.Bridge.OwnerAddress) {
		return ErrNotOwner
	}
	return nil
}

func (x *registry) requireAuthorized(caller ethcommon.Address) error {
	if strings.EqualFold(caller.Hex(), app.Config.Bridge.OwnerAddress) {
		return nil
	}
	var doc models.AuthorizedCaller
	err := app.DB.FindOne(models.CollectionAuthorizedCallers, bson.M{"address": strings.ToLower(caller.Hex())}, &doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotAuthorized
		}
		return err
	}
	if !doc.Authorized {
		return ErrNotAuthorized
	}
	return nil
}

// nextCounter increments a named counter under an exclusive lock and returns
// the new value.
func nextCounter(key string) (int64, error) {
	lockId, err := app.DB.XLock(models.CollectionAssetCounters)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := app.DB.Unlock(lockId); err != nil {
			log.Error("[REGISTRY] Error unlocking counters: ", err)
		}
	}()

	var counter models.AssetCounter
	err = app.DB.FindOne(models.CollectionAssetCounters, bson.M{"key": key}, &counter)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return 0, err
	}
	counter.Count++

	update := bson.M{
		"$set": bson.M{
			"count":      counter.Count,
			"updated_at": time.Now(),
		},
		"$setOnInsert": bson.M{
			"key": key,
		},
	}
	if err := app.DB.UpsertOne(models.CollectionAssetCounters, bson.M{"key": key}, update); err != nil {
		return 0, err
	}
	return counter.Count, nil
}

func bumpCounter(key string) {
	if _, err := nextCounter(key); err != nil {
		log.Error("[REGISTRY] Error incrementing counter ", key, ": ", err)
	}
}

// RegisterCrossChainAsset inserts a new cross chain asset record under its
// deterministic id and returns the id.
func (x *registry) RegisterCrossChainAsset(
	caller ethcommon.Address,
	originContract ethcommon.Address,
	tokenId *big.Int,
	originChain uint32,
	targetChain uint32,
	targetContract ethcommon.Address,
	initialPrice *big.Int,
) (string, error) {
	if err := x.requireAuthorized(caller); err != nil {
		return "", err
	}

	assetId := common.AssetId(originChain, targetChain, originContract, tokenId).Hex()

	now := time.Now()
	doc := models.CrossChainAsset{
		AssetId:         assetId,
		OriginChainType: originChain,
		TargetChainType: targetChain,
		OriginContract:  strings.ToLower(originContract.Hex()),
		TargetContract:  strings.ToLower(targetContract.Hex()),
		TokenId:         bigString(tokenId),
		LastSyncPrice:   bigString(initialPrice),
		LastSyncBlock:   x.configs.LatestChainHeight(originChain),
		IsActive:        true,
		IsVerified:      false,
		IsLocked:        false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := app.DB.InsertOne(models.CollectionAssets, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrAssetAlreadyExists
		}
		return "", err
	}

	bumpCounter(counterAssetsTotal)
	bumpCounter(chainCounterKey(originChain))

	EmitEvent(models.BridgeEvent{
		Type:      models.EventAssetRegistered,
		AssetId:   assetId,
		ChainType: originChain,
		Detail:    doc.OriginContract + "/" + doc.TokenId,
	})

	log.Info("[REGISTRY] Registered cross chain asset: ", assetId)
	return assetId, nil
}

// UpdateAssetSync updates the synced price and block of an asset. Lock state
// is never touched here.
func (x *registry) UpdateAssetSync(caller ethcommon.Address, assetId string, newPrice *big.Int, chainType uint32) error {
	if err := x.requireAuthorized(caller); err != nil {
		return err
	}

	if _, err := x.GetCrossChainAsset(assetId); err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"last_sync_price": bigString(newPrice),
			"last_sync_block": x.configs.LatestChainHeight(chainType),
			"updated_at":      time.Now(),
		},
	}
	if err := app.DB.UpdateOne(models.CollectionAssets, bson.M{"asset_id": assetId}, update); err != nil {
		return err
	}

	EmitEvent(models.BridgeEvent{
		Type:      models.EventSyncCompleted,
		AssetId:   assetId,
		ChainType: chainType,
	})

	log.Debug("[REGISTRY] Updated asset sync: ", assetId)
	return nil
}

// LockAsset marks an asset as in flight on the origin side. Locking an
// already locked asset is a no-op.
func (x *registry) LockAsset(
	caller ethcommon.Address,
	owner ethcommon.Address,
	contractAddr ethcommon.Address,
	tokenId *big.Int,
	isNft bool,
	assetId string,
	chainType uint32,
) error {
	if err := x.requireAuthorized(caller); err != nil {
		return err
	}

	asset, err := x.GetCrossChainAsset(assetId)
	if err != nil {
		return err
	}

	if asset.IsLocked {
		log.Info("[REGISTRY] Asset already locked: ", assetId)
		return nil
	}

	if isNft {
		custodian, err := x.custody.CustodianOf(contractAddr, tokenId)
		if err != nil {
			return err
		}
		if custodian != owner {
			return ErrUnauthorizedTransfer
		}
	}

	update := bson.M{
		"$set": bson.M{
			"is_locked":  true,
			"updated_at": time.Now(),
		},
	}
	if err := app.DB.UpdateOne(models.CollectionAssets, bson.M{"asset_id": assetId}, update); err != nil {
		return err
	}

	log.Info("[REGISTRY] Locked asset: ", assetId)
	return nil
}

// UnlockAsset releases an asset on the destination side and emits the unlock
// event keyed by the originating request id.
func (x *registry) UnlockAsset(
	caller ethcommon.Address,
	requestId string,
	owner ethcommon.Address,
	contractAddr ethcommon.Address,
	tokenId *big.Int,
	isNft bool,
	assetType uint8,
	assetId string,
	chainType uint32,
) error {
	if err := x.requireAuthorized(caller); err != nil {
		return err
	}

	if _, err := x.GetCrossChainAsset(assetId); err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"is_locked":  false,
			"updated_at": time.Now(),
		},
	}
	if err := app.DB.UpdateOne(models.CollectionAssets, bson.M{"asset_id": assetId}, update); err != nil {
		return err
	}

	eventType := models.EventAssetUnlocked
	if !isNft {
		eventType = models.EventNonNftAssetUnlocked
	}
	EmitEvent(models.BridgeEvent{
		Type:      eventType,
		AssetId:   assetId,
		RequestId: requestId,
		Owner:     strings.ToLower(owner.Hex()),
		ChainType: chainType,
	})

	log.Info("[REGISTRY] Unlocked asset: ", assetId, " for request: ", requestId)
	return nil
}

// QueueCrossChainMessage appends a message to the target chain's queue and
// returns its unique handle.
func (x *registry) QueueCrossChainMessage(
	caller ethcommon.Address,
	messageType uint8,
	sourceChain uint32,
	targetChain uint32,
	payload []byte,
) (string, error) {
	if err := x.requireAuthorized(caller); err != nil {
		return "", err
	}

	nonce, err := nextCounter(counterMessageNonce)
	if err != nil {
		return "", err
	}

	now := time.Now()
	messageHash := common.QueueMessageHash(caller, payload, uint64(now.Unix()), uint64(nonce)).Hex()

	doc := models.QueuedMessage{
		MessageHash: messageHash,
		MessageType: messageType,
		SourceChain: sourceChain,
		TargetChain: targetChain,
		Payload:     hexutil.Encode(payload),
		Sender:      strings.ToLower(caller.Hex()),
		Processed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := app.DB.InsertOne(models.CollectionMessages, doc); err != nil {
		return "", err
	}

	log.Info("[REGISTRY] Queued cross chain message: ", messageHash)
	return messageHash, nil
}

// MarkMessageProcessed adds a message hash to the processed set and flips the
// queue entry out of pending accounting. The queue stays append-only, entries
// are never deleted.
func (x *registry) MarkMessageProcessed(caller ethcommon.Address, messageHash string) error {
	if err := x.requireAuthorized(caller); err != nil {
		return err
	}

	processed := models.ProcessedMessage{
		MessageHash: messageHash,
		CreatedAt:   time.Now(),
	}
	if err := app.DB.InsertOne(models.CollectionProcessedMessages, processed); err != nil {
		// marking twice is harmless, the unique index keeps the set a set
		if !mongo.IsDuplicateKeyError(err) {
			return err
		}
	}

	update := bson.M{
		"$set": bson.M{
			"processed":  true,
			"updated_at": time.Now(),
		},
	}
	if err := app.DB.UpdateOne(models.CollectionMessages, bson.M{"message_hash": messageHash}, update); err != nil {
		return err
	}

	log.Info("[REGISTRY] Marked message processed: ", messageHash)
	return nil
}

// RegisterBridgeRequest records a new bridge request in the ledger. The
// target chain must have an active chain config.
func (x *registry) RegisterBridgeRequest(caller ethcommon.Address, input BridgeRequestInput) (string, error) {
	if err := x.requireAuthorized(caller); err != nil {
		return "", err
	}

	config, err := x.configs.GetChainConfig(input.TargetChain)
	if err != nil {
		return "", err
	}
	if !config.IsActive {
		return "", ErrInactiveChain
	}

	now := time.Now()
	assetRef := common.NftAssetRef(input.NftContract, input.TokenId)
	if !input.IsNft {
		assetRef = []byte(input.AssetId)
	}
	requestId := common.RequestId(input.Owner, assetRef, input.TargetChain, uint64(now.Unix())).Hex()

	doc := models.BridgeRequest{
		RequestId:       requestId,
		Owner:           strings.ToLower(input.Owner.Hex()),
		NftContract:     strings.ToLower(input.NftContract.Hex()),
		TokenId:         bigString(input.TokenId),
		TargetChainType: input.TargetChain,
		TargetContract:  strings.ToLower(input.TargetContract.Hex()),
		Fee:             bigString(input.Fee),
		IsNft:           input.IsNft,
		AssetType:       input.AssetType,
		AssetId:         input.AssetId,
		Status:          models.RequestStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := app.DB.InsertOne(models.CollectionBridgeRequests, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrRequestAlreadyExists
		}
		return "", err
	}

	EmitEvent(models.BridgeEvent{
		Type:      models.EventBridgeRequestCreated,
		RequestId: requestId,
		Owner:     doc.Owner,
		ChainType: input.TargetChain,
	})

	log.Info("[REGISTRY] Registered bridge request: ", requestId)
	return requestId, nil
}

// AuthorizeContract adds or removes an address from the authorization set.
// Owner only.
func (x *registry) AuthorizeContract(caller ethcommon.Address, contractAddr ethcommon.Address, authorized bool) error {
	if err := x.requireOwner(caller); err != nil {
		return err
	}

	address := strings.ToLower(contractAddr.Hex())
	update := bson.M{
		"$set": bson.M{
			"authorized": authorized,
			"updated_at": time.Now(),
		},
		"$setOnInsert": bson.M{
			"address": address,
		},
	}
	if err := app.DB.UpsertOne(models.CollectionAuthorizedCallers, bson.M{"address": address}, update); err != nil {
		return err
	}

	log.Info("[REGISTRY] Set contract authorization: ", address, " ", authorized)
	return nil
}

func (x *registry) GetCrossChainAsset(assetId string) (models.CrossChainAsset, error) {
	var asset models.CrossChainAsset
	err := app.DB.FindOne(models.CollectionAssets, bson.M{"asset_id": assetId}, &asset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return asset, ErrAssetNotExists
		}
		return asset, err
	}
	return asset, nil
}

func (x *registry) GetAssetIdByContract(originContract ethcommon.Address, tokenId *big.Int) (string, error) {
	var asset models.CrossChainAsset
	filter := bson.M{
		"origin_contract": strings.ToLower(originContract.Hex()),
		"token_id":        bigString(tokenId),
	}
	err := app.DB.FindOne(models.CollectionAssets, filter, &asset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrAssetNotExists
		}
		return "", err
	}
	return asset.AssetId, nil
}

func (x *registry) GetChainMessageQueue(targetChain uint32) ([]models.QueuedMessage, error) {
	messages := []models.QueuedMessage{}
	err := app.DB.FindMany(models.CollectionMessages, bson.M{"target_chain": targetChain}, &messages)
	return messages, err
}

// GetPendingMessageCount counts queued messages for one target chain that
// are not yet in the processed set.
func (x *registry) GetPendingMessageCount(targetChain uint32) (int64, error) {
	return app.DB.CountDocuments(models.CollectionMessages, bson.M{"target_chain": targetChain, "processed": false})
}

func (x *registry) GetBridgeRequest(requestId string) (models.BridgeRequest, error) {
	var request models.BridgeRequest
	err := app.DB.FindOne(models.CollectionBridgeRequests, bson.M{"request_id": requestId}, &request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return request, ErrRequestNotExists
		}
		return request, err
	}
	return request, nil
}

func (x *registry) GetUserBridgeRequests(owner ethcommon.Address) ([]models.BridgeRequest, error) {
	requests := []models.BridgeRequest{}
	err := app.DB.FindMany(models.CollectionBridgeRequests, bson.M{"owner": strings.ToLower(owner.Hex())}, &requests)
	return requests, err
}

func (x *registry) IsMessageProcessed(messageHash string) (bool, error) {
	var processed models.ProcessedMessage
	err := app.DB.FindOne(models.CollectionProcessedMessages, bson.M{"message_hash": messageHash}, &processed)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (x *registry) seedAuthorizedCallers() {
	for _, caller := range app.Config.Bridge.AuthorizedCallers {
		address := strings.ToLower(ethcommon.HexToAddress(caller).Hex())
		update := bson.M{
			"$set": bson.M{
				"authorized": true,
				"updated_at": time.Now(),
			},
			"$setOnInsert": bson.M{
				"address": address,
			},
		}
		if err := app.DB.UpsertOne(models.CollectionAuthorizedCallers, bson.M{"address": address}, update); err != nil {
			log.Error("[REGISTRY] Error seeding authorized caller ", address, ": ", err)
		}
	}
	log.Debug("[REGISTRY] Seeded authorized callers: ", len(app.Config.Bridge.AuthorizedCallers))
}

func NewRegistry(configs ConfigStore, custody CustodyChecker) Registry {
	x := &registry{
		configs: configs,
		custody: custody,
	}
	x.seedAuthorizedCallers()
	return x
}
