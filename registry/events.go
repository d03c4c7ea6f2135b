package registry

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/chaingallery/nft-bridge-node/app"
	"github.com/chaingallery/nft-bridge-node/models"
)

// EmitEvent stores a bridge event for downstream indexers. Event storage is
// best effort and never aborts the operation that emitted the event.
func EmitEvent(event models.BridgeEvent) {
	event.CreatedAt = time.Now()
	if err := app.DB.InsertOne(models.CollectionEvents, event); err != nil {
		log.Error("[REGISTRY] Error storing event ", event.Type, ": ", err)
	}
}
