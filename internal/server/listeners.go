package server

import (
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/repositories"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/cache"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/event"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/logger"
)

// registerListeners hooks up the in-process event handlers.
func registerListeners() {
	event.Listen(event.UserSignedUp, func(payload interface{}) {
		if user, ok := payload.(models.User); ok {
			logger.Info("event: user signed up", "user_id", user.ID, "email", user.Email)
		}
	})

	event.Listen(event.UserPromoted, func(payload interface{}) {
		if user, ok := payload.(models.User); ok {
			logger.Info("event: user promoted to seller", "user_id", user.ID)
			// Seller listings change the catalogue; drop the cached
			// featured set so it rebuilds.
			cache.Del(repositories.FeaturedCacheKey)
		}
	})

	event.Listen(event.OrderPlaced, func(payload interface{}) {
		if order, ok := payload.(models.Order); ok {
			logger.Info("event: order placed", "order_id", order.ID, "total", order.TotalAmount)
		}
	})

	event.Listen(event.CartUpdated, func(payload interface{}) {
		if session, ok := payload.(string); ok {
			logger.Debug("event: cart updated", "session", session)
		}
	})
}
