package routes

import (
	"net/http"
	"time"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/controllers"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/graph"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/repositories"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/services"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/store"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/logger"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/metrics"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/middleware"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/rbac"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/reqid"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/response"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/router"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/workerpool"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/ws"
)

// Deps carries the long-lived app objects the routes close over.
type Deps struct {
	Stores *store.Manager
	Pool   *workerpool.Pool
	Hub    *ws.Hub
}

// RegisterAPI mounts the full HTTP surface on the router.
func RegisterAPI(r *router.Router, deps Deps) {
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(metrics.Middleware())

	catalogService := services.NewCatalogService()
	cartService := services.NewCartService(deps.Stores, repositories.NewProductRepository())
	checkoutService := services.NewCheckoutService(deps.Stores, deps.Pool, deps.Hub)

	authController := controllers.NewAuthController(deps.Stores)
	cartController := controllers.NewCartController(cartService)
	catalogController := controllers.NewCatalogController(catalogService)
	checkoutController := controllers.NewCheckoutController(checkoutService)
	dashboardController := controllers.NewDashboardController(services.NewDashboardService(), deps.Hub)

	r.Get("/healthz", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")

	api.Post("/auth/signup", "auth.signup", authController.Signup, middleware.RateLimit(10, time.Minute))
	api.Post("/auth/login", "auth.login", authController.Login, middleware.RateLimit(20, time.Minute))
	api.Post("/auth/logout", "auth.logout", authController.Logout)
	api.Get("/auth/me", "auth.me", authController.Me)
	api.Post("/auth/become-seller", "auth.become_seller", authController.BecomeSeller, middleware.Auth)

	api.Get("/products", "catalog.products", catalogController.Products)
	api.Get("/products/featured", "catalog.featured", catalogController.Featured)
	api.Get("/products/{id}", "catalog.product", catalogController.Product)
	api.Get("/sellers", "catalog.sellers", catalogController.Sellers)
	api.Get("/sellers/{id}", "catalog.seller", catalogController.Seller)

	cart := api.Group("/cart", middleware.OptionalAuth)
	cart.Get("", "cart.get", cartController.Get)
	cart.Post("/items", "cart.add", cartController.Add)
	cart.Put("/items/{productID}", "cart.update", cartController.UpdateQuantity)
	cart.Delete("/items/{productID}", "cart.remove", cartController.Remove)
	cart.Delete("", "cart.clear", cartController.Clear)

	api.Post("/checkout", "checkout", checkoutController.Checkout, middleware.OptionalAuth)

	dashboard := api.Group("/dashboard", middleware.Auth, rbac.HasRole(models.RoleSeller, models.RoleAdmin))
	dashboard.Get("/stats", "dashboard.stats", dashboardController.Stats)
	dashboard.Get("/series", "dashboard.series", dashboardController.Series)
	r.Get("/ws/dashboard", "dashboard.feed", dashboardController.Feed)

	schema, err := graph.NewSchema(catalogService, deps.Stores)
	if err != nil {
		logger.Error("routes: build graphql schema", "error", err)
	} else {
		api.Post("/graphql", "graphql", graph.Handler(schema))
	}
}
