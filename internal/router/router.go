package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pressroom/internal/auth"
	"pressroom/internal/config"
	"pressroom/internal/handler"
	"pressroom/internal/model"
)

// Register wires routes and middleware. Route groups are gated in three
// tiers: public, authenticated, and admin (role gate).
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	resolver auth.IdentityResolver,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	articleHandler *handler.ArticleHandler,
	categoryHandler *handler.CategoryHandler,
	tagHandler *handler.TagHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
	}))
	secured.Use(auth.CheckBlacklist(jwtService, tokenStore))

	secured.GET("/me", func(c echo.Context) error {
		identity, err := resolver(c)
		if err != nil || identity == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return c.JSON(http.StatusOK, identity)
	})

	// Dashboard is the redirect target for denied requests.
	secured.GET("/dashboard", dashboardHandler.Summary)

	// Article reads are open to any authenticated user.
	secured.GET("/articles", articleHandler.ListArticles)
	secured.GET("/articles/:id", articleHandler.GetArticle)

	// Admin routes are gated on the admin role. Requirements are typed
	// constants, an unknown role label cannot reach the gate.
	admin := secured.Group("", auth.RequireRole(resolver, model.RoleAdmin))

	admin.GET("/users", userHandler.ListUsers)
	admin.POST("/users", userHandler.CreateUser)
	admin.GET("/users/:id", userHandler.GetUser)
	admin.PUT("/users/:id", userHandler.UpdateUser)
	admin.DELETE("/users/:id", userHandler.DeleteUser)

	admin.POST("/articles", articleHandler.CreateArticle)
	admin.PUT("/articles/:id", articleHandler.UpdateArticle)
	admin.DELETE("/articles/:id", articleHandler.DeleteArticle)

	admin.GET("/categories", categoryHandler.ListCategories)
	admin.POST("/categories", categoryHandler.CreateCategory)
	admin.GET("/categories/:id", categoryHandler.GetCategory)
	admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
	admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	admin.GET("/tags", tagHandler.ListTags)
	admin.POST("/tags", tagHandler.CreateTag)
	admin.GET("/tags/:id", tagHandler.GetTag)
	admin.PUT("/tags/:id", tagHandler.UpdateTag)
	admin.DELETE("/tags/:id", tagHandler.DeleteTag)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
