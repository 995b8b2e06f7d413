// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"campnav/config"
	"campnav/internal/delivery/api/middleware"
	"campnav/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	RoomHandler         *handler.RoomHandler
	OrderHandler        *handler.OrderHandler
	ProductHandler      *handler.ProductHandler
	AnnouncementHandler *handler.AnnouncementHandler
	HousekeepingHandler *handler.HousekeepingHandler
	RequestHandler      *handler.RequestHandler
	ReportHandler       *handler.ReportHandler
	ActivityHandler     *handler.ActivityHandler
	FileHandler         *handler.FileHandler
	PageHandler         *handler.PageHandler
	SessionMiddleware   *middleware.SessionMiddleware
	LoginRateLimiter    *middleware.RateLimiter
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Page gate redirects anonymous browser navigation to the login page
	e.Use(r.SessionMiddleware.PageGate)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes, public and throttled per client IP
	authGroup := e.Group("/api/auth")
	authGroup.Use(r.LoginRateLimiter.Limit)
	authGroup.Use(echomiddleware.BodyLimit(r.Config.HTTP.MaxRequestBodySize))
	{
		authGroup.POST("/login", r.AuthHandler.Login)
		authGroup.POST("/logout", r.AuthHandler.Logout)
		authGroup.GET("/session", r.AuthHandler.Session)
		authGroup.POST("/verify-user", r.AuthHandler.VerifyUser)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.SessionMiddleware.RequireSession) // All API v1 routes require an admin session

	r.registerEntityRoutes(apiV1.Group("", echomiddleware.BodyLimit(r.Config.HTTP.MaxRequestBodySize)))

	// Uploads carry their own, larger limit
	apiV1.POST("/files", r.FileHandler.Upload, echomiddleware.BodyLimit(r.Config.Storage.MaxUploadSize))
	e.GET("/files/:key", r.FileHandler.Serve)

	// Dashboard pages
	e.GET(middleware.LoginPath, r.PageHandler.Login)
	e.GET("/", r.PageHandler.Dashboard)
	e.GET("/:section", r.PageHandler.Dashboard)

	if r.Config.HTTP.WebRoot != "" {
		e.Static("/assets", r.Config.HTTP.WebRoot)
	}
}

func (r *router) registerEntityRoutes(api *echo.Group) {
	usersGroup := api.Group("/users")
	{
		usersGroup.GET("", r.UserHandler.ListUsers)
		usersGroup.GET("/all", r.UserHandler.ListAllUsers)
		usersGroup.GET("/stats", r.UserHandler.GetStats)
		usersGroup.POST("", r.UserHandler.CreateUser)
		usersGroup.PUT("", r.UserHandler.UpsertUser)
		usersGroup.GET("/:id", r.UserHandler.GetUser)
		usersGroup.PATCH("/:id", r.UserHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.UserHandler.RemoveUser)
	}

	roomsGroup := api.Group("/rooms")
	{
		roomsGroup.GET("", r.RoomHandler.ListRooms)
		roomsGroup.POST("", r.RoomHandler.CreateRoom)
		roomsGroup.GET("/:id", r.RoomHandler.GetRoom)
		roomsGroup.PATCH("/:id", r.RoomHandler.UpdateRoom)
		roomsGroup.PUT("/:id/occupant", r.RoomHandler.AssignOccupant)
		roomsGroup.DELETE("/:id", r.RoomHandler.RemoveRoom)
	}

	ordersGroup := api.Group("/orders")
	{
		ordersGroup.GET("", r.OrderHandler.ListOrders)
		ordersGroup.POST("", r.OrderHandler.CreateOrder)
		ordersGroup.GET("/:id", r.OrderHandler.GetOrder)
		ordersGroup.PATCH("/:id", r.OrderHandler.UpdateOrder)
		ordersGroup.PATCH("/:id/status", r.OrderHandler.UpdateOrderStatus)
		ordersGroup.DELETE("/:id", r.OrderHandler.RemoveOrder)
	}

	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.ProductHandler.ListProducts)
		productsGroup.POST("", r.ProductHandler.CreateProduct)
		productsGroup.GET("/:id", r.ProductHandler.GetProduct)
		productsGroup.PATCH("/:id", r.ProductHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.ProductHandler.RemoveProduct)
	}

	announcementsGroup := api.Group("/announcements")
	{
		announcementsGroup.GET("", r.AnnouncementHandler.ListAnnouncements)
		announcementsGroup.POST("", r.AnnouncementHandler.CreateAnnouncement)
		announcementsGroup.GET("/:id", r.AnnouncementHandler.GetAnnouncement)
		announcementsGroup.PATCH("/:id", r.AnnouncementHandler.UpdateAnnouncement)
		announcementsGroup.DELETE("/:id", r.AnnouncementHandler.RemoveAnnouncement)
	}

	housekeepingGroup := api.Group("/housekeeping")
	{
		housekeepingGroup.GET("", r.HousekeepingHandler.ListAssignments)
		housekeepingGroup.POST("", r.HousekeepingHandler.AssignHousekeeping)
		housekeepingGroup.GET("/:id", r.HousekeepingHandler.GetAssignment)
		housekeepingGroup.PATCH("/:id", r.HousekeepingHandler.UpdateAssignment)
		housekeepingGroup.PATCH("/:id/status", r.HousekeepingHandler.UpdateAssignmentStatus)
		housekeepingGroup.DELETE("/:id", r.HousekeepingHandler.RemoveAssignment)
	}

	requestsGroup := api.Group("/requests")
	{
		requestsGroup.GET("", r.RequestHandler.ListRequests)
		requestsGroup.GET("/user/:userId", r.RequestHandler.ListUserRequests)
		requestsGroup.POST("", r.RequestHandler.CreateRequest)
		requestsGroup.GET("/:id", r.RequestHandler.GetRequest)
		requestsGroup.PATCH("/:id", r.RequestHandler.UpdateRequest)
		requestsGroup.PATCH("/:id/status", r.RequestHandler.UpdateRequestStatus)
		requestsGroup.DELETE("/:id", r.RequestHandler.RemoveRequest)
	}

	reportsGroup := api.Group("/reports")
	{
		reportsGroup.GET("", r.ReportHandler.ListReports)
		reportsGroup.POST("", r.ReportHandler.CreateReport)
		reportsGroup.GET("/:id", r.ReportHandler.GetReport)
		reportsGroup.PATCH("/:id", r.ReportHandler.UpdateReport)
		reportsGroup.POST("/:id/resolve", r.ReportHandler.ResolveReport)
		reportsGroup.DELETE("/:id", r.ReportHandler.RemoveReport)
	}

	activitiesGroup := api.Group("/activities")
	{
		activitiesGroup.GET("", r.ActivityHandler.ListActivities)
		activitiesGroup.GET("/upcoming", r.ActivityHandler.ListUpcomingActivities)
		activitiesGroup.POST("", r.ActivityHandler.CreateActivity)
		activitiesGroup.GET("/:id", r.ActivityHandler.GetActivity)
		activitiesGroup.PATCH("/:id", r.ActivityHandler.UpdateActivity)
		activitiesGroup.DELETE("/:id", r.ActivityHandler.RemoveActivity)
	}
}
