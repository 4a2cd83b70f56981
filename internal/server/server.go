package server

import (
	"context"
	"net/http"

	"gymdesk/internal/attendance"
	"gymdesk/internal/auth"
	"gymdesk/internal/config"
	"gymdesk/internal/dashboard"
	"gymdesk/internal/email"
	"gymdesk/internal/member"
	"gymdesk/internal/payment"
	"gymdesk/internal/staff"
	"gymdesk/internal/subscription"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	staffHandler := staff.NewHandler(db, cfg.JWTSecret)
	memberHandler := member.NewHandler(db, emailService)
	subscriptionHandler := subscription.NewHandler(db)
	paymentHandler := payment.NewHandler(db)
	attendanceHandler := attendance.NewHandler(db)
	dashboardHandler := dashboard.NewHandler(db)

	public := router.Group("/auth")
	{
		public.POST("/login", staffHandler.Login)
		public.POST("/refresh", staffHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", staffHandler.Me)

		protected.POST("/members", memberHandler.Create)
		protected.GET("/members", memberHandler.List)
		protected.GET("/members/:memberID", memberHandler.Get)
		protected.PATCH("/members/:memberID", memberHandler.Update)
		protected.GET("/members/:memberID/history", memberHandler.History)
		protected.POST("/members/:memberID/subscriptions", subscriptionHandler.Renew)

		protected.GET("/subscriptions", subscriptionHandler.List)
		protected.GET("/payments", paymentHandler.List)

		protected.POST("/attendance/checkin", attendanceHandler.CheckIn)
		protected.GET("/attendance/today", attendanceHandler.Today)

		protected.GET("/dashboard/stats", dashboardHandler.Stats)
		protected.GET("/dashboard/revenue", dashboardHandler.Revenue)
		protected.GET("/dashboard/activity", dashboardHandler.Activity)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/auth/register", staffHandler.Register)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.srv = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
