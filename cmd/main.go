package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/suri-ai/suri-backend/config"
	_ "github.com/suri-ai/suri-backend/docs" // Swagger docs
	adminctrl "github.com/suri-ai/suri-backend/internal/controller/admin"
	authctrl "github.com/suri-ai/suri-backend/internal/controller/auth"
	studentctrl "github.com/suri-ai/suri-backend/internal/controller/student"
	"github.com/suri-ai/suri-backend/internal/logger"
	"github.com/suri-ai/suri-backend/internal/middleware"
	"github.com/suri-ai/suri-backend/internal/model"
	"github.com/suri-ai/suri-backend/internal/platform/firebase"
	"github.com/suri-ai/suri-backend/internal/repository"
	"github.com/suri-ai/suri-backend/internal/service"
)

// @title SURI AI Backend
// @version 0.1.0
// @description Backend for the SURI learning-plan application: registration, goal submission, plan generation and feedback, with an admin dashboard.
// @host localhost:8080
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			firebase.NewApp,
			firebase.NewAuthClient,
			firebase.NewFirestoreClient,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewInputRepository,
			repository.NewPlanRepository,
			repository.NewFeedbackRepository,
		),

		// Services layer
		fx.Provide(
			service.NewTokenService,
			service.NewPlanGenerator,
			service.NewAuthService,
			service.NewStudentService,
			service.NewAdminService,
		),

		// API controllers layer
		fx.Provide(
			authctrl.NewAuthController,
			studentctrl.NewStudentController,
			adminctrl.NewAdminController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(BootstrapAdmins),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures the API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens service.TokenService,
	authCtrl *authctrl.AuthController,
	studentCtrl *studentctrl.StudentController,
	adminCtrl *adminctrl.AdminController,
) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the SURI AI Backend"})
	})

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/login/idtoken", authCtrl.LoginWithIDToken)
	}

	studentGroup := router.Group("/student", middleware.Authenticate(tokens))
	{
		studentGroup.POST("/input", studentCtrl.SubmitInput)
		studentGroup.POST("/plan", studentCtrl.GeneratePlan)
		studentGroup.GET("/plan", studentCtrl.GetPlan)
		studentGroup.POST("/feedback", studentCtrl.SubmitFeedback)
	}

	adminGroup := router.Group("/admin", middleware.Authenticate(tokens), middleware.RequireAdmin())
	{
		adminGroup.GET("/users", adminCtrl.ListUsers)
		adminGroup.GET("/users/:id", adminCtrl.GetUserDetail)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("SURI AI Backend starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// BootstrapAdmins grants the admin role claim to the configured emails.
// Accounts that do not exist yet are skipped with a warning; rerun after they
// register.
func BootstrapAdmins(cfg *config.Config, users repository.UserRepository) {
	ctx := context.Background()
	for _, email := range cfg.Auth.AdminEmails {
		user, err := users.FindByEmail(ctx, email)
		if err != nil {
			log.Warn().Err(err).Str("email", email).Msg("Skipping admin bootstrap for unknown account")
			continue
		}
		if user.IsAdmin() {
			continue
		}
		if err := users.SetRole(ctx, user.ID, model.RoleAdmin); err != nil {
			log.Error().Err(err).Str("email", email).Msg("Failed to grant admin role")
			continue
		}
		log.Info().Str("email", email).Str("uid", user.ID).Msg("Granted admin role")
	}
}
