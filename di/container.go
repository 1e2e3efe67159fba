package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"gradebook-server/api"
	"gradebook-server/api/synergy"
	"gradebook-server/config"
	"gradebook-server/dao/redis"
	"gradebook-server/db"
	"gradebook-server/grades"
	"gradebook-server/server"
	"gradebook-server/server/handlers"
	services "gradebook-server/service"
	"gradebook-server/util"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient                db.RedisClient
	RedisGradebookDao          *redis.RedisGradebookDAO
	GradeBuilder               *grades.Builder
	SynergyAPI                 synergy.SynergyAPI
	GradebookService           *services.GradebookService
	GradebookHandler           *handlers.GradebookHandler
	MuxRouter                  *mux.Router
	Router                     *server.Router
	GradebookHttpServer        *server.GradebookHttpServer
	GradebooksRefresherService *services.GradebooksRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	// Initialize Redis Client internals
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewGradebookRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Gradebook DAO
	redisGradebookDao := redis.NewRedisGradebookDAO(redisClient, config.GRADEBOOK_CACHE_TTL_HOURS*time.Hour)

	// Initialize SynergyAPI - mock outside prod
	var synergyApiClient synergy.SynergyAPI
	if env != "prod" {
		synergyApiClient = synergy.NewSynergyApiClientMock()
		log.Printf("Using mock synergy api")
	} else {
		log.Printf("Using prod synergy api")
		httpClient := api.NewHTTPClient(config.SYNERGY_ENDPOINT_BASE_V1)

		synergyApiClient = synergy.NewSynergyApiClient(httpClient)
		synergyApiClient.SetCredentials(config.SYNERGY_API_KEY)
	}

	// Initialize the grade derivation core with its collaborators
	gradeBuilder := grades.NewBuilder(util.FourToPercent, util.GetColor, time.Now)

	// Initialize service layer
	gradebookService := services.NewGradebookService(redisGradebookDao, synergyApiClient, gradeBuilder)

	// Initialize gradebook handler
	gradebookHandler := handlers.NewGradebookHandler(redisGradebookDao, gradebookService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(gradebookHandler, muxRouter)

	// Initialize gradebook http server
	gradebookHttpServer := server.NewGradebookHttpServer(router, muxRouter)

	gradebooksRefresherService := services.NewGradebooksRefresherService(gradebookService)

	return &Container{
		RedisClient:                redisClient,
		RedisGradebookDao:          redisGradebookDao,
		GradeBuilder:               gradeBuilder,
		SynergyAPI:                 synergyApiClient,
		GradebookService:           gradebookService,
		GradebookHandler:           gradebookHandler,
		MuxRouter:                  muxRouter,
		Router:                     router,
		GradebookHttpServer:        gradebookHttpServer,
		GradebooksRefresherService: gradebooksRefresherService,
	}
}
