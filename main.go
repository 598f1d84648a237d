package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ryanchien8125/dalin-ai-fuder/config"
	"github.com/ryanchien8125/dalin-ai-fuder/controller"
	"github.com/ryanchien8125/dalin-ai-fuder/dao"
	"github.com/ryanchien8125/dalin-ai-fuder/logic"
	"github.com/ryanchien8125/dalin-ai-fuder/models"
	"github.com/ryanchien8125/dalin-ai-fuder/pkg"
)

func main() {
	// Initialize config
	if len(os.Args) < 2 {
		log.Fatal("Usage: dalin-ai-fuder <config.yaml>")
	}
	configFile := os.Args[1]
	if err := config.LoadConfig(configFile); err != nil {
		log.Fatalf("Failed to load config from %s: %v", configFile, err)
	}

	// Initialize database
	db, err := gorm.Open(postgres.Open(config.GlobalConfig.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Conversation{}, &models.Message{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("[DB] Database tables initialized")

	// Initialize Gemini client
	geminiClient := pkg.NewGeminiClient(config.GlobalConfig.Gemini.APIKey, config.GlobalConfig.Gemini.Model)

	// Initialize socket emitter (Redis pub/sub bridge to the Socket.IO server)
	emitter := pkg.NewRedisSocketEmitter(config.GlobalConfig.RedisAddr())
	defer emitter.Close()

	// Initialize DAOs
	convoDAO := dao.NewConversationDAO(db)
	messageDAO := dao.NewMessageDAO(db)

	// Initialize Logics
	convoLogic := logic.NewConversationLogic(convoDAO, messageDAO)
	chatLogic := logic.NewChatLogic(convoDAO, messageDAO, geminiClient)

	// Initialize Controllers
	chatController := controller.NewChatController(convoLogic, chatLogic, emitter)

	// Set up Gin router
	r := gin.Default()
	v1 := r.Group("/api/v1")
	{
		v1.POST("/chat/completion", chatController.Completion)
		v1.GET("/chat/conversation/:id", chatController.GetConversation)
	}

	addr := fmt.Sprintf(":%d", config.GlobalConfig.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
