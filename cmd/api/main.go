package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"beyondtheory/internal/adapter/api"
	"beyondtheory/internal/adapter/api/handler"
	apimiddleware "beyondtheory/internal/adapter/api/middleware"
	"beyondtheory/internal/adapter/api/router"
	"beyondtheory/internal/adapter/repository"
	"beyondtheory/internal/infrastructure/assistant"
	"beyondtheory/internal/infrastructure/firebase"
	"beyondtheory/internal/usecase"
	"beyondtheory/pkg/config"
	"beyondtheory/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		logger.Info("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	convRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	unreadRepo := repository.NewFirestoreUnreadRepository(firestoreClient)
	todoRepo := repository.NewFirestoreTodoRepository(firestoreClient)
	goalRepo := repository.NewFirestoreGoalRepository(firestoreClient)
	noteRepo := repository.NewFirestoreNoteRepository(firestoreClient)
	resourceRepo := repository.NewFirestoreResourceRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	assistantClient, err := assistant.NewClient(cfg.LLMApiKey, cfg.LLMModel, cfg.LLMBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize assistant client: %v", err)
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo)
	conversationUseCase := usecase.NewConversationUseCase(convRepo, userRepo)
	messageUseCase := usecase.NewMessageUseCase(messageRepo, convRepo)
	unreadUseCase := usecase.NewUnreadUseCase(convRepo, messageRepo, unreadRepo)
	todoUseCase := usecase.NewTodoUseCase(todoRepo)
	goalUseCase := usecase.NewGoalUseCase(goalRepo)
	noteUseCase := usecase.NewNoteUseCase(noteRepo)
	resourceUseCase := usecase.NewResourceUseCase(resourceRepo)
	assistantUseCase := usecase.NewAssistantUseCase(resourceRepo, assistantClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authUseCase),
		User:      handler.NewUserHandler(userUseCase),
		Chat:      handler.NewChatHandler(conversationUseCase, messageUseCase, unreadUseCase),
		Todo:      handler.NewTodoHandler(todoUseCase),
		Goal:      handler.NewGoalHandler(goalUseCase),
		Note:      handler.NewNoteHandler(noteUseCase),
		Resource:  handler.NewResourceHandler(resourceUseCase),
		Assistant: handler.NewAssistantHandler(assistantUseCase),
	}

	router.Setup(e, handlers, authMiddleware)

	logger.Info("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
