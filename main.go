package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/handlers"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/middleware"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/repositories"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/services"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/utils"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_FILE_MISSING, Description: No .env file loaded: %v", err)
	}
	logging.InitLogger()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "taskhub"
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logging.Logger.Fatal("Event ID: CONFIG_MISSING, Description: JWT_SECRET must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: MONGO_CONNECT_FAILED, Description: Could not connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logging.Logger.Fatalf("Event ID: MONGO_PING_FAILED, Description: MongoDB did not respond: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logging.Logger.Errorf("Event ID: MONGO_DISCONNECT_FAILED, Description: Disconnect failed: %v", err)
		}
	}()
	logging.Logger.Infof("Event ID: MONGO_CONNECTED, Description: Connected to MongoDB database %s", dbName)

	db := client.Database(dbName)

	taskRepo := repositories.NewTaskRepo(client, db)
	subtaskRepo := repositories.NewSubtaskRepo(db)
	userRepo := repositories.NewUserRepo(db)
	accountRepo := repositories.NewAccountRepo(db)
	projectRepo := repositories.NewProjectRepo(client, db)
	membershipRepo := repositories.NewMembershipRepo(db)
	noteRepo := repositories.NewNoteRepo(db)
	attachmentRepo := repositories.NewAttachmentRepo(db)
	labelRepo := repositories.NewLabelRepo(db)
	notificationRepo := repositories.NewNotificationRepo(db)

	jwtService := services.NewJWTService(jwtSecret, 24*time.Hour)
	provider := services.NewLocalIdentityProvider(accountRepo, jwtService)
	mailer := services.NewBreakerMailer(utils.NewSMTPMailerFromEnv())

	notificationService := services.NewNotificationService(notificationRepo, taskRepo, userRepo, membershipRepo, mailer)
	taskService := services.NewTaskService(taskRepo, subtaskRepo, userRepo, membershipRepo, noteRepo, attachmentRepo, labelRepo, notificationService)
	subtaskService := services.NewSubtaskService(taskRepo, subtaskRepo, taskService)
	noteService := services.NewNoteService(taskRepo, noteRepo, taskService)
	attachmentService := services.NewAttachmentService(taskRepo, attachmentRepo, taskService)
	labelService := services.NewLabelService(taskRepo, labelRepo, taskService)
	projectService := services.NewProjectService(projectRepo, userRepo)
	membershipService := services.NewMembershipService(projectRepo, membershipRepo, userRepo)
	authService := services.NewAuthService(provider, userRepo)
	userService := services.NewUserService(userRepo, provider)
	dashboardService := services.NewDashboardService(taskService)
	managerService := services.NewManagerService(taskRepo, userRepo)
	reportService := services.NewReportService(taskRepo, userRepo)

	taskHandler := handlers.NewTaskHandler(taskService)
	subtaskHandler := handlers.NewSubtaskHandler(subtaskService)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService, membershipService)
	noteHandler := handlers.NewNoteHandler(noteService)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentService)
	labelHandler := handlers.NewLabelHandler(labelService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	managerHandler := handlers.NewManagerHandler(managerService)
	reportHandler := handlers.NewReportHandler(reportService)

	r := mux.NewRouter()
	r.Use(middleware.ExtractClaims(jwtService))
	if os.Getenv("REQUIRE_AUTH") == "true" {
		r.Use(middleware.JWTAuth(jwtService, "/auth/"))
	}

	r.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/verify", authHandler.Verify).Methods(http.MethodPost, http.MethodGet)

	r.HandleFunc("/tasks", taskHandler.CreateTask).Methods(http.MethodPost)
	r.HandleFunc("/tasks", taskHandler.ListTasks).Methods(http.MethodGet)
	r.HandleFunc("/tasks/{id}", taskHandler.GetTask).Methods(http.MethodGet)
	r.HandleFunc("/tasks/{id}", taskHandler.UpdateTask).Methods(http.MethodPut)
	r.HandleFunc("/tasks/{id}", taskHandler.DeleteTask).Methods(http.MethodDelete)
	r.HandleFunc("/tasks/{id}/reassign", taskHandler.ReassignTask).Methods(http.MethodPatch)

	r.HandleFunc("/tasks/{id}/subtasks", subtaskHandler.CreateSubtask).Methods(http.MethodPost)
	r.HandleFunc("/tasks/{id}/subtasks", subtaskHandler.ListSubtasks).Methods(http.MethodGet)
	r.HandleFunc("/tasks/{id}/subtasks/{subtaskId}", subtaskHandler.UpdateSubtask).Methods(http.MethodPut)
	r.HandleFunc("/tasks/{id}/subtasks/{subtaskId}", subtaskHandler.DeleteSubtask).Methods(http.MethodDelete)
	r.HandleFunc("/tasks/{id}/subtasks/{subtaskId}/complete", subtaskHandler.ToggleComplete).Methods(http.MethodPatch)

	r.HandleFunc("/tasks/{id}/notes", noteHandler.CreateNote).Methods(http.MethodPost)
	r.HandleFunc("/tasks/{id}/notes", noteHandler.ListNotes).Methods(http.MethodGet)
	r.HandleFunc("/notes/{noteId}", noteHandler.UpdateNote).Methods(http.MethodPut)
	r.HandleFunc("/notes/{noteId}", noteHandler.DeleteNote).Methods(http.MethodDelete)

	r.HandleFunc("/tasks/{id}/comments", noteHandler.CreateComment).Methods(http.MethodPost)
	r.HandleFunc("/tasks/{id}/comments", noteHandler.ListComments).Methods(http.MethodGet)
	r.HandleFunc("/comments/{commentId}", noteHandler.UpdateComment).Methods(http.MethodPut)
	r.HandleFunc("/comments/{commentId}", noteHandler.DeleteComment).Methods(http.MethodDelete)

	r.HandleFunc("/tasks/{id}/attachments", attachmentHandler.Upload).Methods(http.MethodPost)
	r.HandleFunc("/tasks/{id}/attachments", attachmentHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/attachments/{attachmentId}", attachmentHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/attachments/{attachmentId}", attachmentHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/labels", labelHandler.CreateLabel).Methods(http.MethodPost)
	r.HandleFunc("/labels", labelHandler.ListLabels).Methods(http.MethodGet)
	r.HandleFunc("/tasks/{id}/labels", labelHandler.ListTaskLabels).Methods(http.MethodGet)
	r.HandleFunc("/tasks/{id}/labels/{labelId}", labelHandler.AssignLabel).Methods(http.MethodPost)
	r.HandleFunc("/tasks/{id}/labels/{labelId}", labelHandler.UnassignLabel).Methods(http.MethodDelete)

	r.HandleFunc("/projects", projectHandler.CreateProject).Methods(http.MethodPost)
	r.HandleFunc("/projects", projectHandler.ListProjects).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id}", projectHandler.GetProject).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id}", projectHandler.UpdateProject).Methods(http.MethodPut)
	r.HandleFunc("/projects/{id}", projectHandler.ArchiveProject).Methods(http.MethodDelete)
	r.HandleFunc("/projects/{id}/members", projectHandler.AddMember).Methods(http.MethodPost)
	r.HandleFunc("/projects/{id}/members", projectHandler.ListMembers).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id}/members/{userId}", projectHandler.RemoveMember).Methods(http.MethodDelete)

	r.HandleFunc("/users", userHandler.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users", userHandler.ListUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", userHandler.GetUser).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", userHandler.UpdateUser).Methods(http.MethodPut)
	r.HandleFunc("/users/{id}", userHandler.DeleteUser).Methods(http.MethodDelete)
	r.HandleFunc("/users/{id}/role", userHandler.ChangeRole).Methods(http.MethodPatch)

	r.HandleFunc("/notifications", notificationHandler.ListForUser).Methods(http.MethodGet)
	r.HandleFunc("/notifications/{id}/read", notificationHandler.MarkRead).Methods(http.MethodPatch)
	r.HandleFunc("/notifications/check-deadlines", notificationHandler.CheckDeadlines).Methods(http.MethodPost)
	r.HandleFunc("/notifications/due-today", notificationHandler.DueToday).Methods(http.MethodGet)

	r.HandleFunc("/dashboard/stats", dashboardHandler.Stats).Methods(http.MethodGet)
	r.HandleFunc("/manager/team-tasks", managerHandler.TeamTasks).Methods(http.MethodGet)
	r.HandleFunc("/reports/task-completion", reportHandler.TaskCompletion).Methods(http.MethodGet)
	r.HandleFunc("/reports/weekly-summary", reportHandler.WeeklySummary).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-User-Id"},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      c.Handler(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logging.Logger.Infof("Event ID: SERVER_START, Description: Listening on port %s", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logging.Logger.Fatalf("Event ID: SERVER_FAILED, Description: Server stopped: %v", err)
	}
}
