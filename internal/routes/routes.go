package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devflow_workspace/configs"
	"devflow_workspace/internal/handlers"
	"devflow_workspace/internal/middleware"
)

type Deps struct {
	DB  *mongo.Database
	Cfg *configs.Config
}

func Register(app *fiber.App, deps Deps) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", handlers.SignUpHandler(deps.DB, deps.Cfg))
	auth.Post("/signin", handlers.SignInHandler(deps.DB, deps.Cfg))

	users := api.Group("/users")
	users.Get("/", handlers.ListUsersHandler(deps.DB))
	users.Post("/", handlers.CreateUserHandler(deps.DB))
	users.Get("/search", handlers.GetUsersHandler(deps.DB))
	users.Get("/:id", handlers.GetUserHandler(deps.DB))
	users.Get("/:id/questions", handlers.GetUserQuestionsHandler(deps.DB))
	users.Get("/:id/answers", handlers.GetUserAnswersHandler(deps.DB))

	accounts := api.Group("/accounts")
	accounts.Get("/", handlers.ListAccountsHandler(deps.DB))
	accounts.Post("/", handlers.CreateAccountHandler(deps.DB))

	questions := api.Group("/questions")
	questions.Get("/", handlers.GetQuestionsHandler(deps.DB))
	questions.Post("/", middleware.RequireAuth(), handlers.CreateQuestionHandler(deps.DB))
	questions.Get("/:id", handlers.GetQuestionHandler(deps.DB))
	questions.Put("/:id", middleware.RequireAuth(), handlers.EditQuestionHandler(deps.DB))
	questions.Post("/:id/view", handlers.IncrementViewsHandler(deps.DB))
	questions.Get("/:id/answers", handlers.GetQuestionAnswersHandler(deps.DB))

	api.Post("/answers", middleware.RequireAuth(), handlers.CreateAnswerHandler(deps.DB))

	votes := api.Group("/votes", middleware.RequireAuth())
	votes.Post("/", handlers.CreateVoteHandler(deps.DB))
	votes.Get("/status", handlers.HasVotedHandler(deps.DB))

	collections := api.Group("/collections", middleware.RequireAuth())
	collections.Get("/", handlers.GetSavedQuestionsHandler(deps.DB))
	collections.Post("/toggle", handlers.ToggleSaveHandler(deps.DB))
	collections.Get("/status", handlers.HasSavedHandler(deps.DB))

	tags := api.Group("/tags")
	tags.Get("/", handlers.GetTagsHandler(deps.DB))
	tags.Get("/:id/questions", handlers.GetTagQuestionsHandler(deps.DB))

	api.Post("/interactions", middleware.RequireAuth(), handlers.CreateInteractionHandler(deps.DB))
}
