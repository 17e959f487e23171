package routes

import (
	"github.com/gin-gonic/gin"

	"diettracker/controllers"
	"diettracker/middlewares"
	"diettracker/services"
)

// Deps carries everything the router needs, wired once in main.
type Deps struct {
	Auth       *services.AuthService
	Tokens     *services.TokenService
	Entries    *services.EntryService
	Migraines  *services.MigraineService
	Categories *services.CategoryService
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	authCtrl := controllers.NewAuthController(deps.Auth, deps.Tokens)
	categoryCtrl := controllers.NewCategoryController(deps.Categories)
	foodCtrl := controllers.NewFoodController(deps.Entries)
	migraineCtrl := controllers.NewMigraineController(deps.Migraines)

	// Public routes
	r.GET("/", categoryCtrl.List)
	r.GET("/get_categories", categoryCtrl.List)
	r.POST("/api/register", authCtrl.Register)
	r.POST("/api/login", authCtrl.Login)

	// Everything else sits behind the access guard.
	guarded := r.Group("/")
	guarded.Use(middlewares.Auth(deps.Tokens, deps.Auth))
	{
		guarded.GET("/api/me", authCtrl.Me)
		guarded.POST("/add_entry", foodCtrl.AddEntry)
		guarded.GET("/get_entries", foodCtrl.ListEntries)
		guarded.DELETE("/delete_food/:id", foodCtrl.DeleteEntry)
		guarded.POST("/add_migraine", migraineCtrl.AddMigraine)
		guarded.GET("/get_migraines", migraineCtrl.ListMigraines)
		guarded.DELETE("/delete_migraine/:id", migraineCtrl.DeleteMigraine)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
