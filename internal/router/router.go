package router

import (
	"time"

	"github.com/treeclass/gallery/backend/internal/handler"
	"github.com/treeclass/gallery/backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	trees *handler.TreeHandler,
	ratings *handler.RatingHandler,
	uploads *handler.UploadHandler,
	adminKey string,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "x-admin-key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.POST("/trees", trees.Create)
	r.GET("/trees", trees.GetAll)
	r.GET("/trees/:id", trees.GetDetail)

	r.POST("/ratings", ratings.Create)
	r.POST("/upload-image", uploads.Upload)

	admin := r.Group("/")
	admin.Use(middleware.AdminRequired(adminKey))
	{
		admin.DELETE("/trees", trees.DeleteAll)
		admin.DELETE("/trees/:id", trees.Delete)
	}

	return r
}
