package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SHIVENDRA3030/time-table/backend/config"
	"github.com/SHIVENDRA3030/time-table/backend/internal/api/handler"
	"github.com/SHIVENDRA3030/time-table/backend/internal/api/middleware"
	"github.com/SHIVENDRA3030/time-table/backend/pkg/jwt"
)

// New builds the gin engine with all routes mounted. Everything under /api/v1
// requires a valid token; the reset endpoint additionally requires the admin
// role.
func New(cfg *config.Config, h *handler.Handler, jwtManager *jwt.Manager, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTAuth(jwtManager))
	{
		timetable := v1.Group("/timetable")
		{
			timetable.GET("", h.Timetable.List)
			timetable.GET("/section/:id", h.Timetable.ListBySection)
			timetable.GET("/faculty/:id", h.Timetable.ListByFaculty)
			timetable.GET("/room/:id", h.Timetable.ListByRoom)
			timetable.POST("/entries", h.Timetable.CreateEntry)
		}

		v1.GET("/programs", h.Catalog.ListPrograms)
		v1.POST("/programs", h.Catalog.CreateProgram)
		v1.GET("/sections", h.Catalog.ListSections)
		v1.POST("/sections", h.Catalog.CreateSection)
		v1.GET("/subjects", h.Catalog.ListSubjects)
		v1.POST("/subjects", h.Catalog.CreateSubject)
		v1.GET("/faculty", h.Catalog.ListFaculty)
		v1.POST("/faculty", h.Catalog.CreateFaculty)
		v1.GET("/rooms", h.Catalog.ListRooms)
		v1.POST("/rooms", h.Catalog.CreateRoom)
		v1.GET("/time-slots", h.Catalog.ListTimeSlots)

		v1.POST("/upload", h.Upload.Upload)
		v1.DELETE("/upload/database", middleware.RequireRole("admin"), h.Upload.Reset)
	}

	return r
}
