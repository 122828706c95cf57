package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	availabilityController *AvailabilityController,
	bookingController *BookingController,
	catalogController *CatalogController,
	importController *ImportController,
) *gin.Engine {
	router := gin.Default()
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowCredentials = true
	config.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"Origin",
		"Accept",
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	router.Use(cors.New(config))
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	if catalogController != nil {
		api.GET("/rooms", catalogController.ListRooms)
		api.GET("/colleges", catalogController.ListColleges)
		api.GET("/colleges/:college/buildings", catalogController.ListBuildings)
	}

	if availabilityController != nil {
		api.GET("/rooms/available", availabilityController.AvailableRooms)
	}

	if bookingController != nil {
		bookings := api.Group("/bookings")
		bookings.POST("", bookingController.CreateBooking)
		bookings.POST("/:bookingID/cancel", bookingController.CancelBooking)
		bookings.GET("", bookingController.ListBookings)
	}

	if importController != nil {
		admin := api.Group("/admin")
		admin.POST("/import", importController.ImportRows)
		admin.POST("/import/csv", importController.ImportCSV)
		admin.POST("/rebuild", importController.Rebuild)
	}

	return router
}
