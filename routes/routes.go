package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hostel-backend/controllers"
	"hostel-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	bc *controllers.BookingController,
	gc *controllers.GuestController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)

			// must be registered before /:id
			bookings.GET("/details", bc.GetBookingDetails)
			bookings.GET("/calendar", bc.GetCalendar)

			bookings.GET("/:id", bc.GetBookingByID)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.DELETE("/:id", bc.DeleteBooking)
			bookings.GET("/:id/guests", gc.GetGuestsByBookingID)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.POST("", controllers.CreateRoom)
			rooms.GET("/:id", controllers.GetRoomByID)
			rooms.PATCH("/:id", controllers.UpdateRoom)
			rooms.PUT("/:id", controllers.UpdateRoom)
			rooms.DELETE("/:id", controllers.DeleteRoom)
			rooms.PUT("/:id/update-capacity", controllers.UpdateRoomCapacity)
			rooms.GET("/:id/availability", controllers.GetRoomAvailability)
		}

		beds := api.Group("/beds")
		{
			beds.GET("", controllers.GetBeds)
			beds.POST("", controllers.CreateBed)
			beds.GET("/:id", controllers.GetBedByID)
			beds.PUT("/:id", controllers.UpdateBed)
			beds.DELETE("/:id", controllers.DeleteBed)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetAllGuests)
			guests.GET("/:id", gc.GetGuestByID)
			guests.POST("", gc.CreateGuest)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/hostel", controllers.GetHostelSettings)
			settings.PUT("/hostel", controllers.UpdateHostelSettings)
		}
	}

	return r
}
