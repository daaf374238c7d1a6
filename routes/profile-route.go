package routes

import (
	"profile-service/handlers"
	"profile-service/middleware"

	"github.com/gorilla/mux"
)

func SetupRoutes(profileHandler *handlers.ProfileHandler) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)

	router.HandleFunc("/api/users/{userId}", middleware.ErrorHandler(profileHandler.GetProfileHandler)).Methods("GET")
	router.HandleFunc("/api/users/{userId}", middleware.ErrorHandler(profileHandler.UpdateProfileHandler)).Methods("PUT")
	router.HandleFunc("/health", middleware.ErrorHandler(profileHandler.HealthHandler)).Methods("GET")

	return router
}
