package routes

import (
	"net/http"

	"learndash/internal/handlers"
	"learndash/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	languageH *handlers.LanguageHandler,
	sectionH *handlers.SectionHandler,
	subsectionH *handlers.SubsectionHandler,
) {
	// Logging wraps Recoverer so requests that panic still reach the access log.
	router.Use(middleware.RequestID, middleware.Logging, middleware.Recoverer)
	router.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	router.HandleFunc("/", handlers.Index).Methods(http.MethodGet)

	// --- Languages ---
	router.HandleFunc("/languages", languageH.List).Methods(http.MethodGet)
	router.HandleFunc("/languages", languageH.Create).Methods(http.MethodPost)
	router.HandleFunc("/languages/{id:[0-9]+}", languageH.Get).Methods(http.MethodGet)
	router.HandleFunc("/languages/{id:[0-9]+}", languageH.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/languages/{id:[0-9]+}/progress", languageH.GetProgress).Methods(http.MethodGet)
	router.HandleFunc("/languages/{id:[0-9]+}/progress", languageH.RecomputeProgress).Methods(http.MethodPut)

	// --- Sections ---
	router.HandleFunc("/sections", sectionH.Create).Methods(http.MethodPost)
	router.HandleFunc("/sections/{id:[0-9]+}", sectionH.Update).Methods(http.MethodPatch)
	router.HandleFunc("/sections/{id:[0-9]+}", sectionH.Delete).Methods(http.MethodDelete)

	// --- Subsections ---
	router.HandleFunc("/subsections", subsectionH.Create).Methods(http.MethodPost)
	router.HandleFunc("/subsections/{id:[0-9]+}", subsectionH.Get).Methods(http.MethodGet)
	router.HandleFunc("/subsections/{id:[0-9]+}", subsectionH.Update).Methods(http.MethodPatch)
	router.HandleFunc("/subsections/{id:[0-9]+}", subsectionH.Delete).Methods(http.MethodDelete)
}
