package http

import (
	"net/http"

	"vaccination-management/internal/delivery/http/handler"
	"vaccination-management/internal/delivery/http/middleware"
	"vaccination-management/internal/metrics"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	userHandler        *handler.UserHandler
	authHandler        *handler.AuthHandler
	vaccineHandler     *handler.VaccineHandler
	appointmentHandler *handler.AppointmentHandler
	vaccinationHandler *handler.VaccinationHandler
	articleHandler     *handler.ArticleHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggerMiddleware   *middleware.LoggerMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
	metrics            *metrics.Metrics
}

func NewRouter(
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	vaccineHandler *handler.VaccineHandler,
	appointmentHandler *handler.AppointmentHandler,
	vaccinationHandler *handler.VaccinationHandler,
	articleHandler *handler.ArticleHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggerMiddleware *middleware.LoggerMiddleware,
	metrics *metrics.Metrics,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		userHandler:        userHandler,
		authHandler:        authHandler,
		vaccineHandler:     vaccineHandler,
		appointmentHandler: appointmentHandler,
		vaccinationHandler: vaccinationHandler,
		articleHandler:     articleHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loggerMiddleware:   loggerMiddleware,
		metricsMiddleware:  middleware.NewMetricsMiddleware(metrics),
		metrics:            metrics,
	}
}

// resource wires the list/read/create/update/delete routes shared by the catalog resources.
type resource struct {
	GetAll  http.HandlerFunc
	GetByID http.HandlerFunc
	Create  http.HandlerFunc
	Update  http.HandlerFunc
	Delete  http.HandlerFunc
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)

	// User routes
	r.router.HandleFunc("/users/register", r.userHandler.Register).Methods(http.MethodPost)
	r.collection("/users", http.HandlerFunc(r.userHandler.GetAll), http.MethodGet, http.MethodHead)
	r.router.Handle("/users/me", r.authMiddleware.AuthenticateFunc(r.userHandler.Me)).Methods(http.MethodGet)
	r.router.HandleFunc("/users/{id}", r.userHandler.GetByID).Methods(http.MethodGet, http.MethodHead)
	r.router.Handle("/users/{id}", r.authMiddleware.AuthenticateFunc(r.userHandler.Delete)).Methods(http.MethodDelete)

	// Auth routes
	r.router.HandleFunc("/auth/login", r.authHandler.Login).Methods(http.MethodPost)

	r.register("/vaccines", resource{
		GetAll:  r.vaccineHandler.GetAll,
		GetByID: r.vaccineHandler.GetByID,
		Create:  r.vaccineHandler.Create,
		Update:  r.vaccineHandler.Update,
		Delete:  r.vaccineHandler.Delete,
	})

	// registered before /appointments/{id} so "mine" is not parsed as an id
	r.router.Handle("/appointments/mine", r.authMiddleware.AuthenticateFunc(r.appointmentHandler.GetMine)).Methods(http.MethodGet)
	r.router.Handle("/appointments/{id}/status", r.authMiddleware.AuthenticateFunc(r.appointmentHandler.UpdateStatus)).Methods(http.MethodPatch)
	r.register("/appointments", resource{
		GetAll:  r.appointmentHandler.GetAll,
		GetByID: r.appointmentHandler.GetByID,
		Create:  r.appointmentHandler.Create,
		Update:  r.appointmentHandler.UpdateStatus,
		Delete:  r.appointmentHandler.Delete,
	})

	r.register("/vaccinations", resource{
		GetAll:  r.vaccinationHandler.GetAll,
		GetByID: r.vaccinationHandler.GetByID,
		Create:  r.vaccinationHandler.Create,
		Update:  r.vaccinationHandler.Update,
		Delete:  r.vaccinationHandler.Delete,
	})

	r.register("/articles", resource{
		GetAll:  r.articleHandler.GetAll,
		GetByID: r.articleHandler.GetByID,
		Create:  r.articleHandler.Create,
		Update:  r.articleHandler.Update,
		Delete:  r.articleHandler.Delete,
	})

	r.router.Use(r.loggerMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)
	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

// collection registers path both with and without a trailing slash.
func (r *Router) collection(path string, h http.Handler, methods ...string) {
	r.router.Handle(path, h).Methods(methods...)
	r.router.Handle(path+"/", h).Methods(methods...)
}

func (r *Router) register(path string, res resource) {
	r.collection(path, res.GetAll, http.MethodGet, http.MethodHead)
	r.collection(path, r.authMiddleware.AuthenticateFunc(res.Create), http.MethodPost)
	r.router.HandleFunc(path+"/{id}", res.GetByID).Methods(http.MethodGet, http.MethodHead)
	r.router.Handle(path+"/{id}", r.authMiddleware.AuthenticateFunc(res.Update)).Methods(http.MethodPatch)
	r.router.Handle(path+"/{id}", r.authMiddleware.AuthenticateFunc(res.Delete)).Methods(http.MethodDelete)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
