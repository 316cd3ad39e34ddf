package routing

import (
	"context"
	"net/http"

	"github.com/golobby/container/v3"
	"github.com/gorilla/mux"

	"github.com/RescuedBuffalo/valorant-esport-simulator/cmd/rest-api/controllers"
	cmd_controllers "github.com/RescuedBuffalo/valorant-esport-simulator/cmd/rest-api/controllers/command"
	query_controllers "github.com/RescuedBuffalo/valorant-esport-simulator/cmd/rest-api/controllers/query"
	"github.com/RescuedBuffalo/valorant-esport-simulator/cmd/rest-api/middlewares"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/infra/metrics"
)

const (
	Health  string = "/health"
	Metrics string = "/metrics"

	SimulateMatch string = "/matches/simulate"
	Matches       string = "/matches"
	MatchDetail   string = "/matches/{id}"

	GeneratePlayer string = "/players/generate"
	Players        string = "/players"
	PlayerDetail   string = "/players/{id}"

	GenerateRoster string = "/rosters/generate"
)

// NewRouter wires the HTTP surface described by §6.1: simulateMatch,
// generatePlayer, generateRoster, and their reads, plus health and
// metrics endpoints.
func NewRouter(ctx context.Context, c container.Container) http.Handler {
	healthController := controllers.NewHealthController(c)

	matchController := cmd_controllers.NewMatchController(c)
	rosterController := cmd_controllers.NewRosterController(c)

	matchQueryController := query_controllers.NewMatchQueryController(c)
	playerQueryController := query_controllers.NewPlayerQueryController(c)

	r := mux.NewRouter()

	r.Use(middlewares.ErrorMiddleware)
	r.Use(middlewares.NewCORSMiddleware().Handler)
	r.Use(middlewares.NewRateLimitMiddleware().Handler)
	r.Use(mux.CORSMethodMiddleware(r))

	r.HandleFunc(Health, healthController.HealthCheck(ctx)).Methods("GET")
	r.Handle(Metrics, metrics.Handler()).Methods("GET")

	r.HandleFunc(SimulateMatch, matchController.SimulateMatchHandler(ctx)).Methods("POST")
	r.HandleFunc(Matches, matchQueryController.DefaultSearchHandler).Methods("GET")
	r.HandleFunc(MatchDetail, matchQueryController.GetMatchHandler).Methods("GET")

	r.HandleFunc(GeneratePlayer, rosterController.GeneratePlayerHandler(ctx)).Methods("POST")
	r.HandleFunc(GenerateRoster, rosterController.GenerateRosterHandler(ctx)).Methods("POST")
	r.HandleFunc(Players, playerQueryController.DefaultSearchHandler).Methods("GET")
	r.HandleFunc(PlayerDetail, playerQueryController.GetPlayerHandler).Methods("GET")

	return r
}
