package cmd_controllers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/golobby/container/v3"

	controllers "github.com/RescuedBuffalo/valorant-esport-simulator/cmd/rest-api/controllers"
	match_in "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/ports/in"
)

// MatchController exposes the simulateMatch operation (§6.1).
type MatchController struct {
	container container.Container
	helper    *controllers.ControllerHelper
}

func NewMatchController(c container.Container) *MatchController {
	return &MatchController{container: c, helper: controllers.NewControllerHelper()}
}

// SimulateMatchHandler handles POST /matches/simulate.
func (ctrl *MatchController) SimulateMatchHandler(apiContext context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cmd match_in.SimulateMatchCommand
		if err := ctrl.helper.DecodeJSONRequest(w, r, &cmd); err != nil {
			return
		}

		var handler match_in.SimulateMatchCommandHandler
		if err := ctrl.container.Resolve(&handler); err != nil {
			slog.ErrorContext(r.Context(), "Failed to resolve SimulateMatchCommandHandler", "err", err)
			ctrl.helper.WriteBadRequest(w, r, "simulation service unavailable")
			return
		}

		match, err := handler.Exec(r.Context(), cmd)
		if ctrl.helper.HandleBusinessLogicError(w, r, err, "simulateMatch") {
			return
		}

		ctrl.helper.WriteCreated(w, r, match)
	}
}
