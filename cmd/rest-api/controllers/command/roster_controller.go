package cmd_controllers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/golobby/container/v3"

	controllers "github.com/RescuedBuffalo/valorant-esport-simulator/cmd/rest-api/controllers"
	roster_in "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/ports/in"
)

// RosterController exposes generatePlayer and generateRoster (§6.1).
type RosterController struct {
	container container.Container
	helper    *controllers.ControllerHelper
}

func NewRosterController(c container.Container) *RosterController {
	return &RosterController{container: c, helper: controllers.NewControllerHelper()}
}

// GeneratePlayerHandler handles POST /players/generate.
func (ctrl *RosterController) GeneratePlayerHandler(apiContext context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cmd roster_in.GeneratePlayerCommand
		if err := ctrl.helper.DecodeJSONRequest(w, r, &cmd); err != nil {
			return
		}

		var handler roster_in.GeneratePlayerCommandHandler
		if err := ctrl.container.Resolve(&handler); err != nil {
			slog.ErrorContext(r.Context(), "Failed to resolve GeneratePlayerCommandHandler", "err", err)
			ctrl.helper.WriteBadRequest(w, r, "player generation service unavailable")
			return
		}

		player, err := handler.Exec(r.Context(), cmd)
		if ctrl.helper.HandleBusinessLogicError(w, r, err, "generatePlayer") {
			return
		}

		ctrl.helper.WriteCreated(w, r, player)
	}
}

// GenerateRosterHandler handles POST /rosters/generate.
func (ctrl *RosterController) GenerateRosterHandler(apiContext context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cmd roster_in.GenerateRosterCommand
		if err := ctrl.helper.DecodeJSONRequest(w, r, &cmd); err != nil {
			return
		}

		var handler roster_in.GenerateRosterCommandHandler
		if err := ctrl.container.Resolve(&handler); err != nil {
			slog.ErrorContext(r.Context(), "Failed to resolve GenerateRosterCommandHandler", "err", err)
			ctrl.helper.WriteBadRequest(w, r, "roster generation service unavailable")
			return
		}

		roster, err := handler.Exec(r.Context(), cmd)
		if ctrl.helper.HandleBusinessLogicError(w, r, err, "generateRoster") {
			return
		}

		ctrl.helper.WriteCreated(w, r, roster)
	}
}
