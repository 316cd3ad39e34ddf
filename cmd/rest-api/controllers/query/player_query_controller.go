package query_controllers

import (
	"net/http"

	"github.com/golobby/container/v3"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	controllers "github.com/RescuedBuffalo/valorant-esport-simulator/cmd/rest-api/controllers"
	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	roster_entities "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/entities"
	roster_in "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/ports/in"
)

// PlayerQueryController exposes GET /players and GET /players/{id}.
type PlayerQueryController struct {
	controllers.DefaultSearchController[roster_entities.RosterPlayer]
	byID   roster_in.PlayerQueryService
	helper *controllers.ControllerHelper
}

func NewPlayerQueryController(c container.Container) *PlayerQueryController {
	var searchable common.Searchable[roster_entities.RosterPlayer]
	if err := c.Resolve(&searchable); err != nil {
		panic(err)
	}

	var byID roster_in.PlayerQueryService
	if err := c.Resolve(&byID); err != nil {
		panic(err)
	}

	return &PlayerQueryController{
		DefaultSearchController: *controllers.NewDefaultSearchController(searchable),
		byID:                    byID,
		helper:                  controllers.NewControllerHelper(),
	}
}

// GetPlayerHandler handles GET /players/{id}.
func (ctrl *PlayerQueryController) GetPlayerHandler(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]

	id, err := uuid.Parse(idStr)
	if err != nil {
		ctrl.helper.WriteBadRequest(w, r, "invalid player id")
		return
	}

	player, err := ctrl.byID.GetByID(r.Context(), roster_in.GetPlayerByIDQuery{PlayerID: id})
	if err != nil {
		ctrl.helper.HandleBusinessLogicError(w, r, err, "getPlayer")
		return
	}

	if player == nil {
		http.NotFound(w, r)
		return
	}

	ctrl.helper.WriteOK(w, r, player)
}
