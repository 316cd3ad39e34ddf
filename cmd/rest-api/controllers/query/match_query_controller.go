package query_controllers

import (
	"log/slog"
	"net/http"

	"github.com/golobby/container/v3"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	controllers "github.com/RescuedBuffalo/valorant-esport-simulator/cmd/rest-api/controllers"
	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	match_entities "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
	match_in "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/ports/in"
)

// MatchQueryController exposes GET /matches and GET /matches/{id}.
type MatchQueryController struct {
	controllers.DefaultSearchController[match_entities.PersistedMatch]
	byID   match_in.MatchQueryService
	helper *controllers.ControllerHelper
}

func NewMatchQueryController(c container.Container) *MatchQueryController {
	var searchable common.Searchable[match_entities.PersistedMatch]
	if err := c.Resolve(&searchable); err != nil {
		panic(err)
	}

	var byID match_in.MatchQueryService
	if err := c.Resolve(&byID); err != nil {
		panic(err)
	}

	return &MatchQueryController{
		DefaultSearchController: *controllers.NewDefaultSearchController(searchable),
		byID:                    byID,
		helper:                  controllers.NewControllerHelper(),
	}
}

// GetMatchHandler handles GET /matches/{id}.
func (ctrl *MatchQueryController) GetMatchHandler(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]

	id, err := uuid.Parse(idStr)
	if err != nil {
		ctrl.helper.WriteBadRequest(w, r, "invalid match id")
		return
	}

	match, err := ctrl.byID.GetByID(r.Context(), match_in.GetMatchByIDQuery{MatchID: id})
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to fetch match", "match_id", id, "err", err)
		ctrl.helper.HandleBusinessLogicError(w, r, err, "getMatch")
		return
	}

	if match == nil {
		http.NotFound(w, r)
		return
	}

	ctrl.helper.WriteOK(w, r, match)
}
