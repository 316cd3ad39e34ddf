package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"
	match_entities "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
)

func TestRosterPlayer_WrapsEngineAndEnvelope(t *testing.T) {
	id := uuid.New()
	player := match_entities.Player{
		ID:          "p1",
		PrimaryRole: match_entities.RoleDuelist,
	}

	rp := RosterPlayer{
		BaseEntity: common.BaseEntity{ID: id},
		Player:     player,
		Source:     SourceGenerated,
	}

	assert.Equal(t, id, rp.ID)
	assert.Equal(t, "p1", rp.Player.ID)
	assert.Equal(t, SourceGenerated, rp.Source)
	assert.NotEqual(t, SourceImported, rp.Source)
}
