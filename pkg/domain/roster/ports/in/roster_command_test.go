package roster_in

import (
	"testing"

	"github.com/stretchr/testify/assert"

	match_usecases "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/usecases"
)

func TestGeneratePlayerCommand_ValidateDelegatesToOptions(t *testing.T) {
	cmd := GeneratePlayerCommand{
		Options: match_usecases.GeneratorOptions{Region: "NA", MinRating: 40, MaxRating: 90},
	}
	assert.NoError(t, cmd.Validate())

	cmd.Options.Region = "MOON"
	assert.Error(t, cmd.Validate())
}

func TestGenerateRosterCommand_ValidateDelegatesToOptions(t *testing.T) {
	cmd := GenerateRosterCommand{
		Options: match_usecases.GeneratorOptions{MinRating: 90, MaxRating: 10},
	}
	assert.Error(t, cmd.Validate())
}
