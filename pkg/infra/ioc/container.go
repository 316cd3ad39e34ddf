package ioc

import (
	"context"
	"log/slog"
	"os"
	"time"

	// env
	"github.com/joho/godotenv"

	// mongodb
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	// repositories/db
	db "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/infra/db/mongodb"

	// container
	container "github.com/golobby/container/v3"

	// config
	common "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain"

	// match domain
	match_catalog "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/catalog"
	match_entities "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
	match_in "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/ports/in"
	match_out "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/ports/out"
	match_services "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/services"
	match_usecases "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/usecases"

	// roster domain
	roster_entities "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/entities"
	roster_in "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/ports/in"
	roster_out "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/ports/out"
	roster_services "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/roster/services"

	// app (Ext use cases)
	match_app "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/app/match"
	roster_app "github.com/RescuedBuffalo/valorant-esport-simulator/pkg/app/roster"

	// event bus
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/infra/events"
)

type ContainerBuilder struct {
	Container container.Container
}

func NewContainerBuilder() *ContainerBuilder {
	c := container.New()

	b := &ContainerBuilder{
		c,
	}

	err := c.Singleton(func() container.Container {
		return b.Container
	})

	if err != nil {
		slog.Error("Failed to register *container.Container  in NewContainerBuilder.")
		panic(err)
	}

	err = c.Singleton(func() *ContainerBuilder {
		return b
	})

	if err != nil {
		slog.Error("Failed to register *ContainerBuilder in NewContainerBuilder.")
		panic(err)
	}

	return b
}

func (b *ContainerBuilder) Build() container.Container {
	return b.Container
}

func (b *ContainerBuilder) WithEnvFile() *ContainerBuilder {
	if os.Getenv("DEV_ENV") == "true" {
		err := godotenv.Load()
		if err != nil {
			slog.Error("Failed to load .env file")
			panic(err)
		}
	}

	err := b.Container.Singleton(func() (common.Config, error) {
		return EnvironmentConfig()
	})

	if err != nil {
		slog.Error("Failed to load EnvironmentConfig.")
		panic(err)
	}

	return b
}

// WithCatalogs registers the static weapon and map reference data (C1,
// C9) shared by the round simulator, buy advisor, and match simulator.
func (b *ContainerBuilder) WithCatalogs() *ContainerBuilder {
	c := b.Container

	err := c.Singleton(func() *match_catalog.WeaponCatalog {
		return match_catalog.NewWeaponCatalog()
	})

	if err != nil {
		slog.Error("Failed to load WeaponCatalog.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() *match_catalog.MapCatalog {
		return match_catalog.NewMapCatalog()
	})

	if err != nil {
		slog.Error("Failed to load MapCatalog.", "err", err)
		panic(err)
	}

	return b
}

// WithEngine registers the pure decision services (C2-C8) and the two
// orchestrators, RoundSimulator and MatchSimulator (C9, C13), that
// compose them. None of these resolvers touch logging or persistence.
func (b *ContainerBuilder) WithEngine() *ContainerBuilder {
	c := b.Container

	err := c.Singleton(func() *match_services.AgentSelector {
		return match_services.NewAgentSelector()
	})

	if err != nil {
		slog.Error("Failed to load AgentSelector.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() *match_services.DuelResolver {
		return match_services.NewDuelResolver()
	})

	if err != nil {
		slog.Error("Failed to load DuelResolver.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() *match_services.EconomyEngine {
		return match_services.NewEconomyEngine()
	})

	if err != nil {
		slog.Error("Failed to load EconomyEngine.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() (*match_services.BuyAdvisor, error) {
		var weapons *match_catalog.WeaponCatalog
		if err := c.Resolve(&weapons); err != nil {
			slog.Error("Failed to resolve WeaponCatalog for BuyAdvisor.", "err", err)
			return nil, err
		}

		return match_services.NewBuyAdvisor(weapons), nil
	})

	if err != nil {
		slog.Error("Failed to load BuyAdvisor.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() (*match_usecases.RoundSimulator, error) {
		var weapons *match_catalog.WeaponCatalog
		if err := c.Resolve(&weapons); err != nil {
			slog.Error("Failed to resolve WeaponCatalog for RoundSimulator.", "err", err)
			return nil, err
		}

		var maps *match_catalog.MapCatalog
		if err := c.Resolve(&maps); err != nil {
			slog.Error("Failed to resolve MapCatalog for RoundSimulator.", "err", err)
			return nil, err
		}

		var buy *match_services.BuyAdvisor
		if err := c.Resolve(&buy); err != nil {
			slog.Error("Failed to resolve BuyAdvisor for RoundSimulator.", "err", err)
			return nil, err
		}

		var duel *match_services.DuelResolver
		if err := c.Resolve(&duel); err != nil {
			slog.Error("Failed to resolve DuelResolver for RoundSimulator.", "err", err)
			return nil, err
		}

		return match_usecases.NewRoundSimulator(weapons, maps, buy, duel), nil
	})

	if err != nil {
		slog.Error("Failed to load RoundSimulator.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() (*match_usecases.MatchSimulator, error) {
		var rounds *match_usecases.RoundSimulator
		if err := c.Resolve(&rounds); err != nil {
			slog.Error("Failed to resolve RoundSimulator for MatchSimulator.", "err", err)
			return nil, err
		}

		var agents *match_services.AgentSelector
		if err := c.Resolve(&agents); err != nil {
			slog.Error("Failed to resolve AgentSelector for MatchSimulator.", "err", err)
			return nil, err
		}

		var economy *match_services.EconomyEngine
		if err := c.Resolve(&economy); err != nil {
			slog.Error("Failed to resolve EconomyEngine for MatchSimulator.", "err", err)
			return nil, err
		}

		var maps *match_catalog.MapCatalog
		if err := c.Resolve(&maps); err != nil {
			slog.Error("Failed to resolve MapCatalog for MatchSimulator.", "err", err)
			return nil, err
		}

		return match_usecases.NewMatchSimulator(rounds, agents, economy, maps), nil
	})

	if err != nil {
		slog.Error("Failed to load MatchSimulator.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() *match_usecases.PlayerGenerator {
		return match_usecases.NewPlayerGenerator()
	})

	if err != nil {
		slog.Error("Failed to load PlayerGenerator.", "err", err)
		panic(err)
	}

	return b
}

// WithEventBus registers the round/match event stream (C12) and binds
// it as the match_usecases.MatchObserver passed into simulation runs.
func (b *ContainerBuilder) WithEventBus(ctx context.Context) *ContainerBuilder {
	c := b.Container

	err := c.Singleton(func() *events.Bus {
		return events.New(ctx)
	})

	if err != nil {
		slog.Error("Failed to load event Bus.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() (match_usecases.MatchObserver, error) {
		var bus *events.Bus
		if err := c.Resolve(&bus); err != nil {
			slog.Error("Failed to resolve event Bus for MatchObserver.", "err", err)
			return nil, err
		}

		return bus, nil
	})

	if err != nil {
		slog.Error("Failed to load MatchObserver.", "err", err)
		panic(err)
	}

	return b
}

// WithQueryServices registers the generic search surface (§6.1) for
// both persisted matches and roster players, plus the single-entity
// GET handlers each controller resolves directly.
func (b *ContainerBuilder) WithQueryServices() *ContainerBuilder {
	c := b.Container

	err := c.Singleton(func() (*match_services.MatchQueryService, error) {
		var repo *db.MatchRepository
		if err := c.Resolve(&repo); err != nil {
			slog.Error("Failed to resolve MatchRepository for MatchQueryService.", "err", err)
			return nil, err
		}

		return match_services.NewMatchQueryService(repo), nil
	})

	if err != nil {
		slog.Error("Failed to load MatchQueryService.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() (*roster_services.PlayerQueryService, error) {
		var repo *db.RosterPlayerRepository
		if err := c.Resolve(&repo); err != nil {
			slog.Error("Failed to resolve RosterPlayerRepository for PlayerQueryService.", "err", err)
			return nil, err
		}

		return roster_services.NewPlayerQueryService(repo), nil
	})

	if err != nil {
		slog.Error("Failed to load PlayerQueryService.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() (common.Searchable[match_entities.PersistedMatch], error) {
		var svc *match_services.MatchQueryService
		if err := c.Resolve(&svc); err != nil {
			slog.Error("Failed to resolve MatchQueryService for common.Searchable.", "err", err)
			return nil, err
		}

		return svc, nil
	})

	if err != nil {
		slog.Error("Failed to load common.Searchable[PersistedMatch].", "err", err)
		panic(err)
	}

	err = c.Singleton(func() (common.Searchable[roster_entities.RosterPlayer], error) {
		var svc *roster_services.PlayerQueryService
		if err := c.Resolve(&svc); err != nil {
			slog.Error("Failed to resolve PlayerQueryService for common.Searchable.", "err", err)
			return nil, err
		}

		return svc, nil
	})

	if err != nil {
		slog.Error("Failed to load common.Searchable[RosterPlayer].", "err", err)
		panic(err)
	}

	err = c.Singleton(func() (match_in.MatchQueryService, error) {
		var repo match_out.MatchRepository
		if err := c.Resolve(&repo); err != nil {
			slog.Error("Failed to resolve MatchRepository for match_in.MatchQueryService.", "err", err)
			return nil, err
		}

		return match_app.NewMatchQueryUseCase(repo), nil
	})

	if err != nil {
		slog.Error("Failed to load match_in.MatchQueryService.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() (roster_in.PlayerQueryService, error) {
		var repo roster_out.RosterRepository
		if err := c.Resolve(&repo); err != nil {
			slog.Error("Failed to resolve RosterRepository for roster_in.PlayerQueryService.", "err", err)
			return nil, err
		}

		return roster_app.NewPlayerQueryUseCase(repo), nil
	})

	if err != nil {
		slog.Error("Failed to load roster_in.PlayerQueryService.", "err", err)
		panic(err)
	}

	return b
}

// WithInboundPorts registers the three outer Ext use cases that the
// REST controllers resolve: simulateMatch, generatePlayer, and
// generateRoster. Each wraps the log-free engine with logging,
// metrics, and persistence.
func (b *ContainerBuilder) WithInboundPorts() *ContainerBuilder {
	c := b.Container

	err := c.Singleton(func() (match_in.SimulateMatchCommandHandler, error) {
		var simulator *match_usecases.MatchSimulator
		if err := c.Resolve(&simulator); err != nil {
			slog.Error("Failed to resolve MatchSimulator for SimulateMatchCommandHandler.", "err", err)
			return nil, err
		}

		var matches match_out.MatchRepository
		if err := c.Resolve(&matches); err != nil {
			slog.Error("Failed to resolve MatchRepository for SimulateMatchCommandHandler.", "err", err)
			return nil, err
		}

		var observer match_usecases.MatchObserver
		if err := c.Resolve(&observer); err != nil {
			slog.Error("Failed to resolve MatchObserver for SimulateMatchCommandHandler.", "err", err)
			return nil, err
		}

		return match_app.NewSimulateMatchUseCase(simulator, matches, observer), nil
	})

	if err != nil {
		slog.Error("Failed to load SimulateMatchCommandHandler.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() (roster_in.GeneratePlayerCommandHandler, error) {
		var generator *match_usecases.PlayerGenerator
		if err := c.Resolve(&generator); err != nil {
			slog.Error("Failed to resolve PlayerGenerator for GeneratePlayerCommandHandler.", "err", err)
			return nil, err
		}

		var players roster_out.RosterRepository
		if err := c.Resolve(&players); err != nil {
			slog.Error("Failed to resolve RosterRepository for GeneratePlayerCommandHandler.", "err", err)
			return nil, err
		}

		return roster_app.NewGeneratePlayerUseCase(generator, players), nil
	})

	if err != nil {
		slog.Error("Failed to load GeneratePlayerCommandHandler.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() (roster_in.GenerateRosterCommandHandler, error) {
		var generator *match_usecases.PlayerGenerator
		if err := c.Resolve(&generator); err != nil {
			slog.Error("Failed to resolve PlayerGenerator for GenerateRosterCommandHandler.", "err", err)
			return nil, err
		}

		var players roster_out.RosterRepository
		if err := c.Resolve(&players); err != nil {
			slog.Error("Failed to resolve RosterRepository for GenerateRosterCommandHandler.", "err", err)
			return nil, err
		}

		return roster_app.NewGenerateRosterUseCase(generator, players), nil
	})

	if err != nil {
		slog.Error("Failed to load GenerateRosterCommandHandler.", "err", err)
		panic(err)
	}

	return b
}

// InjectMongoDB connects the shared *mongo.Client and registers the
// match and roster-player repositories (C10, C11) behind their ports.
func InjectMongoDB(c container.Container) error {
	err := c.Singleton(func() (*mongo.Client, error) {
		var config common.Config

		err := c.Resolve(&config)
		if err != nil {
			slog.Error("Failed to resolve config for mongo.Client.", "err", err)
			return nil, err
		}

		mongoOptions := options.Client().ApplyURI(config.MongoDB.URI)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, mongoOptions)

		if err != nil {
			slog.Error("Failed to connect to MongoDB.", "err", err)
			return nil, err
		}

		return client, nil
	})

	if err != nil {
		slog.Error("Failed to load mongo.Client.")
		return err
	}

	err = c.Singleton(func() (*db.MatchRepository, error) {
		var client *mongo.Client
		if err := c.Resolve(&client); err != nil {
			slog.Error("Failed to resolve mongo.Client for MatchRepository.", "err", err)
			return nil, err
		}

		var config common.Config
		if err := c.Resolve(&config); err != nil {
			slog.Error("Failed to resolve config for MatchRepository.", "err", err)
			return nil, err
		}

		return db.NewMatchRepository(client, config.MongoDB.DBName, "matches"), nil
	})

	if err != nil {
		slog.Error("Failed to load MatchRepository.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() (match_out.MatchRepository, error) {
		var repo *db.MatchRepository
		if err := c.Resolve(&repo); err != nil {
			slog.Error("Failed to resolve MatchRepository for match_out.MatchRepository.", "err", err)
			return nil, err
		}

		return repo, nil
	})

	if err != nil {
		slog.Error("Failed to load match_out.MatchRepository.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() (*db.RosterPlayerRepository, error) {
		var client *mongo.Client
		if err := c.Resolve(&client); err != nil {
			slog.Error("Failed to resolve mongo.Client for RosterPlayerRepository.", "err", err)
			return nil, err
		}

		var config common.Config
		if err := c.Resolve(&config); err != nil {
			slog.Error("Failed to resolve config for RosterPlayerRepository.", "err", err)
			return nil, err
		}

		return db.NewRosterPlayerRepository(client, config.MongoDB.DBName, "roster_players"), nil
	})

	if err != nil {
		slog.Error("Failed to load RosterPlayerRepository.", "err", err)
		panic(err)
	}

	err = c.Singleton(func() (roster_out.RosterRepository, error) {
		var repo *db.RosterPlayerRepository
		if err := c.Resolve(&repo); err != nil {
			slog.Error("Failed to resolve RosterPlayerRepository for roster_out.RosterRepository.", "err", err)
			return nil, err
		}

		return repo, nil
	})

	if err != nil {
		slog.Error("Failed to load roster_out.RosterRepository.", "err", err)
		panic(err)
	}

	return nil
}

func (b *ContainerBuilder) With(resolver interface{}) *ContainerBuilder {
	c := b.Container

	err := c.Singleton(resolver)

	if err != nil {
		slog.Error("Failed to register resolver.", "err", err)
		panic(err)
	}

	return b
}
