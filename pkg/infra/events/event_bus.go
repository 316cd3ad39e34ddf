// Package events wires the round-by-round simulation stream (C12) to
// its default subscribers: Prometheus counters and structured logging.
// It is additive instrumentation sitting outside the core engine
// packages, never feeding back into MatchState.
package events

import (
	"context"
	"log/slog"

	"github.com/markus-wa/godispatch"

	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/domain/match/entities"
	"github.com/RescuedBuffalo/valorant-esport-simulator/pkg/infra/metrics"
)

// RoundEndEvent is published once per completed round, in simulated
// round order.
type RoundEndEvent struct {
	State  *entities.MatchState
	Result entities.RoundResult
	Log    entities.EconomyLog
}

// MatchEndEvent is published once, after the final round.
type MatchEndEvent struct {
	Result entities.MatchResult
}

// Bus fans a round/match event stream out to every registered
// handler. Handlers are invoked synchronously, in registration order,
// and a panicking handler is recovered so it never reaches the
// simulation caller.
type Bus struct {
	dispatcher *godispatch.Dispatcher
}

// New builds a Bus with the metrics and logging subscribers already
// attached, per §4.12's "two subscribers wired by default".
func New(ctx context.Context) *Bus {
	b := &Bus{dispatcher: &godispatch.Dispatcher{}}
	b.Subscribe(roundMetricsSubscriber)
	b.Subscribe(matchMetricsSubscriber)
	b.Subscribe(roundLoggingSubscriber(ctx))
	b.Subscribe(matchLoggingSubscriber(ctx))
	return b
}

// Subscribe registers a handler function. handler must take exactly
// one argument, the event type it wants to receive (the shape
// godispatch itself dispatches on).
func (b *Bus) Subscribe(handler interface{}) {
	b.dispatcher.RegisterHandler(handler)
}

// Publish fans event out to every handler whose signature matches its
// type. A panicking subscriber is recovered and dropped, never
// propagated to the round loop.
func (b *Bus) Publish(event interface{}) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("event bus subscriber panicked", "recovered", r)
		}
	}()
	b.dispatcher.Dispatch(event)
}

// OnRoundEnd implements usecases.MatchObserver, letting a Bus be
// handed directly to MatchSimulator.Simulate as its observer.
func (b *Bus) OnRoundEnd(state *entities.MatchState, result entities.RoundResult, log entities.EconomyLog) {
	b.Publish(RoundEndEvent{State: state, Result: result, Log: log})
}

// OnMatchEnd implements usecases.MatchObserver.
func (b *Bus) OnMatchEnd(result entities.MatchResult) {
	b.Publish(MatchEndEvent{Result: result})
}

func roundMetricsSubscriber(e RoundEndEvent) {
	outcome := "defense_win"
	if e.Result.SpikePlanted {
		outcome = "spike_detonated"
	}
	metrics.RecordRound(outcome, string(e.Result.Winner))
}

func matchMetricsSubscriber(e MatchEndEvent) {
	winner := entities.SideA
	if e.Result.Score[entities.SideB] > e.Result.Score[entities.SideA] {
		winner = entities.SideB
	}
	metrics.RecordMatch(e.Result.Map, string(winner), 0, len(e.Result.Rounds))
}

func roundLoggingSubscriber(ctx context.Context) func(RoundEndEvent) {
	return func(e RoundEndEvent) {
		slog.InfoContext(ctx, "round ended",
			"round", e.Result.RoundNumber,
			"winner", e.Result.Winner,
			"spike_planted", e.Result.SpikePlanted,
			"clutch_won", e.Result.ClutchWon,
		)
	}
}

func matchLoggingSubscriber(ctx context.Context) func(MatchEndEvent) {
	return func(e MatchEndEvent) {
		slog.InfoContext(ctx, "match ended",
			"map", e.Result.Map,
			"score_a", e.Result.Score[entities.SideA],
			"score_b", e.Result.Score[entities.SideB],
			"mvp", e.Result.MVP,
		)
	}
}
