// Package services holds the pure, stateless decision functions (Buy
// Advisor, Duel Resolver, Agent Selector, Economy Engine) and the
// randomness plumbing (Seed Deriver) that the round/match use cases
// orchestrate.
package services

import (
	"encoding/binary"
	"math/rand"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Stream labels given to the Seed Deriver. Changing these strings
// changes the derived sub-seeds for every existing master seed, so they
// are treated as part of the wire contract for reproducible replays.
const (
	StreamBuyPhase   = "buy-phase"
	StreamDuel       = "duel-jitter"
	StreamEngagement = "engagement-loop"
	StreamGenerator  = "player-generator"
)

// Streams bundles the four independent *rand.Rand sources a single
// simulateMatch (or generatePlayer) invocation draws from. Keeping them
// separate means a match with more engagements than another never
// shifts the buy-phase or generator draw sequence.
type Streams struct {
	Buy        *rand.Rand
	Duel       *rand.Rand
	Engagement *rand.Rand
	Generator  *rand.Rand
}

// NewStreams derives four independent RNG streams from masterSeed. A
// zero masterSeed is a legitimate seed, not "unset" — callers that want
// nondeterministic behavior should pass NewMasterSeed() explicitly.
func NewStreams(masterSeed uint64) Streams {
	return Streams{
		Buy:        rand.New(rand.NewSource(int64(deriveSubSeed(masterSeed, StreamBuyPhase)))),
		Duel:       rand.New(rand.NewSource(int64(deriveSubSeed(masterSeed, StreamDuel)))),
		Engagement: rand.New(rand.NewSource(int64(deriveSubSeed(masterSeed, StreamEngagement)))),
		Generator:  rand.New(rand.NewSource(int64(deriveSubSeed(masterSeed, StreamGenerator)))),
	}
}

// NewMasterSeed produces a process-level seed for callers that omit one,
// so "no seed supplied" still routes through the same deterministic
// plumbing rather than reaching for a package-level rand.Rand.
func NewMasterSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// deriveSubSeed hashes masterSeed||label with blake2b and takes the
// first 8 bytes of the digest as a uint64 sub-seed. Two different
// labels under the same master seed produce uncorrelated streams even
// though both are deterministic functions of masterSeed.
func deriveSubSeed(masterSeed uint64, label string) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], masterSeed)

	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only errors on an oversized key, and we pass none.
		panic("seed deriver: blake2b.New256 failed: " + err.Error())
	}
	h.Write(buf[:])
	h.Write([]byte(label))
	digest := h.Sum(nil)

	return binary.LittleEndian.Uint64(digest[:8])
}
