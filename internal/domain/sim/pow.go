package sim

import (
	"crypto/sha256"
	"encoding/binary"
)

const (
	// PowDifficultyBytes is the number of leading zero bytes required
	// for a digest to count as a valid proof of work.
	PowDifficultyBytes = 2
	// PowReward is the Qi credited for one valid proof of work.
	PowReward Qi = 5
)

func powDigest(agentID AgentID, tick, nonce uint64) [sha256.Size]byte {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(agentID))
	binary.LittleEndian.PutUint64(buf[8:16], tick)
	binary.LittleEndian.PutUint64(buf[16:24], nonce)
	return sha256.Sum256(buf[:])
}

// MeetsPowDifficulty reports whether the digest starts with
// PowDifficultyBytes zero bytes.
func MeetsPowDifficulty(digest []byte) bool {
	if len(digest) < PowDifficultyBytes {
		return false
	}
	for _, b := range digest[:PowDifficultyBytes] {
		if b != 0 {
			return false
		}
	}
	return true
}

func PowValid(agentID AgentID, tick, nonce uint64) bool {
	digest := powDigest(agentID, tick, nonce)
	return MeetsPowDifficulty(digest[:])
}

// PowSolve searches nonces linearly from startNonce (inclusive) until
// one validates. The search is unbounded; callers wanting a bound
// should partition the nonce space themselves.
func PowSolve(agentID AgentID, tick, startNonce uint64) uint64 {
	nonce := startNonce
	for {
		if PowValid(agentID, tick, nonce) {
			return nonce
		}
		nonce++
	}
}
