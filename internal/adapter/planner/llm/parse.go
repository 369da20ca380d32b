package llmplanner

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"harimu/internal/domain/sim"
)

var (
	actionLineRe = regexp.MustCompile(`(?i)action\s*[:=]\s*([a-z_]+(?:\([^)]*\))?)`)
	moveRe       = regexp.MustCompile(`^move\((-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\)$`)
	harvestRe    = regexp.MustCompile(`^harvest_([a-z]+)(?:\((\d+)\))?$`)
	reproduceRe  = regexp.MustCompile(`^reproduce\((\d+)\)$`)
	buildRe      = regexp.MustCompile(`^build_([a-z]+)$`)
)

// ParseReply extracts an action from a model reply. Accepted forms:
// a JSON object {"action": "<token>"}, an "action: <token>" or
// "action=<token>" line, or a bare token.
func ParseReply(reply string) (sim.Action, bool) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return sim.Action{}, false
	}

	var obj struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal([]byte(reply), &obj); err == nil && obj.Action != "" {
		return parseToken(obj.Action)
	}

	if m := actionLineRe.FindStringSubmatch(reply); m != nil {
		if action, ok := parseToken(m[1]); ok {
			return action, true
		}
	}

	return parseToken(reply)
}

func parseToken(raw string) (sim.Action, bool) {
	token := strings.ToLower(strings.TrimSpace(raw))

	switch token {
	case "scan":
		return sim.ScanAction(), true
	case "idle", "wait", "rest":
		return sim.IdleAction(), true
	}

	if m := moveRe.FindStringSubmatch(token); m != nil {
		dx, _ := strconv.ParseInt(m[1], 10, 32)
		dy, _ := strconv.ParseInt(m[2], 10, 32)
		dz, _ := strconv.ParseInt(m[3], 10, 32)
		return sim.MoveAction(int32(dx), int32(dy), int32(dz)), true
	}
	if m := harvestRe.FindStringSubmatch(token); m != nil {
		ore, ok := sim.ParseOreKind(m[1])
		if !ok {
			return sim.Action{}, false
		}
		var sourceID uint64
		if m[2] != "" {
			sourceID, _ = strconv.ParseUint(m[2], 10, 64)
		}
		return sim.HarvestAction(ore, sourceID), true
	}
	if m := reproduceRe.FindStringSubmatch(token); m != nil {
		partner, _ := strconv.ParseUint(m[1], 10, 64)
		return sim.ReproduceAction(sim.AgentID(partner)), true
	}
	if m := buildRe.FindStringSubmatch(token); m != nil {
		kind, ok := sim.ParseStructureKind(m[1])
		if !ok {
			return sim.Action{}, false
		}
		return sim.BuildAction(kind), true
	}

	return sim.Action{}, false
}
