package breaker

import "github.com/vovakirdan/ballbreaker/internal/core"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventWallBounce       EventKind = iota // side wall or header
	EventPaddleHit                         // ball deflected by the paddle
	EventBlockDestroyed                    // Value = block index
	EventLifeLost                          // Value = lives left
	EventLevelCleared                      // Value = new level
	EventCampaignComplete                  // final level cleared
	EventGameOver                          // Value = final score
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventBlockDestroyed:
		return "block_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventLevelCleared:
		return "level_cleared"
	case EventCampaignComplete:
		return "campaign_complete"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single tick event.
type Event struct {
	Kind  EventKind
	Value int
}

// toCoreEvents converts simulation events for the platform layer.
func toCoreEvents(events []Event) []core.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]core.Event, len(events))
	for i, e := range events {
		out[i] = core.Event{Kind: e.Kind.String(), Value: e.Value}
	}
	return out
}
