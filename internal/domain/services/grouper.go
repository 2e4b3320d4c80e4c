package services

import (
	"github.com/groverneev/editwars/internal/domain/entities"
)

// GroupEpisodes clusters chronologically adjacent reverts into edit-war
// episodes. A single left-to-right pass keeps one open group: a revert whose
// gap to the previous revert (not the group start) is within cfg.WindowHours
// joins the group, anything later closes it. Closed groups are emitted only
// when they hold at least cfg.MinReverts members. The comparison is
// inclusive, so a gap of exactly WindowHours stays in the same group.
//
// Input must be ordered ascending by timestamp. O(n).
func GroupEpisodes(reverts []entities.RevertEvent, cfg DetectionConfig) []entities.EditWarEpisode {
	cfg = cfg.normalized()

	if len(reverts) == 0 {
		return nil
	}

	var episodes []entities.EditWarEpisode
	current := []entities.RevertEvent{reverts[0]}

	for i := 1; i < len(reverts); i++ {
		gap := reverts[i].Timestamp.Sub(reverts[i-1].Timestamp).Hours()
		if gap <= cfg.WindowHours {
			current = append(current, reverts[i])
			continue
		}

		if len(current) >= cfg.MinReverts {
			episodes = append(episodes, entities.EditWarEpisode{Reverts: current})
		}
		current = []entities.RevertEvent{reverts[i]}
	}

	if len(current) >= cfg.MinReverts {
		episodes = append(episodes, entities.EditWarEpisode{Reverts: current})
	}

	return episodes
}
