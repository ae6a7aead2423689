package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownZone   = errors.New("unknown zone")
	ErrAmbiguousZone = errors.New("ambiguous zone")
)

// CowLevel is the zone watched by the upcoming-occurrence warning
const CowLevel = "Cow Level"

// Zones is the rotation table. Order matters: the PRNG output indexes into it.
var Zones = []string{
	"Blood Moor and Den of Evil",
	"Cold Plains and the Cave",
	"Stony Field and Tristram",
	"Dark Wood and the Underground Passage",
	"Black Marsh and the Hole",
	"Tamoe Highland and the Pit",
	"Burial Ground and Mausoleum",
	"Forgotten Tower",
	"Outer Cloister and Barracks",
	"Jail, Inner Cloister, and Cathedral",
	"Catacombs",
	"Cow Level",
	"Rocky Waste and the Stony Tomb",
	"Dry Hills and the Halls of the Dead",
	"Far Oasis and the Maggot Lair",
	"Lost City, Ancient Tunnels, and Claw Viper Temple",
	"Canyon of the Magi and Tal Rasha's Tomb",
	"Lut Gholein Sewers and the Palace Cellars",
	"Arcane Sanctuary",
	"Spider Forest, Arachnid Lair, and Spider Cavern",
	"Great Marsh and the Swampy Pit",
	"Flayer Jungle and the Flayer Dungeon",
	"Lower Kurast and the Kurast Sewers",
	"Kurast Bazaar, Ruined Temple, and Disused Fane",
	"Upper Kurast, the Forgotten Reliquary, and Forgotten Temple",
	"Travincal, the Ruined Fane, and Disused Reliquary",
	"Durance of Hate",
	"Outer Steppes and the Plains of Despair",
	"City of the Damned and the River of Flame",
	"Chaos Sanctuary",
	"Bloody Foothills and the Frigid Highlands",
	"Arreat Plateau, Crystalline Passage, and Frozen River",
	"Glacial Trail, Drifter Cavern, and Frozen Tundra",
	"Ancients' Way and the Icy Cellar",
	"Nihlathak's Temple",
	"Abaddon, the Pit of Acheron, and the Infernal Pit",
	"Worldstone Keep and Throne of Destruction",
}

// TargetZones are announced as soon as they become active
var TargetZones = map[string]bool{
	"Chaos Sanctuary":          true,
	"Cow Level":                true,
	"Stony Field and Tristram": true,
}

func IsTargetZone(zone string) bool {
	return TargetZones[zone]
}

// LookupZone resolves user input to a zone name. An exact (case-insensitive)
// match wins, otherwise the query must be a substring of exactly one zone.
func LookupZone(query string) (string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", ErrUnknownZone
	}

	var matches []string
	for _, zone := range Zones {
		lower := strings.ToLower(zone)
		if lower == q {
			return zone, nil
		}
		if strings.Contains(lower, q) {
			matches = append(matches, zone)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrUnknownZone, query)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %s", ErrAmbiguousZone, query, strings.Join(matches, "; "))
	}
}
