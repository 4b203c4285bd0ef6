package models

import (
	"fmt"
	"math/rand"
)

var usernameAdjectives = []string{
	"amber", "azure", "bold", "brave", "bright", "calm", "clever", "cosmic",
	"crimson", "eager", "gentle", "golden", "happy", "humble", "jolly", "keen",
	"lively", "lucky", "mellow", "noble", "quiet", "rapid", "silver", "sunny",
	"swift", "tidy", "vivid", "warm", "wise", "witty",
}

var usernameNouns = []string{
	"aurora", "badger", "brook", "canyon", "cloud", "comet", "coral", "crane",
	"dune", "falcon", "fjord", "glacier", "harbor", "heron", "lagoon", "lotus",
	"lynx", "meadow", "otter", "panda", "pebble", "prairie", "raven", "reef",
	"ridge", "sparrow", "summit", "tide", "willow", "wren",
}

// GenerateReadableUsername builds a human-friendly unique-ish username of the
// form adjective-noun-NNNNNN. Collisions are caught by the unique index on
// users.username.
func GenerateReadableUsername() string {
	adjective := usernameAdjectives[rand.Intn(len(usernameAdjectives))]
	noun := usernameNouns[rand.Intn(len(usernameNouns))]
	number := rand.Intn(1000000)

	return fmt.Sprintf("%s-%s-%06d", adjective, noun, number)
}
