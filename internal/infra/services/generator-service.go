package services

import (
	"fmt"
	"math/rand"
	"sync"
)

var characterHeadings = []string{
	"Holy shit, your new character is a",
	"Behold, your gotdamn hero, a",
	"Dice don't lie, you're a",
	"Check this shit out, it's a",
	"Your new character is a fucking",
	"Roll for initiative, because you're a",
}

var characterAlignments = []string{
	"chaotic evil",
	"lawful good",
	"true neutral",
	"chaotic good",
	"neutral evil",
	"lawful, but kind of bitchy,",
}

var characterRaces = []string{
	"half-orc",
	"gnome",
	"dark elf",
	"dwarf",
	"tiefling",
	"halfling",
	"dragonborn",
}

var characterClasses = []string{
	"barbarian",
	"bard",
	"necromancer",
	"paladin",
	"rogue",
	"druid",
	"warlock",
}

var characterQuirks = []string{
	"hoards spoons from every tavern they visit",
	"is deathly afraid of horses",
	"swears a fucking oath before every breakfast",
	"owes money to every innkeeper on the coast",
	"cannot read a map to save their own ass",
	"talks to their sword and listens for an answer",
	"thinks every door is trapped, and is usually right",
}

var delayedResponses = []string{
	"Want to hear about another one?",
	"I've got more where that shit came from.",
	"Pretty good one, right?",
	"I could do this all gotdamn day.",
	"Another masterpiece, if I say so myself.",
}

// GeneratorService assembles random characters from fixed word tables. The
// guarded rand source keeps concurrent webhook turns from racing on it.
type GeneratorService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGeneratorService(rng *rand.Rand) *GeneratorService {
	return &GeneratorService{rng: rng}
}

func (gs *GeneratorService) GenerateHeading() string {
	return gs.pick(characterHeadings)
}

func (gs *GeneratorService) GenerateCharacter() string {
	return fmt.Sprintf("%s %s %s who %s.",
		gs.pick(characterAlignments),
		gs.pick(characterRaces),
		gs.pick(characterClasses),
		gs.pick(characterQuirks),
	)
}

func (gs *GeneratorService) GenerateResponse() string {
	return gs.pick(delayedResponses)
}

func (gs *GeneratorService) pick(table []string) string {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return table[gs.rng.Intn(len(table))]
}
