package generator

import (
	"statline/domain/player"
	"statline/internal/catalog"
	"statline/internal/prng"
)

// attributes are the identity and biographical draws that drive the later stages.
type attributes struct {
	id          int
	firstName   string
	lastName    string
	team        player.Team
	position    catalog.PositionEntry
	age         int
	serviceTime int
}

func (a attributes) isPitcher() bool {
	return a.position.Code.IsPitcher()
}

// drawAttributes consumes: first name, last name, team, position, age (2), service time (2).
func (g *Generator) drawAttributes(id int) attributes {
	s := g.sampler
	a := attributes{id: id}

	a.firstName = prng.Choice(s, g.catalog.FirstNames)
	a.lastName = prng.Choice(s, g.catalog.LastNames)
	a.team = prng.Choice(s, g.catalog.Teams)
	a.position = g.catalog.PickPosition(s.Float64())

	a.age = prng.ClampInt(prng.RoundInt(s.Normal(28, 4)), 21, 40)
	a.serviceTime = prng.ClampInt(prng.RoundInt(s.Normal(float64(a.age-23), 2)), 0, 20)
	return a
}
