package catalog

import "statline/domain/player"

var defaultFirstNames = []string{
	"Aaron", "Shohei", "Mike", "Mookie", "Juan", "Bryce", "Fernando", "Freddie",
	"Francisco", "Vladimir", "Ronald", "Corbin", "Gerrit", "Jacob", "Shane",
	"Max", "Justin", "Nolan", "Jose", "Carlos", "Yordan", "Kyle", "Zack", "Luis",
	"Alex", "Anthony", "Brandon", "Chris", "Daniel", "Eric", "Frank", "George",
	"Henry", "Ian", "James", "Kevin", "Luke", "Matthew", "Nathan", "Oscar",
	"Paul", "Quincy", "Robert", "Steven", "Tyler", "Victor", "William", "Xavier",
}

// Ramirez appears twice on purpose; the pool is sampled by index.
var defaultLastNames = []string{
	"Judge", "Ohtani", "Trout", "Betts", "Soto", "Harper", "Tatis Jr.", "Freeman",
	"Lindor", "Guerrero Jr.", "Acuña Jr.", "Burnes", "Cole", "deGrom", "Bieber",
	"Scherzer", "Verlander", "Arenado", "Ramirez", "Correa", "Alvarez", "Tucker",
	"Wheeler", "Robert", "Bregman", "Rendon", "Crawford", "Sale", "Murphy",
	"Hosmer", "Garcia", "Springer", "Ramirez", "Happ", "McClanahan", "Gausman",
	"Anderson", "Chapman", "Goldschmidt", "Hernandez", "Riley", "Marte", "Realmuto",
	"Semien", "Turner", "Alcantara", "Buxton", "Bogaerts",
}

var defaultTeams = []player.Team{
	{Code: "NYY", Name: "New York Yankees", League: "AL", Division: "East"},
	{Code: "LAD", Name: "Los Angeles Dodgers", League: "NL", Division: "West"},
	{Code: "BOS", Name: "Boston Red Sox", League: "AL", Division: "East"},
	{Code: "CHC", Name: "Chicago Cubs", League: "NL", Division: "Central"},
	{Code: "HOU", Name: "Houston Astros", League: "AL", Division: "West"},
	{Code: "ATL", Name: "Atlanta Braves", League: "NL", Division: "East"},
	{Code: "NYM", Name: "New York Mets", League: "NL", Division: "East"},
	{Code: "PHI", Name: "Philadelphia Phillies", League: "NL", Division: "East"},
	{Code: "SDP", Name: "San Diego Padres", League: "NL", Division: "West"},
	{Code: "TOR", Name: "Toronto Blue Jays", League: "AL", Division: "East"},
	{Code: "SEA", Name: "Seattle Mariners", League: "AL", Division: "West"},
	{Code: "SFG", Name: "San Francisco Giants", League: "NL", Division: "West"},
	{Code: "STL", Name: "St. Louis Cardinals", League: "NL", Division: "Central"},
	{Code: "CLE", Name: "Cleveland Guardians", League: "AL", Division: "Central"},
	{Code: "MIL", Name: "Milwaukee Brewers", League: "NL", Division: "Central"},
	{Code: "MIN", Name: "Minnesota Twins", League: "AL", Division: "Central"},
	{Code: "TBR", Name: "Tampa Bay Rays", League: "AL", Division: "East"},
	{Code: "CIN", Name: "Cincinnati Reds", League: "NL", Division: "Central"},
	{Code: "DET", Name: "Detroit Tigers", League: "AL", Division: "Central"},
	{Code: "COL", Name: "Colorado Rockies", League: "NL", Division: "West"},
	{Code: "KCR", Name: "Kansas City Royals", League: "AL", Division: "Central"},
	{Code: "OAK", Name: "Oakland Athletics", League: "AL", Division: "West"},
	{Code: "TEX", Name: "Texas Rangers", League: "AL", Division: "West"},
	{Code: "LAA", Name: "Los Angeles Angels", League: "AL", Division: "West"},
	{Code: "CHW", Name: "Chicago White Sox", League: "AL", Division: "Central"},
	{Code: "ARI", Name: "Arizona Diamondbacks", League: "NL", Division: "West"},
	{Code: "BAL", Name: "Baltimore Orioles", League: "AL", Division: "East"},
	{Code: "MIA", Name: "Miami Marlins", League: "NL", Division: "East"},
	{Code: "PIT", Name: "Pittsburgh Pirates", League: "NL", Division: "Central"},
	{Code: "WSH", Name: "Washington Nationals", League: "NL", Division: "East"},
}

var defaultPositions = []PositionEntry{
	{Code: player.Catcher, Name: "Catcher", Weight: 0.08},
	{Code: player.FirstBase, Name: "First Base", Weight: 0.08},
	{Code: player.SecondBase, Name: "Second Base", Weight: 0.08},
	{Code: player.ThirdBase, Name: "Third Base", Weight: 0.08},
	{Code: player.Shortstop, Name: "Shortstop", Weight: 0.08},
	{Code: player.LeftField, Name: "Left Field", Weight: 0.08},
	{Code: player.CenterField, Name: "Center Field", Weight: 0.08},
	{Code: player.RightField, Name: "Right Field", Weight: 0.08},
	{Code: player.DesignatedHitter, Name: "Designated Hitter", Weight: 0.04},
	{Code: player.StartingPitcher, Name: "Starting Pitcher", Weight: 0.20},
	{Code: player.ReliefPitcher, Name: "Relief Pitcher", Weight: 0.12},
}

// Default returns a fresh copy of the built-in tables.
func Default() *Catalog {
	c := &Catalog{
		FirstNames: defaultFirstNames,
		LastNames:  defaultLastNames,
		Teams:      defaultTeams,
		Positions:  defaultPositions,
	}
	return c.Clone()
}
