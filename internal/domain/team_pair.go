package domain

// TeamSide identifies one of the two squads of a TeamPair
type TeamSide int

const (
	TeamOne TeamSide = 1
	TeamTwo TeamSide = 2
)

// SubstitutePair records the substitute held out of an odd-sized pool and
// the teammate it rotates with during play.
type SubstitutePair struct {
	Substitute Player `json:"substitute"`
	// RotationPlayer is nil only when the substitute ended up alone in its squad.
	RotationPlayer *Player  `json:"rotationPlayer,omitempty"`
	TeamWithSub    TeamSide `json:"teamWithSub"`
}

// TeamPair is the output of a balancing call
type TeamPair struct {
	Team1            Squad           `json:"team1"`
	Team2            Squad           `json:"team2"`
	RatingDifference int             `json:"ratingDifference"`
	SubstituteInfo   *SubstitutePair `json:"substituteInfo,omitempty"`
}

// Squad returns the squad on the given side
func (tp *TeamPair) Squad(side TeamSide) Squad {
	if side == TeamTwo {
		return tp.Team2
	}
	return tp.Team1
}

// PlayerCount returns the number of players across both squads
func (tp *TeamPair) PlayerCount() int {
	return len(tp.Team1) + len(tp.Team2)
}

// TeamStats holds descriptive statistics over a squad
type TeamStats struct {
	TotalRating   int `json:"totalRating"`
	AverageRating int `json:"averageRating"`
	PlayerCount   int `json:"playerCount"`
	MinRating     int `json:"minRating"`
	MaxRating     int `json:"maxRating"`
}
