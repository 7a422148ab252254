package rewards

// Game identifies a mini-game.
type Game string

const (
	GameLostNumbers Game = "lost_numbers"
	GameFindPair    Game = "find_pair"
	GameLabyrinth   Game = "number_labyrinth"
)

// SparksForGame returns the sparks earned for finishing game with score,
// capped at SparksPerGame.
func SparksForGame(game Game, score int) int {
	var sparks int
	switch game {
	case GameLostNumbers:
		sparks = score
	case GameFindPair:
		sparks = score / 2
	case GameLabyrinth:
		sparks = score / 3
	}
	return max(0, min(SparksPerGame, sparks))
}
