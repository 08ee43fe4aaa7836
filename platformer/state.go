package platformer

// GameState is the outcome of a playthrough so far.
type GameState int

const (
	StatePlaying GameState = iota
	StateWon
	StateLost
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	}
	return "Unknown"
}

// Terminal reports whether no further gameplay update happens until restart.
func (s GameState) Terminal() bool {
	return s != StatePlaying
}

// Screen is the screen the controller is showing.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "Menu"
	case ScreenPlaying:
		return "Playing"
	case ScreenGameOver:
		return "GameOver"
	}
	return "Unknown"
}
