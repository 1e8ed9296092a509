package game

// Board defaults.
const (
	DefaultBoxSize = 64
	DefaultWidth   = 1600
	DefaultHeight  = 896
)

// Window and message text.
const (
	Title = "AmbuSnake"

	StartupCaption = "Felicitation"
	StartupBody    = "Vous avez trouver le snake cacher\n" +
		"Utilisez les fleches pour tourner\n" +
		"Utilisez P pour mettre le jeu en pause\n" +
		"Utilisez Echap pour quitter\n"

	GameOverCaption = "GAME OVER"
)
