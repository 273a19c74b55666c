package console

// hangmanStates are the drawings for 0 through 6 wrong guesses.
var hangmanStates = [...]string{
	`
     +---+
     |   |
         |
         |
         |
         |
    =========
    `,
	`
     +---+
     |   |
     O   |
         |
         |
         |
    =========
    `,
	`
     +---+
     |   |
     O   |
     |   |
         |
         |
    =========
    `,
	`
     +---+
     |   |
     O   |
    /|   |
         |
         |
    =========
    `,
	`
     +---+
     |   |
     O   |
    /|\  |
         |
         |
    =========
    `,
	`
     +---+
     |   |
     O   |
    /|\  |
    /    |
         |
    =========
    `,
	`
     +---+
     |   |
     O   |
    /|\  |
    / \  |
         |
    =========
    `,
}

// HangmanArt returns the drawing for a wrong guess count. Counts outside
// 0..6 get the final drawing.
func HangmanArt(wrong int) string {
	if wrong < 0 || wrong >= len(hangmanStates) {
		return hangmanStates[len(hangmanStates)-1]
	}
	return hangmanStates[wrong]
}
