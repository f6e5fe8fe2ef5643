package activity

// The two content pools and their exhaustion sentinels. The literals are
// part of the external contract; the recency windows rotate over them.

var tipsPool = []string{
	"Take a deep breath and count to 10. It helps clear your mind.",
	"Remember that every day is a new beginning.",
	"Try to find something positive in every situation.",
	"Talk to someone you trust about how you're feeling.",
	"Take a short walk outside to refresh your mind.",
}

const tipsSentinel = "You've seen all the tips! Starting fresh..."

var storiesPool = []string{
	"Once upon a time in a peaceful village,\na girl named Lila loved to plant flowers.\nOne spring, a stranger asked her why she cared.\nShe said: 'Because flowers grow hope.'\nYears later, her flowers made the village famous.\nThe End.",
	"A young boy found a lost puppy in the rain.\nHe took it home, dried it off, and gave it food.\nThe puppy became his best friend, and together they brought joy to the whole neighborhood.",
	"In a small town, an old man planted a tree every year.\nDecades later, the town was filled with shade and fruit, and everyone remembered the kindness of the old man.",
	"A girl who was afraid of the dark learned to love the stars.\nShe realized that even in darkness, there is beauty and hope.",
	"A teacher believed in a struggling student.\nWith encouragement, the student discovered a love for learning and grew up to help others in need.",
}

const storiesSentinel = "You've read all the stories! Starting fresh..."

// activityInfo describes one calming activity offered to a non-positive
// mood.
type activityInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var calmingActivities = []activityInfo{
	{ID: "tic_tac_toe", Name: "Play Tic Tac Toe", Description: "Play a game of Tic Tac Toe"},
	{ID: "tip", Name: "Get a Tip", Description: "Receive a helpful tip"},
	{ID: "story", Name: "Hear a Story", Description: "Listen to an uplifting story"},
}

// positiveEmotions need no calming activities.
var positiveEmotions = map[string]bool{
	"happy":   true,
	"neutral": true,
}

type ticTacToeDTO struct {
	Board []string `json:"board" binding:"required"`
	Move  *int     `json:"move"  binding:"required"`
}
