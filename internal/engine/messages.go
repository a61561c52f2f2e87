package engine

// Overlay texts
const (
	MsgWelcomeHeader = "Welcome to Boompa's Hearts Table!"
	MsgWaiting       = "Waiting for other players to join...\nTell others to join game %q.\n\nHere so far are:"
	MsgFullGame      = "Game is full.\nStart the client with another game name to create a new game."
	MsgInvalidMove   = "The Evil Eye is always watching!\nInvalid Move!"
	MsgPromptName    = "Player name:"
	MsgPromptPartner = "Who's the Granny to your Boompa?"
	MsgPaused        = "One moment, please, while we shuffle the cards.\nDo you need more ice in that margarita?"
	MsgWon           = "Nice win, Old Bean!"
	MsgLost          = "\"Today is yesterday's tomorrow, but tomorrow is not yesterday's today...\"\n    ~The Great Wise Ceiling\n\nBetter luck tomorrow!"
	MsgFinalScore    = "Final score: %d to %d"
	MsgWeShotMoon    = "\"Great gobs of fishworms!\"\nYou shot the moon!"
	MsgTheyShotMoon  = "\"Grunk!\"\n    ~Murgatroyd"
	MsgDisconnected  = "Disconnected from server: %s.\nWait to be reconnected automatically, or press r to ask for a refresh."
	MsgUnreachable   = "Could not reach the server: %s.\nPress q to quit."
	MsgConnecting    = "Connecting to the server..."
	MsgReconnecting  = "Reconnecting (%d/%d)..."
)

// MsgHelp is the rules summary shown by the help key.
const MsgHelp = `Boompa Hearts

The game is Four Person Team Hearts. Your partner is the player sitting
across from you. At the end of each hand, your score is combined with your
partner's score. Unless stated below, all standard rules for Hearts apply.

  * Shooting the Moon (you and your partner take all point cards, i.e. all
    Hearts and the Queen of Spades) gives the opponent team 36 points and
    permits you to gloat a bit
  * After cards are dealt each player chooses three cards to pass: to the
    left, to the right, across (with your partner), hold (no passing), repeat
  * No point cards on the first trick unless your hand is only point cards
  * You cannot lead a point card until one has been played unless your hand
    is only point cards
  * The ♥ mark shows a team has taken a point card this hand
  * The last trick is always shown along with the order it was played in
  * The game ends when either team's score exceeds 100 and nobody is tied

Keys: ←/→ move, space select, enter trade/play, n rename, r refresh,
      ? help, esc dismiss, ctrl+c quit`
