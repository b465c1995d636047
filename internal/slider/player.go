package slider

// Player is one embedded video player bound to a single video identifier.
type Player interface {
	// Play starts playback.
	Play() error

	// Destroy tears the player down. Must be idempotent.
	Destroy() error

	// VideoID returns the identifier the player was created for.
	VideoID() string

	// Ended returns a channel that receives once when playback finishes.
	// A nil channel means the player cannot report playback end.
	Ended() <-chan struct{}
}

// PlayerFactory constructs a player for a video identifier with autoplay
// enabled.
type PlayerFactory func(videoID string) (Player, error)

// Controller serializes the single active player slot against index changes.
//
// At most one player exists at a time. Binding a new video always destroys
// the old player first; teardown failures are swallowed so a broken embed
// can never wedge navigation.
type Controller struct {
	factory PlayerFactory
	active  Player
}

// NewController creates a player controller. A nil factory disables playback
// (every Bind reports unavailable).
func NewController(factory PlayerFactory) *Controller {
	return &Controller{factory: factory}
}

// Bind points the player slot at the song behind link.
//
// Returns false when the link has no parseable video identifier, in which
// case the slot is left empty and the slide should show a static
// "unavailable" placeholder.
func (c *Controller) Bind(link string) bool {
	c.Release()

	id, ok := VideoID(link)
	if !ok || c.factory == nil {
		return false
	}

	player, err := c.factory(id)
	if err != nil {
		return false
	}
	c.active = player
	c.active.Play()
	return true
}

// Release destroys the active player, if any. Teardown errors are swallowed.
func (c *Controller) Release() {
	if c.active == nil {
		return
	}
	c.active.Destroy()
	c.active = nil
}

// Active returns the current player, or nil when the slot is empty.
func (c *Controller) Active() Player { return c.active }

// Ended exposes the active player's playback-ended signal. Nil when the slot
// is empty or the player cannot report playback end.
func (c *Controller) Ended() <-chan struct{} {
	if c.active == nil {
		return nil
	}
	return c.active.Ended()
}
