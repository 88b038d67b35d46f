package snake

// Snapshot captures the complete session state for determinism testing and
// debug logging.
type Snapshot struct {
	ID          string
	Tick        uint64
	SnakeLen    int
	HeadX       int
	HeadY       int
	Dir         Direction
	FoodX       int
	FoodY       int
	BombX       int
	BombY       int
	BombVisible bool
	State       Status
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	head := s.snake.Head().Pos
	return Snapshot{
		ID:          s.id,
		Tick:        s.tick,
		SnakeLen:    s.snake.Len(),
		HeadX:       head.X,
		HeadY:       head.Y,
		Dir:         s.snake.Direction(),
		FoodX:       s.food.Pos.X,
		FoodY:       s.food.Pos.Y,
		BombX:       s.bomb.Pos.X,
		BombY:       s.bomb.Pos.Y,
		BombVisible: s.bomb.Visible,
		State:       s.status,
	}
}
